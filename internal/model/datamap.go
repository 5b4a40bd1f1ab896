package model

import (
	"github.com/dball/osinfo/internal/entity"
)

// Datamap translates raw values into the catalog's vocabulary, and back.
type Datamap struct {
	*entity.Entity
	forward map[string]string
	reverse map[string]string
	keys    []string
}

// NewDatamap returns an empty datamap.
func NewDatamap(id string) *Datamap {
	return &Datamap{Entity: entity.New(id), forward: map[string]string{}, reverse: map[string]string{}}
}

// Insert maps in to out. A later insert for the same in replaces the earlier mapping; the
// reverse direction keeps the first in for each out.
func (m *Datamap) Insert(in string, out string) {
	if _, ok := m.forward[in]; !ok {
		m.keys = append(m.keys, in)
	}
	m.forward[in] = out
	if _, ok := m.reverse[out]; !ok {
		m.reverse[out] = in
	}
}

// Lookup returns the value to which in is mapped.
func (m *Datamap) Lookup(in string) (out string, ok bool) {
	out, ok = m.forward[in]
	return
}

// ReverseLookup returns the value that maps to out.
func (m *Datamap) ReverseLookup(out string) (in string, ok bool) {
	in, ok = m.reverse[out]
	return
}

// Len returns the number of mappings.
func (m *Datamap) Len() int {
	return len(m.keys)
}

// Inputs returns the mapped values in insertion order.
func (m *Datamap) Inputs() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}
