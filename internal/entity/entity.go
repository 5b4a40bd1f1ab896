// Package entity provides the attribute store shared by every catalog record.
package entity

import (
	"strconv"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Entity is a record with an immutable id and a multi-valued attribute map.
type Entity struct {
	id     string
	params map[string][]string
}

// New returns an entity with the given id. An empty id is a usage error.
func New(id string) *Entity {
	if id == "" {
		panic("entity.emptyID")
	}
	return &Entity{id: id, params: map[string][]string{}}
}

// ID returns the entity's identifier.
func (e *Entity) ID() string {
	return e.id
}

// Set replaces every value of key with value.
func (e *Entity) Set(key string, value string) {
	e.params[key] = []string{value}
}

// Add appends value to the values of key.
func (e *Entity) Add(key string, value string) {
	e.params[key] = append(e.params[key], value)
}

// Clear removes key and all of its values.
func (e *Entity) Clear(key string) {
	delete(e.params, key)
}

// Has returns true if key has at least one value.
func (e *Entity) Has(key string) bool {
	return len(e.params[key]) > 0
}

// Get returns the first value of key, if any.
func (e *Entity) Get(key string) (value string, ok bool) {
	values := e.params[key]
	if len(values) == 0 {
		return
	}
	value = values[0]
	ok = true
	return
}

// String returns the first value of key, or the empty string.
func (e *Entity) String(key string) string {
	value, _ := e.Get(key)
	return value
}

// GetAll returns a copy of the values of key in insertion order.
func (e *Entity) GetAll(key string) []string {
	return slices.Clone(e.params[key])
}

// Keys returns the keys that have values, sorted.
func (e *Entity) Keys() (keys []string) {
	keys = maps.Keys(e.params)
	slices.Sort(keys)
	return
}

// Params returns a deep copy of the attribute map.
func (e *Entity) Params() (params map[string][]string) {
	params = make(map[string][]string, len(e.params))
	for k, vs := range e.params {
		params[k] = slices.Clone(vs)
	}
	return
}

// Bool interprets the first value of key as a boolean. Only "true" and "yes" are true.
func (e *Entity) Bool(key string) bool {
	value, _ := e.Get(key)
	return value == "true" || value == "yes"
}

// BoolDefault is Bool, except it returns def when key has no value.
func (e *Entity) BoolDefault(key string, def bool) bool {
	if !e.Has(key) {
		return def
	}
	return e.Bool(key)
}

// SetBool sets key to the canonical spelling of b.
func (e *Entity) SetBool(key string, b bool) {
	e.Set(key, strconv.FormatBool(b))
}

// Int parses the first value of key as an integer, honouring 0x and 0 radix prefixes. It
// returns def if key has no value or the value does not parse.
func (e *Entity) Int(key string, def int64) int64 {
	value, ok := e.Get(key)
	if !ok {
		return def
	}
	n, err := strconv.ParseInt(value, 0, 64)
	if err != nil {
		return def
	}
	return n
}

// SetInt sets key to the decimal representation of n.
func (e *Entity) SetInt(key string, n int64) {
	e.Set(key, strconv.FormatInt(n, 10))
}

// Clone returns a copy of the entity with the same id and independent attributes.
func (e *Entity) Clone() *Entity {
	return &Entity{id: e.id, params: e.Params()}
}

// WithID returns a copy of the entity under a new id.
func (e *Entity) WithID(id string) (clone *Entity) {
	clone = New(id)
	clone.params = e.Params()
	return
}
