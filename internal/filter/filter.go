// Package filter provides attribute constraints for selecting entities.
package filter

import (
	"github.com/dball/osinfo/internal/list"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Attributed is anything with multi-valued attributes.
type Attributed interface {
	GetAll(key string) []string
}

// Filter is a set of constraints on attribute values. An entity matches a filter if, for every
// constrained key, at least one of its values for that key is among the constraint's values.
// A nil or empty filter matches everything.
type Filter struct {
	constraints map[string][]string
}

// New returns an empty filter.
func New() *Filter {
	return &Filter{constraints: map[string][]string{}}
}

// Of returns a filter constraining each key to its value.
func Of(pairs map[string]string) (f *Filter) {
	f = New()
	for k, v := range pairs {
		f.AddConstraint(k, v)
	}
	return
}

// AddConstraint allows value for key, in addition to any values already allowed.
func (f *Filter) AddConstraint(key string, value string) {
	if !slices.Contains(f.constraints[key], value) {
		f.constraints[key] = append(f.constraints[key], value)
	}
}

// ClearConstraint removes every constraint on key.
func (f *Filter) ClearConstraint(key string) {
	delete(f.constraints, key)
}

// ClearConstraints removes every constraint.
func (f *Filter) ClearConstraints() {
	f.constraints = map[string][]string{}
}

// Constraints returns the allowed values for key.
func (f *Filter) Constraints(key string) []string {
	return slices.Clone(f.constraints[key])
}

// Keys returns the constrained keys, sorted.
func (f *Filter) Keys() (keys []string) {
	keys = maps.Keys(f.constraints)
	slices.Sort(keys)
	return
}

// Matches returns true if the entity satisfies every constraint.
func (f *Filter) Matches(e Attributed) bool {
	if f == nil {
		return true
	}
	for key, allowed := range f.constraints {
		found := false
		for _, v := range e.GetAll(key) {
			if slices.Contains(allowed, v) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Filterable is an entity that may be held in a list and constrained by a filter.
type Filterable interface {
	list.Identified
	Attributed
}

// Select returns a new list of the elements of source that match f, in source order.
func Select[T Filterable](source *list.List[T], f *Filter) *list.List[T] {
	return list.Filtered(source, func(element T) bool { return f.Matches(element) })
}
