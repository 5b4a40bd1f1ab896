// Package list provides id-indexed, order-preserving collections of entities and their
// set algebra.
package list

import (
	"github.com/dball/osinfo/internal/iterator"
)

// Identified is anything with a stable, non-empty identifier.
type Identified interface {
	ID() string
}

// List is an ordered collection of entities of one type, unique by id. Lists are not safe for
// concurrent use, and must not be changed while being iterated.
type List[T Identified] struct {
	elements []T
	byID     map[string]T
}

var _ iterator.Collection[Identified] = (*List[Identified])(nil)

// New returns an empty list.
func New[T Identified]() *List[T] {
	return &List[T]{byID: map[string]T{}}
}

// Of returns a list of the given elements, added in order.
func Of[T Identified](elements ...T) (l *List[T]) {
	l = New[T]()
	for _, element := range elements {
		l.Add(element)
	}
	return
}

// Add inserts element. If an element with the same id is present, it is replaced and the new
// element moves to the end of the enumeration order.
func (l *List[T]) Add(element T) (replaced bool) {
	id := element.ID()
	if id == "" {
		panic("list.emptyID")
	}
	if _, replaced = l.byID[id]; replaced {
		for i, e := range l.elements {
			if e.ID() == id {
				l.elements = append(l.elements[:i], l.elements[i+1:]...)
				break
			}
		}
	}
	l.elements = append(l.elements, element)
	l.byID[id] = element
	return
}

// AddAll adds every element of source in its order.
func (l *List[T]) AddAll(source *List[T]) {
	for _, element := range source.elements {
		l.Add(element)
	}
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return len(l.elements)
}

// Nth returns the element at position i in enumeration order.
func (l *List[T]) Nth(i int) T {
	return l.elements[i]
}

// Find returns the element with the given id, if any.
func (l *List[T]) Find(id string) (element T, ok bool) {
	element, ok = l.byID[id]
	return
}

// Has returns true if an element with the given id is present.
func (l *List[T]) Has(id string) bool {
	_, ok := l.byID[id]
	return ok
}

// Elements returns the elements in enumeration order. The slice is a copy.
func (l *List[T]) Elements() []T {
	elements := make([]T, len(l.elements))
	copy(elements, l.elements)
	return elements
}

// IDs returns the element ids in enumeration order.
func (l *List[T]) IDs() (ids []string) {
	ids = make([]string, len(l.elements))
	for i, e := range l.elements {
		ids[i] = e.ID()
	}
	return
}

// Each visits the elements in enumeration order until accept returns false.
func (l *List[T]) Each(accept iterator.Accept[T]) {
	for _, element := range l.elements {
		if !accept(element) {
			return
		}
	}
}
