// Package index provides sorted sets implemented on btrees.
package index

import (
	"github.com/dball/osinfo/internal/iterator"
	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

// DefaultDegree is the btree degree used when none is given.
const DefaultDegree = 32

// Set is a sorted set of ordered values. Sets are safe for concurrent reads but not for
// concurrent writes.
type Set[X constraints.Ordered] struct {
	tree *btree.BTreeG[X]
}

var _ iterator.Collection[string] = (*Set[string])(nil)

// NewSet returns an empty set backed by a btree of the given degree.
func NewSet[X constraints.Ordered](degree int) (set *Set[X]) {
	if degree < 2 {
		degree = DefaultDegree
	}
	set = &Set[X]{tree: btree.NewG(degree, btree.LessFunc[X](less[X]))}
	return
}

// Strings returns an empty string set of the default degree.
func Strings() *Set[string] {
	return NewSet[string](DefaultDegree)
}

func less[X constraints.Ordered](x1 X, x2 X) bool {
	return x1 < x2
}

// Insert ensures x is in the set, returning true if it was already.
func (set *Set[X]) Insert(x X) (extant bool) {
	_, extant = set.tree.ReplaceOrInsert(x)
	return
}

// Len returns the number of values in the set.
func (set *Set[X]) Len() int {
	return set.tree.Len()
}

// Each visits the values in ascending order until accept returns false.
func (set *Set[X]) Each(accept iterator.Accept[X]) {
	set.tree.Ascend(btree.ItemIteratorG[X](accept))
}

// Values returns the values in ascending order.
func (set *Set[X]) Values() (values []X) {
	values = make([]X, 0, set.tree.Len())
	set.tree.Ascend(func(x X) bool {
		values = append(values, x)
		return true
	})
	return
}
