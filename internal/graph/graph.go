// Package graph walks product relationships and resolves what products inherit from the
// products they are related to.
package graph

import (
	"github.com/dball/osinfo/internal/list"
	"github.com/dball/osinfo/internal/model"
)

// Node is a product with outgoing relationships.
type Node interface {
	list.Identified
	Related(mask model.RelationshipKind) []string
}

// Resolver looks up a product by id.
type Resolver[P Node] func(id string) (P, bool)

// InheritanceMask is the set of relationships along which facts are inherited.
const InheritanceMask = model.DerivesFrom | model.Clones

// ForeachRelated visits p and then, depth first, every product reachable from p over the
// relationships in mask. The targets of a product are visited in the order of derives-from,
// upgrades and then clones, each id once per product. Ids that do not resolve are skipped.
//
// There is no guard against cycles: a product reachable by two paths is visited twice, and
// a cyclic graph does not terminate.
func ForeachRelated[P Node](resolve Resolver[P], p P, mask model.RelationshipKind, visit func(P)) {
	visit(p)
	targets := list.New[P]()
	for _, kind := range model.TraversalOrder {
		if mask&kind == 0 {
			continue
		}
		kindTargets := list.New[P]()
		for _, id := range p.Related(kind) {
			target, ok := resolve(id)
			if !ok {
				continue
			}
			kindTargets.Add(target)
		}
		targets = list.Union(targets, kindTargets)
	}
	targets.Each(func(target P) bool {
		ForeachRelated(resolve, target, mask, visit)
		return true
	})
}

// Ancestry returns the products visited by ForeachRelated from p, in visit order, excluding p.
// A product visited more than once appears more than once.
func Ancestry[P Node](resolve Resolver[P], p P, mask model.RelationshipKind) (ancestry []P) {
	id := p.ID()
	ForeachRelated(resolve, p, mask, func(q P) {
		if q.ID() != id {
			ancestry = append(ancestry, q)
		}
	})
	return
}

// UniqueRelated returns the targets of every product in products over the relationships in
// mask, each id once, in the order they are first seen. Targets are not followed further.
func UniqueRelated[P Node](resolve Resolver[P], products *list.List[P], mask model.RelationshipKind) (related *list.List[P]) {
	related = list.New[P]()
	products.Each(func(p P) bool {
		for _, id := range p.Related(mask) {
			if related.Has(id) {
				continue
			}
			if target, ok := resolve(id); ok {
				related.Add(target)
			}
		}
		return true
	})
	return
}
