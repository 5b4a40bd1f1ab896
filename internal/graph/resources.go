package graph

import (
	"github.com/dball/osinfo/internal/list"
	"github.com/dball/osinfo/internal/model"
	. "github.com/dball/osinfo/internal/types"
)

// Resources returns os's own resources in the category, with the unset fields of records
// marked for inheritance filled in from the products os derives from or clones. For each
// field the first product in traversal order with a value for the same architecture wins.
// The records returned are copies; the catalog is not changed.
func Resources(resolve Resolver[*model.OS], os *model.OS, category model.ResourcesCategory) (resources *list.List[*model.Resources]) {
	resources = list.New[*model.Resources]()
	inheriting := []*model.Resources{}
	os.Resources(category).Each(func(r *model.Resources) bool {
		clone := r.Clone()
		resources.Add(clone)
		if clone.Inherit() {
			inheriting = append(inheriting, clone)
		}
		return true
	})
	if len(inheriting) == 0 {
		return
	}
	for _, ancestor := range Ancestry(resolve, os, InheritanceMask) {
		candidates := ancestor.Resources(category)
		for _, r := range inheriting {
			inherit(r, candidates)
		}
	}
	return
}

func inherit(r *model.Resources, candidates *list.List[*model.Resources]) {
	arch := r.Architecture()
	candidates.Each(func(candidate *model.Resources) bool {
		if candidate.Architecture() != arch {
			return true
		}
		for _, field := range model.ResourcesFields {
			if r.Int(field, Unset) != Unset {
				continue
			}
			if v := candidate.Int(field, Unset); v != Unset {
				r.SetInt(field, v)
			}
		}
		return false
	})
}
