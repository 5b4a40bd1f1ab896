package catalog

import (
	"github.com/dball/osinfo/internal/graph"
	"github.com/dball/osinfo/internal/index"
	"github.com/dball/osinfo/internal/iterator"
	"github.com/dball/osinfo/internal/list"
	"github.com/dball/osinfo/internal/model"
	"golang.org/x/exp/slices"
)

// FindDeployment returns the deployment of the given os on the given platform.
func (c *Catalog) FindDeployment(os string, platform string) (*model.Deployment, bool) {
	return iterator.First[*model.Deployment](c.deployments, func(d *model.Deployment) bool {
		return d.OS() == os && d.Platform() == platform
	})
}

// FindOSByShortID returns the first operating system with the given short id.
func (c *Catalog) FindOSByShortID(shortID string) (*model.OS, bool) {
	return iterator.First[*model.OS](c.oses, func(os *model.OS) bool {
		return slices.Contains(os.ShortIDs(), shortID)
	})
}

type valued interface {
	list.Identified
	GetAll(key string) []string
}

// UniqueValuesForProperty returns every distinct value of the property among the elements.
func UniqueValuesForProperty[T valued](l *list.List[T], property string) *index.Set[string] {
	return iterator.Reduce[T](l, func(values *index.Set[string], element T) *index.Set[string] {
		for _, v := range element.GetAll(property) {
			values.Insert(v)
		}
		return values
	}, index.Strings())
}

// UniqueOSesForRelationship returns the targets of the given relationships from every
// operating system in l, each once, in order of first appearance. Unknown targets are skipped.
func (c *Catalog) UniqueOSesForRelationship(l *list.List[*model.OS], kind model.RelationshipKind) *list.List[*model.OS] {
	return graph.UniqueRelated(c.oses.Find, l, kind)
}

// UniquePlatformsForRelationship is UniqueOSesForRelationship for platforms.
func (c *Catalog) UniquePlatformsForRelationship(l *list.List[*model.Platform], kind model.RelationshipKind) *list.List[*model.Platform] {
	return graph.UniqueRelated(c.platforms.Find, l, kind)
}
