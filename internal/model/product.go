// Package model defines the typed records held by the catalog.
package model

import (
	"github.com/dball/osinfo/internal/entity"
	"github.com/dball/osinfo/internal/sys"
)

// RelationshipKind is a kind of directed link between products. Kinds combine as a mask.
type RelationshipKind uint8

const (
	DerivesFrom RelationshipKind = 1 << iota
	Clones
	Upgrades
)

// AllRelationships is the mask of every relationship kind.
const AllRelationships = DerivesFrom | Clones | Upgrades

// RelationshipKinds is the nick table for relationship kinds.
var RelationshipKinds = entity.Nicks{
	"derives-from": int(DerivesFrom),
	"clones":       int(Clones),
	"upgrades":     int(Upgrades),
}

// TraversalOrder is the order in which relationship kinds are followed by traversals.
var TraversalOrder = []RelationshipKind{DerivesFrom, Upgrades, Clones}

func (kind RelationshipKind) String() string {
	nick, ok := RelationshipKinds.Nick(int(kind))
	if !ok {
		return "unknown"
	}
	return nick
}

// Relationship is a directed edge to the product with id Target.
type Relationship struct {
	Kind   RelationshipKind
	Target string
}

// Product holds what operating systems and platforms have in common. It owns
// outgoing relationships only; targets are looked up by id.
type Product struct {
	*entity.Entity
	related []Relationship
}

func newProduct(id string) Product {
	return Product{Entity: entity.New(id)}
}

// AddRelated adds a relationship of the given kind to the product with the given id.
func (p *Product) AddRelated(kind RelationshipKind, target string) {
	p.related = append(p.related, Relationship{Kind: kind, Target: target})
}

// Related returns the ids of related products whose kind is in the mask, in insertion order,
// each id at most once.
func (p *Product) Related(mask RelationshipKind) (ids []string) {
	seen := map[string]bool{}
	for _, rel := range p.related {
		if rel.Kind&mask == 0 || seen[rel.Target] {
			continue
		}
		seen[rel.Target] = true
		ids = append(ids, rel.Target)
	}
	return
}

// Relationships returns a copy of the outgoing relationships.
func (p *Product) Relationships() []Relationship {
	rels := make([]Relationship, len(p.related))
	copy(rels, p.related)
	return rels
}

// Descriptive attributes of the product.
func (p *Product) Name() string     { return p.String(sys.ProductName) }
func (p *Product) Vendor() string   { return p.String(sys.ProductVendor) }
func (p *Product) Version() string  { return p.String(sys.ProductVersion) }
func (p *Product) Codename() string { return p.String(sys.ProductCodename) }
func (p *Product) Logo() string     { return p.String(sys.ProductLogo) }

// ReleaseDate and EOLDate are in 2006-01-02 form.
func (p *Product) ReleaseDate() string { return p.String(sys.ProductReleaseDate) }
func (p *Product) EOLDate() string     { return p.String(sys.ProductEOLDate) }

// ShortIDs returns every short id the product is known by, the canonical one first.
func (p *Product) ShortIDs() []string { return p.GetAll(sys.ProductShortID) }

// ShortID returns the first short id, which is the canonical one.
func (p *Product) ShortID() string {
	return p.String(sys.ProductShortID)
}
