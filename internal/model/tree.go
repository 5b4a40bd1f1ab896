package model

import (
	"github.com/dball/osinfo/internal/entity"
	"github.com/dball/osinfo/internal/sys"
)

// Tree is an installation tree, typically published over http with a .treeinfo file.
type Tree struct {
	*entity.Entity
	os string
}

// NewTree returns a tree with the given id and architecture.
func NewTree(id string, arch string) (t *Tree) {
	t = &Tree{Entity: entity.New(id)}
	if arch != "" {
		t.Set(sys.Architecture, arch)
	}
	return
}

// Rebind replaces the tree's id, keeping its attributes.
func (t *Tree) Rebind(id string) {
	t.Entity = t.Entity.WithID(id)
}

// Plain attributes of the tree. Identification copies them from the catalog tree.
func (t *Tree) Architecture() string { return t.String(sys.Architecture) }
func (t *Tree) URL() string          { return t.String(sys.URL) }
func (t *Tree) Kernel() string       { return t.String(sys.Kernel) }
func (t *Tree) Initrd() string       { return t.String(sys.Initrd) }
func (t *Tree) Variants() []string   { return t.GetAll(sys.Variant) }

// BootISO is the path of the boot iso image relative to the tree url.
func (t *Tree) BootISO() string { return t.String(sys.TreeBootISO) }

// Fields of the general section of .treeinfo. On catalog trees they are patterns.
func (t *Tree) TreeinfoFamily() (string, bool)  { return t.Get(sys.TreeFamily) }
func (t *Tree) TreeinfoVariant() (string, bool) { return t.Get(sys.TreeVariant) }
func (t *Tree) TreeinfoVersion() (string, bool) { return t.Get(sys.TreeVersion) }

// TreeinfoArch is the arch field of .treeinfo, which need not name the tree's architecture.
func (t *Tree) TreeinfoArch() (string, bool) { return t.Get(sys.TreeArch) }

// HasTreeinfo reports whether the tree publishes treeinfo.
func (t *Tree) HasTreeinfo() bool { return t.BoolDefault(sys.TreeHasTreeinfo, t.Has(sys.TreeFamily)) }

// HasDiscriminators reports whether any identifying field is given.
func (t *Tree) HasDiscriminators() bool {
	return t.Has(sys.TreeFamily) || t.Has(sys.TreeVariant) || t.Has(sys.TreeVersion) || t.Has(sys.TreeArch)
}

// SetOS records the id of the operating system the tree belongs to.
func (t *Tree) SetOS(id string) {
	t.os = id
}

// OS returns the id of the operating system the tree belongs to, if known.
func (t *Tree) OS() (id string, ok bool) {
	return t.os, t.os != ""
}
