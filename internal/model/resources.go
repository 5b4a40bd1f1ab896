package model

import (
	"github.com/dball/osinfo/internal/entity"
	"github.com/dball/osinfo/internal/sys"
	. "github.com/dball/osinfo/internal/types"
)

// ResourcesCategory names one of the resource requirement lists of an operating system.
type ResourcesCategory int

const (
	Minimum ResourcesCategory = iota
	Recommended
	Maximum
	NetworkInstall
)

// ResourcesCategories is the nick table for resource categories.
var ResourcesCategories = entity.Nicks{
	"minimum":         int(Minimum),
	"recommended":     int(Recommended),
	"maximum":         int(Maximum),
	"network-install": int(NetworkInstall),
}

func (c ResourcesCategory) String() string {
	nick, ok := ResourcesCategories.Nick(int(c))
	if !ok {
		return "unknown"
	}
	return nick
}

// Resources is a hardware requirement record for one architecture. Numeric fields that are
// not given read as Unset.
type Resources struct {
	*entity.Entity
}

// NewResources returns a record with the given id for the given architecture.
func NewResources(id string, arch string) (r *Resources) {
	if arch == "" {
		panic("model.resources.emptyArchitecture")
	}
	r = &Resources{Entity: entity.New(id)}
	r.Set(sys.Architecture, arch)
	return
}

// Clone returns an independent copy of the record.
func (r *Resources) Clone() *Resources {
	return &Resources{Entity: r.Entity.Clone()}
}

// Architecture is the architecture the record applies to.
func (r *Resources) Architecture() string { return r.String(sys.Architecture) }

// CPUs is the number of cpus.
func (r *Resources) CPUs() int64 { return r.Int(sys.ResourcesCPUs, Unset) }

// CPU is the cpu frequency in hertz.
func (r *Resources) CPU() int64 { return r.Int(sys.ResourcesCPU, Unset) }

// RAM is the memory size in bytes.
func (r *Resources) RAM() int64 { return r.Int(sys.ResourcesRAM, Unset) }

// Storage is the storage size in bytes.
func (r *Resources) Storage() int64 { return r.Int(sys.ResourcesStorage, Unset) }

// Inherit reports whether unset fields are filled in from related products.
func (r *Resources) Inherit() bool { return r.Bool(sys.ResourcesInherit) }

// Setters for the numeric fields and the inherit flag.
func (r *Resources) SetCPUs(n int64)    { r.SetInt(sys.ResourcesCPUs, n) }
func (r *Resources) SetCPU(hz int64)    { r.SetInt(sys.ResourcesCPU, hz) }
func (r *Resources) SetRAM(n int64)     { r.SetInt(sys.ResourcesRAM, n) }
func (r *Resources) SetStorage(n int64) { r.SetInt(sys.ResourcesStorage, n) }
func (r *Resources) SetInherit(b bool)  { r.SetBool(sys.ResourcesInherit, b) }

// ResourcesFields lists the numeric fields of a resources record, in a fixed order.
var ResourcesFields = []string{sys.ResourcesCPUs, sys.ResourcesCPU, sys.ResourcesRAM, sys.ResourcesStorage}
