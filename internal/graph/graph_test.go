package graph

import (
	"testing"

	"github.com/dball/osinfo/internal/list"
	"github.com/dball/osinfo/internal/model"
	. "github.com/dball/osinfo/internal/types"
	"github.com/stretchr/testify/assert"
)

type oses map[string]*model.OS

func (db oses) resolve(id string) (os *model.OS, ok bool) {
	os, ok = db[id]
	return
}

func (db oses) add(ids ...string) {
	for _, id := range ids {
		db[id] = model.NewOS(id)
	}
}

func ids(products []*model.OS) (ids []string) {
	for _, p := range products {
		ids = append(ids, p.ID())
	}
	return
}

func TestForeachRelated(t *testing.T) {
	db := oses{}
	db.add("a", "b", "c", "d", "e", "f")
	db["a"].AddRelated(model.Clones, "d")
	db["a"].AddRelated(model.DerivesFrom, "b")
	db["a"].AddRelated(model.Upgrades, "c")
	db["a"].AddRelated(model.DerivesFrom, "missing")
	db["b"].AddRelated(model.DerivesFrom, "e")
	db["d"].AddRelated(model.DerivesFrom, "f")

	t.Run("depth first in traversal order", func(t *testing.T) {
		visited := []string{}
		ForeachRelated(db.resolve, db["a"], model.AllRelationships, func(os *model.OS) {
			visited = append(visited, os.ID())
		})
		assert.Equal(t, []string{"a", "b", "e", "c", "d", "f"}, visited)
	})

	t.Run("mask restricts the relationships followed", func(t *testing.T) {
		assert.Equal(t, []string{"b", "e", "d", "f"}, ids(Ancestry(db.resolve, db["a"], InheritanceMask)))
		assert.Equal(t, []string{"c"}, ids(Ancestry(db.resolve, db["a"], model.Upgrades)))
		assert.Empty(t, Ancestry(db.resolve, db["a"], 0))
	})

	t.Run("diamonds are visited twice", func(t *testing.T) {
		db := oses{}
		db.add("top", "left", "right", "bottom")
		db["top"].AddRelated(model.DerivesFrom, "left")
		db["top"].AddRelated(model.DerivesFrom, "right")
		db["left"].AddRelated(model.DerivesFrom, "bottom")
		db["right"].AddRelated(model.DerivesFrom, "bottom")
		assert.Equal(t, []string{"left", "bottom", "right", "bottom"}, ids(Ancestry(db.resolve, db["top"], InheritanceMask)))
	})
}

func TestUniqueRelated(t *testing.T) {
	db := oses{}
	db.add("a", "b", "c", "d")
	db["a"].AddRelated(model.DerivesFrom, "c")
	db["b"].AddRelated(model.DerivesFrom, "c")
	db["b"].AddRelated(model.Clones, "d")
	db["b"].AddRelated(model.DerivesFrom, "missing")

	l := UniqueRelated(db.resolve, list.Of(db["a"], db["b"]), model.DerivesFrom)
	assert.Equal(t, []string{"c"}, l.IDs())
	l = UniqueRelated(db.resolve, list.Of(db["a"], db["b"]), model.AllRelationships)
	assert.Equal(t, []string{"c", "d"}, l.IDs())
}

func resources(arch string, cpus int64, ram int64, inherit bool) (r *model.Resources) {
	r = model.NewResources(arch, arch)
	if cpus != Unset {
		r.SetCPUs(cpus)
	}
	if ram != Unset {
		r.SetRAM(ram)
	}
	r.SetInherit(inherit)
	return
}

func TestResources(t *testing.T) {
	db := oses{}
	db.add("a", "b", "c")
	db["b"].AddRelated(model.DerivesFrom, "a")
	db["b"].AddRelated(model.DerivesFrom, "c")
	db["a"].AddResources(model.Minimum, resources("x86_64", 1, Unset, false))
	db["c"].AddResources(model.Minimum, resources("x86_64", 2, 2048, false))
	db["b"].AddResources(model.Minimum, resources("x86_64", Unset, Unset, true))

	t.Run("first supplier wins per field", func(t *testing.T) {
		l := Resources(db.resolve, db["b"], model.Minimum)
		if assert.Equal(t, 1, l.Len()) {
			r := l.Nth(0)
			assert.Equal(t, int64(1), r.CPUs())
			assert.Equal(t, int64(2048), r.RAM())
			assert.Equal(t, Unset, r.Storage())
		}
	})

	t.Run("the catalog is not changed", func(t *testing.T) {
		own := db["b"].Resources(model.Minimum).Nth(0)
		assert.Equal(t, Unset, own.CPUs())
		assert.Equal(t, Unset, own.RAM())
	})

	t.Run("records without inherit are returned as they are", func(t *testing.T) {
		db["b"].AddResources(model.Recommended, resources("x86_64", Unset, 512, false))
		db["a"].AddResources(model.Recommended, resources("x86_64", 4, 4096, false))
		r := Resources(db.resolve, db["b"], model.Recommended).Nth(0)
		assert.Equal(t, Unset, r.CPUs())
		assert.Equal(t, int64(512), r.RAM())
	})

	t.Run("architectures must match", func(t *testing.T) {
		db["b"].AddResources(model.Maximum, resources("aarch64", Unset, Unset, true))
		db["a"].AddResources(model.Maximum, resources("x86_64", 4, 4096, false))
		r := Resources(db.resolve, db["b"], model.Maximum).Nth(0)
		assert.Equal(t, Unset, r.CPUs())
	})

	t.Run("no records", func(t *testing.T) {
		assert.Equal(t, 0, Resources(db.resolve, db["b"], model.NetworkInstall).Len())
	})
}

func link(device string, supported bool) (l *model.DeviceLink) {
	l = model.NewDeviceLink(device)
	l.SetSupported(supported)
	return
}

func TestDeviceLinks(t *testing.T) {
	db := oses{}
	db.add("a", "b", "c")
	db["b"].AddRelated(model.DerivesFrom, "a")
	db["b"].AddRelated(model.Clones, "c")
	db["a"].AddDeviceLink(link("dev/1", true))
	db["a"].AddDeviceLink(link("dev/2", true))
	db["a"].AddDeviceLink(link("dev/3", true))
	db["b"].AddDeviceLink(link("dev/4", true))
	db["b"].AddDeviceLink(link("dev/2", false))
	db["c"].AddDeviceLink(link("dev/5", true))

	l := DeviceLinks(db.resolve, db["b"], nil)
	assert.Equal(t, []string{"dev/4", "dev/1", "dev/3", "dev/5"}, l.IDs())

	t.Run("keep", func(t *testing.T) {
		l := DeviceLinks(db.resolve, db["b"], func(l *model.DeviceLink) bool {
			return l.Device() != "dev/1"
		})
		assert.Equal(t, []string{"dev/4", "dev/3", "dev/5"}, l.IDs())
	})

	t.Run("an ancestor can withdraw support", func(t *testing.T) {
		db["c"].AddDeviceLink(link("dev/4", false))
		l := DeviceLinks(db.resolve, db["b"], nil)
		assert.Equal(t, []string{"dev/1", "dev/3", "dev/5"}, l.IDs())
	})
}

func TestFirmwares(t *testing.T) {
	db := oses{}
	db.add("a", "b")
	db["b"].AddRelated(model.DerivesFrom, "a")
	db["a"].AddFirmware(model.NewFirmware("x86_64", "bios"))
	db["a"].AddFirmware(model.NewFirmware("x86_64", "efi"))
	efi := model.NewFirmware("x86_64", "efi")
	efi.SetSupported(false)
	db["b"].AddFirmware(efi)

	l := Firmwares(db.resolve, db["b"], nil)
	assert.Equal(t, []string{"bios:x86_64"}, l.IDs())
	assert.Equal(t, []string{"bios:x86_64", "efi:x86_64"}, Firmwares(db.resolve, db["a"], nil).IDs())
}
