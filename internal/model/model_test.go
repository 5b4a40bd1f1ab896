package model

import (
	"testing"

	"github.com/dball/osinfo/internal/sys"
	. "github.com/dball/osinfo/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestProductRelated(t *testing.T) {
	os := NewOS("os/b")
	os.AddRelated(DerivesFrom, "os/a")
	os.AddRelated(Clones, "os/c")
	os.AddRelated(DerivesFrom, "os/d")
	os.AddRelated(DerivesFrom, "os/a")
	os.AddRelated(Upgrades, "os/e")

	assert.Equal(t, []string{"os/a", "os/d"}, os.Related(DerivesFrom))
	assert.Equal(t, []string{"os/c"}, os.Related(Clones))
	assert.Equal(t, []string{"os/a", "os/c", "os/d", "os/e"}, os.Related(AllRelationships))
	assert.Empty(t, os.Related(0))
	assert.Len(t, os.Relationships(), 5)

	assert.Equal(t, "derives-from", DerivesFrom.String())
	assert.Equal(t, "unknown", AllRelationships.String())
}

func TestOS(t *testing.T) {
	os := NewOS("os/1")
	os.Set(sys.ProductShortID, "fedora16")
	os.Add(sys.ProductShortID, "f16")
	assert.Equal(t, "fedora16", os.ShortID())
	assert.Equal(t, []string{"fedora16", "f16"}, os.ShortIDs())
	assert.Equal(t, sys.ReleaseStatusReleased, os.ReleaseStatus())
	os.Set(sys.OSReleaseStatus, "rolling")
	assert.Equal(t, sys.ReleaseStatusRolling, os.ReleaseStatus())

	t.Run("media are bound to the os", func(t *testing.T) {
		m := NewMedia("os/1/media/1", "x86_64")
		os.AddMedia(m)
		id, ok := m.OS()
		assert.True(t, ok)
		assert.Equal(t, "os/1", id)
		assert.Equal(t, 1, os.Media().Len())
	})

	t.Run("resources by category", func(t *testing.T) {
		assert.Equal(t, 0, os.Resources(Minimum).Len())
		r := NewResources("os/1/minimum/x86_64", "x86_64")
		os.AddResources(Minimum, r)
		assert.Equal(t, 1, os.Resources(Minimum).Len())
		assert.Equal(t, 0, os.Resources(Recommended).Len())
	})

	t.Run("install scripts by profile", func(t *testing.T) {
		os.AddInstallScript(NewInstallScript("s/jeos", sys.ProfileJEOS))
		os.AddInstallScript(NewInstallScript("s/desktop", sys.ProfileDesktop))
		s, ok := os.FindInstallScript(sys.ProfileDesktop)
		assert.True(t, ok)
		assert.Equal(t, "s/desktop", s.ID())
		_, ok = os.FindInstallScript("server")
		assert.False(t, ok)
	})
}

func TestResources(t *testing.T) {
	r := NewResources("r", "x86_64")
	assert.Equal(t, Unset, r.RAM())
	assert.Equal(t, Unset, r.CPUs())
	assert.False(t, r.Inherit())
	r.SetRAM(2048)
	r.SetInherit(true)
	clone := r.Clone()
	clone.SetRAM(4096)
	assert.Equal(t, int64(2048), r.RAM())
	assert.Equal(t, int64(4096), clone.RAM())
	assert.True(t, clone.Inherit())
	assert.Panics(t, func() { NewResources("r", "") })
	assert.Equal(t, "network-install", NetworkInstall.String())
}

func TestMedia(t *testing.T) {
	m := NewMedia("m", "x86_64")
	assert.False(t, m.HasDiscriminators())
	assert.True(t, m.Installer())
	assert.False(t, m.Live())
	assert.True(t, m.EjectAfterInstall())
	assert.Equal(t, int64(1), m.InstallerReboots())
	m.Set(sys.MediaVolumeSize, "0")
	assert.False(t, m.HasDiscriminators())
	m.Set(sys.MediaVolumeSize, "100")
	assert.True(t, m.HasDiscriminators())

	m.AddInstallScript(NewInstallScript("s", sys.ProfileJEOS))
	m.Rebind("other")
	assert.Equal(t, "other", m.ID())
	assert.Equal(t, int64(100), m.VolumeSize())
	assert.Equal(t, 1, m.InstallScripts().Len())
}

func TestTree(t *testing.T) {
	tree := NewTree("t", "")
	assert.False(t, tree.HasDiscriminators())
	assert.False(t, tree.HasTreeinfo())
	tree.Set(sys.TreeFamily, "Fedora")
	assert.True(t, tree.HasDiscriminators())
	assert.True(t, tree.HasTreeinfo())
}

func TestDeviceLink(t *testing.T) {
	link := NewDeviceLink("http://pcisig.com/pci/1af4/1000")
	assert.Equal(t, "http://pcisig.com/pci/1af4/1000", link.Device())
	assert.True(t, link.Supported())
	link.SetSupported(false)
	assert.False(t, link.Supported())
}

func TestFirmware(t *testing.T) {
	f := NewFirmware("x86_64", "efi")
	assert.Equal(t, "efi:x86_64", f.ID())
	assert.True(t, f.Supported())
}

func TestDatamap(t *testing.T) {
	m := NewDatamap("map/lang")
	m.Insert("ENU", "en_US")
	m.Insert("ENG", "en_US")
	m.Insert("FRA", "fr_FR")
	out, ok := m.Lookup("ENG")
	assert.True(t, ok)
	assert.Equal(t, "en_US", out)
	in, ok := m.ReverseLookup("en_US")
	assert.True(t, ok)
	assert.Equal(t, "ENU", in)
	_, ok = m.Lookup("DEU")
	assert.False(t, ok)
	assert.Equal(t, []string{"ENU", "ENG", "FRA"}, m.Inputs())
	assert.Equal(t, 3, m.Len())
}

func TestInstallScript(t *testing.T) {
	s := NewInstallScript("s", sys.ProfileJEOS)
	assert.Equal(t, sys.PathFormatUnix, s.PathFormat())
	assert.Equal(t, sys.InstallationSourceMedia, s.InstallationSource())
	_, ok := s.PreferredInjectionMethod()
	assert.False(t, ok)

	s.Set(sys.ScriptPathFormat, "dos")
	s.Add(sys.ScriptInjectionMethod, "floppy")
	s.Add(sys.ScriptInjectionMethod, "cdrom")
	assert.Equal(t, sys.PathFormatDOS, s.PathFormat())
	assert.Equal(t, sys.InjectionFloppy|sys.InjectionCDROM, s.InjectionMethods())
	method, ok := s.PreferredInjectionMethod()
	assert.True(t, ok)
	assert.Equal(t, sys.InjectionFloppy, method)

	s.Add(sys.ScriptInjectionMethod, "carrier-pigeon")
	assert.Panics(t, func() { s.InjectionMethods() })
}
