package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dball/osinfo/internal/catalog"
	"github.com/dball/osinfo/internal/model"
	"github.com/dball/osinfo/internal/sys"
	. "github.com/dball/osinfo/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fedora = `
install-scripts:
  - id: http://fedoraproject.org/fedora/kickstart/jeos
    profile: jeos
    path-format: unix
    expected-filename: fedora.ks
    injection-methods: [cdrom, initrd]
    can-post-install-drivers: true
datamaps:
  - id: http://x.org/x11-keyboard-layout
    entries:
      - {in: us, out: en_US}
      - {in: fr, out: fr_FR}
devices:
  - id: http://pcisig.com/pci/1af4/1000
    name: virtio-net
    vendor-id: "0x1af4"
    bus-type: pci
    class: net
oses:
  - id: http://fedoraproject.org/fedora/15
    short-id: [fedora15]
    name: Fedora 15
    family: linux
    resources:
      - {category: minimum, arch: x86_64, n-cpus: 1, ram: 1073741824}
  - id: http://fedoraproject.org/fedora/16
    short-id: [fedora16, f16]
    name: Fedora 16
    vendor: Fedora Project
    release-date: 2011-11-08
    family: linux
    distro: fedora
    derives-from: [http://fedoraproject.org/fedora/15]
    media:
      - arch: x86_64
        url: http://example.com/Fedora-16-x86_64-DVD.iso
        volume-id: Fedora 16 x86_64 DVD
        volume-size: 3000
        installer-reboots: 2
        languages: [en]
        install-scripts: [http://fedoraproject.org/fedora/kickstart/jeos]
    trees:
      - arch: x86_64
        url: http://example.com/fedora/16/x86_64/os
        treeinfo: {family: Fedora, version: "16", arch: x86_64}
        kernel: images/pxeboot/vmlinuz
    variants:
      - {id: server, name: Fedora Server}
    devices:
      - id: http://pcisig.com/pci/1af4/1000
        driver: virtio_net
    firmwares:
      - {arch: x86_64, type: efi}
      - {arch: x86_64, type: bios, supported: false}
    resources:
      - {category: minimum, arch: x86_64, storage: 10737418240, inherit: true}
    install-scripts: [http://fedoraproject.org/fedora/kickstart/jeos]
platforms:
  - id: http://qemu.org/qemu-kvm-1.0
    name: KVM 1.0
    devices:
      - {id: http://pcisig.com/pci/1af4/1000}
deployments:
  - id: http://deployment.org/fedora16-kvm
    os: http://fedoraproject.org/fedora/16
    platform: http://qemu.org/qemu-kvm-1.0
`

func write(t *testing.T, root string, name string, text string) {
	path := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
}

func TestLoad(t *testing.T) {
	root := t.TempDir()
	write(t, root, "fedora.yaml", fedora)
	write(t, root, "README", "not a source")
	db := catalog.New(catalog.Config{})
	require.NoError(t, New(Config{}).Load(context.Background(), db, root))

	f16, ok := db.OS("http://fedoraproject.org/fedora/16")
	require.True(t, ok)

	t.Run("product", func(t *testing.T) {
		assert.Equal(t, "Fedora 16", f16.Name())
		assert.Equal(t, []string{"fedora16", "f16"}, f16.ShortIDs())
		assert.Equal(t, "2011-11-08", f16.ReleaseDate())
		assert.Equal(t, "fedora", f16.Distro())
		assert.Equal(t, []string{"http://fedoraproject.org/fedora/15"}, f16.Related(model.DerivesFrom))
		assert.Equal(t, []string{"server"}, f16.Variants().IDs())
	})

	t.Run("media", func(t *testing.T) {
		require.Equal(t, 1, f16.Media().Len())
		m := f16.Media().Nth(0)
		assert.Equal(t, "http://fedoraproject.org/fedora/16/media/0", m.ID())
		assert.Equal(t, "x86_64", m.Architecture())
		assert.Equal(t, int64(3000), m.VolumeSize())
		assert.Equal(t, int64(2), m.InstallerReboots())
		assert.True(t, m.Installer())
		assert.Equal(t, []string{"http://fedoraproject.org/fedora/kickstart/jeos"}, m.InstallScripts().IDs())
		id, _ := m.OS()
		assert.Equal(t, f16.ID(), id)
	})

	t.Run("trees", func(t *testing.T) {
		require.Equal(t, 1, f16.Trees().Len())
		tree := f16.Trees().Nth(0)
		family, _ := tree.TreeinfoFamily()
		assert.Equal(t, "Fedora", family)
		version, _ := tree.TreeinfoVersion()
		assert.Equal(t, "16", version)
		assert.Equal(t, "images/pxeboot/vmlinuz", tree.Kernel())
	})

	t.Run("resources are inherited", func(t *testing.T) {
		l := db.MinimumResources(f16)
		require.Equal(t, 1, l.Len())
		assert.Equal(t, int64(1073741824), l.Nth(0).RAM())
		assert.Equal(t, int64(1), l.Nth(0).CPUs())
		assert.Equal(t, int64(10737418240), l.Nth(0).Storage())
		assert.Equal(t, Unset, l.Nth(0).CPU())
	})

	t.Run("devices and firmwares", func(t *testing.T) {
		links := db.AllDeviceLinks(f16, nil)
		require.Equal(t, 1, links.Len())
		assert.Equal(t, "virtio_net", links.Nth(0).Driver())
		assert.True(t, links.Nth(0).Supported())
		assert.Equal(t, []string{"efi:x86_64"}, db.Firmwares(f16, nil).IDs())
		d, ok := db.Device("http://pcisig.com/pci/1af4/1000")
		require.True(t, ok)
		assert.Equal(t, "0x1af4", d.VendorID())
	})

	t.Run("install scripts", func(t *testing.T) {
		script, ok := f16.FindInstallScript(sys.ProfileJEOS)
		require.True(t, ok)
		assert.Equal(t, sys.InjectionCDROM|sys.InjectionInitrd, script.InjectionMethods())
		assert.True(t, script.CanPostInstallDrivers())
		assert.False(t, script.CanPreInstallDrivers())
	})

	t.Run("deployments and datamaps", func(t *testing.T) {
		d, ok := db.FindDeployment(f16.ID(), "http://qemu.org/qemu-kvm-1.0")
		require.True(t, ok)
		assert.Equal(t, []string{"http://pcisig.com/pci/1af4/1000"}, db.DeploymentDevices(d, nil).IDs())
		m, ok := db.Datamap("http://x.org/x11-keyboard-layout")
		require.True(t, ok)
		out, _ := m.Lookup("fr")
		assert.Equal(t, "fr_FR", out)
	})

	t.Run("identification", func(t *testing.T) {
		obs := model.NewMedia("observed", "x86_64")
		obs.Set(sys.MediaVolumeID, "Fedora 16 x86_64 DVD")
		obs.SetInt(sys.MediaVolumeSize, 3000)
		assert.True(t, db.IdentifyMedia(obs))
		assert.Equal(t, "http://example.com/Fedora-16-x86_64-DVD.iso", obs.URL())
	})
}

func TestOverride(t *testing.T) {
	system := t.TempDir()
	local := t.TempDir()
	write(t, system, "os/fedora.yaml", "oses:\n  - {id: os/fedora, name: System Fedora}\n")
	write(t, system, "os/debian.yaml", "oses:\n  - {id: os/debian, name: Debian}\n")
	write(t, local, "os/fedora.yml", "oses:\n  - {id: os/other, name: Not an override}\n")
	write(t, local, "os/fedora.yaml", "oses:\n  - {id: os/fedora, name: Local Fedora}\n")

	db := catalog.New(catalog.Config{})
	require.NoError(t, New(Config{}).Load(context.Background(), db, system, filepath.Join(local, "missing"), local))
	assert.Equal(t, []string{"os/debian", "os/fedora", "os/other"}, db.OSList().IDs())
	fedora, _ := db.OS("os/fedora")
	assert.Equal(t, "Local Fedora", fedora.Name())
}

func TestDataErrors(t *testing.T) {
	l := New(Config{})

	t.Run("unknown install script", func(t *testing.T) {
		db := catalog.New(catalog.Config{})
		err := l.LoadString(db, "test.yaml", "oses:\n  - {id: os/1, install-scripts: [script/missing]}\n")
		assert.ErrorIs(t, err, NewError("loader.unknownInstallScript"))
		_, ok := db.OS("os/1")
		assert.True(t, ok)
	})

	t.Run("unknown nick", func(t *testing.T) {
		db := catalog.New(catalog.Config{})
		err := l.LoadString(db, "test.yaml", "oses:\n  - {id: os/1, release-status: gone}\n  - {id: os/2}\n")
		assert.ErrorIs(t, err, NewError("loader.unknownNick"))
		assert.Equal(t, []string{"os/2"}, db.OSList().IDs())
	})

	t.Run("resources without architecture", func(t *testing.T) {
		db := catalog.New(catalog.Config{})
		err := l.LoadString(db, "test.yaml", "oses:\n  - id: os/1\n    resources: [{category: minimum, ram: 1}]\n")
		assert.ErrorIs(t, err, NewError("loader.invalidResources"))
		assert.Equal(t, 0, db.OSList().Len())
	})

	t.Run("rejected os drops its references", func(t *testing.T) {
		db := catalog.New(catalog.Config{})
		text := "oses:\n  - id: os/1\n    media: [{install-scripts: [script/missing]}]\n" +
			"    resources: [{category: minimum, ram: 1}]\n"
		err := l.LoadString(db, "test.yaml", text)
		assert.ErrorIs(t, err, NewError("loader.invalidResources"))
		assert.NotErrorIs(t, err, NewError("loader.unknownInstallScript"))
	})

	t.Run("missing id", func(t *testing.T) {
		db := catalog.New(catalog.Config{})
		err := l.LoadString(db, "test.yaml", "devices:\n  - {name: nameless}\n")
		assert.ErrorIs(t, err, NewError("loader.missingID"))
	})

	t.Run("unknown field", func(t *testing.T) {
		db := catalog.New(catalog.Config{})
		err := l.LoadString(db, "test.yaml", "oses:\n  - {id: os/1, colour: blue}\n")
		assert.Error(t, err)
	})

	t.Run("errors are collected across files", func(t *testing.T) {
		root := t.TempDir()
		write(t, root, "a.yaml", "oses:\n  - {id: os/a, release-status: gone}\n")
		write(t, root, "b.yaml", "oses: [not, a, mapping]\n")
		write(t, root, "c.yaml", "oses:\n  - {id: os/c}\n")
		db := catalog.New(catalog.Config{})
		err := l.Load(context.Background(), db, root)
		assert.ErrorIs(t, err, NewError("loader.unknownNick"))
		assert.ErrorContains(t, err, "b.yaml")
		assert.Equal(t, []string{"os/c"}, db.OSList().IDs())
	})
}

func TestMultipleDocuments(t *testing.T) {
	db := catalog.New(catalog.Config{})
	text := "install-scripts:\n  - {id: script/1, profile: desktop}\n---\noses:\n  - {id: os/1, install-scripts: [script/1]}\n"
	require.NoError(t, New(Config{}).LoadString(db, "test.yaml", text))
	o, ok := db.OS("os/1")
	require.True(t, ok)
	assert.Equal(t, []string{"script/1"}, o.InstallScripts().IDs())
}

func TestCancel(t *testing.T) {
	root := t.TempDir()
	write(t, root, "fedora.yaml", fedora)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	db := catalog.New(catalog.Config{})
	err := New(Config{}).Load(ctx, db, root)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, db.OSList().Len())
}
