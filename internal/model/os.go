package model

import (
	"github.com/dball/osinfo/internal/iterator"
	"github.com/dball/osinfo/internal/list"
	"github.com/dball/osinfo/internal/sys"
)

// OS is an operating system release.
type OS struct {
	Product
	media       *list.List[*Media]
	trees       *list.List[*Tree]
	variants    *list.List[*Variant]
	deviceLinks *list.List[*DeviceLink]
	firmwares   *list.List[*Firmware]
	scripts     *list.List[*InstallScript]
	resources   map[ResourcesCategory]*list.List[*Resources]
}

// NewOS returns an operating system with the given id.
func NewOS(id string) *OS {
	return &OS{
		Product:     newProduct(id),
		media:       list.New[*Media](),
		trees:       list.New[*Tree](),
		variants:    list.New[*Variant](),
		deviceLinks: list.New[*DeviceLink](),
		firmwares:   list.New[*Firmware](),
		scripts:     list.New[*InstallScript](),
		resources:   map[ResourcesCategory]*list.List[*Resources]{},
	}
}

// Family and Distro name the operating system family (linux, winnt) and distribution.
func (os *OS) Family() string { return os.String(sys.OSFamily) }
func (os *OS) Distro() string { return os.String(sys.OSDistro) }

// KernelURLArgument is the kernel command line argument that passes an installation tree url.
func (os *OS) KernelURLArgument() string { return os.String(sys.OSKernelURLArgument) }

// ReleaseStatus returns the release status, released unless declared.
func (os *OS) ReleaseStatus() int {
	return os.EnumDefault(sys.OSReleaseStatus, sys.ReleaseStatuses, sys.ReleaseStatusReleased)
}

// AddMedia adds a reference medium and binds it to the operating system.
func (os *OS) AddMedia(m *Media) {
	m.SetOS(os.ID())
	os.media.Add(m)
}

// Media returns a copy of the reference media.
func (os *OS) Media() *list.List[*Media] {
	return list.Copy(os.media)
}

// AddTree adds a reference tree and binds it to the operating system.
func (os *OS) AddTree(t *Tree) {
	t.SetOS(os.ID())
	os.trees.Add(t)
}

// Trees returns a copy of the reference trees.
func (os *OS) Trees() *list.List[*Tree] {
	return list.Copy(os.trees)
}

// AddVariant adds a variant.
func (os *OS) AddVariant(v *Variant) {
	os.variants.Add(v)
}

// Variants returns a copy of the variants.
func (os *OS) Variants() *list.List[*Variant] {
	return list.Copy(os.variants)
}

// AddDeviceLink adds a device link, replacing any link to the same device.
func (os *OS) AddDeviceLink(link *DeviceLink) {
	os.deviceLinks.Add(link)
}

// DeviceLinks returns a copy of the operating system's own device links.
func (os *OS) DeviceLinks() *list.List[*DeviceLink] {
	return list.Copy(os.deviceLinks)
}

// AddFirmware adds a firmware entry, replacing any entry of the same type and architecture.
func (os *OS) AddFirmware(f *Firmware) {
	os.firmwares.Add(f)
}

// Firmwares returns a copy of the operating system's own firmware entries.
func (os *OS) Firmwares() *list.List[*Firmware] {
	return list.Copy(os.firmwares)
}

// AddInstallScript attaches an install script.
func (os *OS) AddInstallScript(s *InstallScript) {
	os.scripts.Add(s)
}

// InstallScripts returns a copy of the attached install scripts.
func (os *OS) InstallScripts() *list.List[*InstallScript] {
	return list.Copy(os.scripts)
}

// FindInstallScript returns the first attached install script with the given profile.
func (os *OS) FindInstallScript(profile string) (*InstallScript, bool) {
	return iterator.First[*InstallScript](os.scripts, func(s *InstallScript) bool {
		return s.Profile() == profile
	})
}

// AddResources adds a resources record to the given category.
func (os *OS) AddResources(category ResourcesCategory, r *Resources) {
	l, ok := os.resources[category]
	if !ok {
		l = list.New[*Resources]()
		os.resources[category] = l
	}
	l.Add(r)
}

// Resources returns a copy of the operating system's own records in the given category.
func (os *OS) Resources(category ResourcesCategory) *list.List[*Resources] {
	l, ok := os.resources[category]
	if !ok {
		return list.New[*Resources]()
	}
	return list.Copy(l)
}
