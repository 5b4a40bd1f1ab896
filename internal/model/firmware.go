package model

import (
	"github.com/dball/osinfo/internal/entity"
	"github.com/dball/osinfo/internal/sys"
)

// Firmware is a boot firmware type on one architecture. Its id is "type:architecture".
type Firmware struct {
	*entity.Entity
}

// NewFirmware returns a supported firmware entry.
func NewFirmware(arch string, typ string) (f *Firmware) {
	f = &Firmware{Entity: entity.New(typ + ":" + arch)}
	f.Set(sys.Architecture, arch)
	f.Set(sys.FirmwareType, typ)
	return
}

// Architecture is the architecture the entry applies to.
func (f *Firmware) Architecture() string { return f.String(sys.Architecture) }

// Type is the firmware kind, bios or efi.
func (f *Firmware) Type() string { return f.String(sys.FirmwareType) }

// Supported reports whether the firmware boots the operating system; entries are supported
// unless marked otherwise.
func (f *Firmware) Supported() bool { return f.BoolDefault(sys.Supported, true) }

// SetSupported marks the entry as supported or not.
func (f *Firmware) SetSupported(b bool) { f.SetBool(sys.Supported, b) }

// Variant is a flavour of an operating system, e.g. server or workstation.
type Variant struct {
	*entity.Entity
}

// NewVariant returns a variant with the given id and name.
func NewVariant(id string, name string) (v *Variant) {
	v = &Variant{Entity: entity.New(id)}
	if name != "" {
		v.Set(sys.ProductName, name)
	}
	return
}

// Name is the human readable name of the variant.
func (v *Variant) Name() string { return v.String(sys.ProductName) }
