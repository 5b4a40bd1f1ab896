package model

import (
	"github.com/dball/osinfo/internal/entity"
	"github.com/dball/osinfo/internal/sys"
)

// Device is a piece of virtual or physical hardware, identified by bus ids.
type Device struct {
	*entity.Entity
}

// NewDevice returns a device with the given id.
func NewDevice(id string) *Device {
	return &Device{Entity: entity.New(id)}
}

// Identifying attributes, with ids in the hexadecimal form of pci.ids and usb.ids.
func (d *Device) Name() string      { return d.String(sys.DeviceName) }
func (d *Device) Vendor() string    { return d.String(sys.DeviceVendor) }
func (d *Device) VendorID() string  { return d.String(sys.DeviceVendorID) }
func (d *Device) Product() string   { return d.String(sys.DeviceProduct) }
func (d *Device) ProductID() string { return d.String(sys.DeviceProductID) }
func (d *Device) BusType() string   { return d.String(sys.DeviceBusType) }
func (d *Device) Class() string     { return d.String(sys.DeviceClass) }
func (d *Device) Subsystem() string { return d.String(sys.DeviceSubsystem) }

// DeviceLink links a product or deployment to a device. Its id is the device id.
type DeviceLink struct {
	*entity.Entity
}

// NewDeviceLink returns a supported link to the device with the given id.
func NewDeviceLink(device string) *DeviceLink {
	return &DeviceLink{Entity: entity.New(device)}
}

// Device returns the id of the linked device.
func (l *DeviceLink) Device() string { return l.ID() }

// Supported reports whether the device works; links are supported unless marked otherwise.
func (l *DeviceLink) Supported() bool { return l.BoolDefault(sys.Supported, true) }

// SetSupported marks the link as supported or not.
func (l *DeviceLink) SetSupported(b bool) { l.SetBool(sys.Supported, b) }

// Driver returns the name of the driver for the device, if given.
func (l *DeviceLink) Driver() string { return l.String(sys.DeviceLinkDriver) }
