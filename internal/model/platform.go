package model

import "github.com/dball/osinfo/internal/list"

// Platform is a hypervisor or hardware platform.
type Platform struct {
	Product
	deviceLinks *list.List[*DeviceLink]
}

// NewPlatform returns a platform with the given id.
func NewPlatform(id string) *Platform {
	return &Platform{Product: newProduct(id), deviceLinks: list.New[*DeviceLink]()}
}

// AddDeviceLink adds a device link, replacing any link to the same device.
func (p *Platform) AddDeviceLink(link *DeviceLink) {
	p.deviceLinks.Add(link)
}

// DeviceLinks returns a copy of the platform's own device links.
func (p *Platform) DeviceLinks() *list.List[*DeviceLink] {
	return list.Copy(p.deviceLinks)
}
