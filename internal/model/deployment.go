package model

import (
	"github.com/dball/osinfo/internal/entity"
	"github.com/dball/osinfo/internal/list"
	"github.com/dball/osinfo/internal/sys"
)

// Deployment is an operating system running on a platform, with the devices of that pairing.
type Deployment struct {
	*entity.Entity
	deviceLinks *list.List[*DeviceLink]
}

// NewDeployment returns a deployment of the given os on the given platform. Neither id is
// checked against the catalog.
func NewDeployment(id string, os string, platform string) (d *Deployment) {
	d = &Deployment{Entity: entity.New(id), deviceLinks: list.New[*DeviceLink]()}
	d.Set(sys.DeploymentOS, os)
	d.Set(sys.DeploymentPlatform, platform)
	return
}

// OS and Platform are the ids of the deployed operating system and the platform it runs on.
func (d *Deployment) OS() string       { return d.String(sys.DeploymentOS) }
func (d *Deployment) Platform() string { return d.String(sys.DeploymentPlatform) }

// AddDeviceLink adds a device link, replacing any link to the same device.
func (d *Deployment) AddDeviceLink(link *DeviceLink) {
	d.deviceLinks.Add(link)
}

// DeviceLinks returns a copy of the deployment's own device links.
func (d *Deployment) DeviceLinks() *list.List[*DeviceLink] {
	return list.Copy(d.deviceLinks)
}
