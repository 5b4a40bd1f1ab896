package catalog

import (
	"github.com/dball/osinfo/internal/filter"
	"github.com/dball/osinfo/internal/graph"
	"github.com/dball/osinfo/internal/list"
	"github.com/dball/osinfo/internal/model"
)

// ForeachRelatedOS visits os and every operating system reachable from it over the
// relationships in mask, depth first.
func (c *Catalog) ForeachRelatedOS(os *model.OS, mask model.RelationshipKind, visit func(*model.OS)) {
	graph.ForeachRelated(c.oses.Find, os, mask, visit)
}

// ForeachRelatedPlatform is ForeachRelatedOS for platforms.
func (c *Catalog) ForeachRelatedPlatform(p *model.Platform, mask model.RelationshipKind, visit func(*model.Platform)) {
	graph.ForeachRelated(c.platforms.Find, p, mask, visit)
}

// Resources returns the operating system's resources in the category, with inheritable
// fields filled in from the operating systems it derives from or clones.
func (c *Catalog) Resources(os *model.OS, category model.ResourcesCategory) *list.List[*model.Resources] {
	return graph.Resources(c.oses.Find, os, category)
}

func (c *Catalog) MinimumResources(os *model.OS) *list.List[*model.Resources] {
	return c.Resources(os, model.Minimum)
}

func (c *Catalog) RecommendedResources(os *model.OS) *list.List[*model.Resources] {
	return c.Resources(os, model.Recommended)
}

func (c *Catalog) MaximumResources(os *model.OS) *list.List[*model.Resources] {
	return c.Resources(os, model.Maximum)
}

func (c *Catalog) NetworkInstallResources(os *model.OS) *list.List[*model.Resources] {
	return c.Resources(os, model.NetworkInstall)
}

// keepDevice returns a predicate accepting links whose device matches f. A link to an
// unknown device is judged as a device with no attributes.
func (c *Catalog) keepDevice(f *filter.Filter) func(*model.DeviceLink) bool {
	if f == nil {
		return nil
	}
	return func(link *model.DeviceLink) bool {
		d, ok := c.devices.Find(link.Device())
		if !ok {
			d = model.NewDevice(link.Device())
		}
		return f.Matches(d)
	}
}

// devicesOf returns the known devices of the links, in link order.
func (c *Catalog) devicesOf(links *list.List[*model.DeviceLink]) (devices *list.List[*model.Device]) {
	devices = list.New[*model.Device]()
	links.Each(func(link *model.DeviceLink) bool {
		if d, ok := c.devices.Find(link.Device()); ok {
			devices.Add(d)
		}
		return true
	})
	return
}

// AllDeviceLinks returns the supported device links of the operating system, including those
// inherited from the operating systems it derives from or clones, whose devices match f.
func (c *Catalog) AllDeviceLinks(os *model.OS, f *filter.Filter) *list.List[*model.DeviceLink] {
	return graph.DeviceLinks(c.oses.Find, os, c.keepDevice(f))
}

// AllDevices returns the known devices of AllDeviceLinks.
func (c *Catalog) AllDevices(os *model.OS, f *filter.Filter) *list.List[*model.Device] {
	return c.devicesOf(c.AllDeviceLinks(os, f))
}

// PlatformDeviceLinks is AllDeviceLinks for platforms.
func (c *Catalog) PlatformDeviceLinks(p *model.Platform, f *filter.Filter) *list.List[*model.DeviceLink] {
	return graph.DeviceLinks(c.platforms.Find, p, c.keepDevice(f))
}

// PlatformDevices returns the known devices of PlatformDeviceLinks.
func (c *Catalog) PlatformDevices(p *model.Platform, f *filter.Filter) *list.List[*model.Device] {
	return c.devicesOf(c.PlatformDeviceLinks(p, f))
}

// Firmwares returns the supported firmwares of the operating system, including those inherited
// from the operating systems it derives from or clones, that match f.
func (c *Catalog) Firmwares(os *model.OS, f *filter.Filter) *list.List[*model.Firmware] {
	var keep func(*model.Firmware) bool
	if f != nil {
		keep = func(fw *model.Firmware) bool { return f.Matches(fw) }
	}
	return graph.Firmwares(c.oses.Find, os, keep)
}

// DeploymentDeviceLinks returns the deployment's own supported device links, followed by
// those of its platform and then its operating system. Devices the deployment marks
// unsupported are left out.
func (c *Catalog) DeploymentDeviceLinks(d *model.Deployment, f *filter.Filter) (links *list.List[*model.DeviceLink]) {
	own := d.DeviceLinks()
	supported := list.Filtered(own, (*model.DeviceLink).Supported)
	unsupported := list.Filtered(own, func(link *model.DeviceLink) bool { return !link.Supported() })
	if keep := c.keepDevice(f); keep != nil {
		supported = list.Filtered(supported, keep)
	}
	links = supported
	if p, ok := c.platforms.Find(d.Platform()); ok {
		links = list.Union(links, c.PlatformDeviceLinks(p, f))
	}
	if os, ok := c.oses.Find(d.OS()); ok {
		links = list.Union(links, c.AllDeviceLinks(os, f))
	}
	links = list.Subtract(links, unsupported)
	return
}

// DeploymentDevices returns the known devices of DeploymentDeviceLinks.
func (c *Catalog) DeploymentDevices(d *model.Deployment, f *filter.Filter) *list.List[*model.Device] {
	return c.devicesOf(c.DeploymentDeviceLinks(d, f))
}
