// Package catalog contains the in-memory osinfo database.
package catalog

import (
	"github.com/dball/osinfo/internal/list"
	"github.com/dball/osinfo/internal/match"
	"github.com/dball/osinfo/internal/model"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Logger *logrus.Logger
}

// Catalog holds every device, platform, operating system, deployment, datamap and install
// script known to the database. Entities refer to each other by id.
//
// A catalog is not safe for concurrent mutation.
type Catalog struct {
	log     *logrus.Logger
	matcher *match.Matcher

	devices     *list.List[*model.Device]
	platforms   *list.List[*model.Platform]
	oses        *list.List[*model.OS]
	deployments *list.List[*model.Deployment]
	datamaps    *list.List[*model.Datamap]
	scripts     *list.List[*model.InstallScript]
}

func New(config Config) *Catalog {
	if config.Logger == nil {
		config.Logger = logrus.New()
	}
	return &Catalog{
		log:         config.Logger,
		matcher:     match.New(match.Config{Logger: config.Logger}),
		devices:     list.New[*model.Device](),
		platforms:   list.New[*model.Platform](),
		oses:        list.New[*model.OS](),
		deployments: list.New[*model.Deployment](),
		datamaps:    list.New[*model.Datamap](),
		scripts:     list.New[*model.InstallScript](),
	}
}

func add[T list.Identified](c *Catalog, l *list.List[T], kind string, element T) {
	if l.Add(element) {
		c.log.WithFields(logrus.Fields{
			"kind": kind,
			"id":   element.ID(),
		}).Debug("replaced")
	}
}

// AddDevice adds a device, replacing any device with the same id.
func (c *Catalog) AddDevice(d *model.Device) { add(c, c.devices, "device", d) }

// AddPlatform adds a platform, replacing any platform with the same id.
func (c *Catalog) AddPlatform(p *model.Platform) { add(c, c.platforms, "platform", p) }

// AddOS adds an operating system, replacing any operating system with the same id.
func (c *Catalog) AddOS(os *model.OS) { add(c, c.oses, "os", os) }

// AddDeployment adds a deployment, replacing any deployment with the same id. The deployment's
// os and platform need not be known.
func (c *Catalog) AddDeployment(d *model.Deployment) { add(c, c.deployments, "deployment", d) }

// AddDatamap adds a datamap, replacing any datamap with the same id.
func (c *Catalog) AddDatamap(m *model.Datamap) { add(c, c.datamaps, "datamap", m) }

// AddInstallScript adds an install script, replacing any install script with the same id.
func (c *Catalog) AddInstallScript(s *model.InstallScript) {
	add(c, c.scripts, "install-script", s)
}

// Lookups by id.
func (c *Catalog) Device(id string) (*model.Device, bool)     { return c.devices.Find(id) }
func (c *Catalog) Platform(id string) (*model.Platform, bool) { return c.platforms.Find(id) }
func (c *Catalog) OS(id string) (*model.OS, bool)             { return c.oses.Find(id) }
func (c *Catalog) Deployment(id string) (*model.Deployment, bool) {
	return c.deployments.Find(id)
}
func (c *Catalog) Datamap(id string) (*model.Datamap, bool) { return c.datamaps.Find(id) }
func (c *Catalog) InstallScript(id string) (*model.InstallScript, bool) {
	return c.scripts.Find(id)
}

// DeviceList returns a copy of the devices, in insertion order.
func (c *Catalog) DeviceList() *list.List[*model.Device] { return list.Copy(c.devices) }

// PlatformList returns a copy of the platforms, in insertion order.
func (c *Catalog) PlatformList() *list.List[*model.Platform] { return list.Copy(c.platforms) }

// OSList returns a copy of the operating systems, in insertion order.
func (c *Catalog) OSList() *list.List[*model.OS] { return list.Copy(c.oses) }

// DeploymentList returns a copy of the deployments, in insertion order.
func (c *Catalog) DeploymentList() *list.List[*model.Deployment] {
	return list.Copy(c.deployments)
}

// DatamapList returns a copy of the datamaps, in insertion order.
func (c *Catalog) DatamapList() *list.List[*model.Datamap] { return list.Copy(c.datamaps) }

// InstallScriptList returns a copy of the install scripts, in insertion order.
func (c *Catalog) InstallScriptList() *list.List[*model.InstallScript] {
	return list.Copy(c.scripts)
}
