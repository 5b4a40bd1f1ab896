// Package osinfo contains the public catalog types and functions for osinfo.
package osinfo

import (
	"context"
	"os"
	"path/filepath"

	"github.com/dball/osinfo/internal/catalog"
	"github.com/dball/osinfo/internal/filter"
	"github.com/dball/osinfo/internal/loader"
	"github.com/dball/osinfo/internal/model"
	"github.com/sirupsen/logrus"
)

type (
	Catalog       = catalog.Catalog
	Filter        = filter.Filter
	OS            = model.OS
	Platform      = model.Platform
	Device        = model.Device
	DeviceLink    = model.DeviceLink
	Deployment    = model.Deployment
	Datamap       = model.Datamap
	InstallScript = model.InstallScript
	Media         = model.Media
	Tree          = model.Tree
	Resources     = model.Resources
	Firmware      = model.Firmware
	Variant       = model.Variant
)

// PathEnv names the environment variable holding the catalog source paths, separated by the
// os path list separator.
const PathEnv = "OSINFO_DB_PATH"

type Config struct {
	// Paths are the catalog source directories or files, in priority order.
	Paths  []string
	Logger *logrus.Logger
}

var defaultConfig Config = Config{
	Paths: []string{"/usr/share/osinfo", "/etc/osinfo"},
}

// DefaultPaths returns the paths from the environment, or else the system paths.
func DefaultPaths() []string {
	if env := os.Getenv(PathEnv); env != "" {
		return filepath.SplitList(env)
	}
	return append([]string(nil), defaultConfig.Paths...)
}

// New returns an empty catalog.
func New(config Config) *Catalog {
	return catalog.New(catalog.Config{Logger: config.Logger})
}

// Open returns a catalog loaded from the configured paths. A catalog with data errors is
// returned along with the errors.
func Open(ctx context.Context, config Config) (db *Catalog, err error) {
	paths := config.Paths
	if len(paths) == 0 {
		paths = DefaultPaths()
	}
	db = New(config)
	err = loader.New(loader.Config{Logger: config.Logger}).Load(ctx, db, paths...)
	return
}

// NewFilter returns a filter constraining each key to its value.
func NewFilter(pairs map[string]string) *Filter {
	return filter.Of(pairs)
}
