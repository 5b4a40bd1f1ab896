package model

import (
	"github.com/dball/osinfo/internal/entity"
	"github.com/dball/osinfo/internal/list"
	"github.com/dball/osinfo/internal/sys"
	. "github.com/dball/osinfo/internal/types"
)

// Media is an installation medium. Catalog media are reference records whose textual
// identifiers are patterns; observed media carry literal values read from a disc.
type Media struct {
	*entity.Entity
	scripts *list.List[*InstallScript]
	os      string
}

// NewMedia returns a medium with the given id and architecture.
func NewMedia(id string, arch string) (m *Media) {
	m = &Media{Entity: entity.New(id), scripts: list.New[*InstallScript]()}
	if arch != "" {
		m.Set(sys.Architecture, arch)
	}
	return
}

// Rebind replaces the medium's id, keeping its attributes.
func (m *Media) Rebind(id string) {
	m.Entity = m.Entity.WithID(id)
}

// Plain attributes of the medium. Identification copies them from the catalog medium.
func (m *Media) Architecture() string { return m.String(sys.Architecture) }
func (m *Media) URL() string          { return m.String(sys.URL) }
func (m *Media) Kernel() string       { return m.String(sys.Kernel) }
func (m *Media) Initrd() string       { return m.String(sys.Initrd) }
func (m *Media) Variants() []string   { return m.GetAll(sys.Variant) }

// Languages are the language tags of the medium, including one detected on identification.
func (m *Media) Languages() []string { return m.GetAll(sys.MediaLanguage) }

// Fields of the iso9660 primary volume descriptor. On catalog media they are patterns.
func (m *Media) VolumeID() (string, bool)      { return m.Get(sys.MediaVolumeID) }
func (m *Media) SystemID() (string, bool)      { return m.Get(sys.MediaSystemID) }
func (m *Media) PublisherID() (string, bool)   { return m.Get(sys.MediaPublisherID) }
func (m *Media) ApplicationID() (string, bool) { return m.Get(sys.MediaApplicationID) }

// VolumeSize is the size of the iso9660 volume in bytes.
func (m *Media) VolumeSize() int64 { return m.Int(sys.MediaVolumeSize, Unset) }

// Live reports whether the medium boots a live system.
func (m *Media) Live() bool { return m.BoolDefault(sys.MediaLive, false) }

// Installer reports whether the medium can install an operating system.
func (m *Media) Installer() bool { return m.BoolDefault(sys.MediaInstaller, true) }

// InstallerReboots is the number of reboots the installer performs.
func (m *Media) InstallerReboots() int64 { return m.Int(sys.MediaInstallerReboots, 1) }

// EjectAfterInstall reports whether the medium must be ejected once installed.
func (m *Media) EjectAfterInstall() bool { return m.BoolDefault(sys.MediaEjectAfterInstall, true) }

// InstallerScript reports whether the medium supports unattended installation.
func (m *Media) InstallerScript() bool { return m.BoolDefault(sys.MediaInstallerScript, true) }

// LanguageRegex is the pattern whose first group extracts a language tag from the volume id.
func (m *Media) LanguageRegex() (string, bool) { return m.Get(sys.MediaLanguageRegex) }

// LanguageMap is the id of the datamap translating extracted language tags.
func (m *Media) LanguageMap() (string, bool) { return m.Get(sys.MediaLanguageMap) }

// HasDiscriminators reports whether any identifying field is given.
func (m *Media) HasDiscriminators() bool {
	return m.Has(sys.MediaVolumeID) || m.Has(sys.MediaSystemID) || m.Has(sys.MediaPublisherID) ||
		m.Has(sys.MediaApplicationID) || m.VolumeSize() > 0
}

// AddInstallScript attaches an install script to the medium.
func (m *Media) AddInstallScript(script *InstallScript) {
	m.scripts.Add(script)
}

// InstallScripts returns a copy of the attached install scripts.
func (m *Media) InstallScripts() *list.List[*InstallScript] {
	return list.Copy(m.scripts)
}

// SetOS records the id of the operating system the medium belongs to.
func (m *Media) SetOS(id string) {
	m.os = id
}

// OS returns the id of the operating system the medium belongs to, if known.
func (m *Media) OS() (id string, ok bool) {
	return m.os, m.os != ""
}
