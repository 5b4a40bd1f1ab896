package model

import (
	"github.com/dball/osinfo/internal/entity"
	"github.com/dball/osinfo/internal/sys"
)

// InstallScript describes an unattended installation script. Generating the script itself
// is the business of a template engine outside the catalog.
type InstallScript struct {
	*entity.Entity
}

// NewInstallScript returns a script with the given id and profile.
func NewInstallScript(id string, profile string) (s *InstallScript) {
	s = &InstallScript{Entity: entity.New(id)}
	if profile != "" {
		s.Set(sys.ScriptProfile, profile)
	}
	return
}

// Profile is the kind of installation the script performs, such as desktop or jeos.
func (s *InstallScript) Profile() string { return s.String(sys.ScriptProfile) }

// ProductKeyFormat is the mask a product key must match, if the installer takes one.
func (s *InstallScript) ProductKeyFormat() string { return s.String(sys.ScriptProductKeyFormat) }

// ExpectedFilename is the name the installer looks for the generated script under.
func (s *InstallScript) ExpectedFilename() string { return s.String(sys.ScriptExpectedFilename) }

// TemplateURI and TemplateData are the location or the inline text of the script template.
func (s *InstallScript) TemplateURI() string  { return s.String(sys.ScriptTemplateURI) }
func (s *InstallScript) TemplateData() string { return s.String(sys.ScriptTemplateData) }

// PathFormat is the style of paths the installer expects, unix unless declared.
func (s *InstallScript) PathFormat() int {
	return s.EnumDefault(sys.ScriptPathFormat, sys.PathFormats, sys.PathFormatUnix)
}

// Driver and network capabilities of the installation.
func (s *InstallScript) CanPreInstallDrivers() bool  { return s.Bool(sys.ScriptCanPreInstallDrivers) }
func (s *InstallScript) CanPostInstallDrivers() bool { return s.Bool(sys.ScriptCanPostInstallDrivers) }
func (s *InstallScript) NeedsInternet() bool         { return s.Bool(sys.ScriptNeedsInternet) }

// PreInstallDriversSigning returns the signing requirement for pre-installed drivers, if any.
func (s *InstallScript) PreInstallDriversSigning() string {
	return s.String(sys.ScriptPreInstallDriverSigned)
}

// InjectionMethods returns the mask of the ways the script can be handed to the installer.
// Every value must be a known nick.
func (s *InstallScript) InjectionMethods() (mask int) {
	for _, nick := range s.GetAll(sys.ScriptInjectionMethod) {
		method, ok := sys.InjectionMethods[nick]
		if !ok {
			panic("model.installScript.unknownInjectionMethod: " + nick)
		}
		mask |= method
	}
	return
}

// PreferredInjectionMethod returns the injection method the script prefers. It defaults to
// the first declared injection method.
func (s *InstallScript) PreferredInjectionMethod() (method int, ok bool) {
	if method, ok = s.Enum(sys.ScriptPreferredInjection, sys.InjectionMethods); ok {
		return
	}
	return s.Enum(sys.ScriptInjectionMethod, sys.InjectionMethods)
}

// InstallationSource is where the installer reads packages from, media unless declared.
func (s *InstallScript) InstallationSource() int {
	return s.EnumDefault(sys.ScriptInstallationSource, sys.InstallationSources, sys.InstallationSourceMedia)
}
