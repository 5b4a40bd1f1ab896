// Package sys defines the fixed attribute keys and nick tables of the catalog vocabulary.
package sys

import "github.com/dball/osinfo/internal/entity"

// Product attributes.
const (
	ProductName        = "name"
	ProductShortID     = "short-id"
	ProductVendor      = "vendor"
	ProductVersion     = "version"
	ProductCodename    = "codename"
	ProductReleaseDate = "release-date"
	ProductEOLDate     = "eol-date"
	ProductLogo        = "logo"
)

// Operating system attributes.
const (
	OSFamily            = "family"
	OSDistro            = "distro"
	OSReleaseStatus     = "release-status"
	OSKernelURLArgument = "kernel-url-argument"
)

// Release statuses.
const (
	ReleaseStatusReleased = iota
	ReleaseStatusSnapshot
	ReleaseStatusPrerelease
	ReleaseStatusRolling
)

// ReleaseStatuses is the nick table for OSReleaseStatus.
var ReleaseStatuses = entity.Nicks{
	"released":   ReleaseStatusReleased,
	"snapshot":   ReleaseStatusSnapshot,
	"prerelease": ReleaseStatusPrerelease,
	"rolling":    ReleaseStatusRolling,
}

// Attributes shared by media, trees, resources and firmware.
const (
	Architecture = "architecture"
	URL          = "url"
	Kernel       = "kernel"
	Initrd       = "initrd"
	Variant      = "variant"
)

// ArchitectureAll marks a record that applies to every architecture.
const ArchitectureAll = "all"

// Media attributes.
const (
	MediaVolumeID          = "volume-id"
	MediaSystemID          = "system-id"
	MediaPublisherID       = "publisher-id"
	MediaApplicationID     = "application-id"
	MediaVolumeSize        = "volume-size"
	MediaLive              = "live"
	MediaInstaller         = "installer"
	MediaInstallerReboots  = "installer-reboots"
	MediaEjectAfterInstall = "eject-after-install"
	MediaInstallerScript   = "installer-script"
	MediaLanguage          = "l10n-language"
	MediaLanguageRegex     = "l10n-language-regex"
	MediaLanguageMap       = "l10n-language-map"
)

// Tree attributes.
const (
	TreeFamily      = "treeinfo-family"
	TreeVariant     = "treeinfo-variant"
	TreeVersion     = "treeinfo-version"
	TreeArch        = "treeinfo-arch"
	TreeBootISO     = "boot-iso"
	TreeHasTreeinfo = "has-treeinfo"
)

// Resources attributes.
const (
	ResourcesCPUs    = "n-cpus"
	ResourcesCPU     = "cpu"
	ResourcesRAM     = "ram"
	ResourcesStorage = "storage"
	ResourcesInherit = "inherit"
)

// Device attributes.
const (
	DeviceVendor     = "vendor"
	DeviceVendorID   = "vendor-id"
	DeviceProduct    = "product"
	DeviceProductID  = "product-id"
	DeviceBusType    = "bus-type"
	DeviceClass      = "class"
	DeviceSubsystem  = "subsystem"
	DeviceName       = "name"
	DeviceLinkDriver = "driver"
	Supported        = "supported"
)

// Deployment attributes.
const (
	DeploymentOS       = "os"
	DeploymentPlatform = "platform"
)

// Firmware attributes.
const (
	FirmwareType = "type"
)

// Install script attributes.
const (
	ScriptProfile                = "profile"
	ScriptProductKeyFormat       = "product-key-format"
	ScriptPathFormat             = "path-format"
	ScriptExpectedFilename       = "expected-filename"
	ScriptCanPreInstallDrivers   = "can-pre-install-drivers"
	ScriptCanPostInstallDrivers  = "can-post-install-drivers"
	ScriptPreInstallDriverSigned = "pre-install-drivers-signing-req"
	ScriptInjectionMethod        = "injection-method"
	ScriptPreferredInjection     = "preferred-injection-method"
	ScriptInstallationSource     = "installation-source"
	ScriptNeedsInternet          = "needs-internet"
	ScriptTemplateURI            = "template-uri"
	ScriptTemplateData           = "template-data"
)

// Install script profiles.
const (
	ProfileJEOS    = "jeos"
	ProfileDesktop = "desktop"
)

// Path formats.
const (
	PathFormatUnix = iota
	PathFormatDOS
)

// PathFormats is the nick table for ScriptPathFormat.
var PathFormats = entity.Nicks{
	"unix": PathFormatUnix,
	"dos":  PathFormatDOS,
}

// Injection methods, as a bit mask.
const (
	InjectionCDROM = 1 << iota
	InjectionDisk
	InjectionFloppy
	InjectionInitrd
	InjectionWeb
)

// InjectionMethods is the nick table for ScriptInjectionMethod.
var InjectionMethods = entity.Nicks{
	"cdrom":  InjectionCDROM,
	"disk":   InjectionDisk,
	"floppy": InjectionFloppy,
	"initrd": InjectionInitrd,
	"web":    InjectionWeb,
}

// Installation sources.
const (
	InstallationSourceMedia = iota
	InstallationSourceNetwork
)

// InstallationSources is the nick table for ScriptInstallationSource.
var InstallationSources = entity.Nicks{
	"media":   InstallationSourceMedia,
	"network": InstallationSourceNetwork,
}
