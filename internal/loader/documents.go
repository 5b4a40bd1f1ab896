package loader

import "time"

// document is the top level of a catalog source file.
type document struct {
	InstallScripts []scriptDoc     `yaml:"install-scripts"`
	Devices        []deviceDoc     `yaml:"devices"`
	Datamaps       []datamapDoc    `yaml:"datamaps"`
	Platforms      []platformDoc   `yaml:"platforms"`
	OSes           []osDoc         `yaml:"oses"`
	Deployments    []deploymentDoc `yaml:"deployments"`
}

type productDoc struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name" attr:"name,ignoreempty"`
	ShortIDs    []string  `yaml:"short-id" attr:"short-id,ignoreempty"`
	Vendor      string    `yaml:"vendor" attr:"vendor,ignoreempty"`
	Version     string    `yaml:"version" attr:"version,ignoreempty"`
	Codename    string    `yaml:"codename" attr:"codename,ignoreempty"`
	ReleaseDate time.Time `yaml:"release-date" attr:"release-date,ignoreempty"`
	EOLDate     time.Time `yaml:"eol-date" attr:"eol-date,ignoreempty"`
	Logo        string    `yaml:"logo" attr:"logo,ignoreempty"`
	DerivesFrom []string  `yaml:"derives-from"`
	Clones      []string  `yaml:"clones"`
	Upgrades    []string  `yaml:"upgrades"`
}

type deviceDoc struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name" attr:"name,ignoreempty"`
	Vendor    string `yaml:"vendor" attr:"vendor,ignoreempty"`
	VendorID  string `yaml:"vendor-id" attr:"vendor-id,ignoreempty"`
	Product   string `yaml:"product" attr:"product,ignoreempty"`
	ProductID string `yaml:"product-id" attr:"product-id,ignoreempty"`
	BusType   string `yaml:"bus-type" attr:"bus-type,ignoreempty"`
	Class     string `yaml:"class" attr:"class,ignoreempty"`
	Subsystem string `yaml:"subsystem" attr:"subsystem,ignoreempty"`
}

type deviceLinkDoc struct {
	ID        string `yaml:"id"`
	Supported *bool  `yaml:"supported" attr:"supported"`
	Driver    string `yaml:"driver" attr:"driver,ignoreempty"`
}

type platformDoc struct {
	productDoc `yaml:",inline"`
	Devices    []deviceLinkDoc `yaml:"devices"`
}

type mediaDoc struct {
	ID                string   `yaml:"id"`
	Arch              string   `yaml:"arch"`
	URL               string   `yaml:"url" attr:"url,ignoreempty"`
	VolumeID          string   `yaml:"volume-id" attr:"volume-id,ignoreempty"`
	SystemID          string   `yaml:"system-id" attr:"system-id,ignoreempty"`
	PublisherID       string   `yaml:"publisher-id" attr:"publisher-id,ignoreempty"`
	ApplicationID     string   `yaml:"application-id" attr:"application-id,ignoreempty"`
	VolumeSize        int64    `yaml:"volume-size" attr:"volume-size,ignoreempty"`
	Kernel            string   `yaml:"kernel" attr:"kernel,ignoreempty"`
	Initrd            string   `yaml:"initrd" attr:"initrd,ignoreempty"`
	Live              *bool    `yaml:"live" attr:"live"`
	Installer         *bool    `yaml:"installer" attr:"installer"`
	InstallerReboots  *int64   `yaml:"installer-reboots" attr:"installer-reboots"`
	EjectAfterInstall *bool    `yaml:"eject-after-install" attr:"eject-after-install"`
	InstallerScript   *bool    `yaml:"installer-script" attr:"installer-script"`
	Variants          []string `yaml:"variants" attr:"variant,ignoreempty"`
	Languages         []string `yaml:"languages" attr:"l10n-language,ignoreempty"`
	LanguageRegex     string   `yaml:"l10n-language-regex" attr:"l10n-language-regex,ignoreempty"`
	LanguageMap       string   `yaml:"l10n-language-map" attr:"l10n-language-map,ignoreempty"`
	InstallScripts    []string `yaml:"install-scripts"`
}

type treeinfoDoc struct {
	Family  string `yaml:"family" attr:"treeinfo-family,ignoreempty"`
	Variant string `yaml:"variant" attr:"treeinfo-variant,ignoreempty"`
	Version string `yaml:"version" attr:"treeinfo-version,ignoreempty"`
	Arch    string `yaml:"arch" attr:"treeinfo-arch,ignoreempty"`
}

type treeDoc struct {
	ID          string      `yaml:"id"`
	Arch        string      `yaml:"arch"`
	URL         string      `yaml:"url" attr:"url,ignoreempty"`
	Treeinfo    treeinfoDoc `yaml:"treeinfo"`
	Kernel      string      `yaml:"kernel" attr:"kernel,ignoreempty"`
	Initrd      string      `yaml:"initrd" attr:"initrd,ignoreempty"`
	BootISO     string      `yaml:"boot-iso" attr:"boot-iso,ignoreempty"`
	HasTreeinfo *bool       `yaml:"has-treeinfo" attr:"has-treeinfo"`
	Variants    []string    `yaml:"variants" attr:"variant,ignoreempty"`
}

type variantDoc struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type firmwareDoc struct {
	Arch      string `yaml:"arch"`
	Type      string `yaml:"type"`
	Supported *bool  `yaml:"supported" attr:"supported"`
}

type resourcesDoc struct {
	Category string `yaml:"category"`
	Arch     string `yaml:"arch"`
	CPUs     *int64 `yaml:"n-cpus" attr:"n-cpus"`
	CPU      *int64 `yaml:"cpu" attr:"cpu"`
	RAM      *int64 `yaml:"ram" attr:"ram"`
	Storage  *int64 `yaml:"storage" attr:"storage"`
	Inherit  bool   `yaml:"inherit" attr:"inherit,ignoreempty"`
}

type osDoc struct {
	productDoc        `yaml:",inline"`
	Family            string          `yaml:"family" attr:"family,ignoreempty"`
	Distro            string          `yaml:"distro" attr:"distro,ignoreempty"`
	ReleaseStatus     string          `yaml:"release-status" attr:"release-status,ignoreempty"`
	KernelURLArgument string          `yaml:"kernel-url-argument" attr:"kernel-url-argument,ignoreempty"`
	Media             []mediaDoc      `yaml:"media"`
	Trees             []treeDoc       `yaml:"trees"`
	Variants          []variantDoc    `yaml:"variants"`
	Devices           []deviceLinkDoc `yaml:"devices"`
	Firmwares         []firmwareDoc   `yaml:"firmwares"`
	Resources         []resourcesDoc  `yaml:"resources"`
	InstallScripts    []string        `yaml:"install-scripts"`
}

type deploymentDoc struct {
	ID       string          `yaml:"id"`
	OS       string          `yaml:"os"`
	Platform string          `yaml:"platform"`
	Devices  []deviceLinkDoc `yaml:"devices"`
}

type datamapEntryDoc struct {
	In  string `yaml:"in"`
	Out string `yaml:"out"`
}

type datamapDoc struct {
	ID      string            `yaml:"id"`
	Entries []datamapEntryDoc `yaml:"entries"`
}

type scriptDoc struct {
	ID                       string   `yaml:"id"`
	Profile                  string   `yaml:"profile" attr:"profile,ignoreempty"`
	ProductKeyFormat         string   `yaml:"product-key-format" attr:"product-key-format,ignoreempty"`
	PathFormat               string   `yaml:"path-format" attr:"path-format,ignoreempty"`
	ExpectedFilename         string   `yaml:"expected-filename" attr:"expected-filename,ignoreempty"`
	CanPreInstallDrivers     bool     `yaml:"can-pre-install-drivers" attr:"can-pre-install-drivers,ignoreempty"`
	CanPostInstallDrivers    bool     `yaml:"can-post-install-drivers" attr:"can-post-install-drivers,ignoreempty"`
	PreInstallDriversSigning string   `yaml:"pre-install-drivers-signing-req" attr:"pre-install-drivers-signing-req,ignoreempty"`
	InjectionMethods         []string `yaml:"injection-methods" attr:"injection-method,ignoreempty"`
	PreferredInjection       string   `yaml:"preferred-injection-method" attr:"preferred-injection-method,ignoreempty"`
	InstallationSource       string   `yaml:"installation-source" attr:"installation-source,ignoreempty"`
	NeedsInternet            bool     `yaml:"needs-internet" attr:"needs-internet,ignoreempty"`
	TemplateURI              string   `yaml:"template-uri" attr:"template-uri,ignoreempty"`
	TemplateData             string   `yaml:"template-data" attr:"template-data,ignoreempty"`
}
