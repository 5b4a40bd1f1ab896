package loader

import (
	"errors"
	"fmt"

	"github.com/dball/osinfo/internal/catalog"
	"github.com/dball/osinfo/internal/entity"
	"github.com/dball/osinfo/internal/model"
	"github.com/dball/osinfo/internal/shredder"
	"github.com/dball/osinfo/internal/sys"
	. "github.com/dball/osinfo/internal/types"
	"github.com/sirupsen/logrus"
)

// DefaultArchitecture is the architecture of media and trees that do not declare one.
const DefaultArchitecture = "i386"

// scriptRef is a reference to an install script that is resolved once every file is read.
type scriptRef struct {
	file   string
	owner  string
	script string
	attach func(*model.InstallScript)
}

// session is the state of one load: the catalog being filled, the references waiting for
// resolution and the data errors found so far.
type session struct {
	db   *catalog.Catalog
	log  *logrus.Logger
	file string

	pending []scriptRef
	errs    []error
}

func newSession(db *catalog.Catalog, log *logrus.Logger) *session {
	return &session{db: db, log: log}
}

func (s *session) fail(err error) {
	s.log.WithField("error", err).Warn("invalid catalog data")
	s.errs = append(s.errs, err)
}

func (s *session) invalid(code string, args ...any) {
	s.fail(NewError(code, append([]any{"file", s.file}, args...)...))
}

// close returns the collected data errors, if any, and forgets them.
func (s *session) close() (err error) {
	err = errors.Join(s.errs...)
	s.errs = nil
	s.pending = nil
	return
}

func (s *session) shred(x any, e *entity.Entity) bool {
	if err := shredder.Shred(x, e); err != nil {
		s.fail(fmt.Errorf("error shredding %s: %w", e.ID(), err))
		return false
	}
	return true
}

// nick checks that every value is one of the nicks.
func (s *session) nick(id string, key string, nicks entity.Nicks, values ...string) bool {
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := nicks[v]; !ok {
			s.invalid("loader.unknownNick", "id", id, "key", key, "value", v)
			return false
		}
	}
	return true
}

func (s *session) refer(owner string, ids []string, attach func(*model.InstallScript)) {
	for _, id := range ids {
		s.pending = append(s.pending, scriptRef{file: s.file, owner: owner, script: id, attach: attach})
	}
}

// resolve attaches the referenced install scripts.
func (s *session) resolve() {
	for _, ref := range s.pending {
		script, ok := s.db.InstallScript(ref.script)
		if !ok {
			s.fail(NewError("loader.unknownInstallScript", "file", ref.file, "id", ref.owner, "script", ref.script))
			continue
		}
		ref.attach(script)
	}
	s.pending = nil
}

func (s *session) document(doc *document) {
	for i := range doc.InstallScripts {
		s.installScript(&doc.InstallScripts[i])
	}
	for i := range doc.Devices {
		s.device(&doc.Devices[i])
	}
	for i := range doc.Datamaps {
		s.datamap(&doc.Datamaps[i])
	}
	for i := range doc.Platforms {
		s.platform(&doc.Platforms[i])
	}
	for i := range doc.OSes {
		s.os(&doc.OSes[i])
	}
	for i := range doc.Deployments {
		s.deployment(&doc.Deployments[i])
	}
}

func (s *session) identified(kind string, id string) bool {
	if id == "" {
		s.invalid("loader.missingID", "kind", kind)
		return false
	}
	return true
}

func (s *session) installScript(doc *scriptDoc) {
	if !s.identified("install-script", doc.ID) {
		return
	}
	ok := s.nick(doc.ID, sys.ScriptPathFormat, sys.PathFormats, doc.PathFormat) &&
		s.nick(doc.ID, sys.ScriptInjectionMethod, sys.InjectionMethods, doc.InjectionMethods...) &&
		s.nick(doc.ID, sys.ScriptPreferredInjection, sys.InjectionMethods, doc.PreferredInjection) &&
		s.nick(doc.ID, sys.ScriptInstallationSource, sys.InstallationSources, doc.InstallationSource)
	if !ok {
		return
	}
	script := model.NewInstallScript(doc.ID, "")
	if s.shred(doc, script.Entity) {
		s.db.AddInstallScript(script)
	}
}

func (s *session) device(doc *deviceDoc) {
	if !s.identified("device", doc.ID) {
		return
	}
	d := model.NewDevice(doc.ID)
	if s.shred(doc, d.Entity) {
		s.db.AddDevice(d)
	}
}

func (s *session) datamap(doc *datamapDoc) {
	if !s.identified("datamap", doc.ID) {
		return
	}
	m := model.NewDatamap(doc.ID)
	for _, entry := range doc.Entries {
		m.Insert(entry.In, entry.Out)
	}
	s.db.AddDatamap(m)
}

func relate(doc *productDoc, p *model.Product) {
	for _, id := range doc.DerivesFrom {
		p.AddRelated(model.DerivesFrom, id)
	}
	for _, id := range doc.Clones {
		p.AddRelated(model.Clones, id)
	}
	for _, id := range doc.Upgrades {
		p.AddRelated(model.Upgrades, id)
	}
}

func (s *session) deviceLinks(docs []deviceLinkDoc, add func(*model.DeviceLink)) bool {
	for i := range docs {
		doc := &docs[i]
		if !s.identified("device-link", doc.ID) {
			return false
		}
		link := model.NewDeviceLink(doc.ID)
		if !s.shred(doc, link.Entity) {
			return false
		}
		add(link)
	}
	return true
}

func (s *session) platform(doc *platformDoc) {
	if !s.identified("platform", doc.ID) {
		return
	}
	p := model.NewPlatform(doc.ID)
	relate(&doc.productDoc, &p.Product)
	if s.shred(doc, p.Entity) && s.deviceLinks(doc.Devices, p.AddDeviceLink) {
		s.db.AddPlatform(p)
	}
}

func (s *session) deployment(doc *deploymentDoc) {
	if !s.identified("deployment", doc.ID) {
		return
	}
	d := model.NewDeployment(doc.ID, doc.OS, doc.Platform)
	if s.deviceLinks(doc.Devices, d.AddDeviceLink) {
		s.db.AddDeployment(d)
	}
}

func architecture(arch string) string {
	if arch == "" {
		return DefaultArchitecture
	}
	return arch
}

func (s *session) os(doc *osDoc) {
	if !s.identified("os", doc.ID) {
		return
	}
	if !s.nick(doc.ID, sys.OSReleaseStatus, sys.ReleaseStatuses, doc.ReleaseStatus) {
		return
	}
	os := model.NewOS(doc.ID)
	added := false
	// Media refer to install scripts before the os is known to be valid.
	mark := len(s.pending)
	defer func() {
		if !added {
			s.pending = s.pending[:mark]
		}
	}()
	relate(&doc.productDoc, &os.Product)
	if !s.shred(doc, os.Entity) {
		return
	}
	for i := range doc.Media {
		if !s.media(os, i, &doc.Media[i]) {
			return
		}
	}
	for i := range doc.Trees {
		if !s.tree(os, i, &doc.Trees[i]) {
			return
		}
	}
	for _, v := range doc.Variants {
		if !s.identified("variant", v.ID) {
			return
		}
		os.AddVariant(model.NewVariant(v.ID, v.Name))
	}
	if !s.deviceLinks(doc.Devices, os.AddDeviceLink) {
		return
	}
	for i := range doc.Firmwares {
		fw := &doc.Firmwares[i]
		if fw.Type == "" {
			s.invalid("loader.invalidFirmware", "os", doc.ID)
			return
		}
		firmware := model.NewFirmware(architecture(fw.Arch), fw.Type)
		if !s.shred(fw, firmware.Entity) {
			return
		}
		os.AddFirmware(firmware)
	}
	for i := range doc.Resources {
		if !s.resources(os, &doc.Resources[i]) {
			return
		}
	}
	s.refer(doc.ID, doc.InstallScripts, os.AddInstallScript)
	s.db.AddOS(os)
	added = true
}

func (s *session) media(os *model.OS, i int, doc *mediaDoc) bool {
	id := doc.ID
	if id == "" {
		id = fmt.Sprintf("%s/media/%d", os.ID(), i)
	}
	m := model.NewMedia(id, architecture(doc.Arch))
	if !s.shred(doc, m.Entity) {
		return false
	}
	os.AddMedia(m)
	s.refer(id, doc.InstallScripts, m.AddInstallScript)
	return true
}

func (s *session) tree(os *model.OS, i int, doc *treeDoc) bool {
	id := doc.ID
	if id == "" {
		id = fmt.Sprintf("%s/tree/%d", os.ID(), i)
	}
	t := model.NewTree(id, architecture(doc.Arch))
	if !s.shred(doc, t.Entity) || !s.shred(&doc.Treeinfo, t.Entity) {
		return false
	}
	os.AddTree(t)
	return true
}

func (s *session) resources(os *model.OS, doc *resourcesDoc) bool {
	category, ok := model.ResourcesCategories[doc.Category]
	if !ok {
		s.invalid("loader.invalidResources", "os", os.ID(), "category", doc.Category)
		return false
	}
	if doc.Arch == "" {
		s.invalid("loader.invalidResources", "os", os.ID(), "category", doc.Category, "arch", doc.Arch)
		return false
	}
	r := model.NewResources(doc.Arch, doc.Arch)
	if !s.shred(doc, r.Entity) {
		return false
	}
	os.AddResources(model.ResourcesCategory(category), r)
	return true
}
