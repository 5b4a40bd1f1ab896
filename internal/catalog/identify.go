package catalog

import (
	"strings"

	"github.com/dball/osinfo/internal/entity"
	"github.com/dball/osinfo/internal/iterator"
	"github.com/dball/osinfo/internal/list"
	"github.com/dball/osinfo/internal/model"
	"github.com/dball/osinfo/internal/sys"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// reference is a catalog record that observed records are identified against.
type reference interface {
	list.Identified
	Architecture() string
	HasDiscriminators() bool
}

type scan[R reference] struct {
	// candidates returns the operating system's references in the order they are tried.
	candidates func(*model.OS) []R
	// deferred reports whether a reference waits for the fallback pass.
	deferred func(*model.OS, R) bool
	matches  func(R) bool
}

// guess scans the operating systems in insertion order and returns the first reference that
// matches. Deferred references are only tried, in reverse order of discovery, when no other
// reference matches.
func guess[R reference](c *Catalog, s scan[R]) (os *model.OS, ref R, ok bool) {
	fallback := iterator.Slice[*model.OS]{}
	c.oses.Each(func(candidate *model.OS) bool {
		for _, r := range s.candidates(candidate) {
			if !r.HasDiscriminators() {
				continue
			}
			if s.deferred(candidate, r) {
				fallback = append(iterator.Slice[*model.OS]{candidate}, fallback...)
				continue
			}
			if s.matches(r) {
				os, ref, ok = candidate, r, true
				return false
			}
		}
		return true
	})
	if ok {
		return
	}
	fallback.Each(func(candidate *model.OS) bool {
		for _, r := range s.candidates(candidate) {
			if r.HasDiscriminators() && s.matches(r) {
				os, ref, ok = candidate, r, true
				return false
			}
		}
		return true
	})
	return
}

// architectures reports whether a reference architecture admits an observed one. An
// observation without an architecture admits any reference.
func architectures(ref string, observed string) bool {
	return ref == sys.ArchitectureAll || observed == "" || ref == observed
}

// copyParam replaces dst's values for key with src's, clearing them if src has none.
func copyParam(dst *entity.Entity, src *entity.Entity, key string) {
	dst.Clear(key)
	for _, v := range src.GetAll(key) {
		dst.Add(key, v)
	}
}

func (c *Catalog) matchesMedia(obs *model.Media, ref *model.Media) bool {
	if !architectures(ref.Architecture(), obs.Architecture()) {
		return false
	}
	fields := []func(*model.Media) (string, bool){
		(*model.Media).VolumeID,
		(*model.Media).SystemID,
		(*model.Media).PublisherID,
		(*model.Media).ApplicationID,
	}
	for _, field := range fields {
		pattern, patternSet := field(ref)
		subject, subjectSet := field(obs)
		if !c.matcher.Field(pattern, patternSet, subject, subjectSet) {
			return false
		}
	}
	size := ref.VolumeSize()
	if size <= 0 {
		size = obs.VolumeSize()
	}
	return size == obs.VolumeSize()
}

// mediaCandidates returns the operating system's media with those whose volume id occurs
// literally in the observed volume id first, then those with an explicit size.
func mediaCandidates(obs *model.Media) func(*model.OS) []*model.Media {
	volumeID, _ := obs.VolumeID()
	rank := func(m *model.Media) (rank int) {
		if id, ok := m.VolumeID(); !ok || !strings.Contains(volumeID, id) {
			rank += 2
		}
		if m.VolumeSize() <= 0 {
			rank++
		}
		return
	}
	return func(os *model.OS) (media []*model.Media) {
		media = os.Media().Elements()
		slices.SortStableFunc(media, func(a, b *model.Media) bool { return rank(a) < rank(b) })
		return
	}
}

// GuessOSFromMedia returns the operating system of the observed medium and the reference
// medium it matched.
func (c *Catalog) GuessOSFromMedia(obs *model.Media) (os *model.OS, ref *model.Media, ok bool) {
	os, ref, ok = guess(c, scan[*model.Media]{
		candidates: mediaCandidates(obs),
		deferred: func(os *model.OS, ref *model.Media) bool {
			return ref.Architecture() == sys.ArchitectureAll || os.ReleaseStatus() == sys.ReleaseStatusRolling
		},
		matches: func(ref *model.Media) bool { return c.matchesMedia(obs, ref) },
	})
	volumeID, _ := obs.VolumeID()
	log := c.log.WithFields(logrus.Fields{"volume-id": volumeID, "volume-size": obs.VolumeSize()})
	if ok {
		log.WithFields(logrus.Fields{"os": os.ID(), "media": ref.ID()}).Debug("media identified")
	} else {
		log.Debug("media not identified")
	}
	return
}

// IdentifyMedia identifies the observed medium and, if it matches, fills it in from the
// reference medium and binds it to the operating system.
func (c *Catalog) IdentifyMedia(obs *model.Media) bool {
	os, ref, ok := c.GuessOSFromMedia(obs)
	if !ok {
		return false
	}
	obs.Rebind(ref.ID())
	for _, key := range []string{sys.Architecture, sys.URL, sys.Variant, sys.Kernel, sys.Initrd} {
		copyParam(obs.Entity, ref.Entity, key)
	}
	obs.SetBool(sys.MediaLive, ref.Live())
	obs.SetBool(sys.MediaInstaller, ref.Installer())
	obs.SetInt(sys.MediaInstallerReboots, ref.InstallerReboots())
	obs.SetBool(sys.MediaEjectAfterInstall, ref.EjectAfterInstall())
	obs.SetBool(sys.MediaInstallerScript, ref.InstallerScript())
	ref.InstallScripts().Each(func(s *model.InstallScript) bool {
		obs.AddInstallScript(s)
		return true
	})
	if lang, ok := c.mediaLanguage(obs, ref); ok {
		obs.Set(sys.MediaLanguage, lang)
	}
	obs.SetOS(os.ID())
	return true
}

// mediaLanguage extracts the language from the observed volume id with the reference's
// pattern, translating it through the reference's datamap if it has one.
func (c *Catalog) mediaLanguage(obs *model.Media, ref *model.Media) (lang string, ok bool) {
	pattern, ok := ref.LanguageRegex()
	if !ok {
		return
	}
	volumeID, ok := obs.VolumeID()
	if !ok {
		return
	}
	lang, ok = c.matcher.Capture(pattern, volumeID)
	if !ok {
		return
	}
	mapID, mapped := ref.LanguageMap()
	if !mapped {
		return
	}
	datamap, found := c.datamaps.Find(mapID)
	if !found {
		c.log.WithField("datamap", mapID).Debug("unknown language map")
		return
	}
	lang, ok = datamap.Lookup(lang)
	return
}

func (c *Catalog) matchesTree(obs *model.Tree, ref *model.Tree) bool {
	if !architectures(ref.Architecture(), obs.Architecture()) {
		return false
	}
	fields := []func(*model.Tree) (string, bool){
		(*model.Tree).TreeinfoFamily,
		(*model.Tree).TreeinfoVariant,
		(*model.Tree).TreeinfoVersion,
		(*model.Tree).TreeinfoArch,
	}
	for _, field := range fields {
		pattern, patternSet := field(ref)
		subject, subjectSet := field(obs)
		if !c.matcher.Field(pattern, patternSet, subject, subjectSet) {
			return false
		}
	}
	return true
}

// GuessOSFromTree returns the operating system of the observed tree and the reference tree
// it matched.
func (c *Catalog) GuessOSFromTree(obs *model.Tree) (os *model.OS, ref *model.Tree, ok bool) {
	os, ref, ok = guess(c, scan[*model.Tree]{
		candidates: func(os *model.OS) []*model.Tree { return os.Trees().Elements() },
		deferred: func(_ *model.OS, ref *model.Tree) bool {
			return ref.Architecture() == sys.ArchitectureAll
		},
		matches: func(ref *model.Tree) bool { return c.matchesTree(obs, ref) },
	})
	family, _ := obs.TreeinfoFamily()
	log := c.log.WithField("treeinfo-family", family)
	if ok {
		log.WithFields(logrus.Fields{"os": os.ID(), "tree": ref.ID()}).Debug("tree identified")
	} else {
		log.Debug("tree not identified")
	}
	return
}

// IdentifyTree identifies the observed tree and, if it matches, fills it in from the reference
// tree and binds it to the operating system.
func (c *Catalog) IdentifyTree(obs *model.Tree) bool {
	os, ref, ok := c.GuessOSFromTree(obs)
	if !ok {
		return false
	}
	obs.Rebind(ref.ID())
	for _, key := range []string{sys.Architecture, sys.URL, sys.Variant, sys.Kernel, sys.Initrd, sys.TreeBootISO} {
		copyParam(obs.Entity, ref.Entity, key)
	}
	obs.SetOS(os.ID())
	return true
}
