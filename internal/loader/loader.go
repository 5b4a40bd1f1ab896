// Package loader fills a catalog from YAML source files.
//
// Sources are directories or files given in priority order. A file in a later directory
// overrides the file with the same relative path in an earlier one. Files are read in order
// of their relative paths.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dball/osinfo/internal/catalog"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Logger *logrus.Logger
}

// Loader reads catalog source files.
type Loader struct {
	log *logrus.Logger
}

func New(config Config) *Loader {
	if config.Logger == nil {
		config.Logger = logrus.New()
	}
	return &Loader{log: config.Logger}
}

// source is a file to load, identified by its path relative to its root.
type source struct {
	name string
	path string
}

func isSource(name string) bool {
	ext := filepath.Ext(name)
	return ext == ".yaml" || ext == ".yml"
}

// sources returns the files under the paths, later paths overriding earlier ones, in order of
// relative path. Missing paths are skipped.
func (l *Loader) sources(paths []string) (sources []source, err error) {
	byName := map[string]string{}
	for _, root := range paths {
		info, statErr := os.Stat(root)
		if errors.Is(statErr, fs.ErrNotExist) {
			l.log.WithField("path", root).Debug("skipping missing path")
			continue
		}
		if statErr != nil {
			err = fmt.Errorf("error reading %s: %w", root, statErr)
			return
		}
		if !info.IsDir() {
			byName[filepath.Base(root)] = root
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if d.IsDir() || !isSource(d.Name()) {
				return nil
			}
			name, relErr := filepath.Rel(root, path)
			if relErr != nil {
				return relErr
			}
			if prior, ok := byName[name]; ok {
				l.log.WithFields(logrus.Fields{"file": path, "overrides": prior}).Debug("override")
			}
			byName[name] = path
			return nil
		})
		if err != nil {
			err = fmt.Errorf("error walking %s: %w", root, err)
			return
		}
	}
	sources = make([]source, 0, len(byName))
	for name, path := range byName {
		sources = append(sources, source{name: name, path: path})
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i].name < sources[j].name })
	return
}

// Load reads every source file under the paths into db. Cross references between files are
// resolved once every file has been read. Data errors are collected and returned together;
// entities without errors are still added.
func (l *Loader) Load(ctx context.Context, db *catalog.Catalog, paths ...string) (err error) {
	sources, err := l.sources(paths)
	if err != nil {
		return
	}
	s := newSession(db, l.log)
	for _, src := range sources {
		if err = ctx.Err(); err != nil {
			return
		}
		l.log.WithField("file", src.path).Debug("loading")
		if fileErr := l.loadFile(s, src.path); fileErr != nil {
			s.fail(fileErr)
		}
	}
	s.resolve()
	err = s.close()
	if err == nil {
		l.log.WithFields(logrus.Fields{
			"files": len(sources),
			"oses":  db.OSList().Len(),
		}).Info("loaded")
	}
	return
}

func (l *Loader) loadFile(s *session, path string) (err error) {
	f, err := os.Open(path)
	if err != nil {
		err = fmt.Errorf("error opening %s: %w", path, err)
		return
	}
	defer f.Close()
	err = decode(s, f, path)
	return
}

// decode reads the YAML documents in r into the session's catalog. The name identifies r in
// errors.
func decode(s *session, r io.Reader, name string) (err error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	for {
		var doc document
		decodeErr := dec.Decode(&doc)
		if errors.Is(decodeErr, io.EOF) {
			return
		}
		if decodeErr != nil {
			err = fmt.Errorf("error decoding %s: %w", name, decodeErr)
			return
		}
		s.file = name
		s.document(&doc)
	}
}

// LoadString reads a single YAML source into db, resolving its cross references.
func (l *Loader) LoadString(db *catalog.Catalog, name string, text string) (err error) {
	s := newSession(db, l.log)
	if err = decode(s, strings.NewReader(text), name); err != nil {
		return
	}
	s.resolve()
	err = s.close()
	return
}
