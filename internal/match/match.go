// Package match matches catalog patterns against observed values.
//
// Patterns use Perl-compatible syntax. Compiled patterns are cached by source; a pattern that
// does not compile never matches, and neither does a match that runs past the timeout.
package match

import (
	"sync"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/sirupsen/logrus"
)

// DefaultTimeout bounds a single match.
const DefaultTimeout = 100 * time.Millisecond

type Config struct {
	Logger  *logrus.Logger
	Timeout time.Duration
}

// Matcher compiles and caches patterns.
type Matcher struct {
	log     *logrus.Logger
	timeout time.Duration
	mu      sync.Mutex
	cache   map[string]*regexp2.Regexp
}

func New(config Config) *Matcher {
	if config.Logger == nil {
		config.Logger = logrus.New()
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	return &Matcher{log: config.Logger, timeout: config.Timeout, cache: map[string]*regexp2.Regexp{}}
}

// compile returns the compiled pattern, or nil if it does not compile.
func (m *Matcher) compile(pattern string) (re *regexp2.Regexp) {
	m.mu.Lock()
	defer m.mu.Unlock()
	re, ok := m.cache[pattern]
	if ok {
		return
	}
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"pattern": pattern,
			"error":   err,
		}).Debug("invalid pattern")
		re = nil
	} else {
		re.MatchTimeout = m.timeout
	}
	m.cache[pattern] = re
	return
}

// Matches reports whether pattern matches anywhere in subject.
func (m *Matcher) Matches(pattern string, subject string) bool {
	re := m.compile(pattern)
	if re == nil {
		return false
	}
	ok, err := re.MatchString(subject)
	if err != nil {
		m.failed(pattern, err)
		return false
	}
	return ok
}

// failed logs a match that ended in an error, which is a timeout.
func (m *Matcher) failed(pattern string, err error) {
	m.log.WithFields(logrus.Fields{
		"pattern": pattern,
		"error":   err,
	}).Debug("match failed")
}

// Field matches a reference field against an observed field. An unset reference matches
// anything, and a set reference never matches an unset observation.
func (m *Matcher) Field(pattern string, patternSet bool, subject string, subjectSet bool) bool {
	if !patternSet {
		return true
	}
	if !subjectSet {
		return false
	}
	return m.Matches(pattern, subject)
}

// Capture matches pattern at the start of subject and returns the text of its first group.
func (m *Matcher) Capture(pattern string, subject string) (capture string, ok bool) {
	re := m.compile(`\A(?:` + pattern + `)`)
	if re == nil {
		return
	}
	match, err := re.FindStringMatch(subject)
	if err != nil {
		m.failed(pattern, err)
		return
	}
	if match == nil {
		return
	}
	group := match.GroupByNumber(1)
	if group == nil || len(group.Captures) == 0 {
		return
	}
	return group.String(), true
}

// Len is the number of cached patterns, including those that failed to compile.
func (m *Matcher) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.cache)
}
