// Package annotations matches annotation qualified names against a set
// of accepted patterns.
//
// A pattern without regex metacharacters is an exact qualified name. A
// pattern with metacharacters is compiled as a regex and must match the
// whole qualified name:
//
//	lumen.Service        matches only "lumen.Service"
//	lumen\..*            matches anything under "lumen."
package annotations

import (
	"fmt"
	"strings"
	"sync"

	"github.com/coregx/coregex"

	"github.com/lumen-lang/lumen/fir"
)

// metachars are the characters that promote a pattern to a regex.
const metachars = `.+*?()|[]{}^$\`

// patternCache holds compiled patterns across matchers. Accepted sets
// are small and repeat between analyzer runs, so no eviction.
var patternCache sync.Map // map[string]*coregex.Regexp

func compilePattern(pattern string) (*coregex.Regexp, error) {
	if re, ok := patternCache.Load(pattern); ok {
		return re.(*coregex.Regexp), nil
	}
	re, err := coregex.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, fmt.Errorf("annotation pattern %q: %w", pattern, err)
	}
	if existing, loaded := patternCache.LoadOrStore(pattern, re); loaded {
		return existing.(*coregex.Regexp), nil
	}
	return re, nil
}

// isRegex reports whether the pattern needs regex matching. Dots are
// common in qualified names, so a dot alone does not make a regex.
func isRegex(pattern string) bool {
	for _, c := range metachars {
		if c == '.' {
			continue
		}
		if strings.ContainsRune(pattern, c) {
			return true
		}
	}
	return false
}

// Matcher tests annotation qualified names against accepted patterns.
type Matcher struct {
	exact map[string]bool
	regex []*coregex.Regexp
}

// NewMatcher compiles the given patterns. Returns an error for any
// pattern that fails to compile as a regex.
func NewMatcher(patterns []string) (*Matcher, error) {
	m := &Matcher{exact: make(map[string]bool)}
	for _, pattern := range patterns {
		if !isRegex(pattern) {
			m.exact[pattern] = true
			continue
		}
		re, err := compilePattern(pattern)
		if err != nil {
			return nil, err
		}
		m.regex = append(m.regex, re)
	}
	return m, nil
}

// Len returns the number of accepted patterns.
func (m *Matcher) Len() int {
	return len(m.exact) + len(m.regex)
}

// Matches reports whether the qualified name is accepted. A matcher
// with no patterns accepts nothing.
func (m *Matcher) Matches(qualifiedName string) bool {
	if m.exact[qualifiedName] {
		return true
	}
	for _, re := range m.regex {
		if re.MatchString(qualifiedName) {
			return true
		}
	}
	return false
}

// Filter returns the annotations from the list the matcher accepts.
func (m *Matcher) Filter(list *fir.AnnotationList) []*fir.Annotation {
	var out []*fir.Annotation
	for _, a := range list.All() {
		if m.Matches(a.QualifiedName) {
			out = append(out, a)
		}
	}
	return out
}

// FindRejected walks the tree and collects every annotation whose
// qualified name the matcher does not accept.
func (m *Matcher) FindRejected(root fir.Node) []*fir.Annotation {
	var out []*fir.Annotation
	fir.Walk(root, func(n fir.Node) bool {
		if a, ok := n.(*fir.Annotation); ok {
			if !m.Matches(a.QualifiedName) {
				out = append(out, a)
			}
			return false
		}
		return true
	})
	return out
}
