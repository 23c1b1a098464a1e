// Package ignore implements path exclusion using doublestar glob patterns.
//
// Patterns follow Mutagen-style semantics: a leading "!" negates a pattern, a
// leading "/" anchors it to the root, a trailing "/" restricts it to
// directories, and a pattern without any "/" is also matched against the leaf
// name of each path. Later patterns take precedence over earlier ones.
package ignore

import (
	pathpkg "path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
)

// cleanPreservingTrailingSlash is a variant of path.Clean that preserves
// trailing slashes.
func cleanPreservingTrailingSlash(path string) string {
	// Determine whether or not a trailing slash exists. We enforce a minimum
	// length to ensure that we're not dealing with "/".
	var needTrailingSlash bool
	if l := len(path); l > 1 {
		needTrailingSlash = path[l-1] == '/'
	}

	// Perform a clean operation, adjusting the result as necessary.
	if result := pathpkg.Clean(path); needTrailingSlash {
		return result + "/"
	} else {
		return result
	}
}

// pattern represents a single parsed ignore pattern.
type pattern struct {
	// negated indicates whether or not the pattern is negated.
	negated bool
	// directoryOnly indicates whether or not the pattern should only match
	// directories.
	directoryOnly bool
	// matchLeaf indicates whether or not the pattern should be matched against
	// a path's base name in addition to the whole path.
	matchLeaf bool
	// glob is the doublestar glob used in matching.
	glob string
}

// newPattern validates and parses a user-provided ignore pattern.
func newPattern(raw string) (*pattern, error) {
	// Ensure that the pattern is not empty.
	if raw == "" {
		return nil, errors.New("empty pattern")
	}

	// Check if this is a negated pattern. If so, remove the exclamation point
	// prefix, since it won't enter into pattern matching.
	var negated bool
	if raw[0] == '!' {
		negated = true
		raw = raw[1:]
	}
	if raw == "" {
		return nil, errors.New("negated empty pattern")
	}

	// Perform a cleaning operation on the pattern, making sure to preserve any
	// trailing slashes.
	raw = cleanPreservingTrailingSlash(raw)

	// The root itself is never subject to ignores, so flag patterns that
	// target it.
	if raw == "/" {
		return nil, errors.New("root pattern")
	} else if raw == "//" {
		return nil, errors.New("root directory pattern")
	}

	// Check if this is an absolute pattern. If so, remove the forward slash
	// prefix, since it won't enter into pattern matching.
	var absolute bool
	if raw[0] == '/' {
		absolute = true
		raw = raw[1:]
	}

	// Check if this is a directory-only pattern. If so, remove the trailing
	// slash, since it won't enter into pattern matching.
	var directoryOnly bool
	if raw[len(raw)-1] == '/' {
		directoryOnly = true
		raw = raw[:len(raw)-1]
	}

	// Ensure the glob is well-formed.
	if !doublestar.ValidatePattern(raw) {
		return nil, errors.Errorf("invalid glob: %s", raw)
	}

	// Success.
	return &pattern{
		negated:       negated,
		directoryOnly: directoryOnly,
		matchLeaf:     !absolute && !strings.Contains(raw, "/"),
		glob:          raw,
	}, nil
}

// matches indicates whether or not the pattern matches the specified path.
func (p *pattern) matches(path string, directory bool) bool {
	// If this pattern only applies to directories and this is not a directory,
	// then this is not a match.
	if p.directoryOnly && !directory {
		return false
	}

	// Check if there is a direct match. The glob has already been validated,
	// so matching can't fail with an error.
	if match, _ := doublestar.Match(p.glob, path); match {
		return true
	}

	// If it makes sense, attempt to match on the last component of the path.
	if p.matchLeaf {
		if match, _ := doublestar.Match(p.glob, pathpkg.Base(path)); match {
			return true
		}
	}

	// No match.
	return false
}

// EnsurePatternValid ensures that the provided pattern is a valid ignore
// pattern.
func EnsurePatternValid(raw string) error {
	_, err := newPattern(raw)
	return err
}

// Ignorer evaluates paths against a list of ignore patterns. A nil Ignorer
// ignores nothing.
type Ignorer struct {
	// patterns are the underlying ignore patterns, in order of increasing
	// precedence.
	patterns []*pattern
}

// NewIgnorer creates a new ignorer from the specified patterns.
func NewIgnorer(patterns []string) (*Ignorer, error) {
	// Parse patterns.
	parsed := make([]*pattern, len(patterns))
	for i, raw := range patterns {
		if p, err := newPattern(raw); err != nil {
			return nil, errors.Wrapf(err, "unable to parse pattern %q", raw)
		} else {
			parsed[i] = p
		}
	}

	// Success.
	return &Ignorer{patterns: parsed}, nil
}

// Ignored returns whether or not the specified path is ignored. The path must
// be slash-separated and relative to the root. Ignored directories are not
// traversed.
func (i *Ignorer) Ignored(path string, directory bool) bool {
	// Handle the nil case.
	if i == nil {
		return false
	}

	// Run through the patterns, updating the ignore state as we reach more
	// specific rules.
	var ignored bool
	for _, p := range i.patterns {
		if p.matches(path, directory) {
			ignored = !p.negated
		}
	}

	// Done.
	return ignored
}
