package tree

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"

	"github.com/treekeep/doctree/docerrors"
)

// MatchKind says whether a search hit was a mapping key name or a value.
type MatchKind string

const (
	MatchKey   MatchKind = "key"
	MatchValue MatchKind = "value"
)

// Match is one search hit.
type Match struct {
	// Kind is "key" or "value".
	Kind MatchKind `json:"kind"`
	// Path is the full display path of the matched node.
	Path string `json:"path"`
	// Key is the mapping key the node sits under, empty for sequence
	// elements and the root.
	Key string `json:"key,omitempty"`
	// Preview is the truncated preview of the matched node's value.
	Preview string `json:"preview"`
}

// SearchOptions selects what Search matches and how.
type SearchOptions struct {
	// Keys enables matching mapping key names.
	Keys bool
	// Values enables matching value text: scalars by their natural text
	// form, collections by their count descriptor.
	Values bool
	// Regex treats the keyword as a regular expression instead of a
	// literal substring. The two modes are mutually exclusive; the
	// choice is made once per call, not per match.
	Regex bool
	// CaseSensitive disables Unicode case folding in literal mode. It
	// has no effect in regex mode; use (?i) there instead.
	CaseSensitive bool
	// MaxResults is the global cap on collected matches. The walk
	// short-circuits entirely once it is reached. Non-positive means no
	// matches; callers own the default.
	MaxResults int
}

// DefaultSearchResults is the MaxResults value the front-ends use when
// the caller does not specify one.
const DefaultSearchResults = 100

// Search walks the tree depth-first and collects matches against
// keyword, per node emitting first the key match, then the value match,
// before recursing into children. The walk stops as soon as
// opts.MaxResults matches have been collected.
//
// A keyword that fails to compile in regex mode is the one hard failure
// of the engine and is returned as a *docerrors.PatternError.
func Search(root *Value, keyword string, opts SearchOptions) ([]Match, error) {
	match, err := newMatcher(keyword, opts)
	if err != nil {
		return nil, err
	}
	if opts.MaxResults <= 0 {
		return nil, nil
	}
	s := &searcher{match: match, opts: opts}
	s.walk(root, "", "")
	return s.matches, nil
}

// newMatcher compiles the per-call match predicate: either a compiled
// regular expression or a literal substring check, case-folded unless
// case sensitivity was requested.
func newMatcher(keyword string, opts SearchOptions) (func(string) bool, error) {
	if opts.Regex {
		re, err := regexp.Compile(keyword)
		if err != nil {
			return nil, &docerrors.PatternError{Pattern: keyword, Cause: err}
		}
		return re.MatchString, nil
	}
	if opts.CaseSensitive {
		return func(s string) bool {
			return strings.Contains(s, keyword)
		}, nil
	}
	fold := cases.Fold()
	needle := fold.String(keyword)
	return func(s string) bool {
		return strings.Contains(fold.String(s), needle)
	}, nil
}

type searcher struct {
	match   func(string) bool
	opts    SearchOptions
	matches []Match
}

func (s *searcher) full() bool {
	return len(s.matches) >= s.opts.MaxResults
}

// walk visits v at the given display path; key is the mapping key v
// sits under, empty elsewhere. Returns true once the result cap is hit
// so callers unwind immediately.
func (s *searcher) walk(v *Value, path, key string) bool {
	if key != "" && s.opts.Keys && s.match(key) {
		s.matches = append(s.matches, Match{Kind: MatchKey, Path: path, Key: key, Preview: Preview(v)})
		if s.full() {
			return true
		}
	}
	if s.opts.Values && s.match(valueText(v)) {
		s.matches = append(s.matches, Match{Kind: MatchValue, Path: path, Key: key, Preview: Preview(v)})
		if s.full() {
			return true
		}
	}
	switch v.Kind() {
	case KindMapping:
		for _, k := range v.keys {
			if s.walk(v.children[k], childPath(path, k), k) {
				return true
			}
		}
	case KindSequence:
		for i, item := range v.items {
			if s.walk(item, indexPath(path, i), "") {
				return true
			}
		}
	}
	return false
}

// valueText is the string form a value is matched against: full text
// for scalars (no preview truncation), count descriptors for
// collections.
func valueText(v *Value) string {
	if v.Kind() == KindString {
		return v.strVal
	}
	return Preview(v)
}
