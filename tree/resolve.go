package tree

import (
	"strconv"

	"github.com/treekeep/doctree/docerrors"
)

// Resolve walks path from root and returns the value it addresses. A
// missing path is a normal outcome, reported via the second result, not
// an error. The empty path resolves to root itself.
//
// Mapping segments descend by key. A purely numeric segment additionally
// indexes into a sequence; this index support is read-only and is not
// mirrored by Assign/Remove (see the package doc for the asymmetry).
func Resolve(root *Value, path string) (*Value, bool) {
	cur := root
	for _, seg := range SplitPath(path) {
		switch cur.Kind() {
		case KindMapping:
			next, ok := cur.Get(seg)
			if !ok {
				return nil, false
			}
			cur = next
		case KindSequence:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= cur.Len() {
				return nil, false
			}
			cur = cur.At(i)
		default:
			return nil, false
		}
	}
	return cur, true
}

// Assign writes val at path, mutating root in place. Every intermediate
// segment that is missing or holds a non-mapping is overwritten with a
// fresh empty mapping: auto-creating scaffolding is the deliberate
// policy here, not a failure. The final key is set unconditionally,
// regardless of the prior value's kind.
//
// The only failure is an empty path, which names no key to set.
func Assign(root *Value, path string, val *Value) error {
	segs := SplitPath(path)
	if len(segs) == 0 {
		return &docerrors.ConfigError{
			Option:  "path",
			Message: "assign requires a non-empty path",
		}
	}
	cur := root
	for _, seg := range segs[:len(segs)-1] {
		if cur.Kind() != KindMapping {
			cur.becomeMapping()
		}
		next, ok := cur.Get(seg)
		if !ok || next.Kind() != KindMapping {
			next = NewMapping()
			cur.Set(seg, next)
		}
		cur = next
	}
	if cur.Kind() != KindMapping {
		cur.becomeMapping()
	}
	cur.Set(segs[len(segs)-1], val)
	return nil
}

// Remove deletes the value at path, mutating root in place. Removing a
// path that does not exist, or whose intermediates are not mappings, is
// a silent no-op: Remove is idempotent and never fails.
func Remove(root *Value, path string) {
	segs := SplitPath(path)
	if len(segs) == 0 {
		return
	}
	cur := root
	for _, seg := range segs[:len(segs)-1] {
		if cur.Kind() != KindMapping {
			return
		}
		next, ok := cur.Get(seg)
		if !ok || next.Kind() != KindMapping {
			return
		}
		cur = next
	}
	cur.Delete(segs[len(segs)-1])
}
