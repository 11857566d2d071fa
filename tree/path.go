package tree

import (
	"fmt"
	"strings"
)

// A path is a dot-delimited string addressing a location inside a tree,
// e.g. "database.hosts.0.port". Segments name mapping keys; on the read
// side a purely numeric segment also indexes a sequence. The empty path
// addresses the whole tree.
//
// Paths produced by Keys and Search additionally use bracket suffixes
// for sequence elements ("items[0]"); those are display paths and are
// not parsed back by Resolve.

// SplitPath splits a dot-delimited path into its segments. The empty
// path yields no segments.
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}

// JoinPath is the inverse of SplitPath.
func JoinPath(segments []string) string {
	return strings.Join(segments, ".")
}

// childPath extends a display path with a mapping key.
func childPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// indexPath extends a display path with a sequence index suffix.
func indexPath(prefix string, i int) string {
	return fmt.Sprintf("%s[%d]", prefix, i)
}
