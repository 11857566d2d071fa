package tree

import "fmt"

const (
	// DefaultKeysDepth is the enumeration depth used when the caller
	// passes a non-positive maxDepth.
	DefaultKeysDepth = 5

	// keysSequenceCap bounds how many elements of a single sequence are
	// enumerated before collapsing the remainder into a marker entry.
	keysSequenceCap = 10
)

// Keys returns every reachable path in the tree up to maxDepth, in
// depth-first pre-order. Mapping entries use dot notation, sequence
// elements bracket-index notation ("items[0]"). Sequences longer than
// ten elements emit their first ten index paths plus one marker entry
// describing how many were omitted; mapping keys are never capped.
//
// Depth is counted per recursion level, independently of path length.
// A non-positive maxDepth selects DefaultKeysDepth.
func Keys(root *Value, maxDepth int) []string {
	if maxDepth <= 0 {
		maxDepth = DefaultKeysDepth
	}
	var out []string
	enumerateKeys(root, "", 0, maxDepth, &out)
	return out
}

func enumerateKeys(v *Value, prefix string, depth, maxDepth int, out *[]string) {
	if depth >= maxDepth {
		return
	}
	switch v.Kind() {
	case KindMapping:
		for _, key := range v.keys {
			p := childPath(prefix, key)
			*out = append(*out, p)
			enumerateKeys(v.children[key], p, depth+1, maxDepth, out)
		}
	case KindSequence:
		n := len(v.items)
		shown := n
		if shown > keysSequenceCap {
			shown = keysSequenceCap
		}
		for i := 0; i < shown; i++ {
			p := indexPath(prefix, i)
			*out = append(*out, p)
			enumerateKeys(v.items[i], p, depth+1, maxDepth, out)
		}
		if n > keysSequenceCap {
			*out = append(*out, fmt.Sprintf("%s[...] (%d more items)", prefix, n-keysSequenceCap))
		}
	}
}
