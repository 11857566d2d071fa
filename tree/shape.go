package tree

import "fmt"

const (
	// DefaultShapeDepth is the summary depth used when the caller passes
	// a non-positive maxDepth.
	DefaultShapeDepth = 3

	// shapeSequenceSample is how many leading sequence elements a
	// summary recurses into.
	shapeSequenceSample = 3

	// shapeMappingCap is how many leading mapping keys a summary
	// recurses into before collapsing the rest.
	shapeMappingCap = 20

	// shapeMoreKeys is the mapping key under which collapsed keys are
	// reported, e.g. "...": "12 more keys".
	shapeMoreKeys = "..."
)

// Summarize produces the Shape of a tree: a bounded, lossy sketch meant
// for quick orientation, not a reversible encoding. The result is
// itself a Value so front-ends can serialize it like any document.
//
// Recursion stops at maxDepth; nodes at the boundary are replaced with
// a compact descriptor ("{Mapping with K keys}", "{Sequence(N)}", or
// the scalar's type name). Under the boundary, sequences summarize only
// their first three elements; longer ones are wrapped with an explicit
// length so the sample is recognizable as such. Mappings summarize
// their first twenty keys, collapsing the remainder into a single
// "N more keys" marker.
//
// A non-positive maxDepth selects DefaultShapeDepth.
func Summarize(root *Value, maxDepth int) *Value {
	if maxDepth <= 0 {
		maxDepth = DefaultShapeDepth
	}
	return summarize(root, 0, maxDepth)
}

func summarize(v *Value, depth, maxDepth int) *Value {
	if depth >= maxDepth {
		return FromString(describe(v))
	}
	switch v.Kind() {
	case KindMapping:
		out := NewMapping()
		for i, key := range v.keys {
			if i == shapeMappingCap {
				out.Set(shapeMoreKeys, FromString(fmt.Sprintf("%d more keys", len(v.keys)-shapeMappingCap)))
				break
			}
			out.Set(key, summarize(v.children[key], depth+1, maxDepth))
		}
		return out
	case KindSequence:
		n := len(v.items)
		shown := n
		if shown > shapeSequenceSample {
			shown = shapeSequenceSample
		}
		sample := NewSequence()
		for i := 0; i < shown; i++ {
			sample.Append(summarize(v.items[i], depth+1, maxDepth))
		}
		if n > shapeSequenceSample {
			out := NewMapping()
			out.Set("length", FromInt(int64(n)))
			out.Set("sample", sample)
			return out
		}
		return sample
	default:
		return FromString(v.Kind().String())
	}
}

// describe renders the depth-boundary descriptor for a node.
func describe(v *Value) string {
	switch v.Kind() {
	case KindMapping:
		return fmt.Sprintf("{Mapping with %d keys}", v.Len())
	case KindSequence:
		return fmt.Sprintf("{Sequence(%d)}", v.Len())
	default:
		return v.Kind().String()
	}
}
