package tree

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeScalars(t *testing.T) {
	tests := []struct {
		in   *Value
		want string
	}{
		{Null(), "null"},
		{FromBool(true), "bool"},
		{FromInt(42), "number"},
		{FromString("hello"), "string"},
	}
	for _, tt := range tests {
		got := Summarize(tt.in, 3)
		require.Equal(t, KindString, got.Kind())
		assert.Equal(t, tt.want, got.String())
	}
}

func TestSummarizeDepthBoundary(t *testing.T) {
	root := mapping("a", mapping(
		"b", mapping("deep", FromInt(1)),
		"c", NewSequence(FromInt(1), FromInt(2)),
	))

	got := Summarize(root, 2)
	a, ok := got.Get("a")
	require.True(t, ok)

	b, ok := a.Get("b")
	require.True(t, ok)
	assert.Equal(t, "{Mapping with 1 keys}", b.String())

	c, ok := a.Get("c")
	require.True(t, ok)
	assert.Equal(t, "{Sequence(2)}", c.String())
}

func TestSummarizeDepthBoundRespected(t *testing.T) {
	// Build a chain much deeper than any tested depth, then check the
	// shape never recurses past maxDepth.
	root := NewMapping()
	cur := root
	for i := 0; i < 50; i++ {
		next := NewMapping()
		cur.Set("n", next)
		cur = next
	}

	for _, depth := range []int{1, 2, 3, 7} {
		shape := Summarize(root, depth)
		assert.LessOrEqual(t, valueDepth(shape), depth, "maxDepth %d", depth)
	}
}

// valueDepth measures the recursion depth of a value tree.
func valueDepth(v *Value) int {
	max := 0
	switch v.Kind() {
	case KindMapping:
		for _, k := range v.Keys() {
			child, _ := v.Get(k)
			if d := valueDepth(child); d > max {
				max = d
			}
		}
	case KindSequence:
		for _, item := range v.Elements() {
			if d := valueDepth(item); d > max {
				max = d
			}
		}
	default:
		return 0
	}
	return max + 1
}

func TestSummarizeSequenceSample(t *testing.T) {
	short := NewSequence(FromInt(1), FromInt(2), FromInt(3))
	got := Summarize(short, 3)
	require.Equal(t, KindSequence, got.Kind())
	assert.Equal(t, 3, got.Len())

	long := NewSequence()
	for i := 0; i < 8; i++ {
		long.Append(FromString("item"))
	}
	got = Summarize(long, 3)
	require.Equal(t, KindMapping, got.Kind(), "long sequences are tagged as samples")

	length, ok := got.Get("length")
	require.True(t, ok)
	assert.Equal(t, float64(8), length.Number())

	sample, ok := got.Get("sample")
	require.True(t, ok)
	assert.Equal(t, 3, sample.Len())
}

func TestSummarizeMappingCap(t *testing.T) {
	root := NewMapping()
	for i := 0; i < 32; i++ {
		root.Set(fmt.Sprintf("key%02d", i), FromInt(int64(i)))
	}

	got := Summarize(root, 3)
	require.Equal(t, KindMapping, got.Kind())
	require.Equal(t, 21, got.Len(), "twenty keys plus the collapse marker")

	marker, ok := got.Get("...")
	require.True(t, ok)
	assert.Equal(t, "12 more keys", marker.String())
}

func TestSummarizeDefaultDepth(t *testing.T) {
	root := mapping("a", mapping("b", mapping("c", mapping("d", FromInt(1)))))
	got := Summarize(root, 0)
	assert.LessOrEqual(t, valueDepth(got), DefaultShapeDepth)
}
