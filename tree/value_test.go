package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapping builds a mapping from alternating key, value pairs.
func mapping(pairs ...any) *Value {
	m := NewMapping()
	for i := 0; i < len(pairs); i += 2 {
		m.Set(pairs[i].(string), pairs[i+1].(*Value))
	}
	return m
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindNull, "null"},
		{KindBool, "bool"},
		{KindNumber, "number"},
		{KindString, "string"},
		{KindSequence, "sequence"},
		{KindMapping, "mapping"},
		{Kind(42), "<unknown kind>"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestKindTextRoundTrip(t *testing.T) {
	for _, k := range []Kind{KindNull, KindBool, KindNumber, KindString, KindSequence, KindMapping} {
		data, err := k.MarshalText()
		require.NoError(t, err)
		var back Kind
		require.NoError(t, back.UnmarshalText(data))
		assert.Equal(t, k, back)
	}

	var k Kind
	assert.Error(t, k.UnmarshalText([]byte("widget")))
}

func TestMappingOrderAndUniqueness(t *testing.T) {
	m := NewMapping()
	m.Set("b", FromInt(1))
	m.Set("a", FromInt(2))
	m.Set("c", FromInt(3))
	assert.Equal(t, []string{"b", "a", "c"}, m.Keys())

	// Overwriting a key keeps its original position.
	m.Set("a", FromInt(9))
	assert.Equal(t, []string{"b", "a", "c"}, m.Keys())
	assert.Equal(t, 3, m.Len())

	got, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, float64(9), got.Number())
}

func TestMappingDelete(t *testing.T) {
	m := mapping("a", FromInt(1), "b", FromInt(2), "c", FromInt(3))

	assert.True(t, m.Delete("b"))
	assert.Equal(t, []string{"a", "c"}, m.Keys())

	assert.False(t, m.Delete("b"), "second delete reports absent")
	assert.False(t, FromString("x").Delete("b"), "delete on a scalar is a no-op")
}

func TestSequenceAccess(t *testing.T) {
	s := NewSequence(FromInt(1), FromInt(2))
	s.Append(FromInt(3))

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, float64(2), s.At(1).Number())
	assert.Nil(t, s.At(3))
	assert.Nil(t, s.At(-1))
	assert.Nil(t, FromInt(1).At(0))
}

func TestCloneIsDeep(t *testing.T) {
	orig := mapping(
		"items", NewSequence(FromString("a"), FromString("b")),
		"meta", mapping("count", FromInt(2)),
	)
	clone := orig.Clone()
	require.True(t, Equal(orig, clone))

	// Mutating the clone must not touch the original.
	require.NoError(t, Assign(clone, "meta.count", FromInt(99)))

	got, ok := Resolve(orig, "meta.count")
	require.True(t, ok)
	assert.Equal(t, float64(2), got.Number())
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Value
		want bool
	}{
		{"null", Null(), Null(), true},
		{"bool", FromBool(true), FromBool(true), true},
		{"bool differs", FromBool(true), FromBool(false), false},
		{"kind differs", FromInt(1), FromString("1"), false},
		{"string", FromString("x"), FromString("x"), true},
		{
			"sequence order matters",
			NewSequence(FromInt(1), FromInt(2)),
			NewSequence(FromInt(2), FromInt(1)),
			false,
		},
		{
			"mapping key order matters",
			mapping("a", FromInt(1), "b", FromInt(2)),
			mapping("b", FromInt(2), "a", FromInt(1)),
			false,
		},
		{
			"equal mappings",
			mapping("a", FromInt(1), "b", FromInt(2)),
			mapping("a", FromInt(1), "b", FromInt(2)),
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
		})
	}
}

func TestZeroValueIsNull(t *testing.T) {
	var v Value
	assert.Equal(t, KindNull, v.Kind())
	var nilVal *Value
	assert.Equal(t, KindNull, nilVal.Kind())
}
