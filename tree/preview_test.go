package tree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreview(t *testing.T) {
	tests := []struct {
		name string
		in   *Value
		want string
	}{
		{"null", Null(), "null"},
		{"bool", FromBool(false), "false"},
		{"integer number", FromInt(42), "42"},
		{"fractional number", FromNumber(2.5), "2.5"},
		{"short string", FromString("hello"), "hello"},
		{"sequence", NewSequence(FromInt(1), FromInt(2)), "{Sequence(2)}"},
		{"mapping", mapping("a", FromInt(1)), "{Mapping with 1 keys}"},
		{"empty sequence", NewSequence(), "{Sequence(0)}"},
		{"empty mapping", NewMapping(), "{Mapping with 0 keys}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Preview(tt.in))
		})
	}
}

func TestPreviewTruncatesLongStrings(t *testing.T) {
	long := strings.Repeat("a", 250)
	got := Preview(FromString(long))
	assert.Len(t, got, 103)
	assert.True(t, strings.HasSuffix(got, "..."))

	exact := strings.Repeat("a", 100)
	assert.Equal(t, exact, Preview(FromString(exact)), "exactly 100 chars is untouched")
}

func TestPreviewTruncatesOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("日", 120)
	got := Preview(FromString(long))
	assert.Equal(t, strings.Repeat("日", 100)+"...", got)
}

func TestPreviewIsDeterministic(t *testing.T) {
	v := mapping("a", FromInt(1), "b", FromInt(2))
	first := Preview(v)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Preview(v))
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{5, "5"},
		{-3, "-3"},
		{2.5, "2.5"},
		{0.001, "0.001"},
		{1e300, "1e+300"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in))
	}
}
