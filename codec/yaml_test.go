package codec

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treekeep/doctree/docerrors"
	"github.com/treekeep/doctree/tree"
)

func yamlCodec() *YAML { return &YAML{MaxSize: DefaultMaxDocumentSize} }

const yamlFixture = `
name: widget
count: 3
ratio: 0.5
enabled: true
empty: null
hosts:
  - host: db-01
    port: 5432
  - host: db-02
    port: 5433
`

func TestYAMLDecode(t *testing.T) {
	v, err := yamlCodec().Decode([]byte(yamlFixture))
	require.NoError(t, err)
	require.Equal(t, tree.KindMapping, v.Kind())
	assert.Equal(t, []string{"name", "count", "ratio", "enabled", "empty", "hosts"}, v.Keys())

	got, ok := tree.Resolve(v, "hosts.0.port")
	require.True(t, ok)
	assert.Equal(t, float64(5432), got.Number())

	empty, _ := v.Get("empty")
	assert.Equal(t, tree.KindNull, empty.Kind())
}

func TestYAMLDecodeAnchorsExpand(t *testing.T) {
	v, err := yamlCodec().Decode([]byte(`
base: &defaults
  retries: 3
primary: *defaults
`))
	require.NoError(t, err)

	got, ok := tree.Resolve(v, "primary.retries")
	require.True(t, ok)
	assert.Equal(t, float64(3), got.Number())

	// The alias expands to a copy, not a shared node.
	require.NoError(t, tree.Assign(v, "primary.retries", tree.FromInt(9)))
	orig, _ := tree.Resolve(v, "base.retries")
	assert.Equal(t, float64(3), orig.Number())
}

func TestYAMLDecodeInvalid(t *testing.T) {
	_, err := yamlCodec().Decode([]byte("a:\n  - 1\n bad-indent: x"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, docerrors.ErrParse))
}

func TestYAMLDecodeEmpty(t *testing.T) {
	v, err := yamlCodec().Decode(nil)
	require.NoError(t, err)
	assert.Equal(t, tree.KindNull, v.Kind())
}

func TestYAMLRoundTrip(t *testing.T) {
	v, err := yamlCodec().Decode([]byte(yamlFixture))
	require.NoError(t, err)

	out, err := yamlCodec().Encode(v)
	require.NoError(t, err)

	back, err := yamlCodec().Decode(out)
	require.NoError(t, err)
	assert.True(t, tree.Equal(v, back))
}

func TestYAMLEncodeQuotesAmbiguousStrings(t *testing.T) {
	m := tree.NewMapping()
	m.Set("version", tree.FromString("1.0"))
	m.Set("flag", tree.FromString("true"))

	out, err := yamlCodec().Encode(m)
	require.NoError(t, err)

	back, err := yamlCodec().Decode(out)
	require.NoError(t, err)
	version, _ := back.Get("version")
	assert.Equal(t, tree.KindString, version.Kind(), "string stays a string: %s", out)
	flag, _ := back.Get("flag")
	assert.Equal(t, tree.KindString, flag.Kind())
}

func TestYAMLEncodeKeyOrder(t *testing.T) {
	m := tree.NewMapping()
	m.Set("zebra", tree.FromInt(1))
	m.Set("apple", tree.FromInt(2))

	out, err := yamlCodec().Encode(m)
	require.NoError(t, err)
	text := string(out)
	assert.Less(t, strings.Index(text, "zebra:"), strings.Index(text, "apple:"))
}
