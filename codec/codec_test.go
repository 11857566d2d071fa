package codec

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treekeep/doctree/docerrors"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"YAML", FormatYAML, false},
		{"yml", FormatYAML, false},
		{" toml ", FormatTOML, false},
		{"xml", FormatXML, false},
		{"csv", FormatUnknown, true},
		{"", FormatUnknown, true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			require.Error(t, err, "input %q", tt.in)
			assert.True(t, errors.Is(err, docerrors.ErrConfig))
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"config.json", FormatJSON},
		{"config.yaml", FormatYAML},
		{"config.YML", FormatYAML},
		{"Cargo.toml", FormatTOML},
		{"pom.xml", FormatXML},
		{"README.md", FormatUnknown},
		{"noext", FormatUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectFormat(tt.path), "path %q", tt.path)
	}
}

func TestDetectFormatFromContent(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Format
	}{
		{"json object", `  {"a": 1}`, FormatJSON},
		{"json array", "[1, 2]", FormatJSON},
		{"xml", "\n<config/>", FormatXML},
		{"yaml", "a: 1", FormatYAML},
		{"toml reads as yaml", "a = 1", FormatYAML},
		{"empty", "   ", FormatUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormatFromContent([]byte(tt.data)))
		})
	}
}

func TestForCoversAllFormats(t *testing.T) {
	for _, f := range Formats() {
		c, err := For(f)
		require.NoError(t, err, "format %s", f)
		assert.Equal(t, f, c.Format())
	}

	_, err := For(FormatUnknown)
	require.Error(t, err)
	assert.True(t, errors.Is(err, docerrors.ErrConfig))
}

func TestDecodeSizeCeiling(t *testing.T) {
	data := []byte(`{"a": "` + strings.Repeat("x", 100) + `"}`)
	for _, f := range Formats() {
		var c Codec
		switch f {
		case FormatJSON:
			c = &JSON{MaxSize: 10}
		case FormatYAML:
			c = &YAML{MaxSize: 10}
		case FormatTOML:
			c = &TOML{MaxSize: 10}
		case FormatXML:
			c = &XML{MaxSize: 10}
		}
		_, err := c.Decode(data)
		require.Error(t, err, "format %s", f)
		assert.True(t, errors.Is(err, docerrors.ErrResourceLimit), "format %s", f)
	}
}

func TestConvertJSONToYAML(t *testing.T) {
	out, err := Convert([]byte(`{"name": "widget", "count": 2}`), FormatJSON, FormatYAML)
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "name: widget")
	assert.Contains(t, text, "count: 2")
	// Key order survives the conversion.
	assert.Less(t, strings.Index(text, "name:"), strings.Index(text, "count:"))
}

func TestConvertYAMLToJSON(t *testing.T) {
	out, err := Convert([]byte("b: 2\na: 1\n"), FormatYAML, FormatJSON)
	require.NoError(t, err)
	assert.Less(t, strings.Index(string(out), `"b"`), strings.Index(string(out), `"a"`))
}

func TestConvertBadInput(t *testing.T) {
	_, err := Convert([]byte("{not json"), FormatJSON, FormatYAML)
	require.Error(t, err)
	assert.True(t, errors.Is(err, docerrors.ErrParse))
}
