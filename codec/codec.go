// Package codec implements the format front-ends for the document tree
// engine: JSON, YAML, TOML, and XML codecs that decode text into a
// *tree.Value and encode a *tree.Value back to text.
//
// A codec's only job is the translation between its text format and the
// generic tree; all tree operations live in the tree package. Format
// quirks (XML attribute folding, TOML table ordering) are handled here,
// before or after the engine sees the tree, never inside it.
//
// Decoders enforce a document byte-size ceiling so an oversized input is
// rejected before a tree is ever built; the engine itself places no
// ceiling on tree size.
package codec

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/treekeep/doctree/docerrors"
	"github.com/treekeep/doctree/tree"
)

// Format identifies a supported document text format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatXML  Format = "xml"

	// FormatUnknown indicates the format could not be determined.
	FormatUnknown Format = "unknown"
)

// Formats returns all supported formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatTOML, FormatXML}
}

// ParseFormat parses a user-supplied format name, accepting common
// aliases ("yml").
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "xml":
		return FormatXML, nil
	default:
		return FormatUnknown, &docerrors.ConfigError{
			Option:  "format",
			Value:   s,
			Message: "supported formats: json, yaml, toml, xml",
		}
	}
}

// DetectFormat determines a document's format from its file extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	case ".xml":
		return FormatXML
	default:
		return FormatUnknown
	}
}

// DetectFormatFromContent sniffs a document's format from its leading
// bytes. JSON and XML have unambiguous openers; TOML and YAML cannot be
// told apart reliably, so everything else reports YAML (whose parser
// also accepts JSON).
func DetectFormatFromContent(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return FormatUnknown
	}
	switch trimmed[0] {
	case '{', '[':
		return FormatJSON
	case '<':
		return FormatXML
	}
	return FormatYAML
}

// DefaultMaxDocumentSize is the decode byte ceiling applied when a
// codec is constructed via For.
const DefaultMaxDocumentSize int64 = 10 << 20 // 10MB

// Codec translates between one text format and the generic tree.
type Codec interface {
	// Format reports which text format this codec handles.
	Format() Format
	// Decode parses text into a tree, enforcing the codec's size ceiling.
	Decode(data []byte) (*tree.Value, error)
	// Encode serializes a tree back to text.
	Encode(v *tree.Value) ([]byte, error)
}

// For returns the codec for a format, configured with
// DefaultMaxDocumentSize and no logging.
func For(f Format) (Codec, error) {
	switch f {
	case FormatJSON:
		return &JSON{MaxSize: DefaultMaxDocumentSize}, nil
	case FormatYAML:
		return &YAML{MaxSize: DefaultMaxDocumentSize}, nil
	case FormatTOML:
		return &TOML{MaxSize: DefaultMaxDocumentSize}, nil
	case FormatXML:
		return &XML{MaxSize: DefaultMaxDocumentSize}, nil
	default:
		return nil, &docerrors.ConfigError{
			Option:  "format",
			Value:   string(f),
			Message: "no codec for format",
		}
	}
}

// Convert decodes data in one format and re-encodes it in another.
func Convert(data []byte, from, to Format) ([]byte, error) {
	dec, err := For(from)
	if err != nil {
		return nil, err
	}
	enc, err := For(to)
	if err != nil {
		return nil, err
	}
	v, err := dec.Decode(data)
	if err != nil {
		return nil, err
	}
	return enc.Encode(v)
}

// checkSize rejects documents over the byte ceiling. A non-positive
// limit disables the check.
func checkSize(n int, limit int64) error {
	if limit > 0 && int64(n) > limit {
		return &docerrors.ResourceLimitError{
			ResourceType: "document_size",
			Limit:        limit,
			Actual:       int64(n),
		}
	}
	return nil
}
