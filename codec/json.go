package codec

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"go.yaml.in/yaml/v4"

	"github.com/treekeep/doctree/docerrors"
	"github.com/treekeep/doctree/tree"
)

// JSON is the JSON front-end. Decoding runs through the YAML node tree
// (JSON is a YAML subset) because that is the only decode path that
// preserves mapping key order; strictness is kept by validating the
// input as JSON first. Encoding writes keys in tree order.
type JSON struct {
	// MaxSize is the decode byte ceiling. Non-positive disables it.
	MaxSize int64
	// Logger receives debug output. Nil disables logging.
	Logger Logger
}

// Format implements Codec.
func (c *JSON) Format() Format { return FormatJSON }

// Decode implements Codec.
func (c *JSON) Decode(data []byte) (*tree.Value, error) {
	if err := checkSize(len(data), c.MaxSize); err != nil {
		return nil, err
	}
	if !json.Valid(data) {
		// Re-run through encoding/json purely for its error message.
		var probe any
		err := json.Unmarshal(data, &probe)
		return nil, &docerrors.ParseError{Format: "json", Cause: err}
	}
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, &docerrors.ParseError{Format: "json", Cause: err}
	}
	v, err := fromYAMLNode(&node)
	if err != nil {
		return nil, &docerrors.ParseError{Format: "json", Cause: err}
	}
	logOrNop(c.Logger).Debug("decoded document", "format", "json", "bytes", len(data))
	return v, nil
}

// Encode implements Codec.
func (c *JSON) Encode(v *tree.Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// writeJSON writes a tree as compact JSON, keys in tree order.
func writeJSON(buf *bytes.Buffer, v *tree.Value) error {
	switch v.Kind() {
	case tree.KindNull:
		buf.WriteString("null")
	case tree.KindBool:
		buf.WriteString(strconv.FormatBool(v.Bool()))
	case tree.KindNumber:
		f := v.Number()
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return &docerrors.ConfigError{
				Option:  "value",
				Value:   f,
				Message: "json cannot represent non-finite numbers",
			}
		}
		buf.WriteString(tree.FormatNumber(f))
	case tree.KindString:
		data, err := json.Marshal(v.String())
		if err != nil {
			return err
		}
		buf.Write(data)
	case tree.KindSequence:
		buf.WriteByte('[')
		for i, item := range v.Elements() {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case tree.KindMapping:
		buf.WriteByte('{')
		for i, key := range v.Keys() {
			if i > 0 {
				buf.WriteByte(',')
			}
			keyData, err := json.Marshal(key)
			if err != nil {
				return err
			}
			buf.Write(keyData)
			buf.WriteByte(':')
			child, _ := v.Get(key)
			if err := writeJSON(buf, child); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}
