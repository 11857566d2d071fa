package codec

import (
	"go.yaml.in/yaml/v4"

	"github.com/treekeep/doctree/docerrors"
	"github.com/treekeep/doctree/tree"
)

// YAML is the YAML front-end. Decoding goes through the yaml.Node tree
// so mapping key order survives the round trip.
type YAML struct {
	// MaxSize is the decode byte ceiling. Non-positive disables it.
	MaxSize int64
	// Logger receives debug output. Nil disables logging.
	Logger Logger
}

// Format implements Codec.
func (c *YAML) Format() Format { return FormatYAML }

// Decode implements Codec.
func (c *YAML) Decode(data []byte) (*tree.Value, error) {
	if err := checkSize(len(data), c.MaxSize); err != nil {
		return nil, err
	}
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, &docerrors.ParseError{Format: "yaml", Cause: err}
	}
	v, err := fromYAMLNode(&node)
	if err != nil {
		return nil, &docerrors.ParseError{Format: "yaml", Cause: err}
	}
	logOrNop(c.Logger).Debug("decoded document", "format", "yaml", "bytes", len(data))
	return v, nil
}

// Encode implements Codec.
func (c *YAML) Encode(v *tree.Value) ([]byte, error) {
	return yaml.Marshal(toYAMLNode(v))
}
