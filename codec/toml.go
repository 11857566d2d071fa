package codec

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/treekeep/doctree/docerrors"
	"github.com/treekeep/doctree/tree"
)

// TOML is the TOML front-end. BurntSushi decodes into plain maps, so
// key order is recovered from the decoder's MetaData key listing, which
// reports keys in document order. Encoding canonicalizes: the encoder
// sorts table keys itself.
//
// A TOML document is always a table, so non-mapping roots and null
// values are rejected on encode rather than silently mangled.
type TOML struct {
	// MaxSize is the decode byte ceiling. Non-positive disables it.
	MaxSize int64
	// Logger receives debug output. Nil disables logging.
	Logger Logger
}

// Format implements Codec.
func (c *TOML) Format() Format { return FormatTOML }

// Decode implements Codec.
func (c *TOML) Decode(data []byte) (*tree.Value, error) {
	if err := checkSize(len(data), c.MaxSize); err != nil {
		return nil, err
	}
	var raw map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		perr := &docerrors.ParseError{Format: "toml", Cause: err}
		var tomlErr toml.ParseError
		if errors.As(err, &tomlErr) {
			perr.Line = tomlErr.Position.Line
		}
		return nil, perr
	}
	v, err := fromTOMLValue(raw, nil, keyOrder(md))
	if err != nil {
		return nil, &docerrors.ParseError{Format: "toml", Cause: err}
	}
	logOrNop(c.Logger).Debug("decoded document", "format", "toml", "bytes", len(data))
	return v, nil
}

// Encode implements Codec.
func (c *TOML) Encode(v *tree.Value) ([]byte, error) {
	if v.Kind() != tree.KindMapping {
		return nil, &docerrors.ConfigError{
			Option:  "document",
			Message: "toml documents must have a mapping root",
		}
	}
	if path, found := findNull(v, ""); found {
		return nil, &docerrors.ConfigError{
			Option:  "document",
			Value:   path,
			Message: "toml cannot represent null values",
		}
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(toAny(v)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// pathSep joins key-order index paths. NUL cannot appear in a bare or
// quoted TOML key that also names a Go map entry we care about.
const pathSep = "\x00"

// keyOrder flattens MetaData.Keys into a parent-path -> ordered child
// keys index. Keys repeated by array tables are recorded once.
func keyOrder(md toml.MetaData) map[string][]string {
	order := make(map[string][]string)
	seen := make(map[string]bool)
	for _, key := range md.Keys() {
		parent := strings.Join(key[:len(key)-1], pathSep)
		full := strings.Join(key, pathSep)
		if !seen[full] {
			seen[full] = true
			order[parent] = append(order[parent], key[len(key)-1])
		}
	}
	return order
}

// fromTOMLValue projects a decoded TOML value onto the tree, restoring
// mapping key order from the order index where it is known and falling
// back to the sorted projection elsewhere (inline values the MetaData
// does not itemize).
func fromTOMLValue(v any, path []string, order map[string][]string) (*tree.Value, error) {
	switch val := v.(type) {
	case map[string]any:
		ordered := order[strings.Join(path, pathSep)]
		m := tree.NewMapping()
		for _, key := range ordered {
			child, ok := val[key]
			if !ok {
				continue
			}
			childPath := make([]string, 0, len(path)+1)
			childPath = append(append(childPath, path...), key)
			cv, err := fromTOMLValue(child, childPath, order)
			if err != nil {
				return nil, err
			}
			m.Set(key, cv)
		}
		// Anything the order index missed still has to land somewhere.
		if m.Len() < len(val) {
			fallback, err := fromAny(val)
			if err != nil {
				return nil, err
			}
			for _, key := range fallback.Keys() {
				if _, ok := m.Get(key); !ok {
					child, _ := fallback.Get(key)
					m.Set(key, child)
				}
			}
		}
		return m, nil
	case []map[string]any:
		s := tree.NewSequence()
		for _, item := range val {
			cv, err := fromTOMLValue(item, path, order)
			if err != nil {
				return nil, err
			}
			s.Append(cv)
		}
		return s, nil
	case []any:
		s := tree.NewSequence()
		for _, item := range val {
			cv, err := fromTOMLValue(item, path, order)
			if err != nil {
				return nil, err
			}
			s.Append(cv)
		}
		return s, nil
	default:
		return fromAny(v)
	}
}

// findNull locates the first null in a tree, returning its display path.
func findNull(v *tree.Value, path string) (string, bool) {
	switch v.Kind() {
	case tree.KindNull:
		return path, true
	case tree.KindMapping:
		for _, key := range v.Keys() {
			child, _ := v.Get(key)
			p := key
			if path != "" {
				p = path + "." + key
			}
			if found, ok := findNull(child, p); ok {
				return found, ok
			}
		}
	case tree.KindSequence:
		for i, item := range v.Elements() {
			if found, ok := findNull(item, fmt.Sprintf("%s[%d]", path, i)); ok {
				return found, ok
			}
		}
	}
	return "", false
}
