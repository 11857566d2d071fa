package codec

import (
	"github.com/clbanning/mxj/v2"

	"github.com/treekeep/doctree/docerrors"
	"github.com/treekeep/doctree/tree"
)

const (
	// AttrPrefix marks mapping keys that were XML attributes, e.g. an
	// attribute id="1" on <host> decodes as key "@id" under "host".
	AttrPrefix = "@"

	// TextKey is the reserved mapping key holding element text content
	// when an element carries both attributes and text.
	TextKey = "#text"

	// xmlWrapperTag is the synthetic root element used when encoding a
	// mapping that has more than one top-level key.
	xmlWrapperTag = "doc"
)

func init() {
	// mxj's attribute prefix is package-global; pin it once so decoded
	// attribute keys are stable regardless of call order.
	mxj.SetAttrPrefix(AttrPrefix)
}

// XML is the XML front-end. Attributes fold into @-prefixed mapping
// keys and text content into the reserved #text key before the engine
// ever sees the tree; the engine itself knows nothing about XML.
//
// Child element order inside a parent is not preserved: mxj decodes to
// maps, and repeated sibling elements collapse into one sequence-valued
// key. Scalars are cast (numbers, booleans) where unambiguous.
type XML struct {
	// MaxSize is the decode byte ceiling. Non-positive disables it.
	MaxSize int64
	// Logger receives debug output. Nil disables logging.
	Logger Logger
}

// Format implements Codec.
func (c *XML) Format() Format { return FormatXML }

// Decode implements Codec.
func (c *XML) Decode(data []byte) (*tree.Value, error) {
	if err := checkSize(len(data), c.MaxSize); err != nil {
		return nil, err
	}
	m, err := mxj.NewMapXml(data, true)
	if err != nil {
		return nil, &docerrors.ParseError{Format: "xml", Cause: err}
	}
	v, err := fromAny(map[string]any(m))
	if err != nil {
		return nil, &docerrors.ParseError{Format: "xml", Cause: err}
	}
	logOrNop(c.Logger).Debug("decoded document", "format", "xml", "bytes", len(data))
	return v, nil
}

// Encode implements Codec.
func (c *XML) Encode(v *tree.Value) ([]byte, error) {
	if v.Kind() != tree.KindMapping {
		return nil, &docerrors.ConfigError{
			Option:  "document",
			Message: "xml documents must have a mapping root",
		}
	}
	m := toAny(v).(map[string]any)
	var out []byte
	var err error
	if len(m) == 1 {
		out, err = mxj.Map(m).XmlIndent("", "  ")
	} else {
		// No single root element to reuse; wrap under a synthetic one.
		out, err = mxj.AnyXmlIndent(m, "", "  ", xmlWrapperTag)
	}
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
