package codec

import (
	"fmt"
	"math"
	"strconv"

	"go.yaml.in/yaml/v4"

	"github.com/treekeep/doctree/tree"
)

// fromYAMLNode converts a decoded yaml.Node into a tree, preserving
// mapping key order as it appears in the source. Both the YAML and the
// JSON codec go through here: the YAML parser accepts JSON, and the
// node tree is the only decode path that keeps key order.
func fromYAMLNode(n *yaml.Node) (*tree.Value, error) {
	if n == nil {
		return tree.Null(), nil
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return tree.Null(), nil
		}
		return fromYAMLNode(n.Content[0])

	case yaml.MappingNode:
		m := tree.NewMapping()
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode := n.Content[i]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("non-scalar mapping key at line %d", keyNode.Line)
			}
			child, err := fromYAMLNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			// Duplicate keys: last one wins, matching the YAML parsers'
			// own behavior for plain map decoding.
			m.Set(keyNode.Value, child)
		}
		return m, nil

	case yaml.SequenceNode:
		s := tree.NewSequence()
		for _, item := range n.Content {
			child, err := fromYAMLNode(item)
			if err != nil {
				return nil, err
			}
			s.Append(child)
		}
		return s, nil

	case yaml.AliasNode:
		// Aliases cannot form cycles in YAML (they only point backwards),
		// so expanding them into copies terminates.
		return fromYAMLNode(n.Alias)

	case yaml.ScalarNode:
		return scalarFromNode(n), nil

	default:
		return tree.Null(), nil
	}
}

// scalarFromNode maps a resolved scalar node onto the Value grammar.
// Anything that fails its tagged parse degrades to a string rather
// than failing the whole decode.
func scalarFromNode(n *yaml.Node) *tree.Value {
	switch n.Tag {
	case "!!null":
		return tree.Null()
	case "!!bool":
		if b, err := strconv.ParseBool(n.Value); err == nil {
			return tree.FromBool(b)
		}
	case "!!int":
		if i, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
			return tree.FromInt(i)
		}
		if f, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return tree.FromNumber(f)
		}
	case "!!float":
		switch n.Value {
		case ".inf", "+.inf":
			return tree.FromNumber(math.Inf(1))
		case "-.inf":
			return tree.FromNumber(math.Inf(-1))
		case ".nan":
			return tree.FromNumber(math.NaN())
		}
		if f, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return tree.FromNumber(f)
		}
	}
	return tree.FromString(n.Value)
}

// toYAMLNode converts a tree into a yaml.Node for encoding, emitting
// mapping keys in tree order.
func toYAMLNode(v *tree.Value) *yaml.Node {
	switch v.Kind() {
	case tree.KindNull:
		return scalarNode("!!null", "null")
	case tree.KindBool:
		return scalarNode("!!bool", strconv.FormatBool(v.Bool()))
	case tree.KindNumber:
		f := v.Number()
		if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return scalarNode("!!int", strconv.FormatInt(int64(f), 10))
		}
		return scalarNode("!!float", strconv.FormatFloat(f, 'g', -1, 64))
	case tree.KindString:
		return scalarNode("!!str", v.String())
	case tree.KindSequence:
		node := &yaml.Node{
			Kind:    yaml.SequenceNode,
			Content: make([]*yaml.Node, 0, v.Len()),
		}
		for _, item := range v.Elements() {
			node.Content = append(node.Content, toYAMLNode(item))
		}
		return node
	case tree.KindMapping:
		node := &yaml.Node{
			Kind:    yaml.MappingNode,
			Content: make([]*yaml.Node, 0, v.Len()*2),
		}
		for _, key := range v.Keys() {
			child, _ := v.Get(key)
			node.Content = append(node.Content, scalarNode("!!str", key), toYAMLNode(child))
		}
		return node
	default:
		return scalarNode("!!null", "null")
	}
}

// scalarNode creates a yaml.Node for a scalar value.
func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}
