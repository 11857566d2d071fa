package codec

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"time"

	"github.com/treekeep/doctree/tree"
)

// fromAny projects a decoded Go value onto the Value grammar. Map keys
// come out sorted: the map-based codecs (TOML, XML) have no inherent
// order to preserve, so sorting keeps the projection deterministic.
func fromAny(v any) (*tree.Value, error) {
	switch val := v.(type) {
	case nil:
		return tree.Null(), nil
	case bool:
		return tree.FromBool(val), nil
	case int:
		return tree.FromInt(int64(val)), nil
	case int64:
		return tree.FromInt(val), nil
	case uint64:
		return tree.FromNumber(float64(val)), nil
	case float32:
		return tree.FromNumber(float64(val)), nil
	case float64:
		return tree.FromNumber(val), nil
	case string:
		return tree.FromString(val), nil
	case time.Time:
		return tree.FromString(val.Format(time.RFC3339)), nil
	case []any:
		s := tree.NewSequence()
		for _, item := range val {
			child, err := fromAny(item)
			if err != nil {
				return nil, err
			}
			s.Append(child)
		}
		return s, nil
	case []map[string]any:
		// BurntSushi/toml decodes arrays of tables this way.
		s := tree.NewSequence()
		for _, item := range val {
			child, err := fromAny(item)
			if err != nil {
				return nil, err
			}
			s.Append(child)
		}
		return s, nil
	case map[string]any:
		m := tree.NewMapping()
		for _, key := range slices.Sorted(maps.Keys(val)) {
			child, err := fromAny(val[key])
			if err != nil {
				return nil, err
			}
			m.Set(key, child)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("cannot represent %T as a document value", v)
	}
}

// toAny projects a tree onto plain Go values for encoders that consume
// map[string]any. Mapping key order is lost; integral numbers come out
// as int64 so encoders do not print them with a fractional part.
func toAny(v *tree.Value) any {
	switch v.Kind() {
	case tree.KindNull:
		return nil
	case tree.KindBool:
		return v.Bool()
	case tree.KindNumber:
		f := v.Number()
		if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return int64(f)
		}
		return f
	case tree.KindString:
		return v.String()
	case tree.KindSequence:
		out := make([]any, 0, v.Len())
		for _, item := range v.Elements() {
			out = append(out, toAny(item))
		}
		return out
	case tree.KindMapping:
		out := make(map[string]any, v.Len())
		for _, key := range v.Keys() {
			child, _ := v.Get(key)
			out[key] = toAny(child)
		}
		return out
	default:
		return nil
	}
}
