// Package tree implements the document tree engine: a format-agnostic
// value model with uniform path-based read/write/delete, structural
// summaries, key enumeration, and keyword search.
//
// Format front-ends (see the codec package) decode their text form into
// a *Value, call engine operations on it, and encode the result back.
// The engine holds no state across calls and performs no I/O: every
// operation is a synchronous walk over the tree it is handed.
//
// A *Value is owned by exactly one parent and must not be mutated from
// two goroutines at once; the engine provides no locking.
package tree

import "fmt"

// Kind identifies which variant of the Value union a node holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
)

// String returns the lowercase kind name, e.g. "mapping".
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "<unknown kind>"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"null":     KindNull,
		"bool":     KindBool,
		"number":   KindNumber,
		"string":   KindString,
		"sequence": KindSequence,
		"mapping":  KindMapping,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

// Value is the universal tree node: a tagged union over null, bool,
// number, string, sequence, and mapping. Mappings keep their entries in
// insertion order with unique keys; sequence order is significant.
//
// The zero Value is null.
type Value struct {
	kind Kind

	boolVal bool
	numVal  float64
	strVal  string

	items    []*Value          // sequence elements
	keys     []string          // mapping keys, insertion order
	children map[string]*Value // mapping values, keyed by keys
}

// Null returns a fresh null node.
func Null() *Value {
	return &Value{kind: KindNull}
}

// FromBool returns a bool node.
func FromBool(b bool) *Value {
	return &Value{kind: KindBool, boolVal: b}
}

// FromNumber returns a number node.
func FromNumber(f float64) *Value {
	return &Value{kind: KindNumber, numVal: f}
}

// FromInt returns a number node holding an integer value.
func FromInt(i int64) *Value {
	return &Value{kind: KindNumber, numVal: float64(i)}
}

// FromString returns a string node.
func FromString(s string) *Value {
	return &Value{kind: KindString, strVal: s}
}

// NewSequence returns a sequence node holding the given elements.
func NewSequence(items ...*Value) *Value {
	return &Value{kind: KindSequence, items: items}
}

// NewMapping returns an empty mapping node.
func NewMapping() *Value {
	return &Value{
		kind:     KindMapping,
		children: make(map[string]*Value),
	}
}

// Kind returns which variant this node holds.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// Bool returns the bool payload. Valid only for KindBool.
func (v *Value) Bool() bool { return v.boolVal }

// Number returns the number payload. Valid only for KindNumber.
func (v *Value) Number() float64 { return v.numVal }

// String returns the string payload for KindString nodes and the
// compact preview form for everything else, so a Value always has a
// printable text form.
func (v *Value) String() string {
	if v.Kind() == KindString {
		return v.strVal
	}
	return Preview(v)
}

// Len returns the element count for sequences and the key count for
// mappings; zero for scalars.
func (v *Value) Len() int {
	switch v.Kind() {
	case KindSequence:
		return len(v.items)
	case KindMapping:
		return len(v.keys)
	default:
		return 0
	}
}

// At returns the i-th sequence element, or nil if v is not a sequence
// or i is out of range.
func (v *Value) At(i int) *Value {
	if v.Kind() != KindSequence || i < 0 || i >= len(v.items) {
		return nil
	}
	return v.items[i]
}

// Append adds elements to the end of a sequence. No-op on non-sequences.
func (v *Value) Append(items ...*Value) {
	if v.Kind() != KindSequence {
		return
	}
	v.items = append(v.items, items...)
}

// Elements returns the underlying element slice of a sequence. Callers
// must not reorder it behind the tree's back; use Append to grow it.
func (v *Value) Elements() []*Value {
	if v.Kind() != KindSequence {
		return nil
	}
	return v.items
}

// Keys returns the mapping keys in insertion order. The returned slice
// is a copy and safe to retain.
func (v *Value) Keys() []string {
	if v.Kind() != KindMapping {
		return nil
	}
	out := make([]string, len(v.keys))
	copy(out, v.keys)
	return out
}

// Get looks up a mapping key. The second result is false when v is not
// a mapping or the key is absent.
func (v *Value) Get(key string) (*Value, bool) {
	if v.Kind() != KindMapping {
		return nil, false
	}
	child, ok := v.children[key]
	return child, ok
}

// Set writes a mapping entry, overwriting any prior value at that key.
// New keys are appended at the end, preserving insertion order. No-op
// on non-mappings.
func (v *Value) Set(key string, val *Value) {
	if v.Kind() != KindMapping {
		return
	}
	if _, ok := v.children[key]; !ok {
		v.keys = append(v.keys, key)
	}
	v.children[key] = val
}

// Delete removes a mapping entry, reporting whether the key existed.
func (v *Value) Delete(key string) bool {
	if v.Kind() != KindMapping {
		return false
	}
	if _, ok := v.children[key]; !ok {
		return false
	}
	delete(v.children, key)
	for i, k := range v.keys {
		if k == key {
			v.keys = append(v.keys[:i], v.keys[i+1:]...)
			break
		}
	}
	return true
}

// becomeMapping resets v in place to an empty mapping, discarding
// whatever it held. This is the destructive coercion Assign applies to
// non-mapping intermediates.
func (v *Value) becomeMapping() {
	*v = Value{
		kind:     KindMapping,
		children: make(map[string]*Value),
	}
}

// Clone returns a deep copy of v. The copy shares no nodes with the
// original.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	out := &Value{
		kind:    v.kind,
		boolVal: v.boolVal,
		numVal:  v.numVal,
		strVal:  v.strVal,
	}
	switch v.kind {
	case KindSequence:
		out.items = make([]*Value, len(v.items))
		for i, item := range v.items {
			out.items[i] = item.Clone()
		}
	case KindMapping:
		out.keys = make([]string, len(v.keys))
		copy(out.keys, v.keys)
		out.children = make(map[string]*Value, len(v.children))
		for k, child := range v.children {
			out.children[k] = child.Clone()
		}
	}
	return out
}

// Equal reports deep equality between two trees. Mapping key order is
// significant: two mappings with the same entries in different order
// are not equal, matching the round-trip guarantees of the front-ends.
func Equal(a, b *Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case KindNull:
		return true
	case KindBool:
		return a.boolVal == b.boolVal
	case KindNumber:
		return a.numVal == b.numVal
	case KindString:
		return a.strVal == b.strVal
	case KindSequence:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !Equal(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(a.keys) != len(b.keys) {
			return false
		}
		for i, k := range a.keys {
			if b.keys[i] != k {
				return false
			}
			if !Equal(a.children[k], b.children[k]) {
				return false
			}
		}
		return true
	}
	return false
}
