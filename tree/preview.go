package tree

import (
	"math"
	"strconv"
)

// previewStringLimit is where Preview truncates long strings.
const previewStringLimit = 100

// Preview renders a value as a short, deterministic, human-readable
// line: strings are truncated at 100 characters with an ellipsis
// marker, collections render as count descriptors, and scalars use
// their natural text form.
func Preview(v *Value) string {
	switch v.Kind() {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.boolVal)
	case KindNumber:
		return FormatNumber(v.numVal)
	case KindString:
		return truncate(v.strVal, previewStringLimit)
	case KindSequence, KindMapping:
		return describe(v)
	default:
		return v.Kind().String()
	}
}

// FormatNumber renders a number the way the front-ends do: integral
// values without a fractional part, everything else in the shortest
// form that round-trips.
func FormatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// truncate cuts s to at most limit runes, appending "..." when anything
// was dropped.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
