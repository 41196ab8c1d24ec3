package typeguard

import (
	"strconv"
	"strings"
)

// Undefined is the explicit sentinel for the JSON-less concept of "present
// but undefined" that spec.md's MissingField rule distinguishes from an
// absent key. Values decoded from JSON never produce Undefined (JSON has no
// such value); it exists only so hand-built Go values can express the same
// distinction the algebra's `undefined` kind requires.
type Undefined struct{}

// UndefinedValue is the single instance of Undefined.
var UndefinedValue = Undefined{}

// Path building is kept as plain string concatenation, adapted from the
// teacher's ref_pathref.go chain-safe PathRef builder but rendering the
// bracket-quoted grammar spec.md §9 requires instead of a JSON Pointer:
// "keep valuePath and typePath as plain strings to match the exact output
// format... do not model paths as structured arrays."

func fieldPath(base, name string) string {
	return base + "['" + name + "']"
}

func indexPath(base string, i int) string {
	return base + "[" + strconv.Itoa(i) + "]"
}

// reprOf renders value the way spec.md §4.3 describes for the "(aka. `...`)"
// short-value form: JSON for objects/arrays, single-quoted for strings, raw
// textual form otherwise.
func reprOf(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case Undefined:
		return "undefined"
	case string:
		return "'" + v + "'"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		b, err := marshalJSON(v)
		if err != nil {
			return "<unprintable>"
		}
		return string(b)
	}
}

// shortValueAt renders the <short-value> form for a value found at path:
// path alone when reprOf(value) is >= 40 characters, else
// "path (aka. `repr`)".
func shortValueAt(path string, value any) string {
	repr := reprOf(value)
	if len(repr) >= 40 {
		return path
	}
	return path + " (aka. `" + repr + "`)"
}

// sentinelType is the literal token substituted for the top-level type
// placeholder per spec.md §4.3 when no better short form is available.
const sentinelType = "_TYPE_"

// shortType renders the <short-type> form: the node's declared Name if any,
// else a short typeToString rendering, falling back to fallback when the
// structural form is "substantially longer" than the fallback.
func shortType(schema *Schema, node *TypeNode, fallback string) string {
	if node.Name != "" {
		return node.Name
	}
	full := typeToString(schema, node, PrintOpt{Short: true})
	if fallback != "" && len(full) > len(fallback)+20 {
		return fallback
	}
	return full
}

// ordinal renders 1 as "1st", 2 as "2nd", 3 as "3rd", 4 as "4th", 11-13 as
// "11th"/"12th"/"13th", etc.
func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
		suffix = "th"
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return strconv.Itoa(n) + suffix
}

// quoteList renders ['a', 'b', 'c'] style lists for EnumMismatch/keyof
// diagnostics.
func quoteList(items []string) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = "'" + it + "'"
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
