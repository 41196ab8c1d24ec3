package typeguard

import (
	"strconv"
	"strings"
)

// indent prefixes two spaces after every newline in s, per spec.md §4.1: "a
// pure utility that prefixes two spaces after every newline in its
// argument."
func indent(s string) string {
	return strings.ReplaceAll(s, "\n", "\n  ")
}

// PrintOpt controls typeToString rendering.
type PrintOpt struct {
	Short bool
}

// typeToString produces a human-readable form of t close to source syntax.
// When t.Name is set, it is printed instead of the structural form.
func typeToString(schema *Schema, t *TypeNode, opt PrintOpt) string {
	if t.Name != "" {
		return t.Name
	}
	switch t.Kind {
	case KindString:
		if t.SpecialName != "" {
			return t.SpecialName
		}
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindNull:
		return "null"
	case KindUndefined:
		return "undefined"
	case KindUnknown:
		return "unknown"
	case KindStringLiteral:
		return "'" + t.StringValue + "'"
	case KindNumberLiteral:
		return strconv.FormatFloat(t.NumberValue, 'g', -1, 64)
	case KindBoolLiteral:
		return strconv.FormatBool(t.BoolValue)
	case KindArray:
		return "Array<" + typeToString(schema, t.ElementType, opt) + ">"
	case KindInterface:
		return printInterface(schema, t, opt)
	case KindUnion:
		parts := make([]string, len(t.UnionMembers))
		for i, m := range t.UnionMembers {
			parts[i] = typeToString(schema, m, opt)
		}
		return strings.Join(parts, " | ")
	case KindIntersection:
		parts := make([]string, len(t.IntersectionMembers))
		for i, m := range t.IntersectionMembers {
			parts[i] = typeToString(schema, m, opt)
		}
		return strings.Join(parts, " & ")
	case KindMapped:
		return "{ [key in " + typeToString(schema, t.MapFrom, opt) + "]" + optMark(t.Optional) + ": " + typeToString(schema, t.MapTo, opt) + " }"
	case KindIndexSig:
		return "{ [key: " + typeToString(schema, t.KeyType, opt) + "]: " + typeToString(schema, t.ValueType, opt) + " }"
	case KindOmit:
		keys := make([]string, len(t.OmittedFields))
		for i, k := range t.OmittedFields {
			keys[i] = "'" + k + "'"
		}
		return "Omit<" + typeToString(schema, t.Base, opt) + ", " + strings.Join(keys, " | ") + ">"
	case KindKeyof:
		return "keyof " + typeToString(schema, t.Base, opt)
	case KindPartial:
		return "Partial<" + typeToString(schema, t.ElementType, opt) + ">"
	case KindReference:
		return t.ReferencedTypeName
	default:
		return string(t.Kind)
	}
}

func optMark(optional bool) string {
	if optional {
		return "?"
	}
	return ""
}

func printInterface(schema *Schema, t *TypeNode, opt PrintOpt) string {
	if len(t.Fields) == 0 && len(t.Heritage) == 0 {
		return "{}"
	}
	members := make([]string, 0, len(t.Fields)+len(t.Heritage))
	for _, f := range t.Fields {
		members = append(members, f.Name+optMark(f.Optional)+": "+typeToString(schema, f.Type, opt))
	}
	for _, h := range t.Heritage {
		members = append(members, "...; // extends "+h.Name)
	}
	if opt.Short {
		return "{ " + strings.Join(members, "; ") + " }"
	}
	body := strings.Join(members, ";\n")
	return "{\n  " + indent(body) + ";\n}"
}
