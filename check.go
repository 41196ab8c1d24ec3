package typeguard

import (
	"strings"

	"github.com/typeguard-go/typeguard/formats"
)

// checkOptions carries the per-descent state the recursive checker needs
// beyond value/type/path: whether the current interface frame is being
// checked under Partial (all fields optional regardless of declaration) and
// the set of field names an enclosing Omit has removed from consideration.
type checkOptions struct {
	partial bool
	omitted map[string]bool
}

// CheckValueAgainstType reports whether value conforms to typ under schema.
// A non-empty diagnostic string means value does not conform; an empty
// string means it does. The error return is non-nil only when the schema
// itself is malformed (an undefined reference, Partial applied to a
// non-interface, an index-signature or unrestricted-string-keyed mapped type
// reached through a context requiring a finite property set) — a
// programming error distinct from a conformance failure, per spec.md §4.3's
// distinction between CheckFailure and schema/programming errors.
func CheckValueAgainstType(value any, typ *TypeNode, schema *Schema) (string, error) {
	err := check(value, typ, schema, "value", sentinelType, 0, checkOptions{})
	if err == nil {
		return "", nil
	}
	cf, ok := err.(*CheckFailure)
	if !ok {
		return "", err
	}
	return composeDiagnostic(value, typ, schema, cf), nil
}

// composeDiagnostic renders the top-level header, the accumulated "While
// checking" frames, and the value/_TYPE_ trailers, per spec.md §4.3 and the
// worked examples in §8.
func composeDiagnostic(rootValue any, rootType *TypeNode, schema *Schema, cf *CheckFailure) string {
	sv := shortValueAt("value", rootValue)
	st := shortType(schema, rootType, sentinelType)
	out := sv + " does not conform to " + st + "!\n\n" + cf.Message
	if sv == "value" || strings.Contains(cf.Message, "value[") {
		out += "\nvalue = " + prettyJSON(rootValue)
	}
	if st == sentinelType {
		out += "\n" + sentinelType + " = " + prettyJSON(rootType)
	}
	return out
}

// IsValid is the boolean convenience form, per spec.md §5. It returns false
// and swallows the diagnostic if value does not conform, and panics only for
// the same schema/programming errors CheckValueAgainstType can return.
func IsValid(value any, typ *TypeNode, schema *Schema) bool {
	diag, err := CheckValueAgainstType(value, typ, schema)
	if err != nil {
		panic(err)
	}
	return diag == ""
}

// check is the single recursive conformance procedure. valuePath and
// typePath are plain strings used verbatim in diagnostics, per spec.md §4.3:
// valuePath like value['foo'][3], typePath a short fallback description for
// the current type slot. It returns a *CheckFailure for ordinary conformance
// failures, any other error for a malformed schema, and nil when value
// conforms to typ.
func check(value any, typ *TypeNode, schema *Schema, valuePath, typePath string, depth int, opts checkOptions) error {
	rt, rerr := resolveType(schema, typ)
	if rerr != nil {
		return rerr
	}

	switch rt.Kind {
	case KindUnknown:
		return nil

	case KindString:
		s, ok := value.(string)
		if !ok {
			return typeMismatch(valuePath, "string", value)
		}
		if rt.SpecialName != "" {
			if msg, ok := formats.Validate(rt.SpecialName, s); !ok {
				return fail("%s fails format %s: %s", shortValueAt(valuePath, value), rt.SpecialName, msg)
			}
		}
		return nil

	case KindNumber:
		if !isNumber(value) {
			return typeMismatch(valuePath, "number", value)
		}
		return nil

	case KindBoolean:
		if _, ok := value.(bool); !ok {
			return typeMismatch(valuePath, "boolean", value)
		}
		return nil

	case KindNull:
		if value != nil {
			return typeMismatch(valuePath, "null", value)
		}
		return nil

	case KindUndefined:
		if _, ok := value.(Undefined); !ok {
			return typeMismatch(valuePath, "undefined", value)
		}
		return nil

	case KindStringLiteral:
		s, ok := value.(string)
		if !ok || s != rt.StringValue {
			return fail("%s does not equal literal '%s'", shortValueAt(valuePath, value), rt.StringValue)
		}
		return nil

	case KindNumberLiteral:
		n, ok := numberValue(value)
		if !ok || n != rt.NumberValue {
			return fail("%s does not equal literal %v", shortValueAt(valuePath, value), rt.NumberValue)
		}
		return nil

	case KindBoolLiteral:
		b, ok := value.(bool)
		if !ok || b != rt.BoolValue {
			return fail("%s does not equal literal %v", shortValueAt(valuePath, value), rt.BoolValue)
		}
		return nil

	case KindArray:
		return checkArray(value, rt, schema, valuePath, typePath, depth)

	case KindInterface:
		return checkInterface(value, rt, schema, valuePath, typePath, depth, opts)

	case KindUnion:
		return checkUnion(value, rt, schema, valuePath, typePath, depth, opts)

	case KindIntersection:
		return checkIntersection(value, rt, schema, valuePath, typePath, depth, opts)

	case KindMapped:
		return checkMapped(value, rt, schema, valuePath, typePath, depth)

	case KindIndexSig:
		return checkIndexSignature(value, rt, schema, valuePath, typePath, depth)

	case KindOmit:
		base, err := resolveType(schema, rt.Base)
		if err != nil {
			return err
		}
		omitted := map[string]bool{}
		for k, v := range opts.omitted {
			omitted[k] = v
		}
		for _, f := range rt.OmittedFields {
			omitted[f] = true
		}
		childOpts := checkOptions{partial: opts.partial, omitted: omitted}
		if err := check(value, base, schema, valuePath, shortType(schema, base, "object"), depth+1, childOpts); err != nil {
			return wrapChild(err, valuePath, value, schema, base, typePath)
		}
		return nil

	case KindKeyof:
		return checkKeyof(value, rt, schema, valuePath)

	case KindPartial:
		base, err := resolveType(schema, rt.ElementType)
		if err != nil {
			return err
		}
		if base.Kind != KindInterface {
			return &PartialOnNonInterfaceError{TypeDescription: typeToString(schema, base, PrintOpt{Short: true})}
		}
		childOpts := checkOptions{partial: true, omitted: opts.omitted}
		if err := check(value, base, schema, valuePath, shortType(schema, base, "object"), depth+1, childOpts); err != nil {
			return wrapChild(err, valuePath, value, schema, base, typePath)
		}
		return nil

	default:
		return fail("%s cannot be checked against unsupported kind %s", shortValueAt(valuePath, value), rt.Kind)
	}
}

// wrapChild wraps a failing sub-check with the "While checking ..." frame
// per spec.md §4.3's descent protocol. Non-CheckFailure errors (schema
// errors) pass through unwrapped.
func wrapChild(err error, childValuePath string, childValue any, schema *Schema, childType *TypeNode, fallbackTypePath string) error {
	cf, ok := err.(*CheckFailure)
	if !ok {
		return err
	}
	return wrapWhileChecking(cf, shortValueAt(childValuePath, childValue), shortType(schema, childType, fallbackTypePath))
}

func typeMismatch(path string, want string, got any) *CheckFailure {
	return fail("%s has JS type %s, expected %s", shortValueAt(path, got), jsTypeOf(got), want)
}

func jsTypeOf(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case Undefined:
		return "undefined"
	case bool:
		return "boolean"
	case string:
		return "string"
	case map[string]any:
		_ = x
		return "object"
	case []any:
		return "array"
	default:
		if isNumber(v) {
			return "number"
		}
		return "object"
	}
}

func isNumber(v any) bool {
	switch v.(type) {
	case float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	default:
		return false
	}
}

func numberValue(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}

func checkArray(value any, rt *TypeNode, schema *Schema, valuePath, typePath string, depth int) error {
	arr, ok := value.([]any)
	if !ok {
		return typeMismatch(valuePath, "array", value)
	}
	elemTypePath := shortType(schema, rt.ElementType, "array element")
	for i, el := range arr {
		ip := indexPath(valuePath, i)
		if err := check(el, rt.ElementType, schema, ip, elemTypePath, depth+1, checkOptions{}); err != nil {
			return wrapChild(err, ip, el, schema, rt.ElementType, elemTypePath)
		}
	}
	return nil
}

func checkInterface(value any, rt *TypeNode, schema *Schema, valuePath, typePath string, depth int, opts checkOptions) error {
	obj, ok := value.(map[string]any)
	if !ok {
		return typeMismatch(valuePath, "object", value)
	}
	for _, f := range rt.Fields {
		if opts.omitted[f.Name] {
			continue
		}
		fv, present := obj[f.Name]
		optional := f.Optional || opts.partial
		if !present {
			if optional {
				continue
			}
			return fail("%s is missing required field '%s'", shortValueAt(valuePath, value), f.Name)
		}
		if _, isUndef := fv.(Undefined); isUndef {
			if optional {
				continue
			}
			return fail("%s is missing required field '%s'", shortValueAt(valuePath, value), f.Name)
		}
		fp := fieldPath(valuePath, f.Name)
		ftp := shortType(schema, f.Type, f.Name)
		if err := check(fv, f.Type, schema, fp, ftp, depth+1, checkOptions{}); err != nil {
			return wrapChild(err, fp, fv, schema, f.Type, ftp)
		}
	}
	for _, h := range rt.Heritage {
		base, err := resolveType(schema, &TypeNode{Kind: KindReference, ReferencedTypeName: h.Name})
		if err != nil {
			return err
		}
		if err := check(value, base, schema, valuePath, h.Name, depth+1, opts); err != nil {
			return wrapChild(err, valuePath, value, schema, base, h.Name)
		}
	}
	return nil
}

func checkUnion(value any, rt *TypeNode, schema *Schema, valuePath, typePath string, depth int, opts checkOptions) error {
	// Tier 1: cached discriminated-union dispatch by "kind" literal.
	if len(rt.Kinds) > 0 {
		obj, ok := value.(map[string]any)
		if !ok {
			return typeMismatch(valuePath, "object", value)
		}
		kindVal, _ := obj["kind"].(string)
		for i, m := range rt.UnionMembers {
			rm, err := resolveType(schema, m)
			if err != nil {
				return err
			}
			lit, litOK := discriminatorLiteral(schema, rm)
			if litOK && lit == kindVal {
				mtp := shortType(schema, rm, ordinal(i+1)+" union member")
				if err := check(value, m, schema, valuePath, mtp, depth+1, opts); err != nil {
					return wrapChild(err, valuePath, value, schema, m, mtp)
				}
				return nil
			}
		}
		return fail("%s has kind '%s', which matches none of %s", shortValueAt(valuePath, value), kindVal, quoteList(rt.Kinds))
	}

	// Tier 2: enum-like union of string literals.
	if enumOK, err := isEnum(schema, rt); err != nil {
		return err
	} else if enumOK {
		s, ok := value.(string)
		values, verr := enumValues(schema, rt)
		if verr != nil {
			return verr
		}
		if !ok || !containsString(values, s) {
			return fail("%s is not one of %s", shortValueAt(valuePath, value), quoteList(values))
		}
		return nil
	}

	// Tier 3: brute-force try each member, report all failures, each labelled
	// with the member's ordinal, if every one fails.
	var msgs []string
	for i, m := range rt.UnionMembers {
		mtp := shortType(schema, m, ordinal(i+1)+" union member")
		if err := check(value, m, schema, valuePath, mtp, depth+1, opts); err != nil {
			cf, ok := err.(*CheckFailure)
			if !ok {
				return err
			}
			wrapped := wrapWhileChecking(cf, shortValueAt(valuePath, value), mtp)
			msgs = append(msgs, "- tried "+ordinal(i+1)+" union member, but got:\n  "+indent(wrapped.Message))
			continue
		}
		return nil
	}
	return fail("%s matched none of the %d union members:\n%s", shortValueAt(valuePath, value), len(rt.UnionMembers), strings.Join(msgs, "\n"))
}

func checkIntersection(value any, rt *TypeNode, schema *Schema, valuePath, typePath string, depth int, opts checkOptions) error {
	for i, m := range rt.IntersectionMembers {
		mtp := shortType(schema, m, ordinal(i+1)+" intersection member")
		if err := check(value, m, schema, valuePath, mtp, depth+1, opts); err != nil {
			return wrapChild(err, valuePath, value, schema, m, mtp)
		}
	}
	return nil
}

func checkMapped(value any, rt *TypeNode, schema *Schema, valuePath, typePath string, depth int) error {
	obj, ok := value.(map[string]any)
	if !ok {
		return typeMismatch(valuePath, "object", value)
	}
	keys, err := mappedPropertySet(schema, rt)
	if err != nil {
		if _, open := err.(*OpenPropertySetError); !open {
			return err
		}
		keys = nil
	}
	if keys != nil {
		for _, k := range keys {
			fv, present := obj[k]
			if !present {
				if rt.Optional {
					continue
				}
				return fail("%s is missing required field '%s'", shortValueAt(valuePath, value), k)
			}
			fp := fieldPath(valuePath, k)
			vtp := shortType(schema, rt.MapTo, k)
			if err := check(fv, rt.MapTo, schema, fp, vtp, depth+1, checkOptions{}); err != nil {
				return wrapChild(err, fp, fv, schema, rt.MapTo, vtp)
			}
		}
		return nil
	}
	for k, fv := range obj {
		fp := fieldPath(valuePath, k)
		vtp := shortType(schema, rt.MapTo, k)
		if err := check(fv, rt.MapTo, schema, fp, vtp, depth+1, checkOptions{}); err != nil {
			return wrapChild(err, fp, fv, schema, rt.MapTo, vtp)
		}
	}
	return nil
}

func checkIndexSignature(value any, rt *TypeNode, schema *Schema, valuePath, typePath string, depth int) error {
	obj, ok := value.(map[string]any)
	if !ok {
		return typeMismatch(valuePath, "object", value)
	}
	for k, fv := range obj {
		kp := fieldPath(valuePath, k)
		if err := check(k, rt.KeyType, schema, kp, "index key", depth+1, checkOptions{}); err != nil {
			return wrapChild(err, kp, k, schema, rt.KeyType, "index key")
		}
		vtp := shortType(schema, rt.ValueType, k)
		if err := check(fv, rt.ValueType, schema, kp, vtp, depth+1, checkOptions{}); err != nil {
			return wrapChild(err, kp, fv, schema, rt.ValueType, vtp)
		}
	}
	return nil
}

func checkKeyof(value any, rt *TypeNode, schema *Schema, valuePath string) error {
	base, err := resolveType(schema, rt.Base)
	if err != nil {
		return err
	}
	props, err := computePropertiesOfType(schema, base)
	if err != nil {
		return err
	}
	s, ok := value.(string)
	if !ok || !containsString(props, s) {
		return fail("%s is not one of %s", shortValueAt(valuePath, value), quoteList(props))
	}
	return nil
}

func containsString(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
