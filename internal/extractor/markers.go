package extractor

import (
	"go/ast"
	"reflect"
	"strconv"
	"strings"

	"github.com/typeguard-go/typeguard"
)

// lowerMarker dispatches on one of the generic marker types defined in the
// root package's markers.go, per this module's recognition table.
func (ex *extractor) lowerMarker(name string, args []ast.Expr, tag string) (*typeguard.TypeNode, error) {
	switch name {
	case "Omit":
		if len(args) != 2 {
			return nil, &UnsupportedDeclarationError{Why: "typeguard.Omit requires exactly two type arguments"}
		}
		base, err := ex.lowerExpr(args[0], "")
		if err != nil {
			return nil, err
		}
		keys, err := ex.resolveOmitKeys(args[1])
		if err != nil {
			return nil, err
		}
		return &typeguard.TypeNode{Kind: typeguard.KindOmit, Base: base, OmittedFields: keys}, nil

	case "Partial":
		if len(args) != 1 {
			return nil, &UnsupportedDeclarationError{Why: "typeguard.Partial requires exactly one type argument"}
		}
		elem, err := ex.lowerExpr(args[0], "")
		if err != nil {
			return nil, err
		}
		return &typeguard.TypeNode{Kind: typeguard.KindPartial, ElementType: elem}, nil

	case "Keyof":
		if len(args) != 1 {
			return nil, &UnsupportedDeclarationError{Why: "typeguard.Keyof requires exactly one type argument"}
		}
		base, err := ex.lowerExpr(args[0], "")
		if err != nil {
			return nil, err
		}
		return &typeguard.TypeNode{Kind: typeguard.KindKeyof, Base: base}, nil

	case "Record":
		if len(args) != 2 {
			return nil, &UnsupportedDeclarationError{Why: "typeguard.Record requires exactly two type arguments"}
		}
		valueType, err := ex.lowerExpr(args[1], "")
		if err != nil {
			return nil, err
		}
		if keyIdent, ok := args[0].(*ast.Ident); ok && keyIdent.Name == "string" {
			return &typeguard.TypeNode{
				Kind:      typeguard.KindIndexSig,
				KeyType:   &typeguard.TypeNode{Kind: typeguard.KindString},
				ValueType: valueType,
			}, nil
		}
		keyType, err := ex.lowerExpr(args[0], "")
		if err != nil {
			return nil, err
		}
		return &typeguard.TypeNode{Kind: typeguard.KindMapped, MapFrom: keyType, MapTo: valueType}, nil

	case "OneOf2", "OneOf3", "OneOf4", "OneOf5", "OneOf6":
		members, err := ex.lowerAll(args)
		if err != nil {
			return nil, err
		}
		return &typeguard.TypeNode{Kind: typeguard.KindUnion, UnionMembers: members}, nil

	case "And2", "And3", "And4", "And5", "And6":
		members, err := ex.lowerAll(args)
		if err != nil {
			return nil, err
		}
		return &typeguard.TypeNode{Kind: typeguard.KindIntersection, IntersectionMembers: members}, nil

	case "Literal":
		return ex.lowerLiteral(tag)

	default:
		return nil, &UnsupportedDeclarationError{Why: "unrecognized generic type " + name}
	}
}

func (ex *extractor) lowerAll(args []ast.Expr) ([]*typeguard.TypeNode, error) {
	out := make([]*typeguard.TypeNode, len(args))
	for i, a := range args {
		n, err := ex.lowerExpr(a, "")
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// lowerLiteral reads the value out of a field's own typeguard:"value=..."
// struct tag, inferring the literal's kind from the tag value's own
// syntax: a quoted string is a string-literal, "true"/"false" a
// boolean-literal, anything else parsed as a float64 a number-literal.
func (ex *extractor) lowerLiteral(tag string) (*typeguard.TypeNode, error) {
	raw := tagValue(tag, "value")
	if raw == "" {
		return nil, &UnsupportedDeclarationError{Why: "typeguard.Literal field is missing a typeguard:\"value=...\" tag"}
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		return &typeguard.TypeNode{Kind: typeguard.KindStringLiteral, StringValue: unquoted}, nil
	}
	if raw == "true" || raw == "false" {
		return &typeguard.TypeNode{Kind: typeguard.KindBoolLiteral, BoolValue: raw == "true"}, nil
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return &typeguard.TypeNode{Kind: typeguard.KindNumberLiteral, NumberValue: n}, nil
	}
	return &typeguard.TypeNode{Kind: typeguard.KindStringLiteral, StringValue: raw}, nil
}

func tagValue(tag, key string) string {
	v := extractTagField(tag, "typeguard")
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, key+"=") {
			return strings.TrimPrefix(part, key+"=")
		}
	}
	return ""
}

func extractTagField(tag, key string) string {
	return reflect.StructTag(tag).Get(key)
}

// resolveOmitKeys implements this module's resolution for Omit<T,K>'s
// K argument: since Go generics carry no value-level type arguments,
// K must name a struct type whose own fields are each a
// typeguard.Literal[string] tagged with the value to omit — the literal's
// Go field name is irrelevant, only its tag value is read.
func (ex *extractor) resolveOmitKeys(karg ast.Expr) ([]string, error) {
	ident, ok := karg.(*ast.Ident)
	if !ok {
		return nil, &UnsupportedDeclarationError{Why: "typeguard.Omit's second argument must name a key-carrier struct type"}
	}
	ts, ok := ex.raw[ident.Name]
	if !ok {
		return nil, &UnsupportedDeclarationError{Name: ident.Name, Why: "undefined key-carrier type referenced by typeguard.Omit"}
	}
	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		return nil, &UnsupportedDeclarationError{Name: ident.Name, Why: "typeguard.Omit's key-carrier must be a struct"}
	}
	var keys []string
	for _, f := range st.Fields.List {
		tagStr := ""
		if f.Tag != nil {
			if v, err := strconv.Unquote(f.Tag.Value); err == nil {
				tagStr = v
			}
		}
		lit, err := ex.lowerLiteral(tagStr)
		if err != nil {
			return nil, err
		}
		if lit.Kind != typeguard.KindStringLiteral {
			return nil, &UnsupportedDeclarationError{Name: ident.Name, Why: "typeguard.Omit's key-carrier fields must be string literals"}
		}
		keys = append(keys, lit.StringValue)
	}
	return keys, nil
}
