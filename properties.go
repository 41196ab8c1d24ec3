package typeguard

import "github.com/typeguard-go/typeguard/internal/memo"

// propertyCache memoizes computePropertiesOfType by node identity. Per
// spec.md §5 ("a simple memoisation by type identity is permissible but must
// not mutate the schema"), this never writes back into the TypeNode.
var propertyCache = memo.NewCache[*TypeNode, []string]()

// computePropertiesOfType returns the over-approximating set of property
// names that values of t may legally carry, per spec.md §4.2. It fails with
// OpenPropertySetError for index-signature nodes and mapped types keyed by
// unrestricted string, whose property set is not finite.
func computePropertiesOfType(schema *Schema, t *TypeNode) ([]string, error) {
	return propertyCache.GetOrCompute(t, func() ([]string, error) {
		return computePropertiesUncached(schema, t)
	})
}

func computePropertiesUncached(schema *Schema, t *TypeNode) ([]string, error) {
	switch t.Kind {
	case KindString, KindNumber, KindBoolean,
		KindStringLiteral, KindNumberLiteral, KindBoolLiteral,
		KindNull, KindUndefined, KindUnknown, KindKeyof:
		return nil, nil

	case KindArray:
		return []string{"length"}, nil

	case KindReference:
		r, err := resolveType(schema, t)
		if err != nil {
			return nil, err
		}
		return computePropertiesOfType(schema, r)

	case KindInterface:
		out := dedupAppend(nil, fieldNames(t.Fields)...)
		for _, h := range t.Heritage {
			base, err := resolveType(schema, &TypeNode{Kind: KindReference, ReferencedTypeName: h.Name})
			if err != nil {
				return nil, err
			}
			baseProps, err := computePropertiesOfType(schema, base)
			if err != nil {
				return nil, err
			}
			out = dedupAppend(out, baseProps...)
		}
		return out, nil

	case KindUnion:
		var out []string
		for _, m := range t.UnionMembers {
			props, err := computePropertiesOfType(schema, m)
			if err != nil {
				return nil, err
			}
			out = dedupAppend(out, props...)
		}
		return out, nil

	case KindIntersection:
		var out []string
		for _, m := range t.IntersectionMembers {
			props, err := computePropertiesOfType(schema, m)
			if err != nil {
				return nil, err
			}
			out = dedupAppend(out, props...)
		}
		return out, nil

	case KindPartial:
		return computePropertiesOfType(schema, t.ElementType)

	case KindOmit:
		base, err := resolveType(schema, t.Base)
		if err != nil {
			return nil, err
		}
		baseProps, err := computePropertiesOfType(schema, base)
		if err != nil {
			return nil, err
		}
		omitted := make(map[string]bool, len(t.OmittedFields))
		for _, f := range t.OmittedFields {
			omitted[f] = true
		}
		out := make([]string, 0, len(baseProps))
		for _, p := range baseProps {
			if !omitted[p] {
				out = append(out, p)
			}
		}
		return out, nil

	case KindMapped:
		return mappedPropertySet(schema, t)

	case KindIndexSig:
		return nil, &OpenPropertySetError{TypeDescription: typeToString(schema, t, PrintOpt{Short: true})}

	default:
		return nil, nil
	}
}

func mappedPropertySet(schema *Schema, t *TypeNode) ([]string, error) {
	from, err := resolveType(schema, t.MapFrom)
	if err != nil {
		return nil, err
	}
	switch from.Kind {
	case KindStringLiteral:
		return []string{from.StringValue}, nil
	case KindUnion:
		out := make([]string, 0, len(from.UnionMembers))
		for _, m := range from.UnionMembers {
			rm, err := resolveType(schema, m)
			if err != nil {
				return nil, err
			}
			if rm.Kind != KindStringLiteral {
				return nil, &UnsupportedMapFromError{TypeDescription: typeToString(schema, t, PrintOpt{Short: true})}
			}
			out = append(out, rm.StringValue)
		}
		return out, nil
	case KindString:
		return nil, &OpenPropertySetError{TypeDescription: typeToString(schema, t, PrintOpt{Short: true})}
	default:
		return nil, &UnsupportedMapFromError{TypeDescription: typeToString(schema, t, PrintOpt{Short: true})}
	}
}

func fieldNames(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Name
	}
	return out
}

// dedupAppend appends items to dst, skipping any already present, preserving
// first-occurrence order (spec.md: "deduplicated preserving first
// occurrence").
func dedupAppend(dst []string, items ...string) []string {
	seen := make(map[string]bool, len(dst))
	for _, d := range dst {
		seen[d] = true
	}
	for _, it := range items {
		if seen[it] {
			continue
		}
		seen[it] = true
		dst = append(dst, it)
	}
	return dst
}
