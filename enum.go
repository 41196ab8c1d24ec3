package typeguard

// isEnum reports whether t is "enum-like" per spec.md §3: a singleton
// string-literal, or a union whose every member is a string-literal.
func isEnum(schema *Schema, t *TypeNode) (bool, error) {
	r, err := resolveType(schema, t)
	if err != nil {
		return false, err
	}
	switch r.Kind {
	case KindStringLiteral:
		return true, nil
	case KindUnion:
		for _, m := range r.UnionMembers {
			rm, err := resolveType(schema, m)
			if err != nil {
				return false, err
			}
			if rm.Kind != KindStringLiteral {
				return false, nil
			}
		}
		return len(r.UnionMembers) > 0, nil
	default:
		return false, nil
	}
}

// enumValues returns the literal values of an enum-like node in schema
// order. Callers must have already established isEnum(schema, t) == true.
func enumValues(schema *Schema, t *TypeNode) ([]string, error) {
	r, err := resolveType(schema, t)
	if err != nil {
		return nil, err
	}
	if r.Kind == KindStringLiteral {
		return []string{r.StringValue}, nil
	}
	out := make([]string, 0, len(r.UnionMembers))
	for _, m := range r.UnionMembers {
		rm, err := resolveType(schema, m)
		if err != nil {
			return nil, err
		}
		out = append(out, rm.StringValue)
	}
	return out, nil
}

// computeDiscriminatedKinds computes and caches, on u itself, the distinct
// "kind" literal values of a discriminated union: a union whose every
// resolved member is an interface with a non-optional field named "kind" of
// string-literal type. Per spec.md's design notes, this runs "during schema
// loading (not extraction-only), so a hand-written schema still gets the
// fast path" — see schema_load.go, which calls this for every union node
// reachable in a freshly loaded Schema.
func computeDiscriminatedKinds(schema *Schema, u *TypeNode) {
	if u.Kind != KindUnion || len(u.Kinds) > 0 {
		return
	}
	kinds := make([]string, 0, len(u.UnionMembers))
	for _, m := range u.UnionMembers {
		rm, err := resolveType(schema, m)
		if err != nil || rm.Kind != KindInterface {
			return
		}
		lit, ok := discriminatorLiteral(schema, rm)
		if !ok {
			return
		}
		kinds = append(kinds, lit)
	}
	if len(kinds) == 0 {
		return
	}
	u.Kinds = kinds
}

// discriminatorLiteral returns the string-literal value of iface's
// non-optional "kind" field, if one exists directly on the interface (not
// inherited — discriminated-union members are expected to declare their own
// tag).
func discriminatorLiteral(schema *Schema, iface *TypeNode) (string, bool) {
	for _, f := range iface.Fields {
		if f.Name != "kind" || f.Optional {
			continue
		}
		rt, err := resolveType(schema, f.Type)
		if err != nil || rt.Kind != KindStringLiteral {
			return "", false
		}
		return rt.StringValue, true
	}
	return "", false
}
