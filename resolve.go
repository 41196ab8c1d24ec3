package typeguard

// resolveType chases reference-type chains to the first non-reference node,
// per spec.md §3 "Reference resolution": the returned copy has Name
// overwritten with the last-seen reference name so diagnostics print the
// user-visible alias, not the structural target's own (possibly absent)
// name.
func resolveType(schema *Schema, t *TypeNode) (*TypeNode, error) {
	seen := map[string]bool{}
	cur := t
	var lastRefName string
	for cur.Kind == KindReference {
		name := cur.ReferencedTypeName
		if seen[name] {
			// A reference cycle through names alone (not structural sharing)
			// would otherwise spin forever; the schema is malformed either way.
			return nil, &UndefinedReferenceError{Name: name}
		}
		seen[name] = true
		next := schema.Lookup(name)
		if next == nil {
			return nil, &UndefinedReferenceError{Name: name}
		}
		lastRefName = name
		cur = next
	}
	if lastRefName == "" {
		return cur, nil
	}
	out := *cur
	out.Name = lastRefName
	return &out, nil
}
