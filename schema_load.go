package typeguard

import (
	"os"

	gojson "github.com/goccy/go-json"
)

type schemaJSON struct {
	Types         map[string]*TypeNode `json:"types"`
	AssertedTypes []string              `json:"assertedTypes,omitempty"`
}

// LoadSchema reads a persisted schema from path and primes every
// discriminated union's Kinds cache, per spec.md's design notes: caching
// happens during schema loading, not only when the extractor first builds
// the union, so a hand-edited or hand-written schema file still gets the
// fast discriminated-union dispatch path in check.go.
func LoadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSchema(data)
}

// ParseSchema is the in-memory counterpart of LoadSchema, used by tests and
// by callers that already hold the schema bytes.
func ParseSchema(data []byte) (*Schema, error) {
	var raw schemaJSON
	if err := gojson.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	schema := &Schema{Types: raw.Types, AssertedTypes: raw.AssertedTypes}
	PrimeSchema(schema)
	return schema, nil
}

// PrimeSchema caches every discriminated union's Kinds field reachable from
// schema.Types. LoadSchema/ParseSchema call this automatically; callers that
// build a *Schema some other way (the extractor, or a hand-built schema in a
// test) should call it once before running checks for the fast
// discriminated-union dispatch path in check.go to take effect — its absence
// only costs a slower union dispatch tier, never correctness.
func PrimeSchema(schema *Schema) {
	for _, t := range schema.Types {
		primeKinds(schema, t)
	}
}

func primeKinds(schema *Schema, t *TypeNode) {
	if t == nil {
		return
	}
	if t.Kind == KindUnion {
		computeDiscriminatedKinds(schema, t)
		for _, m := range t.UnionMembers {
			primeKinds(schema, m)
		}
		return
	}
	switch t.Kind {
	case KindArray, KindPartial:
		primeKinds(schema, t.ElementType)
	case KindInterface:
		for _, f := range t.Fields {
			primeKinds(schema, f.Type)
		}
	case KindIntersection:
		for _, m := range t.IntersectionMembers {
			primeKinds(schema, m)
		}
	case KindMapped:
		primeKinds(schema, t.MapFrom)
		primeKinds(schema, t.MapTo)
	case KindIndexSig:
		primeKinds(schema, t.KeyType)
		primeKinds(schema, t.ValueType)
	case KindOmit:
		primeKinds(schema, t.Base)
	case KindKeyof:
		primeKinds(schema, t.Base)
	}
}

// WriteSchema persists schema to path as indented JSON.
func WriteSchema(path string, schema *Schema) error {
	raw := schemaJSON{Types: schema.Types, AssertedTypes: schema.AssertedTypes}
	data, err := gojson.MarshalIndent(raw, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
