package typeguard

import (
	gojson "github.com/goccy/go-json"
)

// rawJSON holds an unparsed JSON value, used both for TypeNode.extra
// (round-trip preservation of unknown schema keys) and as the building block
// for the generic marshal/pretty-print helpers the diagnostic composer uses.
type rawJSON []byte

func (r rawJSON) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	return r, nil
}

func (r *rawJSON) UnmarshalJSON(data []byte) error {
	*r = append((*r)[0:0], data...)
	return nil
}

// marshalJSON renders v as compact JSON using goccy/go-json, the teacher's
// drop-in replacement for encoding/json.
func marshalJSON(v any) ([]byte, error) {
	return gojson.Marshal(v)
}

// prettyJSON renders v as indented JSON, used for the "value = ..." and
// "_TYPE_ = ..." trailers spec.md §4.3 appends when a short form could not
// say enough on its own.
func prettyJSON(v any) string {
	b, err := gojson.MarshalIndent(v, "", "  ")
	if err != nil {
		return "<unprintable>"
	}
	return string(b)
}

type typeNodeJSON struct {
	Kind          Kind              `json:"kind"`
	Name          string            `json:"name,omitempty"`
	Filename      string            `json:"filename,omitempty"`
	IgnoreChanges bool              `json:"ignoreChanges,omitempty"`
	SpecialName   string            `json:"specialName,omitempty"`
	StringValue   string            `json:"stringValue,omitempty"`
	NumberValue   float64           `json:"numberValue,omitempty"`
	BoolValue     bool              `json:"boolValue,omitempty"`
	ElementType   *TypeNode         `json:"elementType,omitempty"`
	Fields        []Field           `json:"fields,omitempty"`
	Heritage      []Reference       `json:"heritage,omitempty"`
	UnionMembers  []*TypeNode       `json:"unionMembers,omitempty"`
	Kinds         []string          `json:"kinds,omitempty"`
	Intersection  []*TypeNode       `json:"intersectionMembers,omitempty"`
	MapFrom       *TypeNode         `json:"mapFrom,omitempty"`
	MapTo         *TypeNode         `json:"mapTo,omitempty"`
	Optional      bool              `json:"optional,omitempty"`
	KeyType       *TypeNode         `json:"keyType,omitempty"`
	ValueType     *TypeNode         `json:"valueType,omitempty"`
	Base          *TypeNode         `json:"base,omitempty"`
	OmittedFields []string          `json:"omittedFields,omitempty"`
	RefName       string            `json:"referencedTypeName,omitempty"`
	Extra         map[string]rawJSON `json:"-"`
}

// MarshalJSON flattens the tagged-union node to a single JSON object,
// re-emitting any keys unknown to this version of the algebra that were
// preserved by UnmarshalJSON.
func (t *TypeNode) MarshalJSON() ([]byte, error) {
	m := map[string]rawJSON{}
	for k, v := range t.extra {
		m[k] = v
	}
	known := typeNodeJSON{
		Kind:          t.Kind,
		Name:          t.Name,
		Filename:      t.Filename,
		IgnoreChanges: t.IgnoreChanges,
		SpecialName:   t.SpecialName,
		StringValue:   t.StringValue,
		NumberValue:   t.NumberValue,
		BoolValue:     t.BoolValue,
		ElementType:   t.ElementType,
		Fields:        t.Fields,
		Heritage:      t.Heritage,
		UnionMembers:  t.UnionMembers,
		Kinds:         t.Kinds,
		Intersection:  t.IntersectionMembers,
		MapFrom:       t.MapFrom,
		MapTo:         t.MapTo,
		Optional:      t.Optional,
		KeyType:       t.KeyType,
		ValueType:     t.ValueType,
		Base:          t.Base,
		OmittedFields: t.OmittedFields,
		RefName:       t.ReferencedTypeName,
	}
	knownBytes, err := gojson.Marshal(known)
	if err != nil {
		return nil, err
	}
	if len(m) == 0 {
		return knownBytes, nil
	}
	var flat map[string]rawJSON
	if err := gojson.Unmarshal(knownBytes, &flat); err != nil {
		return nil, err
	}
	for k, v := range m {
		if _, exists := flat[k]; !exists {
			flat[k] = v
		}
	}
	return gojson.Marshal(flat)
}

var knownTypeNodeKeys = map[string]bool{
	"kind": true, "name": true, "filename": true, "ignoreChanges": true,
	"specialName": true, "stringValue": true, "numberValue": true, "boolValue": true,
	"elementType": true, "fields": true, "heritage": true, "unionMembers": true,
	"kinds": true, "intersectionMembers": true, "mapFrom": true, "mapTo": true,
	"optional": true, "keyType": true, "valueType": true, "base": true,
	"omittedFields": true, "referencedTypeName": true,
}

// UnmarshalJSON parses a node and preserves any keys this version of the
// algebra does not recognize, per spec.md's requirement that loading and
// re-saving a schema never silently drops data a newer extractor wrote.
func (t *TypeNode) UnmarshalJSON(data []byte) error {
	var known typeNodeJSON
	if err := gojson.Unmarshal(data, &known); err != nil {
		return err
	}
	var flat map[string]rawJSON
	if err := gojson.Unmarshal(data, &flat); err != nil {
		return err
	}
	extra := map[string]rawJSON{}
	for k, v := range flat {
		if !knownTypeNodeKeys[k] {
			extra[k] = v
		}
	}
	*t = TypeNode{
		Kind:                known.Kind,
		Name:                known.Name,
		Filename:            known.Filename,
		IgnoreChanges:       known.IgnoreChanges,
		SpecialName:         known.SpecialName,
		StringValue:         known.StringValue,
		NumberValue:         known.NumberValue,
		BoolValue:           known.BoolValue,
		ElementType:         known.ElementType,
		Fields:              known.Fields,
		Heritage:            known.Heritage,
		UnionMembers:        known.UnionMembers,
		Kinds:               known.Kinds,
		IntersectionMembers: known.Intersection,
		MapFrom:             known.MapFrom,
		MapTo:               known.MapTo,
		Optional:            known.Optional,
		KeyType:             known.KeyType,
		ValueType:           known.ValueType,
		Base:                known.Base,
		OmittedFields:       known.OmittedFields,
		ReferencedTypeName:  known.RefName,
	}
	if len(extra) > 0 {
		t.extra = extra
	}
	return nil
}
