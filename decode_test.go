package typeguard_test

import (
	"testing"

	tg "github.com/typeguard-go/typeguard"
)

func TestDecodeJSONValue_PlainObject(t *testing.T) {
	v, issues, err := tg.DecodeJSONValue([]byte(`{"a": 1, "b": [true, null]}`), tg.Strictness{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("expected a map[string]any, got %T", v)
	}
	if obj["a"] != 1.0 {
		t.Fatalf("expected a == 1.0, got %v", obj["a"])
	}
}

func TestDecodeJSONValue_DuplicateKeyWarns(t *testing.T) {
	_, issues, err := tg.DecodeJSONValue([]byte(`{"a": 1, "a": 2}`), tg.Strictness{OnDuplicateKey: tg.Warn})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(issues) == 0 {
		t.Fatalf("expected a duplicate-key issue to be reported")
	}
}

func TestDecodeJSONValue_DuplicateKeyErrors(t *testing.T) {
	_, _, err := tg.DecodeJSONValue([]byte(`{"a": 1, "a": 2}`), tg.Strictness{OnDuplicateKey: tg.Error})
	if err == nil {
		t.Fatalf("expected an error for a duplicate key under Error strictness")
	}
}

func TestCheckJSON_ParsesAndChecks(t *testing.T) {
	widget := &tg.TypeNode{
		Kind: tg.KindInterface,
		Fields: []tg.Field{
			{Name: "id", Type: &tg.TypeNode{Kind: tg.KindString}},
		},
	}
	schema := &tg.Schema{Types: map[string]*tg.TypeNode{}}
	tg.PrimeSchema(schema)

	diag, err := tg.CheckJSON([]byte(`{"id": "w1"}`), widget, schema, tg.Strictness{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diag != "" {
		t.Fatalf("expected a matching JSON payload to conform, got: %s", diag)
	}

	diag, err = tg.CheckJSON([]byte(`{"id": 1}`), widget, schema, tg.Strictness{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diag == "" {
		t.Fatalf("expected a numeric id to fail the string field check")
	}
}

func TestCheckJSON_PropagatesParseError(t *testing.T) {
	widget := &tg.TypeNode{Kind: tg.KindInterface}
	schema := &tg.Schema{Types: map[string]*tg.TypeNode{}}
	tg.PrimeSchema(schema)

	_, err := tg.CheckJSON([]byte(`{not json`), widget, schema, tg.Strictness{})
	if err == nil {
		t.Fatalf("expected a JSON parse error to propagate")
	}
}
