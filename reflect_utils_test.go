package typeguard_test

import (
	"reflect"
	"testing"

	tg "github.com/typeguard-go/typeguard"
)

func TestResolveStructKey_Priority(t *testing.T) {
	type row struct {
		Field reflect.StructField
		Want  string
	}
	rows := []row{
		{reflect.StructField{Name: "Foo", Tag: `typeguard:"name=bar" json:"baz"`}, "bar"},
		{reflect.StructField{Name: "Foo", Tag: `json:"baz"`}, "baz"},
		{reflect.StructField{Name: "Foo", Tag: `json:"baz,omitempty"`}, "baz"},
		{reflect.StructField{Name: "Foo"}, "Foo"},
		{reflect.StructField{Name: "Foo", Tag: `json:"-"`}, "-"},
	}
	for _, r := range rows {
		if got := tg.ResolveStructKey(r.Field); got != r.Want {
			t.Fatalf("expected %q, got %q for tag %q", r.Want, got, r.Field.Tag)
		}
	}
}

type checkedWidget struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
	Tags  []string
	Extra *string
}

func TestToCheckedValue_StructToMap(t *testing.T) {
	extra := "x"
	v := checkedWidget{ID: "w1", Count: 2, Tags: []string{"a", "b"}, Extra: &extra}
	got := tg.ToCheckedValue(v)
	obj, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("expected map[string]any, got %T", got)
	}
	if obj["id"] != "w1" {
		t.Fatalf("expected id == w1, got %v", obj["id"])
	}
	tags, ok := obj["Tags"].([]any)
	if !ok || len(tags) != 2 {
		t.Fatalf("expected a 2-element Tags slice, got %v", obj["Tags"])
	}
	if obj["Extra"] != "x" {
		t.Fatalf("expected a dereferenced pointer field, got %v", obj["Extra"])
	}
}

func TestToCheckedValue_NilPointerBecomesNull(t *testing.T) {
	v := checkedWidget{ID: "w1"}
	got := tg.ToCheckedValue(v)
	obj := got.(map[string]any)
	if obj["Extra"] != nil {
		t.Fatalf("expected a nil pointer field to become nil, got %v", obj["Extra"])
	}
}

func TestToCheckedValue_MapAndSlice(t *testing.T) {
	got := tg.ToCheckedValue(map[string]int{"a": 1})
	obj, ok := got.(map[string]any)
	if !ok || obj["a"] != 1 {
		t.Fatalf("expected map[string]any{a:1}, got %v", got)
	}

	got = tg.ToCheckedValue([]int{1, 2, 3})
	arr, ok := got.([]any)
	if !ok || len(arr) != 3 {
		t.Fatalf("expected a 3-element []any, got %v", got)
	}
}
