package emitter_test

import (
	"strings"
	"testing"

	tg "github.com/typeguard-go/typeguard"
	"github.com/typeguard-go/typeguard/internal/emitter"
)

func widgetSchema() *tg.Schema {
	widget := &tg.TypeNode{
		Name: "Widget",
		Kind: tg.KindInterface,
		Fields: []tg.Field{
			{Name: "id", Type: &tg.TypeNode{Kind: tg.KindString, SpecialName: "Uuid"}},
			{Name: "name", Type: &tg.TypeNode{Kind: tg.KindString}},
		},
	}
	schema := &tg.Schema{Types: map[string]*tg.TypeNode{"Widget": widget}, AssertedTypes: []string{"Widget"}}
	tg.PrimeSchema(schema)
	return schema
}

func TestRenderSchemaJSON_ContainsAssertedTypes(t *testing.T) {
	data, err := emitter.RenderSchemaJSON(widgetSchema())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, "Widget") || !strings.Contains(s, "assertedTypes") {
		t.Fatalf("expected the rendered JSON to mention Widget and assertedTypes, got: %s", s)
	}
}

func TestRenderGoSource_EmitsAssertFunctionAndFormatHelper(t *testing.T) {
	src, err := emitter.RenderGoSource(widgetSchema(), emitter.Options{Package: "generated"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := string(src)
	if !strings.Contains(s, "package generated") {
		t.Fatalf("expected the rendered source to declare package generated, got: %s", s)
	}
	if !strings.Contains(s, "func AssertWidget(value any)") {
		t.Fatalf("expected an AssertWidget function, got: %s", s)
	}
	if !strings.Contains(s, "func AssertUuid(value string) error") {
		t.Fatalf("expected an AssertUuid format helper since Widget references it, got: %s", s)
	}
	if !strings.Contains(s, `"github.com/typeguard-go/typeguard/formats"`) {
		t.Fatalf("expected the formats package to be imported when a format helper is emitted, got: %s", s)
	}
}

func TestRenderGoSource_DefaultsPackageName(t *testing.T) {
	src, err := emitter.RenderGoSource(widgetSchema(), emitter.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(src), "package generated") {
		t.Fatalf("expected the default package name 'generated', got: %s", src)
	}
}

func TestRenderGoSource_NoFormatsReferencedOmitsFormatsImport(t *testing.T) {
	plain := &tg.TypeNode{Name: "Plain", Kind: tg.KindInterface, Fields: []tg.Field{
		{Name: "a", Type: &tg.TypeNode{Kind: tg.KindString}},
	}}
	schema := &tg.Schema{Types: map[string]*tg.TypeNode{"Plain": plain}, AssertedTypes: []string{"Plain"}}
	tg.PrimeSchema(schema)

	src, err := emitter.RenderGoSource(schema, emitter.Options{Package: "generated"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(src), "typeguard/formats") {
		t.Fatalf("expected no formats import when no field uses a special format, got: %s", src)
	}
}
