package typeguard

import (
	"strings"
	"testing"
)

func TestIndent_PrefixesEveryLine(t *testing.T) {
	got := indent("a\nb\nc")
	want := "a\n  b\n  c"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestTypeToString_UsesDeclaredName(t *testing.T) {
	schema := &Schema{Types: map[string]*TypeNode{}}
	node := &TypeNode{Name: "Widget", Kind: KindInterface, Fields: []Field{{Name: "id", Type: &TypeNode{Kind: KindString}}}}
	got := typeToString(schema, node, PrintOpt{Short: true})
	if got != "Widget" {
		t.Fatalf("expected the declared name to win, got %q", got)
	}
}

func TestTypeToString_StructuralForms(t *testing.T) {
	schema := &Schema{Types: map[string]*TypeNode{}}

	cases := []struct {
		node *TypeNode
		want string
	}{
		{&TypeNode{Kind: KindArray, ElementType: &TypeNode{Kind: KindNumber}}, "Array<number>"},
		{&TypeNode{Kind: KindStringLiteral, StringValue: "a"}, "'a'"},
		{&TypeNode{Kind: KindUnion, UnionMembers: []*TypeNode{{Kind: KindString}, {Kind: KindNumber}}}, "string | number"},
		{&TypeNode{Kind: KindIntersection, IntersectionMembers: []*TypeNode{{Kind: KindString}, {Kind: KindNumber}}}, "string & number"},
		{&TypeNode{Kind: KindKeyof, Base: &TypeNode{Kind: KindReference, ReferencedTypeName: "Widget"}}, "keyof Widget"},
		{&TypeNode{Kind: KindPartial, ElementType: &TypeNode{Kind: KindReference, ReferencedTypeName: "Widget"}}, "Partial<Widget>"},
	}
	for _, c := range cases {
		got := typeToString(schema, c.node, PrintOpt{Short: true})
		if got != c.want {
			t.Fatalf("expected %q, got %q", c.want, got)
		}
	}
}

func TestTypeToString_InterfaceShortVsLong(t *testing.T) {
	schema := &Schema{Types: map[string]*TypeNode{}}
	node := &TypeNode{Kind: KindInterface, Fields: []Field{
		{Name: "a", Type: &TypeNode{Kind: KindString}},
		{Name: "b", Optional: true, Type: &TypeNode{Kind: KindNumber}},
	}}
	short := typeToString(schema, node, PrintOpt{Short: true})
	if !strings.HasPrefix(short, "{ ") || strings.Contains(short, "\n") {
		t.Fatalf("expected a single-line short form, got %q", short)
	}
	long := typeToString(schema, node, PrintOpt{Short: false})
	if !strings.Contains(long, "\n") {
		t.Fatalf("expected a multi-line long form, got %q", long)
	}
}

func TestTypeToString_EmptyInterface(t *testing.T) {
	schema := &Schema{Types: map[string]*TypeNode{}}
	got := typeToString(schema, &TypeNode{Kind: KindInterface}, PrintOpt{Short: true})
	if got != "{}" {
		t.Fatalf("expected {}, got %q", got)
	}
}
