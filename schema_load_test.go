package typeguard_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tg "github.com/typeguard-go/typeguard"
)

const widgetSchemaJSON = `{
  "types": {
    "Widget": {
      "kind": "interface",
      "fields": [
        {"Name": "id", "Type": {"kind": "string"}},
        {"Name": "color", "Type": {"kind": "string-literal", "stringValue": "red"}}
      ]
    }
  },
  "assertedTypes": ["Widget"]
}`

func TestParseSchema_RoundTrips(t *testing.T) {
	schema, err := tg.ParseSchema([]byte(widgetSchemaJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	widget := schema.Lookup("Widget")
	if widget == nil {
		t.Fatalf("expected Widget to be present")
	}

	diag, err := tg.CheckValueAgainstType(map[string]any{"id": "w1", "color": "red"}, widget, schema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diag != "" {
		t.Fatalf("expected a matching value to conform, got: %s", diag)
	}
}

func TestLoadSchema_And_WriteSchema(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.json")
	if err := os.WriteFile(path, []byte(widgetSchemaJSON), 0o644); err != nil {
		t.Fatalf("failed writing fixture: %v", err)
	}

	schema, err := tg.LoadSchema(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if schema.Lookup("Widget") == nil {
		t.Fatalf("expected Widget to load")
	}

	out := filepath.Join(dir, "out.json")
	if err := tg.WriteSchema(out, schema); err != nil {
		t.Fatalf("unexpected error writing schema: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("unexpected error reading back: %v", err)
	}
	if !strings.Contains(string(data), "Widget") {
		t.Fatalf("expected the written schema to mention Widget, got: %s", data)
	}
}

func TestLoadSchema_MissingFile(t *testing.T) {
	_, err := tg.LoadSchema(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatalf("expected an error for a missing schema file")
	}
}
