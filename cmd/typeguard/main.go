// Command typeguard extracts annotated Go declarations into a typeguard
// schema and emits generated Go validator source, adapted from the
// teacher's cmd/goskema CLI: flag-based subcommand dispatch driving a
// go/parser-based source pass, down to a single generate subcommand (this
// module's extractor reads static source declarations, not a runtime-loaded
// DSL value, so there is no compile-dsl step to carry forward).
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/typeguard-go/typeguard/internal/emitter"
	"github.com/typeguard-go/typeguard/internal/extractor"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()
	sugar := logger.Sugar()

	switch os.Args[1] {
	case "generate":
		if err := runGenerate(os.Args[2:], sugar); err != nil {
			sugar.Errorw("generate failed", "error", err)
			os.Exit(1)
		}
	default:
		printUsage()
		os.Exit(1)
	}
}

func runGenerate(args []string, log *zap.SugaredLogger) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	configPath := fs.String("config", ".typeguard.yaml", "path to a .typeguard.yaml config file")
	src := fs.String("src", "", "source package directory to extract (overrides config)")
	schemaOut := fs.String("schema-out", "", "path to write the schema JSON file (overrides config)")
	codeOut := fs.String("code-out", "", "path to write the generated Go source file (overrides config)")
	pkg := fs.String("package", "", "package name for generated Go source (overrides config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("loading %s: %w", *configPath, err)
	}

	sourceDir := firstNonEmpty(*src, firstOf(cfg.SourceGlobs))
	if sourceDir == "" {
		return fmt.Errorf("no source directory given (set --src or sourceGlobs in %s)", *configPath)
	}
	schemaPath := firstNonEmpty(*schemaOut, cfg.SchemaOut, "typeguard.schema.json")
	codePath := firstNonEmpty(*codeOut, cfg.CodeOut, "typeguard_generated.go")
	packageName := firstNonEmpty(*pkg, cfg.Package, "generated")

	log.Infow("extracting", "dir", sourceDir)
	schema, err := extractor.ExtractPackage(sourceDir)
	if err != nil {
		return fmt.Errorf("extracting %s: %w", sourceDir, err)
	}
	log.Infow("extracted", "types", len(schema.Types), "asserted", len(schema.AssertedTypes))

	schemaJSON, err := emitter.RenderSchemaJSON(schema)
	if err != nil {
		return fmt.Errorf("rendering schema json: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(schemaPath), 0o755); err != nil && filepath.Dir(schemaPath) != "." {
		return err
	}
	if err := os.WriteFile(schemaPath, schemaJSON, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", schemaPath, err)
	}
	log.Infow("wrote schema", "path", schemaPath)

	goSrc, err := emitter.RenderGoSource(schema, emitter.Options{Package: packageName})
	if err != nil {
		return fmt.Errorf("rendering generated source: %w", err)
	}
	if err := os.WriteFile(codePath, goSrc, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", codePath, err)
	}
	log.Infow("wrote generated source", "path", codePath)
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstOf(vals []string) string {
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `typeguard - extract and generate runtime type validators

Usage: %s generate [--config=.typeguard.yaml] [--src=dir] [--schema-out=path] [--code-out=path] [--package=name]

`, os.Args[0])
}
