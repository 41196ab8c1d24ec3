// Package extractor lowers annotated Go source declarations into the
// typeguard type algebra, grounded on the teacher's cmd/goskema main.go
// go/parser/go/ast struct inspection and reflect_utils.go's tag-priority
// rule, extended with the marker-type recognition table this module's
// design document lays out.
package extractor

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/typeguard-go/typeguard"
)

// UnsupportedDeclarationError reports a declaration the extractor cannot
// lower: for example a type declaration carrying its own type parameters
// (only the whitelisted marker types may carry type arguments, and only as a
// field's type, never as a declaration's own signature), an unsupported type
// expression, a malformed marker use, or an ignore-changes directive without
// a declaration-level generate directive.
type UnsupportedDeclarationError struct {
	Name string
	Why  string
}

func (e *UnsupportedDeclarationError) Error() string {
	return fmt.Sprintf("extractor: %s: %s", e.Name, e.Why)
}

// DuplicateDeclarationError reports two declarations claiming the same
// exported name within a package, which spec.md §4.5 requires be rejected.
type DuplicateDeclarationError struct {
	Name string
}

func (e *DuplicateDeclarationError) Error() string {
	return "extractor: duplicate declared type " + e.Name
}

// extractor carries the two-pass state a package extraction needs: raw
// declarations by name (needed to resolve Omit's K argument, which must be
// known at extraction time since TypeNode bakes OmittedFields as concrete
// strings), and the schema being built.
type extractor struct {
	fset   *token.FileSet
	raw    map[string]*ast.TypeSpec
	schema *typeguard.Schema
}

// ExtractPackage parses every Go file in dir (non-recursive, matching
// go/parser.ParseDir's own package-at-a-time model) and lowers every
// declaration opted in by a //typeguard:generate directive into a Schema.
func ExtractPackage(dir string) (*typeguard.Schema, error) {
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, dir, nil, parser.ParseComments)
	if err != nil {
		return nil, err
	}
	ex := &extractor{
		fset:   fset,
		raw:    map[string]*ast.TypeSpec{},
		schema: &typeguard.Schema{Types: map[string]*typeguard.TypeNode{}},
	}

	type decl struct {
		ts       *ast.TypeSpec
		filename string
		included bool
		ignore   bool
	}
	var decls []decl

	for _, pkg := range pkgs {
		for filename, file := range pkg.Files {
			fileLevel := fileLevelGenerate(file)
			for _, d := range file.Decls {
				gd, ok := d.(*ast.GenDecl)
				if !ok || gd.Tok != token.TYPE {
					continue
				}
				for _, spec := range gd.Specs {
					ts := spec.(*ast.TypeSpec)
					if _, dup := ex.raw[ts.Name.Name]; dup {
						return nil, &DuplicateDeclarationError{Name: ts.Name.Name}
					}
					ex.raw[ts.Name.Name] = ts

					doc := ts.Doc
					if doc == nil && len(gd.Specs) == 1 {
						doc = gd.Doc
					}
					declMarker := hasDirective(doc, "typeguard:generate")
					ignore := hasDirective(doc, "typeguard:ignore-changes")
					if ignore && !declMarker {
						return nil, &UnsupportedDeclarationError{Name: ts.Name.Name, Why: "typeguard:ignore-changes without a declaration-level typeguard:generate"}
					}
					decls = append(decls, decl{ts: ts, filename: filename, included: fileLevel || declMarker, ignore: ignore})
				}
			}
		}
	}

	for _, d := range decls {
		if !d.included {
			continue
		}
		if !d.ts.Name.IsExported() {
			continue
		}
		if d.ts.TypeParams != nil && len(d.ts.TypeParams.List) > 0 {
			return nil, &UnsupportedDeclarationError{Name: d.ts.Name.Name, Why: "type parameters are not supported on a declaration itself"}
		}
		node, err := ex.lowerDecl(d.ts)
		if err != nil {
			return nil, err
		}
		node.Name = d.ts.Name.Name
		node.Filename = d.filename
		node.IgnoreChanges = d.ignore
		ex.schema.Types[d.ts.Name.Name] = node
		ex.schema.AssertedTypes = append(ex.schema.AssertedTypes, d.ts.Name.Name)
	}
	sort.Strings(ex.schema.AssertedTypes)
	typeguard.PrimeSchema(ex.schema)
	return ex.schema, nil
}

func (ex *extractor) lowerDecl(ts *ast.TypeSpec) (*typeguard.TypeNode, error) {
	return ex.lowerExpr(ts.Type, "")
}

// lowerExpr lowers a single Go type expression to a TypeNode. tag is the
// enclosing struct field's raw tag string, consulted only by the Literal
// marker, which takes its value from `typeguard:"value=..."` rather than
// from its own (necessarily valueless) type argument.
func (ex *extractor) lowerExpr(expr ast.Expr, tag string) (*typeguard.TypeNode, error) {
	switch e := expr.(type) {
	case *ast.Ident:
		return ex.lowerIdent(e)
	case *ast.StarExpr:
		// Pointer field types are unwrapped by the field-lowering caller
		// (they mark optionality); a bare pointer elsewhere is treated as
		// its pointee.
		return ex.lowerExpr(e.X, tag)
	case *ast.StructType:
		return ex.lowerStruct(e)
	case *ast.ArrayType:
		if e.Len != nil {
			return nil, &UnsupportedDeclarationError{Why: "fixed-size arrays are not supported"}
		}
		elem, err := ex.lowerExpr(e.Elt, "")
		if err != nil {
			return nil, err
		}
		return &typeguard.TypeNode{Kind: typeguard.KindArray, ElementType: elem}, nil
	case *ast.MapType:
		keyIdent, ok := e.Key.(*ast.Ident)
		if !ok || keyIdent.Name != "string" {
			return nil, &UnsupportedDeclarationError{Why: "map types must be keyed by string"}
		}
		val, err := ex.lowerExpr(e.Value, "")
		if err != nil {
			return nil, err
		}
		return &typeguard.TypeNode{
			Kind:      typeguard.KindIndexSig,
			KeyType:   &typeguard.TypeNode{Kind: typeguard.KindString},
			ValueType: val,
		}, nil
	case *ast.IndexExpr:
		return ex.lowerMarker(exprName(e.X), []ast.Expr{e.Index}, tag)
	case *ast.IndexListExpr:
		return ex.lowerMarker(exprName(e.X), e.Indices, tag)
	case *ast.InterfaceType:
		if len(e.Methods.List) == 0 {
			return &typeguard.TypeNode{Kind: typeguard.KindUnknown}, nil
		}
		return nil, &UnsupportedDeclarationError{Why: "non-empty interface method sets are not supported"}
	default:
		return nil, &UnsupportedDeclarationError{Why: fmt.Sprintf("unsupported type expression %T", expr)}
	}
}

func exprName(e ast.Expr) string {
	switch x := e.(type) {
	case *ast.SelectorExpr:
		return x.Sel.Name
	case *ast.Ident:
		return x.Name
	default:
		return ""
	}
}

func (ex *extractor) lowerIdent(id *ast.Ident) (*typeguard.TypeNode, error) {
	switch id.Name {
	case "string":
		return &typeguard.TypeNode{Kind: typeguard.KindString}, nil
	case "bool":
		return &typeguard.TypeNode{Kind: typeguard.KindBoolean}, nil
	case "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64",
		"float32", "float64":
		return &typeguard.TypeNode{Kind: typeguard.KindNumber}, nil
	case "any":
		return &typeguard.TypeNode{Kind: typeguard.KindUnknown}, nil
	default:
		if !id.IsExported() {
			return nil, &UnsupportedDeclarationError{Name: id.Name, Why: "referenced type must be exported"}
		}
		return &typeguard.TypeNode{Kind: typeguard.KindReference, ReferencedTypeName: id.Name}, nil
	}
}

func (ex *extractor) lowerStruct(st *ast.StructType) (*typeguard.TypeNode, error) {
	node := &typeguard.TypeNode{Kind: typeguard.KindInterface}
	for _, f := range st.Fields.List {
		tagStr := ""
		if f.Tag != nil {
			v, err := strconv.Unquote(f.Tag.Value)
			if err == nil {
				tagStr = v
			}
		}
		if len(f.Names) == 0 {
			// Embedded field: becomes a heritage reference, per spec.md
			// §4.5's "embedded structs become heritage references".
			name := exprName(f.Type)
			if name == "" {
				return nil, &UnsupportedDeclarationError{Why: "unsupported embedded field"}
			}
			node.Heritage = append(node.Heritage, typeguard.Reference{Name: name})
			continue
		}
		for _, fname := range f.Names {
			if !fname.IsExported() {
				continue
			}
			fieldType := f.Type
			optional := false
			if star, ok := fieldType.(*ast.StarExpr); ok {
				optional = true
				fieldType = star.X
			}
			ft, err := ex.lowerExpr(fieldType, tagStr)
			if err != nil {
				return nil, err
			}
			key := resolveFieldKey(fname.Name, tagStr)
			if key == "-" {
				continue
			}
			node.Fields = append(node.Fields, typeguard.Field{Name: key, Optional: optional, Type: ft})
		}
	}
	return node, nil
}

// resolveFieldKey applies the module-wide struct-tag priority rule:
// typeguard:"name=..." > json:"..." > Go field name.
func resolveFieldKey(goName, tag string) string {
	st := reflect.StructTag(tag)
	return typeguard.ResolveStructKey(reflect.StructField{Name: goName, Tag: st})
}

func hasDirective(doc *ast.CommentGroup, directive string) bool {
	if doc == nil {
		return false
	}
	for _, c := range doc.List {
		if strings.TrimSpace(strings.TrimPrefix(c.Text, "//")) == directive {
			return true
		}
	}
	return false
}

func fileLevelGenerate(file *ast.File) bool {
	firstDeclPos := token.NoPos
	var firstDeclDoc *ast.CommentGroup
	if len(file.Decls) > 0 {
		firstDeclPos = file.Decls[0].Pos()
		switch d := file.Decls[0].(type) {
		case *ast.GenDecl:
			firstDeclDoc = d.Doc
		case *ast.FuncDecl:
			firstDeclDoc = d.Doc
		}
	}
	for _, cg := range file.Comments {
		if firstDeclPos != token.NoPos && cg.End() >= firstDeclPos {
			continue
		}
		// The first declaration's own doc comment is a declaration-level
		// marker, not a file-level one.
		if cg == firstDeclDoc {
			continue
		}
		if hasDirective(cg, "typeguard:generate") {
			return true
		}
	}
	return false
}
