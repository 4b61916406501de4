// Package urlgen generates a project's route table source file from its
// view functions.
package urlgen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"sort"
	"strings"

	"github.com/alucardeht/fasttags/internal/logger"
	"github.com/alucardeht/fasttags/pkg/registry"
)

var log = logger.ForComponent("urlgen")

// routeDirective overrides the derived path of a view function when it
// appears in the function's doc comment: //ft:route /custom/
const routeDirective = "//ft:route"

// ViewFunc is one view discovered by scanning a views package.
type ViewFunc struct {
	// Name is the exported function name.
	Name string
	// Path is the bound URL path, derived from the name unless a route
	// directive overrides it.
	Path string
	// File is the source file the function was found in.
	File string
}

// Scan parses every Go file in dir and returns the exported functions
// matching the view signature, func Name(*http.Request) ft.Node, sorted
// by name. Generated and test files are skipped.
func Scan(dir string) ([]ViewFunc, error) {
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, dir, nil, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse views dir: %w", err)
	}

	var views []ViewFunc
	seen := make(map[string]string)

	for _, pkg := range pkgs {
		for filename, file := range pkg.Files {
			if strings.HasSuffix(filename, "_test.go") || strings.HasSuffix(filename, "_gen.go") {
				continue
			}
			for _, decl := range file.Decls {
				fn, ok := decl.(*ast.FuncDecl)
				if !ok || fn.Recv != nil || !fn.Name.IsExported() {
					continue
				}
				if !isViewSignature(fn.Type) {
					continue
				}
				path := directivePath(fn.Doc)
				if path == "" {
					path = registry.DefaultPath(fn.Name.Name)
				}
				if prev, dup := seen[fn.Name.Name]; dup {
					log.Warn("duplicate view function",
						"name", fn.Name.Name, "first", prev, "second", filename)
					continue
				}
				seen[fn.Name.Name] = filename
				views = append(views, ViewFunc{
					Name: fn.Name.Name,
					Path: path,
					File: filename,
				})
			}
		}
	}

	sort.Slice(views, func(i, j int) bool { return views[i].Name < views[j].Name })
	return views, nil
}

// isViewSignature reports whether fn is func(*http.Request) <pkg>.Node.
func isViewSignature(fn *ast.FuncType) bool {
	if fn.Params == nil || len(fn.Params.List) != 1 {
		return false
	}
	if fn.Results == nil || len(fn.Results.List) != 1 {
		return false
	}

	star, ok := fn.Params.List[0].Type.(*ast.StarExpr)
	if !ok {
		return false
	}
	if !isSelector(star.X, "Request") {
		return false
	}
	return isSelector(fn.Results.List[0].Type, "Node")
}

func isSelector(expr ast.Expr, name string) bool {
	sel, ok := expr.(*ast.SelectorExpr)
	if !ok {
		return false
	}
	if _, ok := sel.X.(*ast.Ident); !ok {
		return false
	}
	return sel.Sel.Name == name
}

// directivePath extracts the path from a //ft:route doc comment line.
func directivePath(doc *ast.CommentGroup) string {
	if doc == nil {
		return ""
	}
	for _, comment := range doc.List {
		if !strings.HasPrefix(comment.Text, routeDirective) {
			continue
		}
		rest := strings.TrimSpace(strings.TrimPrefix(comment.Text, routeDirective))
		if rest == "" {
			log.Warn("route directive without path", "comment", comment.Text)
			continue
		}
		return rest
	}
	return ""
}
