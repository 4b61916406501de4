package urlgen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alucardeht/fasttags/internal/config"
	"github.com/alucardeht/fasttags/pkg/registry"
)

const generatedHeader = "// Code generated by fasttags routes generate. DO NOT EDIT."

// Generator writes a route table source file for a project.
type Generator struct {
	cfg config.GenerateConfig
}

func New(cfg config.GenerateConfig) *Generator {
	return &Generator{cfg: cfg}
}

// Generate scans the configured views directory and writes the route
// file. An empty views package still produces a valid file with an empty
// table, with a warning.
func (g *Generator) Generate() ([]ViewFunc, error) {
	views, err := Scan(g.cfg.ViewsDir)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		log.Warn("no view functions found", "dir", g.cfg.ViewsDir)
	}

	src, err := g.render(views)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(g.cfg.Output), 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(g.cfg.Output, src, 0644); err != nil {
		return nil, fmt.Errorf("write route file: %w", err)
	}

	log.Info("route file written", "path", g.cfg.Output, "routes", len(views))
	return views, nil
}

// FromRegistry writes the route file from a live registry snapshot
// instead of a source scan. Views registered under names that are not
// exported identifiers cannot be referenced from generated code and are
// skipped with a warning.
func (g *Generator) FromRegistry(reg *registry.Registry) error {
	var views []ViewFunc
	for _, route := range reg.Routes() {
		if !isExportedIdent(route.Name) {
			log.Warn("skipping route with unaddressable view name", "name", route.Name)
			continue
		}
		views = append(views, ViewFunc{Name: route.Name, Path: route.Path})
	}
	if len(views) == 0 {
		log.Warn("registry is empty, writing empty route table")
	}

	src, err := g.render(views)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(g.cfg.Output), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return os.WriteFile(g.cfg.Output, src, 0644)
}

// render emits the route file source, gofmt-ed. Routes reference the
// views package by name, so a non-empty table needs an import path.
func (g *Generator) render(views []ViewFunc) ([]byte, error) {
	if g.cfg.ViewsImport == "" && len(views) > 0 {
		return nil, fmt.Errorf("views import path is empty but %d views need it", len(views))
	}

	var buf bytes.Buffer

	fmt.Fprintf(&buf, "%s\n\n", generatedHeader)
	fmt.Fprintf(&buf, "package %s\n\n", g.cfg.Package)

	buf.WriteString("import (\n")
	buf.WriteString("\t\"net/http\"\n\n")
	buf.WriteString("\t\"github.com/alucardeht/fasttags/pkg/web\"\n")
	if len(views) > 0 {
		fmt.Fprintf(&buf, "\n\tviews %s\n", strconv.Quote(g.cfg.ViewsImport))
	}
	buf.WriteString(")\n\n")

	buf.WriteString("// Table lists every generated route.\n")
	buf.WriteString("var Table = []web.RouteInfo{\n")
	for _, v := range views {
		fmt.Fprintf(&buf, "\t{Path: %s, Name: %s},\n",
			strconv.Quote(v.Path), strconv.Quote(v.Name))
	}
	buf.WriteString("}\n\n")

	buf.WriteString("// Register binds every generated route onto mux.\n")
	buf.WriteString("func Register(mux *http.ServeMux) {\n")
	for _, v := range views {
		fmt.Fprintf(&buf, "\tmux.HandleFunc(%s, web.Handle(%s, views.%s))\n",
			strconv.Quote(v.Path), strconv.Quote(v.Name), v.Name)
	}
	buf.WriteString("}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated routes: %w", err)
	}
	return src, nil
}

func isExportedIdent(name string) bool {
	if name == "" {
		return false
	}
	if name[0] < 'A' || name[0] > 'Z' {
		return false
	}
	for _, r := range name {
		valid := r == '_' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9')
		if !valid {
			return false
		}
	}
	return true
}
