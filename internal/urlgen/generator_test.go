package urlgen

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alucardeht/fasttags/internal/config"
	"github.com/alucardeht/fasttags/pkg/ft"
	"github.com/alucardeht/fasttags/pkg/registry"
)

func TestGenerateWritesRouteFile(t *testing.T) {
	viewsDir := writeViews(t, map[string]string{"views.go": viewsSource})
	output := filepath.Join(t.TempDir(), "routes", "routes_gen.go")

	gen := New(config.GenerateConfig{
		ViewsDir:    viewsDir,
		ViewsImport: "example.com/myapp/views",
		Output:      output,
		Package:     "routes",
	})

	views, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("Expected 2 views, got %d", len(views))
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	src := string(data)

	for _, want := range []string{
		"// Code generated by fasttags routes generate. DO NOT EDIT.",
		"package routes",
		`views "example.com/myapp/views"`,
		`{Path: "/who-we-are/", Name: "About"}`,
		`{Path: "/home/", Name: "Home"}`,
		`mux.HandleFunc("/home/", web.Handle("Home", views.Home))`,
		"func Register(mux *http.ServeMux)",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("Missing %q in generated source:\n%s", want, src)
		}
	}
}

func TestGenerateEmptyViewsStillWritesFile(t *testing.T) {
	output := filepath.Join(t.TempDir(), "routes_gen.go")

	gen := New(config.GenerateConfig{
		ViewsDir: t.TempDir(),
		Output:   output,
		Package:  "routes",
	})

	views, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(views) != 0 {
		t.Errorf("Expected no views, got %v", views)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "var Table = []web.RouteInfo{}") {
		t.Errorf("Expected empty table, got:\n%s", data)
	}
}

func TestGenerateRejectsMissingViewsImport(t *testing.T) {
	viewsDir := writeViews(t, map[string]string{"views.go": viewsSource})
	output := filepath.Join(t.TempDir(), "routes_gen.go")

	gen := New(config.GenerateConfig{
		ViewsDir: viewsDir,
		Output:   output,
		Package:  "routes",
	})

	if _, err := gen.Generate(); err == nil {
		t.Fatal("Expected error when views exist but no import path is set")
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("Expected no route file written")
	}
}

func TestFromRegistrySnapshot(t *testing.T) {
	output := filepath.Join(t.TempDir(), "routes_gen.go")

	reg := registry.New()
	reg.Register("", "Home", func(r *http.Request) ft.Node { return ft.Div() })
	reg.Register("/odd path/", "not-an-ident", func(r *http.Request) ft.Node { return nil })

	gen := New(config.GenerateConfig{
		ViewsImport: "example.com/myapp/views",
		Output:      output,
		Package:     "routes",
	})

	if err := gen.FromRegistry(reg); err != nil {
		t.Fatalf("FromRegistry failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	src := string(data)
	if !strings.Contains(src, `views.Home`) {
		t.Errorf("Expected Home route emitted:\n%s", src)
	}
	if strings.Contains(src, "not-an-ident") {
		t.Errorf("Expected unaddressable view skipped:\n%s", src)
	}
}
