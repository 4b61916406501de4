package web

import (
	"strings"
	"testing"

	"github.com/alucardeht/fasttags/pkg/ft"
)

func TestDocumentWrapsContent(t *testing.T) {
	b := NewBuilder("", nil)

	doc, err := b.Document(ft.Div(ft.H1("hi")), DocumentOptions{})
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}

	got := ft.String(doc)
	for _, want := range []string{
		`<html`, `lang="en"`, `charset="utf-8"`, `name="viewport"`,
		"<body><div><h1>hi</h1></div></body>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Missing %q in %q", want, got)
		}
	}
}

func TestDocumentHTMLPassthrough(t *testing.T) {
	b := NewBuilder("en", nil)
	page := ft.Html(ft.Body(ft.P("x")))

	doc, err := b.Document(page, DocumentOptions{})
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}
	if doc != page {
		t.Error("Expected html content passed through untouched")
	}
}

func TestDocumentBodyRootKept(t *testing.T) {
	b := NewBuilder("en", nil)
	body := ft.Body(ft.ID("app"), ft.P("x"))

	doc, err := b.Document(body, DocumentOptions{})
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}
	got := ft.String(doc)
	if !strings.Contains(got, `<body id="app">`) {
		t.Errorf("Expected original body kept, got %q", got)
	}
}

func TestDocumentInjectsExtensions(t *testing.T) {
	b := NewBuilder("en", map[string][]string{
		"htmx": {`<script src="/htmx.js"></script>`},
	})

	doc, err := b.Document(ft.Div(), DocumentOptions{Extensions: []string{"htmx", "unknown"}})
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}
	got := ft.String(doc)
	if !strings.Contains(got, `<script src="/htmx.js"></script>`) {
		t.Errorf("Expected extension snippet injected, got %q", got)
	}
}

func TestDocumentRejectsBareText(t *testing.T) {
	b := NewBuilder("en", nil)
	if _, err := b.Document(ft.Text("loose"), DocumentOptions{}); err == nil {
		t.Fatal("Expected error for non-element content")
	}
}
