package web

import (
	"fmt"

	"github.com/alucardeht/fasttags/pkg/ft"
)

// Builder wraps view content into a complete HTML document with the
// standard meta tags and any configured extension snippets.
type Builder struct {
	Lang       string
	Extensions map[string][]string
}

func NewBuilder(lang string, extensions map[string][]string) *Builder {
	if lang == "" {
		lang = "en"
	}
	return &Builder{Lang: lang, Extensions: extensions}
}

// DocumentOptions selects extensions and extra head content for one
// document.
type DocumentOptions struct {
	// Extensions names entries from the extensions manifest whose head
	// snippets are injected.
	Extensions []string
	// ExtraHead is appended to the head after extensions.
	ExtraHead []ft.Node
	// BodyAttrs are applied to the generated body element.
	BodyAttrs []ft.Attribute
}

// Document wraps content into <html>. Content already rooted at html passes
// through untouched; content rooted at body keeps its own body element.
func (b *Builder) Document(content ft.Node, opts DocumentOptions) (*ft.FT, error) {
	el, ok := content.(*ft.FT)
	if !ok {
		if _, isGroup := content.(ft.Group); !isGroup {
			return nil, fmt.Errorf("document content must be an element or group, got %T", content)
		}
	}

	if ok && el.Tag == "html" {
		return el, nil
	}

	head := []any{
		ft.Meta(ft.Charset("utf-8")),
		ft.Meta(ft.Name("viewport"), ft.Content("width=device-width, initial-scale=1.0")),
	}
	for _, name := range opts.Extensions {
		snippets, found := b.Extensions[name]
		if !found {
			log.Warn("unknown extension requested", "name", name)
			continue
		}
		for _, snippet := range snippets {
			head = append(head, ft.Raw(snippet))
		}
	}
	for _, n := range opts.ExtraHead {
		head = append(head, n)
	}

	if ok && el.Tag == "body" {
		return ft.Html(ft.Head(head...), el, ft.Lang(b.Lang)), nil
	}

	body := []any{content}
	for _, a := range opts.BodyAttrs {
		body = append(body, a)
	}
	return ft.Html(ft.Head(head...), ft.Body(body...), ft.Lang(b.Lang)), nil
}
