// Package htmlconv converts existing HTML into ft trees or ft-building Go
// expressions, for one-time migration of templates into code.
package htmlconv

import (
	"log/slog"
	"strings"

	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alucardeht/fasttags/pkg/ft"
)

// unsafeTags are common injection vectors worth flagging when converting
// markup of unknown origin.
var unsafeTags = map[string]bool{
	"script": true, "iframe": true, "object": true, "embed": true, "link": true,
}

// Options controls parsing behavior.
type Options struct {
	// Strict turns empty input into an error instead of a warning.
	Strict bool
	// QuietUnsafe suppresses warnings for script/iframe/object/embed/link.
	QuietUnsafe bool
}

// Parse converts markup into an ft tree with default options. Multi-root
// input yields a Group; empty input yields nil.
func Parse(markup string) (ft.Node, error) {
	return ParseOptions(markup, Options{})
}

// ParseOptions converts markup into an ft tree. Parsing is tolerant:
// unbalanced markup is repaired by the parser rather than rejected.
func ParseOptions(markup string, opts Options) (ft.Node, error) {
	log := slog.Default().With("component", "htmlconv")

	markup = strings.TrimSpace(markup)
	if markup == "" {
		if opts.Strict {
			return nil, ft.Curative("empty input",
				"Provide non-empty HTML.",
				"Drop Strict to get a nil tree for empty input.")
		}
		log.Warn("empty input, returning nil tree")
		return nil, nil
	}

	roots, err := parseRoots(markup)
	if err != nil {
		return nil, ft.Curative("parsing markup failed: "+err.Error(),
			"Verify the HTML syntax.",
			"Simplify the input and convert it in pieces.")
	}

	var nodes []ft.Node
	for _, root := range roots {
		n := toNode(root, opts, log)
		if n != nil {
			nodes = append(nodes, n)
		}
	}

	switch len(nodes) {
	case 0:
		return nil, nil
	case 1:
		return nodes[0], nil
	default:
		return ft.Group(nodes), nil
	}
}

// parseRoots parses either a full document or a body fragment, returning the
// top-level nodes.
func parseRoots(markup string) ([]*xhtml.Node, error) {
	if strings.Contains(strings.ToLower(markup), "<html") {
		doc, err := xhtml.Parse(strings.NewReader(markup))
		if err != nil {
			return nil, err
		}
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == xhtml.ElementNode && c.Data == "html" {
				return []*xhtml.Node{c}, nil
			}
		}
		return nil, nil
	}

	body := &xhtml.Node{Type: xhtml.ElementNode, Data: "body", DataAtom: atom.Body}
	return xhtml.ParseFragment(strings.NewReader(markup), body)
}

// toNode converts one parsed node. Comments and whitespace-only text are
// dropped.
func toNode(n *xhtml.Node, opts Options, log *slog.Logger) ft.Node {
	switch n.Type {
	case xhtml.TextNode:
		text := strings.TrimSpace(n.Data)
		if text == "" {
			return nil
		}
		return ft.Text(text)
	case xhtml.ElementNode:
		if unsafeTags[n.Data] && !opts.QuietUnsafe {
			log.Warn("unsafe tag in converted markup", "tag", n.Data)
		}
		items := make([]any, 0, len(n.Attr))
		for _, a := range n.Attr {
			if a.Val == "" {
				items = append(items, ft.Attr(a.Key, true))
			} else {
				items = append(items, ft.Attr(a.Key, a.Val))
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := toNode(c, opts, log); child != nil {
				items = append(items, child)
			}
		}
		return ft.New(n.Data, items...)
	default:
		return nil
	}
}
