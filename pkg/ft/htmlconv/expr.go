package htmlconv

import (
	"strconv"
	"strings"

	xhtml "golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alucardeht/fasttags/pkg/ft"
)

// ExprOptions controls Go expression generation.
type ExprOptions struct {
	// AttrsFirst places attributes before children in the argument list.
	AttrsFirst bool
	// Pkg is the package qualifier for generated calls, "ft" by default.
	Pkg string
	// Indent is the indent width for nested calls, 4 by default.
	Indent int
}

// attrHelpers maps attribute keys onto their factory helper names; anything
// else is emitted through Attr.
var attrHelpers = map[string]string{
	"class": "Class", "id": "ID", "href": "Href", "src": "Src", "alt": "Alt",
	"name": "Name", "type": "Type", "value": "Value",
	"placeholder": "Placeholder", "action": "Action", "method": "Method",
	"rel": "Rel", "charset": "Charset", "content": "Content", "lang": "Lang",
	"for": "For", "target": "Target",
}

var titleCaser = cases.Title(language.Und)

// Expr converts markup into a Go expression building the equivalent ft tree.
func Expr(markup string) (string, error) {
	return ExprWith(markup, ExprOptions{})
}

// ExprWith is Expr with explicit options.
func ExprWith(markup string, opts ExprOptions) (string, error) {
	if opts.Pkg == "" {
		opts.Pkg = "ft"
	}
	if opts.Indent <= 0 {
		opts.Indent = 4
	}

	markup = strings.TrimSpace(markup)
	if markup == "" {
		return "", ft.Curative("empty input",
			"Provide non-empty HTML to convert.")
	}

	roots, err := parseRoots(markup)
	if err != nil {
		return "", ft.Curative("parsing markup failed: "+err.Error(),
			"Verify the HTML syntax.",
			"Simplify the input and convert it in pieces.")
	}

	var exprs []string
	for _, root := range roots {
		if e := nodeExpr(root, opts, 1); e != "" {
			exprs = append(exprs, e)
		}
	}

	switch len(exprs) {
	case 0:
		return "", nil
	case 1:
		return exprs[0], nil
	default:
		return opts.Pkg + ".Group{" + strings.Join(exprs, ", ") + "}", nil
	}
}

func nodeExpr(n *xhtml.Node, opts ExprOptions, depth int) string {
	switch n.Type {
	case xhtml.TextNode:
		text := strings.TrimSpace(n.Data)
		if text == "" {
			return ""
		}
		return opts.Pkg + ".Text(" + strconv.Quote(text) + ")"
	case xhtml.ElementNode:
		return elementExpr(n, opts, depth)
	default:
		return ""
	}
}

func elementExpr(n *xhtml.Node, opts ExprOptions, depth int) string {
	var kids []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if e := nodeExpr(c, opts, depth+1); e != "" {
			kids = append(kids, e)
		}
	}

	attrs := make([]string, 0, len(n.Attr))
	for _, a := range n.Attr {
		attrs = append(attrs, attrExpr(a, opts.Pkg))
	}

	call, args := factoryCall(n.Data, opts.Pkg)

	if opts.AttrsFirst {
		args = append(append(args, attrs...), kids...)
	} else {
		args = append(append(args, kids...), attrs...)
	}

	// Single text child stays on one line; anything deeper wraps.
	inline := len(kids) <= 1 && !hasElementChild(n)
	if inline || len(args) <= 1 {
		return call + "(" + strings.Join(args, ", ") + ")"
	}

	pad := strings.Repeat(" ", depth*opts.Indent)
	closePad := strings.Repeat(" ", (depth-1)*opts.Indent)
	return call + "(\n" + pad + strings.Join(args, ",\n"+pad) + ",\n" + closePad + ")"
}

// factoryCall resolves a tag to its factory, falling back to New (with the
// tag as first argument) for custom elements.
func factoryCall(tag, pkg string) (string, []string) {
	if ft.HTMLTags[tag] {
		return pkg + "." + titleCaser.String(tag), nil
	}
	return pkg + ".New", []string{strconv.Quote(tag)}
}

func attrExpr(a xhtml.Attribute, pkg string) string {
	if helper, ok := attrHelpers[a.Key]; ok {
		return pkg + "." + helper + "(" + strconv.Quote(a.Val) + ")"
	}
	if a.Val == "" {
		return pkg + ".Attr(" + strconv.Quote(a.Key) + ", true)"
	}
	return pkg + ".Attr(" + strconv.Quote(a.Key) + ", " + strconv.Quote(a.Val) + ")"
}

func hasElementChild(n *xhtml.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xhtml.ElementNode {
			return true
		}
	}
	return false
}
