package ft

import (
	"html"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Render serializes nodes to w using the default config.
func Render(w io.Writer, nodes ...Node) error {
	cfg := DefaultConfig()
	return RenderConfig(w, cfg, nodes...)
}

// RenderConfig serializes nodes to w with an explicit config.
func RenderConfig(w io.Writer, cfg Config, nodes ...Node) error {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if err := n.writeTo(w, &cfg); err != nil {
			return err
		}
	}
	return nil
}

// String renders nodes to a string using the default config.
func String(nodes ...Node) string {
	var sb strings.Builder
	_ = Render(&sb, nodes...)
	return sb.String()
}

func (t Text) writeTo(w io.Writer, cfg *Config) error {
	s := string(t)
	if cfg.EscapeByDefault {
		s = html.EscapeString(s)
	}
	_, err := io.WriteString(w, s)
	return err
}

func (r Raw) writeTo(w io.Writer, _ *Config) error {
	_, err := io.WriteString(w, string(r))
	return err
}

func (g Group) writeTo(w io.Writer, cfg *Config) error {
	for _, n := range g {
		if n == nil {
			continue
		}
		if err := n.writeTo(w, cfg); err != nil {
			return err
		}
	}
	return nil
}

func (e *FT) writeTo(w io.Writer, cfg *Config) error {
	if _, err := io.WriteString(w, "<"+e.Tag); err != nil {
		return err
	}
	for _, a := range e.Attrs {
		if err := writeAttr(w, a); err != nil {
			return err
		}
	}
	if e.Void {
		_, err := io.WriteString(w, " />")
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	for _, child := range e.Children {
		if child == nil {
			continue
		}
		if err := child.writeTo(w, cfg); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+e.Tag+">")
	return err
}

// ShowTags renders nodes and pretty-prints the markup for inspection,
// falling back to the flat serialization when tidying fails.
func ShowTags(nodes ...Node) string {
	markup := String(nodes...)
	tidied, err := Tidy(markup)
	if err != nil {
		return markup
	}
	return tidied
}

// Tidy re-serializes markup with indentation. Parsing is tolerant; invalid
// markup comes back best-effort rather than failing.
func Tidy(markup string) (string, error) {
	cfg := DefaultConfig()
	return TidyIndent(markup, cfg.IndentSize)
}

// TidyIndent is Tidy with an explicit indent width.
func TidyIndent(markup string, indent int) (string, error) {
	body := &xhtml.Node{Type: xhtml.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := xhtml.ParseFragment(strings.NewReader(markup), body)
	if err != nil {
		return "", Curative("tidy: parsing markup failed: "+err.Error(),
			"Verify the markup is well formed.",
			"Run the input through Render first to normalize it.")
	}
	var sb strings.Builder
	for _, n := range nodes {
		writeTidy(&sb, n, 0, indent)
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

func writeTidy(sb *strings.Builder, n *xhtml.Node, depth, indent int) {
	pad := strings.Repeat(" ", depth*indent)
	switch n.Type {
	case xhtml.TextNode:
		text := strings.TrimSpace(n.Data)
		if text != "" {
			sb.WriteString(pad + html.EscapeString(text) + "\n")
		}
	case xhtml.ElementNode:
		sb.WriteString(pad + "<" + n.Data)
		for _, a := range n.Attr {
			sb.WriteString(" " + a.Key + `="` + attrEscape(a.Val) + `"`)
		}
		if VoidElements[n.Data] {
			sb.WriteString(" />\n")
			return
		}
		if onlyText(n) {
			sb.WriteString(">" + html.EscapeString(strings.TrimSpace(n.FirstChild.Data)) + "</" + n.Data + ">\n")
			return
		}
		sb.WriteString(">\n")
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeTidy(sb, c, depth+1, indent)
		}
		sb.WriteString(pad + "</" + n.Data + ">\n")
	}
}

func onlyText(n *xhtml.Node) bool {
	c := n.FirstChild
	return c != nil && c.NextSibling == nil && c.Type == xhtml.TextNode
}

// Highlight returns markup with ANSI syntax highlighting for terminal
// output.
func Highlight(markup string) (string, error) {
	var sb strings.Builder
	if err := quick.Highlight(&sb, markup, "html", "terminal256", "monokai"); err != nil {
		return "", Curative("highlight: "+err.Error(),
			"Check the markup renders before highlighting it.",
			"Fall back to the raw markup if terminal colors are not needed.")
	}
	return sb.String(), nil
}
