package ft

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Attr builds an attribute from an explicit key. The key goes through the
// same mapping as factory helpers: leading underscore stripped, cls -> class,
// fr -> for, underscores become dashes unless the key already contains
// dashes, colons or dots.
func Attr(key string, val any) Attribute {
	return Attribute{Key: key, Val: val}
}

// Common attribute helpers. Keys that collide with tag factory names (style,
// title, form, ...) are set with Attr instead.
func Class(v ...string) Attribute   { return Attribute{Key: "class", Val: strings.Join(v, " ")} }
func ID(v string) Attribute         { return Attribute{Key: "id", Val: v} }
func Href(v string) Attribute       { return Attribute{Key: "href", Val: v} }
func Src(v string) Attribute        { return Attribute{Key: "src", Val: v} }
func Alt(v string) Attribute        { return Attribute{Key: "alt", Val: v} }
func Name(v string) Attribute       { return Attribute{Key: "name", Val: v} }
func Type(v string) Attribute       { return Attribute{Key: "type", Val: v} }
func Value(v any) Attribute         { return Attribute{Key: "value", Val: v} }
func Placeholder(v string) Attribute { return Attribute{Key: "placeholder", Val: v} }
func Action(v string) Attribute     { return Attribute{Key: "action", Val: v} }
func Method(v string) Attribute     { return Attribute{Key: "method", Val: v} }
func Rel(v string) Attribute        { return Attribute{Key: "rel", Val: v} }
func Charset(v string) Attribute    { return Attribute{Key: "charset", Val: v} }
func Content(v string) Attribute    { return Attribute{Key: "content", Val: v} }
func Lang(v string) Attribute       { return Attribute{Key: "lang", Val: v} }
func For(v string) Attribute        { return Attribute{Key: "for", Val: v} }
func Target(v string) Attribute     { return Attribute{Key: "target", Val: v} }
func Required() Attribute           { return Attribute{Key: "required", Val: true} }
func Checked() Attribute            { return Attribute{Key: "checked", Val: true} }
func Disabled() Attribute           { return Attribute{Key: "disabled", Val: true} }

const specialKeyChars = "-:."

// keymap normalizes an attribute key written as a Go-friendly identifier
// into its HTML form.
func keymap(key string) string {
	if key == "" {
		return "_"
	}
	key = strings.TrimPrefix(key, "_")
	switch key {
	case "cls":
		return "class"
	case "fr":
		return "for"
	}
	if strings.ContainsAny(key, specialKeyChars) {
		return key
	}
	return strings.ReplaceAll(key, "_", "-")
}

// writeAttr serializes one attribute. nil, false and "" drop the attribute,
// true renders the bare key, slices join with spaces, maps render as inline
// style declarations, everything else is stringified.
func writeAttr(w io.Writer, a Attribute) error {
	var val string
	switch v := a.Val.(type) {
	case nil:
		return nil
	case bool:
		if !v {
			return nil
		}
		_, err := io.WriteString(w, " "+a.Key)
		return err
	case string:
		val = v
	case Raw:
		val = string(v)
	case []string:
		val = strings.Join(v, " ")
	case map[string]string:
		pairs := make([]string, 0, len(v))
		for _, k := range sortedStringKeys(v) {
			pairs = append(pairs, k+":"+v[k])
		}
		val = strings.Join(pairs, "; ")
	case fmt.Stringer:
		val = v.String()
	default:
		val = fmt.Sprint(v)
	}
	if val == "" {
		return nil
	}
	_, err := io.WriteString(w, " "+a.Key+`="`+attrEscape(val)+`"`)
	return err
}

var attrEscaper = strings.NewReplacer("&", "&amp;", `"`, "&quot;", "<", "&lt;", ">", "&gt;")

func attrEscape(s string) string {
	return attrEscaper.Replace(s)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedStringKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
