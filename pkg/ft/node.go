// Package ft builds HTML element trees in plain Go and serializes them to
// markup. Elements are constructed with tag factories (Div, Span, H1, ...),
// carry attributes and children, and render through Render or String.
//
// Children may be other elements, strings (escaped by default), Raw markup,
// Attribute values, or slices of any of these; nested slices flatten.
package ft

import (
	"fmt"
	"io"
	"strings"
)

// Node is anything the renderer can serialize.
type Node interface {
	writeTo(w io.Writer, cfg *Config) error
}

// Text is a text node, escaped according to the active config.
type Text string

// Raw is trusted markup written through without escaping.
type Raw string

// Group is a sequence of nodes rendered back to back with no wrapper tag.
type Group []Node

// Attribute is a key/value pair attached to an element. The zero Val renders
// nothing; see writeAttr for the full value rules.
type Attribute struct {
	Key string
	Val any
}

// FT is a single element: tag name, attributes, children and void flag.
type FT struct {
	Tag          string
	Attrs        []Attribute
	Children     []Node
	Void         bool
	ValidateMode string
}

// New builds an element for tag, flattening items into attributes and
// children. The tag is lowercased and the void flag follows the HTML5 void
// element set.
func New(tag string, items ...any) *FT {
	e := &FT{Tag: strings.ToLower(tag)}
	e.Void = VoidElements[e.Tag]
	e.add(items)
	return e
}

// With appends more children and attributes to the element.
func (e *FT) With(items ...any) *FT {
	e.add(items)
	return e
}

// keepOnSet lists attribute keys Set preserves when replacing attributes.
var keepOnSet = map[string]bool{"id": true, "name": true}

// Set replaces the element's children. Any Attribute items replace the
// current attribute list, except id and name which are preserved.
func (e *FT) Set(items ...any) *FT {
	var kids []Node
	var attrs []Attribute
	collect(items, &kids, &attrs)
	e.Children = kids
	if len(attrs) > 0 {
		var kept []Attribute
		for _, a := range e.Attrs {
			if keepOnSet[a.Key] {
				kept = append(kept, a)
			}
		}
		e.Attrs = append(kept, attrs...)
	}
	return e
}

// AsVoid overrides the element's void flag. A mismatch against the HTML5
// void set is logged but honored.
func (e *FT) AsVoid(void bool) *FT {
	warnVoidOverride(e.Tag, void, VoidElements[e.Tag])
	e.Void = void
	return e
}

// Get returns the value of an attribute, after key mapping.
func (e *FT) Get(key string) (any, bool) {
	key = keymap(key)
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return nil, false
}

func (e *FT) add(items []any) {
	collect(items, &e.Children, &e.Attrs)
}

// setAttr replaces an existing attribute in place or appends a new one.
func setAttr(attrs *[]Attribute, a Attribute) {
	for i := range *attrs {
		if (*attrs)[i].Key == a.Key {
			(*attrs)[i].Val = a.Val
			return
		}
	}
	*attrs = append(*attrs, a)
}

// collect flattens items into children and attributes. Strings become Text
// nodes, maps become attributes, nested slices recurse, nil is dropped, and
// anything else is stringified.
func collect(items []any, kids *[]Node, attrs *[]Attribute) {
	for _, it := range items {
		switch v := it.(type) {
		case nil:
		case Attribute:
			setAttr(attrs, Attribute{Key: keymap(v.Key), Val: v.Val})
		case map[string]any:
			for _, k := range sortedKeys(v) {
				setAttr(attrs, Attribute{Key: keymap(k), Val: v[k]})
			}
		case Node:
			*kids = append(*kids, v)
		case string:
			*kids = append(*kids, Text(v))
		case []Node:
			for _, n := range v {
				*kids = append(*kids, n)
			}
		case []any:
			collect(v, kids, attrs)
		case []*FT:
			for _, n := range v {
				*kids = append(*kids, n)
			}
		case fmt.Stringer:
			*kids = append(*kids, Text(v.String()))
		case error:
			*kids = append(*kids, Text(v.Error()))
		default:
			*kids = append(*kids, Text(fmt.Sprint(v)))
		}
	}
}

// String renders the element, mainly for debugging and tests.
func (e *FT) String() string {
	var sb strings.Builder
	cfg := DefaultConfig()
	_ = e.writeTo(&sb, &cfg)
	return sb.String()
}
