// Package forms derives HTML form fields from Go structs, mapping field
// types and `ft` struct tags onto input elements.
package forms

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/alucardeht/fasttags/pkg/ft"
)

// kindInputs maps reflect kinds without a tag override onto input types.
var kindInputs = map[reflect.Kind]string{
	reflect.String:  "text",
	reflect.Bool:    "checkbox",
	reflect.Int:     "number",
	reflect.Int8:    "number",
	reflect.Int16:   "number",
	reflect.Int32:   "number",
	reflect.Int64:   "number",
	reflect.Uint:    "number",
	reflect.Uint8:   "number",
	reflect.Uint16:  "number",
	reflect.Uint32:  "number",
	reflect.Uint64:  "number",
	reflect.Float32: "number",
	reflect.Float64: "number",
}

// textualOverrides are tag values rendered as <input type=...>.
var textualOverrides = map[string]bool{
	"text": true, "password": true, "email": true, "url": true,
	"hidden": true, "color": true, "range": true, "file": true,
	"number": true, "tel": true, "search": true, "date": true,
	"time": true, "datetime-local": true,
}

// Fields reflects over a struct and returns one labeled field row per
// exported field. The `ft` tag overrides the input type and may carry
// attribute options: `ft:"range,min=0,max=10"`. A tag of "-" skips the
// field.
func Fields(v any) ([]ft.Node, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("forms: nil pointer")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("forms: expected struct, got %s", rv.Kind())
	}

	var rows []ft.Node
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		kind, options := parseTag(field.Tag.Get("ft"))
		if kind == "-" {
			continue
		}
		row, err := fieldRow(field, rv.Field(i), kind, options)
		if err != nil {
			return nil, err
		}
		if row != nil {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// Form wraps the field rows of v in a post form with a submit button.
func Form(v any, action string) (*ft.FT, error) {
	rows, err := Fields(v)
	if err != nil {
		return nil, err
	}
	items := []any{ft.Action(action), ft.Method("post")}
	for _, row := range rows {
		items = append(items, row)
	}
	items = append(items, ft.Button("Submit", ft.Type("submit")))
	return ft.Form(items...), nil
}

func parseTag(tag string) (string, map[string]string) {
	if tag == "" {
		return "", nil
	}
	parts := strings.Split(tag, ",")
	options := make(map[string]string)
	for _, part := range parts[1:] {
		k, v, found := strings.Cut(part, "=")
		if found {
			options[k] = v
		} else {
			options[k] = ""
		}
	}
	return parts[0], options
}

func fieldRow(field reflect.StructField, value reflect.Value, kind string, options map[string]string) (ft.Node, error) {
	id := strings.ToLower(field.Name)

	var control *ft.FT
	switch {
	case kind == "textarea":
		control = ft.Textarea(fmt.Sprint(value.Interface()), ft.Name(id), ft.ID(id))
	case kind == "" && value.Type() == reflect.TypeOf(time.Time{}):
		control = inputEl("datetime-local", id, formatTime(value))
	case kind == "":
		inputType, ok := kindInputs[value.Kind()]
		if !ok {
			return nil, fmt.Errorf("forms: no input mapping for field %s (%s)", field.Name, value.Kind())
		}
		control = inputForKind(inputType, id, value)
	case textualOverrides[kind]:
		control = inputForKind(kind, id, value)
	default:
		return nil, fmt.Errorf("forms: unknown ft tag %q on field %s", kind, field.Name)
	}

	for _, k := range []string{"min", "max", "step", "placeholder", "pattern"} {
		if v, ok := options[k]; ok && v != "" {
			control = control.With(ft.Attr(k, v))
		}
	}
	if _, ok := options["required"]; ok {
		control = control.With(ft.Required())
	}

	label := labelText(field.Name)
	if control.Tag == "input" {
		if t, _ := control.Get("type"); t == "hidden" {
			return control, nil
		}
	}
	return ft.Div(
		ft.Class("field"),
		ft.Label(label, ft.For(id)),
		control,
	), nil
}

func inputForKind(inputType, id string, value reflect.Value) *ft.FT {
	if value.Kind() == reflect.Bool {
		el := inputEl("checkbox", id, "")
		if value.Bool() {
			el = el.With(ft.Checked())
		}
		return el
	}
	val := fmt.Sprint(value.Interface())
	if val == "0" || val == "" {
		return inputEl(inputType, id, "")
	}
	return inputEl(inputType, id, val)
}

func inputEl(inputType, id, val string) *ft.FT {
	items := []any{ft.Type(inputType), ft.Name(id), ft.ID(id)}
	if val != "" {
		items = append(items, ft.Value(val))
	}
	return ft.Input(items...)
}

func formatTime(value reflect.Value) string {
	t, ok := value.Interface().(time.Time)
	if !ok || t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02T15:04")
}

// labelText splits a CamelCase field name into words.
func labelText(name string) string {
	var sb strings.Builder
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			sb.WriteByte(' ')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
