package forms

import (
	"strings"
	"testing"
	"time"

	"github.com/alucardeht/fasttags/pkg/ft"
)

type signup struct {
	Username string
	Email    string `ft:"email,required"`
	Password string `ft:"password"`
	Age      int    `ft:"number,min=13"`
	Bio      string `ft:"textarea"`
	Token    string `ft:"hidden"`
	Joined   time.Time
	Admin    bool
	internal string `ft:"text"`
}

func render(t *testing.T, nodes []ft.Node) string {
	t.Helper()
	return ft.String(ft.Group(nodes))
}

func TestFieldsMapping(t *testing.T) {
	f := signup{Username: "ada", Admin: true, Token: "tok"}

	rows, err := Fields(f)
	if err != nil {
		t.Fatalf("Fields failed: %v", err)
	}

	got := render(t, rows)
	for _, want := range []string{
		`type="text"`, `name="username"`, `value="ada"`,
		`type="email"`, `required`,
		`type="password"`,
		`type="number"`, `min="13"`,
		`<textarea name="bio" id="bio">`,
		`type="hidden"`, `value="tok"`,
		`type="datetime-local"`,
		`type="checkbox"`, `checked`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Missing %q in %q", want, got)
		}
	}
	if strings.Contains(got, "internal") {
		t.Error("Expected unexported field skipped")
	}
}

func TestFieldsLabels(t *testing.T) {
	rows, err := Fields(struct{ FirstName string }{})
	if err != nil {
		t.Fatalf("Fields failed: %v", err)
	}
	got := render(t, rows)
	if !strings.Contains(got, `<label for="firstname">First Name</label>`) {
		t.Errorf("Expected split label, got %q", got)
	}
}

func TestHiddenFieldHasNoLabel(t *testing.T) {
	rows, err := Fields(struct {
		Token string `ft:"hidden"`
	}{Token: "x"})
	if err != nil {
		t.Fatalf("Fields failed: %v", err)
	}
	got := render(t, rows)
	if strings.Contains(got, "<label") {
		t.Errorf("Expected no label for hidden field, got %q", got)
	}
}

func TestFieldsSkipTag(t *testing.T) {
	rows, err := Fields(struct {
		Shown  string
		Hidden string `ft:"-"`
	}{})
	if err != nil {
		t.Fatalf("Fields failed: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("Expected 1 row, got %d", len(rows))
	}
}

func TestFieldsPointerAndErrors(t *testing.T) {
	if _, err := Fields(&signup{}); err != nil {
		t.Errorf("Expected pointer accepted: %v", err)
	}
	if _, err := Fields(42); err == nil {
		t.Error("Expected error for non-struct")
	}
	if _, err := Fields((*signup)(nil)); err == nil {
		t.Error("Expected error for nil pointer")
	}
}

func TestFieldsUnknownTag(t *testing.T) {
	_, err := Fields(struct {
		X string `ft:"bogus"`
	}{})
	if err == nil {
		t.Fatal("Expected error for unknown ft tag")
	}
}

func TestFormWrapsFields(t *testing.T) {
	form, err := Form(struct{ Name string }{}, "/signup/")
	if err != nil {
		t.Fatalf("Form failed: %v", err)
	}
	got := ft.String(form)
	for _, want := range []string{
		`<form action="/signup/" method="post">`,
		`type="submit"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Missing %q in %q", want, got)
		}
	}
}
