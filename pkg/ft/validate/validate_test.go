package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/alucardeht/fasttags/pkg/ft"
)

func newValidator(t *testing.T, cfg ft.Config) *Validator {
	t.Helper()
	v, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return v
}

func TestModeNonePassesEverything(t *testing.T) {
	v := newValidator(t, ft.DefaultConfig())
	node := ft.New("madeup", ft.Attr("bogus", "1"))

	out, err := v.ValidateAndHeal(node, ft.ModeNone)
	if err != nil {
		t.Fatalf("Expected no error in none mode: %v", err)
	}
	if out != node {
		t.Error("Expected node passed through untouched")
	}
}

func TestUnknownTagErrorsWithoutHeal(t *testing.T) {
	v := newValidator(t, ft.DefaultConfig())

	_, err := v.ValidateAndHeal(ft.New("madeup"), ft.ModeStatic)
	if err == nil {
		t.Fatal("Expected error for unknown tag")
	}
	var cerr *ft.CurativeError
	if !errors.As(err, &cerr) {
		t.Fatalf("Expected CurativeError, got %T", err)
	}
	if len(cerr.Prescription) == 0 {
		t.Error("Expected prescription steps")
	}
}

func TestUnknownTagDroppedWithHeal(t *testing.T) {
	cfg := ft.DefaultConfig()
	cfg.AutoHeal = true
	v := newValidator(t, cfg)

	out, err := v.ValidateAndHeal(ft.New("madeup"), ft.ModeStatic)
	if err != nil {
		t.Fatalf("Expected heal, got error: %v", err)
	}
	if out != nil {
		t.Errorf("Expected unknown tag dropped, got %v", out)
	}
}

func TestCustomElementWithDashAllowed(t *testing.T) {
	v := newValidator(t, ft.DefaultConfig())

	out, err := v.ValidateAndHeal(ft.New("my-widget"), ft.ModeStatic)
	if err != nil {
		t.Fatalf("Expected dash tag allowed: %v", err)
	}
	if out == nil {
		t.Fatal("Expected node kept")
	}
}

func TestGlobalAndWildcardAttrsAlwaysValid(t *testing.T) {
	v := newValidator(t, ft.DefaultConfig())
	node := ft.Div(
		ft.Class("x"),
		ft.Attr("data-count", "3"),
		ft.Attr("aria-label", "menu"),
	)

	out, err := v.ValidateAndHeal(node, ft.ModeStatic)
	if err != nil {
		t.Fatalf("ValidateAndHeal failed: %v", err)
	}
	el := out.(*ft.FT)
	if len(el.Attrs) != 3 {
		t.Errorf("Expected 3 attributes kept, got %d", len(el.Attrs))
	}
}

func TestInvalidAttrDroppedWithHeal(t *testing.T) {
	cfg := ft.DefaultConfig()
	cfg.AutoHeal = true
	v := newValidator(t, cfg)

	node := ft.Div(ft.Attr("bogus", "1"), ft.Class("keep"))
	out, err := v.ValidateAndHeal(node, ft.ModeStatic)
	if err != nil {
		t.Fatalf("ValidateAndHeal failed: %v", err)
	}
	el := out.(*ft.FT)
	if len(el.Attrs) != 1 || el.Attrs[0].Key != "class" {
		t.Errorf("Expected only class kept, got %v", el.Attrs)
	}
}

func TestFuzzyHealRenamesAttr(t *testing.T) {
	cfg := ft.DefaultConfig()
	cfg.AutoHeal = true
	cfg.HealFuzzy = true
	v := newValidator(t, cfg)

	node := ft.New("a", ft.Attr("hrefs", "/x"))
	out, err := v.ValidateAndHeal(node, ft.ModeStatic)
	if err != nil {
		t.Fatalf("ValidateAndHeal failed: %v", err)
	}
	el := out.(*ft.FT)
	if val, ok := el.Get("href"); !ok || val != "/x" {
		t.Errorf("Expected hrefs healed to href, got %v", el.Attrs)
	}
}

func TestInvalidAttrKeptWithoutHeal(t *testing.T) {
	v := newValidator(t, ft.DefaultConfig())

	node := ft.Div(ft.Attr("bogus", "1"))
	out, err := v.ValidateAndHeal(node, ft.ModeStatic)
	if err != nil {
		t.Fatalf("ValidateAndHeal failed: %v", err)
	}
	el := out.(*ft.FT)
	if len(el.Attrs) != 1 {
		t.Errorf("Expected warn-only behavior to keep the attribute, got %v", el.Attrs)
	}
}

func TestValidationRecursesChildren(t *testing.T) {
	cfg := ft.DefaultConfig()
	cfg.AutoHeal = true
	v := newValidator(t, cfg)

	node := ft.Div(ft.New("madeup"), ft.P("kept"))
	out, err := v.ValidateAndHeal(node, ft.ModeStatic)
	if err != nil {
		t.Fatalf("ValidateAndHeal failed: %v", err)
	}
	el := out.(*ft.FT)
	if len(el.Children) != 1 {
		t.Fatalf("Expected unknown child dropped, got %d children", len(el.Children))
	}
	if !strings.Contains(ft.String(el), "<p>kept</p>") {
		t.Errorf("Expected surviving child, got %q", ft.String(el))
	}
}

func TestNearestAttr(t *testing.T) {
	if got, ok := nearestAttr("clas", "div"); !ok || got != "class" {
		t.Errorf("nearestAttr(clas) = %q, %v", got, ok)
	}
	if got, ok := nearestAttr("hrf", "a"); !ok || got != "href" {
		t.Errorf("nearestAttr(hrf) = %q, %v", got, ok)
	}
	if _, ok := nearestAttr("completelyunrelated", "div"); ok {
		t.Error("Expected no match beyond the distance bound")
	}
}
