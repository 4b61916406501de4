package registry

import (
	"errors"
	"testing"
)

func TestInitializeRunsCallbacksInOrder(t *testing.T) {
	reg := New()

	err := Initialize(reg,
		func(r *Registry) error {
			r.Register("", "First", view("1"))
			return nil
		},
		func(r *Registry) error {
			r.Register("", "Second", view("2"))
			return nil
		},
	)
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	routes := reg.Routes()
	if len(routes) != 2 || routes[0].Name != "First" || routes[1].Name != "Second" {
		t.Errorf("Expected ordered registration, got %v", routes)
	}
}

func TestInitializeStopsOnError(t *testing.T) {
	reg := New()
	boom := errors.New("boom")

	err := Initialize(reg,
		func(r *Registry) error { return boom },
		func(r *Registry) error {
			r.Register("", "Never", view("x"))
			return nil
		},
	)
	if !errors.Is(err, boom) {
		t.Fatalf("Expected callback error, got %v", err)
	}
	if reg.Len() != 0 {
		t.Errorf("Expected later callbacks skipped, got %d routes", reg.Len())
	}
}
