package registry

import (
	"net/http"
	"testing"

	"github.com/alucardeht/fasttags/pkg/ft"
)

func view(body string) View {
	return func(r *http.Request) ft.Node {
		return ft.P(body)
	}
}

func TestDefaultPath(t *testing.T) {
	cases := []struct{ name, want string }{
		{"Home", "/home/"},
		{"AboutUs", "/aboutus/"},
		{"API", "/api/"},
	}
	for _, c := range cases {
		if got := DefaultPath(c.name); got != c.want {
			t.Errorf("DefaultPath(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestRegisterDerivesPath(t *testing.T) {
	reg := New()
	path := reg.Register("", "Home", view("home"))
	if path != "/home/" {
		t.Errorf("Expected derived path /home/, got %q", path)
	}
	if _, ok := reg.Get("/home/"); !ok {
		t.Error("Expected view registered under derived path")
	}
}

func TestRegisterExplicitPath(t *testing.T) {
	reg := New()
	path := reg.Register("/custom/", "Home", view("home"))
	if path != "/custom/" {
		t.Errorf("Expected explicit path kept, got %q", path)
	}
}

func TestRegisterLastWins(t *testing.T) {
	reg := New()
	reg.Register("/x/", "First", view("first"))
	reg.Register("/x/", "Second", view("second"))

	if reg.Len() != 1 {
		t.Fatalf("Expected 1 route after overwrite, got %d", reg.Len())
	}

	routes := reg.Routes()
	if routes[0].Name != "Second" {
		t.Errorf("Expected last registration to win, got %q", routes[0].Name)
	}

	v, _ := reg.Get("/x/")
	if got := ft.String(v(nil)); got != "<p>second</p>" {
		t.Errorf("Expected second view served, got %q", got)
	}
}

func TestRoutesPreservesOrder(t *testing.T) {
	reg := New()
	reg.Register("", "Bravo", view("b"))
	reg.Register("", "Alpha", view("a"))

	routes := reg.Routes()
	if len(routes) != 2 {
		t.Fatalf("Expected 2 routes, got %d", len(routes))
	}
	if routes[0].Name != "Bravo" || routes[1].Name != "Alpha" {
		t.Errorf("Expected registration order preserved, got %v", routes)
	}
}

func TestRoutesReturnsCopy(t *testing.T) {
	reg := New()
	reg.Register("", "Home", view("home"))

	routes := reg.Routes()
	routes[0].Name = "Mutated"

	if reg.Routes()[0].Name != "Home" {
		t.Error("Expected Routes to return a copy")
	}
}

func TestGetMissing(t *testing.T) {
	reg := New()
	if _, ok := reg.Get("/nope/"); ok {
		t.Error("Expected miss for unregistered path")
	}
}
