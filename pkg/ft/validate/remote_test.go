package validate

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alucardeht/fasttags/pkg/ft"
)

func newRemoteValidator(t *testing.T, url string, cfg ft.Config) *Validator {
	t.Helper()
	v, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	v.remote.url = url
	return v
}

func nuServer(t *testing.T, body string, hits *int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			*hits++
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRemoteModeRejectsOnValidatorError(t *testing.T) {
	cfg := ft.DefaultConfig()
	cfg.AutoHeal = true
	srv := nuServer(t, `{"messages":[{"type":"error","message":"Attribute not allowed"}]}`, nil)
	v := newRemoteValidator(t, srv.URL, cfg)

	node := ft.New("section", ft.Attr("onscrollend", "x()"))
	out, err := v.ValidateAndHeal(node, ft.ModeRemote)
	if err != nil {
		t.Fatalf("ValidateAndHeal failed: %v", err)
	}
	el := out.(*ft.FT)
	if len(el.Attrs) != 0 {
		t.Errorf("Expected rejected attribute dropped, got %v", el.Attrs)
	}
}

func TestRemoteModeAcceptsCleanVerdict(t *testing.T) {
	cfg := ft.DefaultConfig()
	cfg.AutoHeal = true
	srv := nuServer(t, `{"messages":[]}`, nil)
	v := newRemoteValidator(t, srv.URL, cfg)

	node := ft.New("section", ft.Attr("onscrollend", "x()"))
	out, err := v.ValidateAndHeal(node, ft.ModeRemote)
	if err != nil {
		t.Fatalf("ValidateAndHeal failed: %v", err)
	}
	el := out.(*ft.FT)
	if val, ok := el.Get("onscrollend"); !ok || val != "x()" {
		t.Errorf("Expected attribute kept on clean verdict, got %v", el.Attrs)
	}
}

func TestRemoteModeAcceptsOnNetworkFailure(t *testing.T) {
	cfg := ft.DefaultConfig()
	cfg.AutoHeal = true
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	v := newRemoteValidator(t, url, cfg)

	node := ft.New("section", ft.Attr("onscrollend", "x()"))
	out, err := v.ValidateAndHeal(node, ft.ModeRemote)
	if err != nil {
		t.Fatalf("ValidateAndHeal failed: %v", err)
	}
	el := out.(*ft.FT)
	if _, ok := el.Get("onscrollend"); !ok {
		t.Errorf("Expected attribute accepted while validator unreachable, got %v", el.Attrs)
	}
	if v.verdicts.Len() != 0 {
		t.Errorf("Expected failure-derived verdict not cached, cache has %d entries", v.verdicts.Len())
	}
}

func TestRemoteVerdictMemoized(t *testing.T) {
	cfg := ft.DefaultConfig()
	var hits int
	srv := nuServer(t, `{"messages":[]}`, &hits)
	v := newRemoteValidator(t, srv.URL, cfg)

	for i := 0; i < 2; i++ {
		valid, err := v.checkAttr("section", "onscrollend", ft.ModeRemote)
		if err != nil {
			t.Fatalf("checkAttr failed: %v", err)
		}
		if !valid {
			t.Fatal("Expected clean verdict")
		}
	}
	if hits != 1 {
		t.Errorf("Expected one validator request, got %d", hits)
	}
}
