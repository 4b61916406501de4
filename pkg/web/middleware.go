package web

import (
	"net/http"
	"os"
	"sync"

	"github.com/alucardeht/fasttags/pkg/ft"
	"github.com/alucardeht/fasttags/pkg/ft/validate"
)

// Options controls rendering inside HTTP handlers.
type Options struct {
	// Enabled gates rendering. When false every handler built by Handle
	// passes through to a 404, matching the disabled-outside-development
	// behavior of the middleware contract; a warning is logged once.
	Enabled bool
	// Config is the ft config used for rendering and validation.
	Config ft.Config
	// Validate runs the validator over every tree before rendering,
	// using Config.ValidateMode.
	Validate bool
}

// DefaultOptions enables rendering everywhere except production
// (FASTTAG_ENV=production), where FASTTAG_PROD_ENABLED must opt back in.
func DefaultOptions() Options {
	enabled := true
	if os.Getenv("FASTTAG_ENV") == "production" {
		v := os.Getenv("FASTTAG_PROD_ENABLED")
		enabled = v == "1" || v == "true"
	}
	return Options{
		Enabled: enabled,
		Config:  ft.DefaultConfig(),
	}
}

var (
	optsMu       sync.RWMutex
	opts         = DefaultOptions()
	disabledWarn sync.Once
)

// Configure replaces the package rendering options. Call once during
// startup, before handlers serve traffic.
func Configure(o Options) {
	optsMu.Lock()
	defer optsMu.Unlock()
	opts = o
}

func currentOptions() Options {
	optsMu.RLock()
	defer optsMu.RUnlock()
	return opts
}

// Middleware adds the standard security headers and a request ID to every
// response passing through, for handlers not built with Handle.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		setSecurityHeaders(w.Header())
		next.ServeHTTP(w, r)
	})
}

// validateNode applies the configured validator, falling back to the
// original tree when healing is off and validation reports a problem.
func validateNode(node ft.Node, cfg ft.Config) (ft.Node, error) {
	v, err := validate.New(cfg)
	if err != nil {
		return node, err
	}
	return v.ValidateAndHeal(node, cfg.ValidateMode)
}
