// Package web renders ft trees inside HTTP responses. Handle adapts a view
// returning a tag tree into an http.HandlerFunc; Middleware adds the
// security headers and request IDs every rendered response carries.
package web

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/alucardeht/fasttags/internal/logger"
	"github.com/alucardeht/fasttags/pkg/ft"
	"github.com/alucardeht/fasttags/pkg/registry"
)

var log = logger.ForComponent("web")

// RouteInfo is one row of a generated route table, kept for diagnostics and
// route listings.
type RouteInfo struct {
	Path string
	Name string
}

// Handle adapts a view into an http.HandlerFunc. The tree the view returns
// is rendered as text/html with security headers; a nil tree renders an
// empty 200. Panics and rendering failures become a generic 500, with
// details only in the log.
func Handle(name string, view registry.View) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o := currentOptions()
		if !o.Enabled {
			disabledWarn.Do(func() {
				log.Warn("rendering disabled, ft views will 404")
			})
			http.NotFound(w, r)
			return
		}

		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		defer func() {
			if rec := recover(); rec != nil {
				log.Error("view panicked",
					"view", name, "request_id", requestID, "panic", rec)
				serverError(w)
			}
		}()

		node := view(r)

		if o.Validate && node != nil {
			healed, err := validateNode(node, o.Config)
			if err != nil {
				log.Error("validation failed",
					"view", name, "request_id", requestID, "error", err)
				serverError(w)
				return
			}
			node = healed
		}

		var sb strings.Builder
		if err := ft.RenderConfig(&sb, o.Config, node); err != nil {
			log.Error("render failed", "view", name, "request_id", requestID, "error", err)
			serverError(w)
			return
		}

		setSecurityHeaders(w.Header())
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write([]byte(sb.String())); err != nil {
			log.Error("write response", "view", name, "request_id", requestID, "error", err)
		}
	}
}

// HandleNodes adapts a view returning multiple trees; they render
// concatenated in order.
func HandleNodes(name string, view func(r *http.Request) []ft.Node) http.HandlerFunc {
	return Handle(name, func(r *http.Request) ft.Node {
		return ft.Group(view(r))
	})
}

// NewMux binds every route in the registry onto a fresh ServeMux.
func NewMux(reg *registry.Registry) *http.ServeMux {
	mux := http.NewServeMux()
	for _, route := range reg.Routes() {
		mux.HandleFunc(route.Path, Handle(route.Name, route.View))
	}
	return mux
}

func serverError(w http.ResponseWriter) {
	http.Error(w, "An internal error occurred.", http.StatusInternalServerError)
}

func setSecurityHeaders(h http.Header) {
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("X-Frame-Options", "SAMEORIGIN")
	h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
	h.Set("Content-Security-Policy", "default-src 'self'; script-src 'self'; style-src 'self'")
}
