// Package registry holds the process-wide view and component tables. Both
// are plain in-memory maps populated during an explicit initialization phase
// and never persisted; entries live exactly as long as the process.
package registry

import (
	"net/http"
	"strings"
	"sync"

	"github.com/alucardeht/fasttags/internal/logger"
	"github.com/alucardeht/fasttags/pkg/ft"
)

var log = logger.ForComponent("registry")

// View produces a tag tree for a request. A nil result renders an empty
// body.
type View func(r *http.Request) ft.Node

// Route is one registered view with its URL path.
type Route struct {
	Path string
	Name string
	View View
}

// Registry maps URL paths to views, preserving registration order so route
// generation is deterministic.
type Registry struct {
	mu         sync.RWMutex
	routes     []Route
	byPath     map[string]int
	components map[string]Component
}

func New() *Registry {
	return &Registry{
		byPath:     make(map[string]int),
		components: make(map[string]Component),
	}
}

// DefaultPath derives the URL path for a view name: lowercased, wrapped in
// slashes.
func DefaultPath(name string) string {
	return "/" + strings.ToLower(name) + "/"
}

// Register adds a view under path, deriving the path from name when empty.
// Registering an existing path replaces the previous view; the last
// registration wins and the overwrite is logged.
func (r *Registry) Register(path, name string, view View) string {
	if path == "" {
		path = DefaultPath(name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if i, exists := r.byPath[path]; exists {
		log.Warn("route overwritten",
			"path", path, "previous", r.routes[i].Name, "new", name)
		r.routes[i] = Route{Path: path, Name: name, View: view}
		return path
	}

	r.byPath[path] = len(r.routes)
	r.routes = append(r.routes, Route{Path: path, Name: name, View: view})
	log.Debug("route registered", "path", path, "name", name)
	return path
}

// Get returns the view registered under path.
func (r *Registry) Get(path string) (View, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.byPath[path]
	if !ok {
		return nil, false
	}
	return r.routes[i].View, true
}

// Routes returns a snapshot of the route table in registration order.
func (r *Registry) Routes() []Route {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Route, len(r.routes))
	copy(out, r.routes)
	return out
}

// Len reports the number of registered routes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.routes)
}
