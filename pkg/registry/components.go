package registry

import (
	"fmt"
	"strings"

	"github.com/alucardeht/fasttags/pkg/ft"
)

// Component is a reusable named tree constructor with a one-line
// description for discovery.
type Component struct {
	Name string
	Doc  string
	Fn   func(items ...any) ft.Node
}

// RegisterComponent adds a component. Re-registering a name replaces the
// previous component.
func (r *Registry) RegisterComponent(c Component) error {
	if c.Name == "" {
		return fmt.Errorf("component name cannot be empty")
	}
	if c.Fn == nil {
		return fmt.Errorf("component %q has no constructor", c.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.components[c.Name]; exists {
		log.Warn("component overwritten", "name", c.Name)
	}
	r.components[c.Name] = c
	return nil
}

// Component looks up a component by name.
func (r *Registry) Component(name string) (Component, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.components[name]
	return c, ok
}

// Components returns component names mapped to their collapsed first doc
// line.
func (r *Registry) Components() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]string, len(r.components))
	for name, c := range r.components {
		out[name] = firstDocLine(c.Doc)
	}
	return out
}

// firstDocLine collapses the first paragraph of a doc string into a single
// line.
func firstDocLine(doc string) string {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return ""
	}
	para, _, _ := strings.Cut(doc, "\n\n")
	fields := strings.Fields(para)
	return strings.Join(fields, " ")
}
