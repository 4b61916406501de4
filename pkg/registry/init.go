package registry

// RegisterFunc populates part of a registry during the initialization
// phase.
type RegisterFunc func(*Registry) error

// Initialize runs registration callbacks in order against a registry. This
// is the explicit registration phase: views and components are only ever
// added here or through direct Register calls, never as import side
// effects.
func Initialize(reg *Registry, fns ...RegisterFunc) error {
	for _, fn := range fns {
		if err := fn(reg); err != nil {
			log.Error("registration callback failed", "error", err)
			return err
		}
	}

	log.Info("registry initialized",
		"routes", reg.Len(), "components", len(reg.Components()))
	return nil
}
