package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// extensionEntry is one block in the extensions manifest.
type extensionEntry struct {
	HTML []string `yaml:"html"`
}

// LoadExtensions reads the YAML extensions manifest mapping extension names
// to head HTML snippets (stylesheet and script tags). A missing file is not
// an error: extensions are optional, so it warns and returns an empty map.
func LoadExtensions(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn("extensions manifest not found, none loaded", "path", path)
			return map[string][]string{}, nil
		}
		return nil, fmt.Errorf("read extensions manifest: %w", err)
	}

	var raw map[string]extensionEntry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse extensions manifest %s: %w", path, err)
	}

	out := make(map[string][]string, len(raw))
	for name, entry := range raw {
		if len(entry.HTML) == 0 {
			log.Warn("extension has no html entries, skipped", "name", name)
			continue
		}
		out[name] = entry.HTML
	}
	return out, nil
}
