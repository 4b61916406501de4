// Package config holds the daemon and CLI configuration.
package config

import (
	"os"
	"path/filepath"

	"github.com/alucardeht/fasttags/internal/watcher"
)

// GenerateConfig controls route-table generation.
type GenerateConfig struct {
	// ViewsDir is the directory scanned for view functions.
	ViewsDir string
	// ViewsImport is the import path of the views package, written into
	// the generated file.
	ViewsImport string
	// Output is the generated file path, relative to the project root.
	Output string
	// Package is the package name of the generated file.
	Package string
}

type Config struct {
	// ProjectDir is the root of the project being served. Defaults to the
	// working directory.
	ProjectDir string
	// StateDir holds the socket, lockfile, pidfile and step-state
	// database, under ProjectDir.
	StateDir       string
	SocketPath     string
	DatabasePath   string
	LogLevel       string
	ExtensionsPath string
	Generate       GenerateConfig
	Watcher        watcher.Config
}

func Load() *Config {
	projectDir, err := os.Getwd()
	if err != nil {
		projectDir = "."
	}
	stateDir := filepath.Join(projectDir, ".fasttags")

	cfg := &Config{
		ProjectDir:     projectDir,
		StateDir:       stateDir,
		SocketPath:     filepath.Join(stateDir, "daemon.sock"),
		DatabasePath:   filepath.Join(stateDir, "fasttags.db"),
		LogLevel:       "info",
		ExtensionsPath: filepath.Join(projectDir, "extensions.yaml"),
		Generate: GenerateConfig{
			ViewsDir: filepath.Join(projectDir, "views"),
			Output:   filepath.Join(projectDir, "routes", "routes_gen.go"),
			Package:  "routes",
		},
		Watcher: watcher.DefaultConfig(),
	}

	if level := os.Getenv("FASTTAG_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	return cfg
}

func (c *Config) EnsureDirectories() error {
	return os.MkdirAll(c.StateDir, 0700)
}
