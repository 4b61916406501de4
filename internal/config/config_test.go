package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.StateDir != filepath.Join(cfg.ProjectDir, ".fasttags") {
		t.Errorf("Unexpected state dir %q", cfg.StateDir)
	}
	if cfg.SocketPath != filepath.Join(cfg.StateDir, "daemon.sock") {
		t.Errorf("Unexpected socket path %q", cfg.SocketPath)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected info log level, got %q", cfg.LogLevel)
	}
	if cfg.Generate.Package != "routes" {
		t.Errorf("Expected routes package, got %q", cfg.Generate.Package)
	}
	if !cfg.Watcher.Enabled {
		t.Error("Expected watcher enabled by default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("FASTTAG_LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected debug from env, got %q", cfg.LogLevel)
	}
}
