package ft

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.EscapeByDefault {
		t.Error("Expected escaping on by default")
	}
	if cfg.IndentSize != 2 {
		t.Errorf("Expected indent 2, got %d", cfg.IndentSize)
	}
	if cfg.ValidateMode != ModeNone {
		t.Errorf("Expected mode none, got %q", cfg.ValidateMode)
	}
}

func TestDefaultConfigHonorsEnv(t *testing.T) {
	t.Setenv("FASTTAG_VALIDATE_MODE", ModeStatic)
	if got := DefaultConfig().ValidateMode; got != ModeStatic {
		t.Errorf("Expected static mode from env, got %q", got)
	}
}
