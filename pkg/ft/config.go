package ft

import "os"

// Validation modes accepted by FASTTAG_VALIDATE_MODE and the validate
// package.
const (
	ModeNone   = "none"
	ModeStatic = "static"
	ModeRemote = "remote"
)

// Config controls rendering and healing behavior.
type Config struct {
	// EscapeByDefault escapes Text nodes and stringified children.
	EscapeByDefault bool
	// AutoHeal makes validation drop or repair invalid content instead of
	// reporting it.
	AutoHeal bool
	// HealFuzzy allows attribute names to be repaired by fuzzy matching
	// when AutoHeal is on.
	HealFuzzy bool
	// PrettyPrint and IndentSize control Tidy output.
	PrettyPrint bool
	IndentSize  int
	// ValidateMode is the default mode for elements that do not carry
	// their own.
	ValidateMode string
}

// DefaultConfig returns the defaults, honoring FASTTAG_VALIDATE_MODE.
func DefaultConfig() Config {
	mode := os.Getenv("FASTTAG_VALIDATE_MODE")
	if mode == "" {
		mode = ModeNone
	}
	return Config{
		EscapeByDefault: true,
		IndentSize:      2,
		ValidateMode:    mode,
	}
}
