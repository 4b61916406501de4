package ft

import (
	"fmt"
	"strings"
)

// CurativeError is a stop-and-report error carrying a numbered prescription:
// the concrete steps a user can take to fix the input or environment.
type CurativeError struct {
	Message      string
	Prescription []string
	Err          error
}

// Curative builds a CurativeError from a message and prescription steps.
func Curative(message string, steps ...string) *CurativeError {
	return &CurativeError{Message: message, Prescription: steps}
}

func (e *CurativeError) Error() string {
	if len(e.Prescription) == 0 {
		return e.Message
	}
	var sb strings.Builder
	sb.WriteString(e.Message)
	sb.WriteString("\n\nPrescription:")
	for i, step := range e.Prescription {
		fmt.Fprintf(&sb, "\n%d. %s", i+1, step)
	}
	return sb.String()
}

func (e *CurativeError) Unwrap() error {
	return e.Err
}
