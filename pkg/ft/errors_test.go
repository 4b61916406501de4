package ft

import (
	"errors"
	"strings"
	"testing"
)

func TestCurativeErrorFormat(t *testing.T) {
	err := Curative("tag soup detected",
		"Balance the open tags.",
		"Run the input through Tidy.")

	msg := err.Error()
	if !strings.HasPrefix(msg, "tag soup detected\n\nPrescription:") {
		t.Errorf("Unexpected header: %q", msg)
	}
	if !strings.Contains(msg, "1. Balance the open tags.") {
		t.Errorf("Missing first step: %q", msg)
	}
	if !strings.Contains(msg, "2. Run the input through Tidy.") {
		t.Errorf("Missing second step: %q", msg)
	}
}

func TestCurativeErrorNoPrescription(t *testing.T) {
	err := Curative("plain failure")
	if err.Error() != "plain failure" {
		t.Errorf("got %q", err.Error())
	}
}

func TestCurativeErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &CurativeError{Message: "outer", Err: inner}
	if !errors.Is(err, inner) {
		t.Error("Expected Unwrap to expose the inner error")
	}
}
