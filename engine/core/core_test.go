package core

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	defer SetLogOutput(nopWriter{})

	if err := SetLogLevel("warn"); err != nil {
		t.Fatalf("SetLogLevel(warn): %v", err)
	}
	LogInfo("hidden %d", 1)
	LogWarn("shown %d", 2)
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level: %q", out)
	}
	if !strings.Contains(out, "shown 2") {
		t.Errorf("warn message missing: %q", out)
	}

	if err := SetLogLevel("loud"); err == nil {
		t.Error("SetLogLevel(loud): expected an error")
	}
	if err := SetLogLevel("info"); err != nil {
		t.Fatalf("SetLogLevel(info): %v", err)
	}
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestIdentifier(t *testing.T) {
	id := IdentifierAquireNewID()
	if id == IdentifierAquireNewID() {
		t.Error("two identifiers collided")
	}

	canon, err := IdentifierParse(strings.ToUpper(id))
	if err != nil {
		t.Fatalf("IdentifierParse(%s): %v", id, err)
	}
	if canon != id {
		t.Errorf("IdentifierParse: expected %s, got %s", id, canon)
	}

	if _, err := IdentifierParse("camera"); err == nil {
		t.Error("IdentifierParse(camera): expected an error")
	}
}

func TestErrorsAreDistinct(t *testing.T) {
	all := []error{ErrInvalidDocument, ErrUnknownTransform, ErrWatcherClosed, ErrUnknown}
	for i, a := range all {
		for j, b := range all {
			if (i == j) != errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = %v", a, b, i != j)
			}
		}
	}
}
