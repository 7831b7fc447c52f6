package writers

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"syscall"
	"testing"

	"github.com/d4l3k/messagediff"
)

func TestUnknownFormatError(t *testing.T) {
	_, err := New("nope-format", &bytes.Buffer{}, true)
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Fatalf("want 'unknown output format' error, got: %v", err)
	}
}

func TestFormatsRegistered(t *testing.T) {
	want := []string{"json", "jsonl", "text"}
	if diff, equal := messagediff.PrettyDiff(want, Formats()); !equal {
		t.Fatalf("Formats: %s", diff)
	}
}

func TestIsBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(fmt.Errorf("write stdout: %w", syscall.EPIPE)) {
		t.Errorf("wrapped EPIPE not recognized")
	}
	if !IsBrokenPipe(io.ErrClosedPipe) {
		t.Errorf("io.ErrClosedPipe not recognized")
	}
	if IsBrokenPipe(nil) || IsBrokenPipe(io.EOF) {
		t.Errorf("false positive")
	}
}
