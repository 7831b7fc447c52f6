package cliutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/d4l3k/messagediff"
)

func TestSplitFlagsAndPositionals(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	fs.Bool("quiet", false, "")
	fs.Int("any-byte", 46, "")
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{
		"a.tsv", "--quiet", "-", "--any-byte", "7", "--any-byte=8", "b.tsv", "--", "--odd-name.tsv",
	})
	wantFlags := []string{"--quiet", "--any-byte", "7", "--any-byte=8"}
	wantPos := []string{"a.tsv", "-", "b.tsv", "--odd-name.tsv"}
	if diff, equal := messagediff.PrettyDiff(wantFlags, flagArgs); !equal {
		t.Errorf("flags: %s", diff)
	}
	if diff, equal := messagediff.PrettyDiff(wantPos, posArgs); !equal {
		t.Errorf("positionals: %s", diff)
	}
}

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.tsv")
	b := filepath.Join(dir, "b.tsv")
	_ = os.WriteFile(a, []byte("1.1.1.1\n"), 0o644)
	_ = os.WriteFile(b, []byte("2.2.2.2\n"), 0o644)
	got, err := ExpandPositionals([]string{"-", filepath.Join(dir, "*.tsv")})
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if diff, equal := messagediff.PrettyDiff([]string{"-", a, b}, got); !equal {
		t.Fatalf("expand: %s", diff)
	}
	if _, err := ExpandPositionals([]string{filepath.Join(dir, "*.gz")}); err == nil {
		t.Fatalf("expected error for unmatched glob")
	}
}
