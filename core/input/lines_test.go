package input

import (
	"compress/gzip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/d4l3k/messagediff"
)

func TestReadLines(t *testing.T) {
	got, err := ReadLines(context.Background(), strings.NewReader("1.1.1.1\ta\r\n\n2.2.2.2\tb"))
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	want := []string{"1.1.1.1\ta", "", "2.2.2.2\tb"}
	if diff, equal := messagediff.PrettyDiff(want, got); !equal {
		t.Fatalf("ReadLines: %s", diff)
	}
}

func TestReadLinesEmpty(t *testing.T) {
	got, err := ReadLines(context.Background(), strings.NewReader(""))
	if err != nil || len(got) != 0 {
		t.Fatalf("got %q, %v", got, err)
	}
}

func TestReadLines_CancelImmediately(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // already canceled

	_, err := ReadLines(ctx, strings.NewReader("1.1.1.1\n"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestReadLines_CancelWhileReadBlocks(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		_, err := ReadLines(ctx, pr)
		errc <- err
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errc:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("want context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("ReadLines still blocked 2s after cancel")
	}
}

func TestReadPathsPlainGzipAndStdin(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "a.tsv")
	if err := os.WriteFile(plain, []byte("1.1.1.1\tx\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	gz := filepath.Join(dir, "b.tsv.gz")
	fh, err := os.Create(gz)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	zw := gzip.NewWriter(fh)
	_, _ = zw.Write([]byte("2.2.2.2\ty\n3.3.3.3\n"))
	_ = zw.Close()
	_ = fh.Close()

	got, err := ReadPaths(context.Background(), []string{plain, "-", gz}, strings.NewReader("4.4.4.4\n"))
	if err != nil {
		t.Fatalf("ReadPaths: %v", err)
	}
	want := []string{"1.1.1.1\tx", "4.4.4.4", "2.2.2.2\ty", "3.3.3.3"}
	if diff, equal := messagediff.PrettyDiff(want, got); !equal {
		t.Fatalf("ReadPaths: %s", diff)
	}
}

func TestReadPathsMissingFile(t *testing.T) {
	_, err := ReadPaths(context.Background(), []string{filepath.Join(t.TempDir(), "nope")}, nil)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("want not-exist error, got %v", err)
	}
}
