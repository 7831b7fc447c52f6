// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"ipfilter/pkg/api"
)

// SectionWriter receives sections in output order. Close finishes the
// document; callers skip it when the run fails.
type SectionWriter interface {
	WriteSection(api.SectionV1) error
	Close() error
}

// Factory builds a writer over w. header controls section titles where the
// format has them.
type Factory func(w io.Writer, header bool) SectionWriter

// Writer registry (format → factory). Register in init() blocks from the
// per-format files.
var SectionWriters = map[string]Factory{}

// Register is idempotent, last wins.
func Register(format string, f Factory) { SectionWriters[format] = f }

// New dispatches on format.
func New(format string, w io.Writer, header bool) (SectionWriter, error) {
	f, ok := SectionWriters[format]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return f(w, header), nil
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(SectionWriters))
	for k := range SectionWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
