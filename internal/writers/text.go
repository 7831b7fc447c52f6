package writers

import (
	"bufio"
	"io"

	"ipfilter/pkg/api"
)

func init() {
	Register("text", func(w io.Writer, header bool) SectionWriter {
		return &textWriter{w: bufio.NewWriter(w), header: header}
	})
}

// textWriter prints "Title:" then one address per line, flushing after
// every section so earlier sections survive a later failure.
type textWriter struct {
	w      *bufio.Writer
	header bool
}

func (t *textWriter) WriteSection(s api.SectionV1) error {
	if t.header {
		if _, err := t.w.WriteString(s.Title + ":\n"); err != nil {
			return err
		}
	}
	for _, a := range s.Addresses {
		if _, err := t.w.WriteString(a); err != nil {
			return err
		}
		if err := t.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return t.w.Flush()
}

func (t *textWriter) Close() error { return t.w.Flush() }
