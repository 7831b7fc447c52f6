// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"ipfilter/pkg/api"
)

func init() {
	Register("jsonl", func(w io.Writer, _ bool) SectionWriter {
		return &jsonlWriter{enc: json.NewEncoder(w)}
	})
}

// jsonlWriter streams each section as one JSON line (v1).
type jsonlWriter struct{ enc *json.Encoder }

func (j *jsonlWriter) WriteSection(s api.SectionV1) error { return j.enc.Encode(s) }

func (j *jsonlWriter) Close() error { return nil }
