package writers

import (
	"encoding/json"
	"io"

	"ipfilter/pkg/api"
)

func init() {
	Register("json", func(w io.Writer, _ bool) SectionWriter {
		return &jsonWriter{w: w, doc: api.ReportV1{Sections: []api.SectionV1{}}}
	})
}

// RecordCounter is implemented by writers that report the input size.
type RecordCounter interface {
	SetRecords(n int)
}

// jsonWriter buffers sections and writes one indented document on Close.
type jsonWriter struct {
	w   io.Writer
	doc api.ReportV1
}

func (j *jsonWriter) SetRecords(n int) { j.doc.Records = n }

func (j *jsonWriter) WriteSection(s api.SectionV1) error {
	j.doc.Sections = append(j.doc.Sections, s)
	return nil
}

func (j *jsonWriter) Close() error {
	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	return enc.Encode(j.doc)
}
