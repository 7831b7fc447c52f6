// pkg/api/sections_v1.go
package api

// SectionV1 is the stable JSON/JSONL schema for one titled address list.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type SectionV1 struct {
	Name      string   `json:"name"`  // "all" | "first" | "first-two" | "any"
	Title     string   `json:"title"` // human header, e.g. "All IP"
	Count     int      `json:"count"`
	Addresses []string `json:"addresses"` // never null
}

// ReportV1 is the whole-run document emitted by the json writer.
type ReportV1 struct {
	Records  int         `json:"records"`
	Sections []SectionV1 `json:"sections"`
}
