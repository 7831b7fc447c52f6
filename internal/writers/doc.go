// Package writers turns computed sections into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (headers, JSON/JSONL).
//   • Pipeline stays orchestration-only and never imports this package.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
