// Package pipeline runs the parse → sort → filter sequence over raw lines
// and hands each finished section to a callback.
//
// It never imports app, writers, or cli; output shape goes through pkg/api.
package pipeline
