// Package app wires the mapped grid, the view transform and the click
// sinks into an interactive ebiten window. Everything that touches the
// windowing layer is behind the 'ebiten' build tag so the rest of the
// program stays testable headless.
package app

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'uncurl.app'
func tracer() tracing.Trace {
	return tracing.Select("uncurl.app")
}
