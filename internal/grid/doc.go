// Package grid lays a flat stream of fixed-size records out on a square
// grid along a space-filling curve and keeps the reverse table that maps a
// grid cell back to the record's 1D offset.
package grid

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'uncurl.grid'
func tracer() tracing.Trace {
	return tracing.Select("uncurl.grid")
}
