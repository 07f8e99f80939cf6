package view

import "uncurl/internal/grid"

// Picker answers "which original record is under this window position" by
// composing the view transform with the grid's reverse table.
type Picker struct {
	view *View
	grid *grid.Grid
}

// NewPicker binds a view and a mapped grid for the session.
func NewPicker(v *View, g *grid.Grid) *Picker {
	return &Picker{view: v, grid: g}
}

// Resolve maps a window position to the 1D offset of the record displayed
// there. It reports false when the position falls outside the grid or on a
// cell no record was mapped to; every bound is checked before any indexing,
// nothing is clamped.
func (p *Picker) Resolve(sx, sy float64) (int, bool) {
	lx, ly := p.view.ScreenToLocal(sx, sy)
	// The grid square is centered on the local origin.
	half := float64(p.grid.Width) * 0.5
	lx += half
	ly += half
	if lx < 0 || ly < 0 {
		return 0, false
	}
	x, y := int(lx), int(ly)
	if x >= p.grid.Width || y >= p.grid.Width {
		return 0, false
	}
	return p.grid.Lookup(p.grid.CellIndex(x, y))
}
