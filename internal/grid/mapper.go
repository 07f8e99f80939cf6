package grid

import (
	"fmt"

	"uncurl/internal/curve"
)

// RecordSize is the number of bytes per input record (one RGB pixel).
const RecordSize = 3

// unmapped marks reverse-table cells no record was written to. Never exposed;
// callers go through Lookup.
const unmapped = -1

// Grid is the result of laying the input records out along a space-filling
// curve: the pixel data in row-major order plus the table resolving a cell
// back to the 1D record index it came from. Immutable after Build.
type Grid struct {
	Order int // curve order k
	Width int // grid side, 1<<Order
	// Pix holds RecordSize bytes per cell, row-major. Cells the curve
	// reaches after the records run out stay zero.
	Pix []byte

	reverse []int
}

// MinOrder returns the smallest curve order whose grid has room for count
// records. Integer doubling only, so there is no float rounding to get the
// grid size off by one.
func MinOrder(count int) int {
	k := 0
	for 1<<(2*k) < count {
		k++
	}
	return k
}

// Build maps the record stream onto the smallest square grid that fits it,
// walking cells in the order the curve family visits them. Records must be a
// whole number of RecordSize-byte entries (the loader validates this; it is
// re-checked here because a partial record would silently shift every pixel
// after it).
//
// A generator that revisits a cell or leaves the grid is a bug in the curve
// construction, reported as an error and fatal to the caller.
func Build(records []byte, family curve.Family) (*Grid, error) {
	if len(records)%RecordSize != 0 {
		return nil, fmt.Errorf("grid: %d bytes is not a whole number of %d-byte records", len(records), RecordSize)
	}
	count := len(records) / RecordSize
	order := MinOrder(count)
	width := 1 << order
	cells := 1 << (2 * order)

	g := &Grid{
		Order:   order,
		Width:   width,
		Pix:     make([]byte, cells*RecordSize),
		reverse: make([]int, cells),
	}
	for i := range g.reverse {
		g.reverse[i] = unmapped
	}

	gen := family.NewGenerator(order)
	for i := 0; i < count; i++ {
		p, ok := gen.Next()
		if !ok {
			return nil, fmt.Errorf("grid: curve exhausted after %d of %d records", i, count)
		}
		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= width {
			return nil, fmt.Errorf("grid: curve emitted out-of-range cell (%d,%d) at index %d", p.X, p.Y, i)
		}
		cell := p.Y*width + p.X
		if g.reverse[cell] != unmapped {
			return nil, fmt.Errorf("grid: curve revisited cell (%d,%d): record %d overwrites %d",
				p.X, p.Y, i, g.reverse[cell])
		}
		copy(g.Pix[cell*RecordSize:(cell+1)*RecordSize], records[i*RecordSize:])
		g.reverse[cell] = i
	}

	tracer().Debugf("mapped %d records onto %dx%d grid (order %d, %s curve)",
		count, width, width, order, family)
	return g, nil
}

// Cells returns the number of grid cells, Width*Width.
func (g *Grid) Cells() int { return len(g.reverse) }

// CellIndex returns the row-major linear index of (x, y).
func (g *Grid) CellIndex(x, y int) int { return y*g.Width + x }

// Lookup resolves a cell index back to the original record index. It reports
// false for out-of-range cells and for cells no record was mapped to.
func (g *Grid) Lookup(cell int) (int, bool) {
	if cell < 0 || cell >= len(g.reverse) {
		return 0, false
	}
	idx := g.reverse[cell]
	if idx == unmapped {
		return 0, false
	}
	return idx, true
}
