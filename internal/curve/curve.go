package curve

import "fmt"

// Point is a grid coordinate visited by a curve. For a curve of order k both
// components lie in [0, 1<<k).
type Point struct {
	X, Y int
}

// Generator produces, one point per call, the ordered sequence of grid
// coordinates a space-filling curve of a fixed order visits. A generator is
// single-use; build a new one to restart the traversal.
type Generator interface {
	// Next returns the next coordinate on the curve, or reports false once
	// every cell has been visited.
	Next() (Point, bool)
	// Order returns the curve order k. The grid side is 1<<k.
	Order() int
	// Len returns the total number of points the curve visits, (1<<k)^2.
	Len() int
}

// Family identifies a curve construction. It is a closed set: adding a
// family means adding a constant and a case in NewGenerator.
type Family int

const (
	// Hilbert is the classic self-similar U-shaped space-filling curve.
	Hilbert Family = iota
)

// ParseFamily resolves a curve name from the command line.
func ParseFamily(name string) (Family, error) {
	switch name {
	case "hilbert":
		return Hilbert, nil
	}
	return 0, fmt.Errorf("unknown curve type %q", name)
}

// String returns the name ParseFamily accepts for the family.
func (f Family) String() string {
	switch f {
	case Hilbert:
		return "hilbert"
	}
	return fmt.Sprintf("curve.Family(%d)", int(f))
}

// NewGenerator returns a fresh generator for the family at the given order.
// Orders are clamped to non-negative.
func (f Family) NewGenerator(order int) Generator {
	if order < 0 {
		order = 0
	}
	switch f {
	case Hilbert:
		return newHilbertGenerator(order)
	}
	panic("curve: generator for unknown family " + f.String())
}
