package curve

// HilbertPoint maps linear index i on the Hilbert curve of the given order
// to its grid coordinate. The transform consumes two bits of i per level,
// least significant group first, rotating and reflecting the partial
// coordinate into the quadrant the bits select. O(order) time, no
// allocation, and a bijection over [0, (1<<order)^2).
func HilbertPoint(i int, order int) Point {
	var x, y int
	t := i
	for s := 1; s < 1<<order; s <<= 1 {
		rx := 1 & (t >> 1)
		ry := 1 & (t ^ rx)
		if ry == 0 {
			if rx == 1 {
				x = s - 1 - x
				y = s - 1 - y
			}
			x, y = y, x
		}
		x += s * rx
		y += s * ry
		t >>= 2
	}
	return Point{X: x, Y: y}
}

// hilbertGenerator walks the curve by evaluating the closed form per index.
type hilbertGenerator struct {
	order int
	n     int
	next  int
}

func newHilbertGenerator(order int) *hilbertGenerator {
	return &hilbertGenerator{order: order, n: 1 << (2 * order)}
}

func (g *hilbertGenerator) Next() (Point, bool) {
	if g.next >= g.n {
		return Point{}, false
	}
	p := HilbertPoint(g.next, g.order)
	g.next++
	return p, true
}

func (g *hilbertGenerator) Order() int { return g.order }

func (g *hilbertGenerator) Len() int { return g.n }
