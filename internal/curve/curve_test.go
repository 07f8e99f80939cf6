package curve

import "testing"

func TestHilbertBijection(t *testing.T) {
	for order := 0; order <= 8; order++ {
		width := 1 << order
		n := width * width
		gen := Hilbert.NewGenerator(order)
		if gen.Len() != n {
			t.Fatalf("order %d: Len() = %d, want %d", order, gen.Len(), n)
		}
		seen := make([]bool, n)
		count := 0
		for {
			p, ok := gen.Next()
			if !ok {
				break
			}
			if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= width {
				t.Fatalf("order %d: point %d (%d,%d) out of range", order, count, p.X, p.Y)
			}
			cell := p.Y*width + p.X
			if seen[cell] {
				t.Fatalf("order %d: cell (%d,%d) visited twice", order, p.X, p.Y)
			}
			seen[cell] = true
			count++
		}
		if count != n {
			t.Fatalf("order %d: generator produced %d points, want %d", order, count, n)
		}
	}
}

func TestGeneratorsAgree(t *testing.T) {
	for order := 0; order <= 8; order++ {
		direct := Hilbert.NewGenerator(order)
		rules, err := NewProduction(HilbertRules(), order)
		if err != nil {
			t.Fatalf("order %d: NewProduction: %v", order, err)
		}
		for i := 0; ; i++ {
			dp, dok := direct.Next()
			rp, rok := rules.Next()
			if dok != rok {
				t.Fatalf("order %d: position %d: direct ok=%v, rules ok=%v", order, i, dok, rok)
			}
			if !dok {
				break
			}
			if dp != rp {
				t.Fatalf("order %d: position %d: direct (%d,%d), rules (%d,%d)",
					order, i, dp.X, dp.Y, rp.X, rp.Y)
			}
		}
	}
}

func TestHilbertPointOrderTwo(t *testing.T) {
	want := []Point{
		{0, 0}, {1, 0}, {1, 1}, {0, 1},
		{0, 2}, {0, 3}, {1, 3}, {1, 2},
		{2, 2}, {2, 3}, {3, 3}, {3, 2},
		{3, 1}, {2, 1}, {2, 0}, {3, 0},
	}
	for i, w := range want {
		if got := HilbertPoint(i, 2); got != w {
			t.Errorf("HilbertPoint(%d, 2) = (%d,%d), want (%d,%d)", i, got.X, got.Y, w.X, w.Y)
		}
	}
}

// At orders up to 2 every substitution in the second Hilbert rule is
// depth-blocked, so a transposed rule tail only shows once child frames
// actually expand. Pin the first order-3 quadrant against literal
// coordinates rather than HilbertPoint so the rule strings are checked on
// their own.
func TestProductionOrderThreePrefix(t *testing.T) {
	want := []Point{
		{0, 0}, {0, 1}, {1, 1}, {1, 0},
		{2, 0}, {3, 0}, {3, 1}, {2, 1},
		{2, 2}, {3, 2}, {3, 3}, {2, 3},
		{1, 3}, {1, 2}, {0, 2}, {0, 3},
	}
	gen, err := NewProduction(HilbertRules(), 3)
	if err != nil {
		t.Fatal(err)
	}
	for i, w := range want {
		p, ok := gen.Next()
		if !ok {
			t.Fatalf("position %d: generator exhausted early", i)
		}
		if p != w {
			t.Fatalf("position %d: got (%d,%d), want (%d,%d)", i, p.X, p.Y, w.X, w.Y)
		}
	}
}

func TestProductionDepthBound(t *testing.T) {
	for order := 0; order <= 6; order++ {
		gen, err := NewProduction(HilbertRules(), order)
		if err != nil {
			t.Fatalf("order %d: NewProduction: %v", order, err)
		}
		prod := gen.(*production)
		emitted := 0
		for {
			if len(prod.stack) > order {
				t.Fatalf("order %d: stack grew to %d frames", order, len(prod.stack))
			}
			if _, ok := gen.Next(); !ok {
				break
			}
			emitted++
		}
		if want := 1 << (2 * order); emitted != want {
			t.Fatalf("order %d: %d points before exhaustion, want %d", order, emitted, want)
		}
		// Exhausted generators stay exhausted.
		if _, ok := gen.Next(); ok {
			t.Fatalf("order %d: Next() produced a point after exhaustion", order)
		}
	}
}

func TestProductionRejectsBadRules(t *testing.T) {
	cases := []struct {
		name  string
		rules RuleSet
	}{
		{"empty set", RuleSet{}},
		{"empty rule", RuleSet{""}},
		{"missing rule", RuleSet{"^2^"}},
		{"invalid op", RuleSet{"^x^"}},
	}
	for _, tc := range cases {
		if _, err := NewProduction(tc.rules, 3); err == nil {
			t.Errorf("%s: NewProduction accepted %q", tc.name, tc.rules)
		}
	}
}

func TestParseFamily(t *testing.T) {
	f, err := ParseFamily("hilbert")
	if err != nil || f != Hilbert {
		t.Fatalf("ParseFamily(hilbert) = %v, %v", f, err)
	}
	if _, err := ParseFamily("peano"); err == nil {
		t.Fatal("ParseFamily(peano) did not fail")
	}
}
