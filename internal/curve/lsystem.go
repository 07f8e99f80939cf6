package curve

import "fmt"

// RuleSet is an ordered collection of production rules for a rewrite-system
// curve. Each rule is a string of operations:
//
//	^        advance one unit in the current direction and emit the cell
//	+        rotate the direction clockwise
//	-        rotate the direction counter-clockwise
//	0..9     substitute the rule with that index, one recursion level deeper
//
// Rules are immutable once handed to NewProduction.
type RuleSet []string

// HilbertRules returns the two-rule rewrite system whose traversal visits
// cells in the same order as HilbertPoint, starting in direction +x.
func HilbertRules() RuleSet {
	// The second rule is the first with turns and rule indices mirrored;
	// its tail must read ^0- (advance, substitute, then turn) or child
	// expansions below the depth limit enter with the wrong direction.
	return RuleSet{
		"+1^-0^0-^1+",
		"-0^+1^1+^0-",
	}
}

// frame is one level of rule expansion: which rule is running and how far
// into it execution has advanced.
type frame struct {
	rule int
	pc   int
}

const (
	genNotStarted = iota
	genRunning
	genExhausted
)

// production executes a RuleSet with an explicit frame stack instead of
// native recursion. The stack holds at most order frames; a substitution
// that would exceed that depth is skipped, which is exactly what bounds the
// expansion to a grid of side 1<<order. Position and direction are shared
// across all frames.
type production struct {
	rules RuleSet
	order int
	n     int

	state int
	dir   int // 0..3, clockwise from +x
	x, y  int
	stack []frame
}

var dirSteps = [4]Point{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// NewProduction returns a generator that lazily expands the rule set to the
// given recursion depth. The first point produced is always the origin. An
// empty rule set, an empty rule, or a substitution naming a missing rule is
// rejected here so the traversal itself cannot run out of bounds.
func NewProduction(rules RuleSet, order int) (Generator, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("curve: empty rule set")
	}
	for ri, rule := range rules {
		if rule == "" {
			return nil, fmt.Errorf("curve: rule %d is empty", ri)
		}
		for _, op := range rule {
			switch {
			case op == '^' || op == '+' || op == '-':
			case op >= '0' && op <= '9':
				if int(op-'0') >= len(rules) {
					return nil, fmt.Errorf("curve: rule %d refers to missing rule %c", ri, op)
				}
			default:
				return nil, fmt.Errorf("curve: rule %d has invalid operation %q", ri, op)
			}
		}
	}
	if order < 0 {
		order = 0
	}
	return &production{
		rules: rules,
		order: order,
		n:     1 << (2 * order),
		stack: make([]frame, 0, order),
	}, nil
}

func (p *production) Order() int { return p.order }

func (p *production) Len() int { return p.n }

func (p *production) Next() (Point, bool) {
	switch p.state {
	case genNotStarted:
		p.state = genRunning
		if p.order > 0 {
			p.stack = append(p.stack, frame{rule: 0})
		}
		return Point{X: p.x, Y: p.y}, true
	case genExhausted:
		return Point{}, false
	}

	for len(p.stack) > 0 {
		top := &p.stack[len(p.stack)-1]
		rule := p.rules[top.rule]
		if top.pc >= len(rule) {
			p.stack = p.stack[:len(p.stack)-1]
			if len(p.stack) > 0 {
				// Resume the parent after the substitution that
				// spawned the popped frame.
				p.stack[len(p.stack)-1].pc++
			}
			continue
		}
		op := rule[top.pc]
		switch op {
		case '^':
			top.pc++
			step := dirSteps[p.dir]
			p.x += step.X
			p.y += step.Y
			return Point{X: p.x, Y: p.y}, true
		case '+':
			top.pc++
			p.dir = (p.dir + 1) % 4
		case '-':
			top.pc++
			p.dir = (p.dir + 3) % 4
		default: // digit, validated in NewProduction
			if len(p.stack) < p.order {
				p.stack = append(p.stack, frame{rule: int(op - '0')})
			} else {
				// Depth limit reached: the substitution is a no-op.
				top.pc++
			}
		}
	}
	p.state = genExhausted
	return Point{}, false
}
