package regexlib

import (
	"reflect"
	"slices"
	"testing"
)

// ------------------------------------------------------------------- helpers

// sub parses pattern with b without resetting its allocator, the way the
// parser builds operands inside a larger expression.
func sub(t *testing.T, b *Builder, pattern string) *NFA {
	t.Helper()
	n, err := newParser(b, pattern).parse()
	if err != nil {
		t.Fatalf("parse %q: %v", pattern, err)
	}
	return n
}

func mustValid(t *testing.T, n *NFA) {
	t.Helper()
	if err := n.Validate(); err != nil {
		t.Fatalf("invalid automaton: %v", err)
	}
}

func hasEdge(n *NFA, from State, sym rune, to State) bool {
	return slices.Contains(n.Transitions.Targets(from, sym), to)
}

var operandPairs = [][2]string{
	{"a", "b"},
	{"ab", "c"},
	{"a*", "b|c"},
	{"(a|b)+", "c?"},
	{"a?", "a"},
}

// ------------------------------------------------------------------- allocator

func TestAllocatorResets(t *testing.T) {
	var a Allocator
	for want := State(0); want < 3; want++ {
		if got := a.Allocate(); got != want {
			t.Fatalf("allocate: want %d got %d", want, got)
		}
	}
	a.Reset()
	if got := a.Allocate(); got != 0 {
		t.Fatalf("after reset want 0 got %d", got)
	}
}

// ------------------------------------------------------------------- constructors

func TestBasic(t *testing.T) {
	b := NewBuilder()
	n := b.Basic('x')
	mustValid(t, n)
	if !slices.Equal(n.States, []State{0, 1}) || n.Initial != 0 || !slices.Equal(n.Accepting, []State{1}) {
		t.Fatalf("unexpected shape %+v", n)
	}
	if !hasEdge(n, 0, 'x', 1) || len(n.Edges()) != 1 {
		t.Fatalf("unexpected edges %v", n.Edges())
	}
	if string(n.Alphabet) != "x" {
		t.Fatalf("alphabet %q", string(n.Alphabet))
	}
}

func TestEmpty(t *testing.T) {
	n := NewBuilder().Empty()
	mustValid(t, n)
	if len(n.States) != 1 || n.Initial != n.States[0] || !n.IsAccepting(n.Initial) {
		t.Fatalf("unexpected shape %+v", n)
	}
	if len(n.Edges()) != 0 || len(n.Alphabet) != 0 {
		t.Fatalf("empty automaton has edges %v or alphabet %q", n.Edges(), string(n.Alphabet))
	}
}

func TestUnionProperties(t *testing.T) {
	for _, pair := range operandPairs {
		b := NewBuilder()
		x, y := sub(t, b, pair[0]), sub(t, b, pair[1])
		u := b.Union(x, y)
		mustValid(t, u)

		if len(u.Accepting) != 1 {
			t.Fatalf("%q|%q: want one accepting state got %v", pair[0], pair[1], u.Accepting)
		}
		if got := u.Transitions.Targets(u.Initial, Epsilon); !slices.Equal(got, []State{x.Initial, y.Initial}) {
			t.Fatalf("%q|%q: start ε targets %v", pair[0], pair[1], got)
		}
		for _, s := range append(slices.Clone(x.Accepting), y.Accepting...) {
			if !hasEdge(u, s, Epsilon, u.Accepting[0]) {
				t.Fatalf("%q|%q: no ε edge %d -> %d", pair[0], pair[1], s, u.Accepting[0])
			}
		}
		if len(u.States) != len(x.States)+len(y.States)+2 {
			t.Fatalf("%q|%q: state count %d", pair[0], pair[1], len(u.States))
		}
	}
}

func TestConcatProperties(t *testing.T) {
	for _, pair := range operandPairs {
		b := NewBuilder()
		x, y := sub(t, b, pair[0]), sub(t, b, pair[1])
		c := b.Concat(x, y)
		mustValid(t, c)

		if c.Initial != x.Initial {
			t.Fatalf("%q%q: initial %d want %d", pair[0], pair[1], c.Initial, x.Initial)
		}
		if !slices.Equal(c.Accepting, y.Accepting) {
			t.Fatalf("%q%q: accepting %v want %v", pair[0], pair[1], c.Accepting, y.Accepting)
		}
		for _, s := range x.Accepting {
			if !hasEdge(c, s, Epsilon, y.Initial) {
				t.Fatalf("%q%q: no ε edge %d -> %d", pair[0], pair[1], s, y.Initial)
			}
		}
	}
}

func TestStarProperties(t *testing.T) {
	for _, pattern := range []string{"a", "ab", "a|b", "(a|b)*c", "a+"} {
		b := NewBuilder()
		x := sub(t, b, pattern)
		s := b.Star(x)
		mustValid(t, s)

		if slices.Contains(x.States, s.Initial) || len(s.Accepting) != 1 || slices.Contains(x.States, s.Accepting[0]) {
			t.Fatalf("%q*: start and accept must be fresh", pattern)
		}
		final := s.Accepting[0]
		if got := s.Transitions.Targets(s.Initial, Epsilon); !slices.Equal(got, []State{x.Initial, final}) {
			t.Fatalf("%q*: start ε targets %v", pattern, got)
		}
		for _, acc := range x.Accepting {
			if !hasEdge(s, acc, Epsilon, x.Initial) || !hasEdge(s, acc, Epsilon, final) {
				t.Fatalf("%q*: accepting state %d lacks loop or exit", pattern, acc)
			}
		}
		if !slices.Equal(s.Alphabet, x.Alphabet) {
			t.Fatalf("%q*: alphabet changed", pattern)
		}
	}
}

func TestPlusReusesOperandStates(t *testing.T) {
	b := NewBuilder()
	x := b.Basic('a')
	p := b.Plus(x)
	mustValid(t, p)

	if !slices.Equal(p.States, []State{0, 1, 2, 3}) || p.Initial != 0 || !slices.Equal(p.Accepting, []State{3}) {
		t.Fatalf("unexpected shape %+v", p)
	}
	if got := p.Transitions.Targets(1, Epsilon); !slices.Equal(got, []State{0, 3, 2}) {
		t.Fatalf("ε targets of q1: %v", got)
	}
	if got := p.Transitions.Targets(2, Epsilon); !slices.Equal(got, []State{0, 3}) {
		t.Fatalf("ε targets of q2: %v", got)
	}
}

func TestOptional(t *testing.T) {
	b := NewBuilder()
	o := b.Optional(b.Basic('a'))
	mustValid(t, o)

	// a: q0 q1, empty: q2, union: q3 q4
	if o.Initial != 3 || !slices.Equal(o.Accepting, []State{4}) {
		t.Fatalf("unexpected shape %+v", o)
	}
	if got := o.Transitions.Targets(3, Epsilon); !slices.Equal(got, []State{0, 2}) {
		t.Fatalf("start ε targets %v", got)
	}
	if !hasEdge(o, 1, Epsilon, 4) || !hasEdge(o, 2, Epsilon, 4) {
		t.Fatalf("missing ε edges into accept: %v", o.Edges())
	}
}

func TestOperandsAreNotMutated(t *testing.T) {
	b := NewBuilder()
	x := sub(t, b, "ab")
	y := sub(t, b, "c*")
	xBefore, yBefore := x.copy(), y.copy()

	b.Union(x, y)
	b.Concat(x, y)
	b.Star(x)
	b.Plus(y)
	b.Optional(x)

	if !reflect.DeepEqual(x, xBefore) || !reflect.DeepEqual(y, yBefore) {
		t.Fatalf("operand changed by a combinator")
	}
}

func TestCloneSharesNothing(t *testing.T) {
	orig := Transitions{}
	orig.add(0, 'a', 1)
	cp := orig.Clone()
	cp.add(0, 'a', 2)
	cp.add(1, Epsilon, 0)

	if got := orig.Targets(0, 'a'); !slices.Equal(got, []State{1}) {
		t.Fatalf("original changed through clone: %v", got)
	}
	if _, ok := orig[1]; ok {
		t.Fatalf("original gained a source state")
	}
}

func TestAddDeduplicates(t *testing.T) {
	tr := Transitions{}
	tr.add(0, Epsilon, 1)
	tr.add(0, Epsilon, 1)
	tr.add(0, Epsilon, 2)
	if got := tr.Targets(0, Epsilon); !slices.Equal(got, []State{1, 2}) {
		t.Fatalf("targets %v", got)
	}
}

func TestValidateRejectsForeignStates(t *testing.T) {
	cases := map[string]*NFA{
		"initial":   {States: []State{0}, Initial: 1, Transitions: Transitions{}},
		"accepting": {States: []State{0}, Initial: 0, Accepting: []State{4}, Transitions: Transitions{}},
		"duplicate": {States: []State{0, 0}, Initial: 0, Transitions: Transitions{}},
		"edge":      {States: []State{0}, Initial: 0, Transitions: Transitions{0: {'a': {7}}}, Alphabet: []rune{'a'}},
		"alphabet":  {States: []State{0, 1}, Initial: 0, Transitions: Transitions{0: {'a': {1}}}},
	}
	for name, n := range cases {
		if err := n.Validate(); err == nil {
			t.Errorf("%s: want validation error", name)
		}
	}
}
