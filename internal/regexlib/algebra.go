package regexlib

import "slices"

// Builder composes Thompson automata. It owns the state allocator, so one
// Builder serves one build at a time; use separate Builders for concurrent
// builds.
type Builder struct {
	ids Allocator
}

func NewBuilder() *Builder { return &Builder{} }

// Basic accepts exactly the one-symbol string sym.
func (b *Builder) Basic(sym rune) *NFA {
	start := b.ids.Allocate()
	accept := b.ids.Allocate()
	t := Transitions{}
	t.add(start, sym, accept)
	return &NFA{
		States:      []State{start, accept},
		Alphabet:    []rune{sym},
		Transitions: t,
		Initial:     start,
		Accepting:   []State{accept},
	}
}

// Empty accepts only the empty string: one state, initial and accepting.
func (b *Builder) Empty() *NFA {
	s := b.ids.Allocate()
	return &NFA{
		States:      []State{s},
		Transitions: Transitions{},
		Initial:     s,
		Accepting:   []State{s},
	}
}

// Union accepts L(x) ∪ L(y) through a fresh start and a fresh accept state.
func (b *Builder) Union(x, y *NFA) *NFA {
	start := b.ids.Allocate()
	accept := b.ids.Allocate()

	t := x.Transitions.Clone()
	t.merge(y.Transitions)
	t.add(start, Epsilon, x.Initial)
	t.add(start, Epsilon, y.Initial)
	for _, s := range x.Accepting {
		t.add(s, Epsilon, accept)
	}
	for _, s := range y.Accepting {
		t.add(s, Epsilon, accept)
	}

	return &NFA{
		States:      appendStates(nil, x.States, y.States, []State{start, accept}),
		Alphabet:    unionAlphabets(x.Alphabet, y.Alphabet),
		Transitions: t,
		Initial:     start,
		Accepting:   []State{accept},
	}
}

// Concat accepts L(x)·L(y). No states are allocated: x's accepting states
// are linked to y's initial state.
func (b *Builder) Concat(x, y *NFA) *NFA {
	t := x.Transitions.Clone()
	t.merge(y.Transitions)
	for _, s := range x.Accepting {
		t.add(s, Epsilon, y.Initial)
	}

	return &NFA{
		States:      appendStates(nil, x.States, y.States),
		Alphabet:    unionAlphabets(x.Alphabet, y.Alphabet),
		Transitions: t,
		Initial:     x.Initial,
		Accepting:   slices.Clone(y.Accepting),
	}
}

// Star accepts L(x)*. Each accepting state of x loops back to x's initial
// state and also leaves to the fresh accept state.
func (b *Builder) Star(x *NFA) *NFA {
	start := b.ids.Allocate()
	accept := b.ids.Allocate()

	t := x.Transitions.Clone()
	t.add(start, Epsilon, x.Initial)
	t.add(start, Epsilon, accept)
	for _, s := range x.Accepting {
		t.add(s, Epsilon, x.Initial)
		t.add(s, Epsilon, accept)
	}

	return &NFA{
		States:      appendStates(nil, x.States, []State{start, accept}),
		Alphabet:    slices.Clone(x.Alphabet),
		Transitions: t,
		Initial:     start,
		Accepting:   []State{accept},
	}
}

// Plus accepts L(x)+ as x·x*. Both halves reuse x's state identifiers; the
// copy only duplicates the transition table.
func (b *Builder) Plus(x *NFA) *NFA {
	return b.Concat(x.copy(), b.Star(x))
}

// Optional accepts L(x) ∪ {ε}.
func (b *Builder) Optional(x *NFA) *NFA {
	return b.Union(x, b.Empty())
}

func (n *NFA) copy() *NFA {
	return &NFA{
		States:      slices.Clone(n.States),
		Alphabet:    slices.Clone(n.Alphabet),
		Transitions: n.Transitions.Clone(),
		Initial:     n.Initial,
		Accepting:   slices.Clone(n.Accepting),
	}
}
