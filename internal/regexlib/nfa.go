package regexlib

import (
	"fmt"
	"slices"
)

// Epsilon labels an empty transition. No decoded input rune is negative, so
// it never collides with a real symbol.
const Epsilon rune = -1

// EpsilonSymbol is how exports spell Epsilon. Patterns may not use it as a
// literal, so an exported "ε" label always means an empty move.
const EpsilonSymbol rune = 'ε'

// Transitions maps a source state and a label to its destination states.
// Destinations are kept unique and in insertion order.
type Transitions map[State]map[rune][]State

// NFA is a Thompson automaton. Values returned by this package are never
// modified afterwards; callers should treat them as read-only.
type NFA struct {
	States      []State
	Alphabet    []rune
	Transitions Transitions
	Initial     State
	Accepting   []State
}

// Clone returns a structural copy that shares no maps or slices with t.
func (t Transitions) Clone() Transitions {
	out := make(Transitions, len(t))
	for from, bySym := range t {
		cp := make(map[rune][]State, len(bySym))
		for sym, to := range bySym {
			cp[sym] = slices.Clone(to)
		}
		out[from] = cp
	}
	return out
}

// add records from --sym--> to unless it is already present.
func (t Transitions) add(from State, sym rune, to State) {
	bySym, ok := t[from]
	if !ok {
		bySym = map[rune][]State{}
		t[from] = bySym
	}
	if slices.Contains(bySym[sym], to) {
		return
	}
	bySym[sym] = append(bySym[sym], to)
}

// merge copies every edge of src into t.
func (t Transitions) merge(src Transitions) {
	for _, from := range sortedStates(src) {
		for _, sym := range sortedSymbols(src[from]) {
			for _, to := range src[from][sym] {
				t.add(from, sym, to)
			}
		}
	}
}

// Targets returns the destinations of from on sym. The slice must not be modified.
func (t Transitions) Targets(from State, sym rune) []State {
	return t[from][sym]
}

// Edge is one labelled transition.
type Edge struct {
	From    State
	To      State
	Symbol  rune
	Epsilon bool
}

// Label renders the symbol, using ε for empty transitions.
func (e Edge) Label() string {
	if e.Epsilon {
		return string(EpsilonSymbol)
	}
	return string(e.Symbol)
}

// Edges lists every transition. Sources follow n.States, epsilon comes
// before other symbols, symbols ascend, destinations keep insertion order.
func (n *NFA) Edges() []Edge {
	var out []Edge
	for _, from := range n.States {
		bySym := n.Transitions[from]
		for _, sym := range sortedSymbols(bySym) {
			for _, to := range bySym[sym] {
				out = append(out, Edge{From: from, To: to, Symbol: sym, Epsilon: sym == Epsilon})
			}
		}
	}
	return out
}

func (n *NFA) IsInitial(s State) bool { return n.Initial == s }

func (n *NFA) IsAccepting(s State) bool { return slices.Contains(n.Accepting, s) }

// Validate checks that every state the automaton refers to is one of its
// States, that States has no duplicates, that no literal label is
// EpsilonSymbol and that Alphabet matches the labels actually used.
func (n *NFA) Validate() error {
	seen := make(map[State]bool, len(n.States))
	for _, s := range n.States {
		if seen[s] {
			return fmt.Errorf("state %d listed twice", s)
		}
		seen[s] = true
	}
	if !seen[n.Initial] {
		return fmt.Errorf("initial state %d is not a member of the automaton", n.Initial)
	}
	for _, s := range n.Accepting {
		if !seen[s] {
			return fmt.Errorf("accepting state %d is not a member of the automaton", s)
		}
	}
	for from, bySym := range n.Transitions {
		if !seen[from] {
			return fmt.Errorf("transition source %d is not a member of the automaton", from)
		}
		for sym, dests := range bySym {
			if sym == EpsilonSymbol {
				return fmt.Errorf("state %d uses the reserved symbol %c as a literal label", from, EpsilonSymbol)
			}
			for _, to := range dests {
				if !seen[to] {
					return fmt.Errorf("transition %d --%s--> %d leaves the automaton", from, Edge{Symbol: sym, Epsilon: sym == Epsilon}.Label(), to)
				}
			}
		}
	}
	if want := CollectAlphabet(n.Transitions); !slices.Equal(want, n.Alphabet) {
		return fmt.Errorf("alphabet %q does not match transition labels %q", string(n.Alphabet), string(want))
	}
	return nil
}

// appendStates appends the states of every list that are not yet in dst.
func appendStates(dst []State, lists ...[]State) []State {
	seen := make(map[State]bool, len(dst))
	for _, s := range dst {
		seen[s] = true
	}
	for _, l := range lists {
		for _, s := range l {
			if !seen[s] {
				seen[s] = true
				dst = append(dst, s)
			}
		}
	}
	return dst
}

func sortedStates(t Transitions) []State {
	out := make([]State, 0, len(t))
	for s := range t {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

// sortedSymbols orders labels ascending; Epsilon is negative so it comes first.
func sortedSymbols(m map[rune][]State) []rune {
	out := make([]rune, 0, len(m))
	for sym := range m {
		out = append(out, sym)
	}
	slices.Sort(out)
	return out
}
