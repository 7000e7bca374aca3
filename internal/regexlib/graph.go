package regexlib

import (
	"encoding/json"
	"strconv"
)

// Node is a state together with the role flags a renderer needs.
type Node struct {
	ID        State
	Initial   bool
	Accepting bool
}

// Graph is the node/edge view of an NFA: one node per state, one edge per
// (from, symbol, to) triple.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

func (n *NFA) Graph() Graph {
	g := Graph{Nodes: make([]Node, 0, len(n.States)), Edges: n.Edges()}
	for _, s := range n.States {
		g.Nodes = append(g.Nodes, Node{ID: s, Initial: n.IsInitial(s), Accepting: n.IsAccepting(s)})
	}
	return g
}

type jsonNFA struct {
	States          []State                       `json:"states"`
	Alphabet        []string                      `json:"alphabet"`
	Transitions     map[string]map[string][]State `json:"transitions"`
	InitialState    State                         `json:"initialState"`
	AcceptingStates []State                       `json:"acceptingStates"`
}

// MarshalJSON encodes the automaton as
// {"states","alphabet","transitions","initialState","acceptingStates"} with
// transitions keyed by state then label and EpsilonSymbol for empty moves.
func (n *NFA) MarshalJSON() ([]byte, error) {
	out := jsonNFA{
		States:          nonNil(n.States),
		Alphabet:        make([]string, 0, len(n.Alphabet)),
		Transitions:     make(map[string]map[string][]State, len(n.Transitions)),
		InitialState:    n.Initial,
		AcceptingStates: nonNil(n.Accepting),
	}
	for _, r := range n.Alphabet {
		out.Alphabet = append(out.Alphabet, string(r))
	}
	for _, e := range n.Edges() {
		from := strconv.Itoa(int(e.From))
		if out.Transitions[from] == nil {
			out.Transitions[from] = map[string][]State{}
		}
		out.Transitions[from][e.Label()] = append(out.Transitions[from][e.Label()], e.To)
	}
	return json.Marshal(out)
}

func nonNil(s []State) []State {
	if s == nil {
		return []State{}
	}
	return s
}
