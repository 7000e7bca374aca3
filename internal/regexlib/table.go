package regexlib

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// WriteTable prints the transition table of n: one row per state, one column
// for ε and one per alphabet symbol. The initial state is marked "->" and
// accepting states "*". Empty cells hold "-".
func WriteTable(w io.Writer, n *NFA) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := []string{"", "state", string(EpsilonSymbol)}
	for _, r := range n.Alphabet {
		header = append(header, string(r))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, s := range n.States {
		mark := ""
		if n.IsInitial(s) {
			mark += "->"
		}
		if n.IsAccepting(s) {
			mark += "*"
		}
		row := []string{mark, fmt.Sprintf("q%d", s), cell(n.Transitions.Targets(s, Epsilon))}
		for _, r := range n.Alphabet {
			row = append(row, cell(n.Transitions.Targets(s, r)))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func cell(dests []State) string {
	if len(dests) == 0 {
		return "-"
	}
	parts := make([]string, len(dests))
	for i, d := range dests {
		parts[i] = fmt.Sprintf("q%d", d)
	}
	return "{" + strings.Join(parts, ",") + "}"
}
