package regexlib

import (
	"fmt"
	"io"
	"strconv"
)

// ExportDOT writes a Graphviz description of n to w. Accepting states are
// double circles and epsilon transitions are dashed.
func ExportDOT(w io.Writer, n *NFA) error {
	ew := &errWriter{w: w}
	ew.println("digraph NFA {")
	ew.println("    rankdir=LR;")

	for _, node := range n.Graph().Nodes {
		shape := "circle"
		if node.Accepting {
			shape = "doublecircle"
		}
		ew.printf("    q%d [shape=%s];\n", node.ID, shape)
	}
	for _, e := range n.Edges() {
		style := ""
		if e.Epsilon {
			style = ", style=dashed"
		}
		ew.printf("    q%d -> q%d [label=%s%s];\n", e.From, e.To, strconv.Quote(e.Label()), style)
	}
	ew.printf("    _start [shape=point]; _start -> q%d;\n", n.Initial)

	ew.println("}")
	return ew.err
}

// errWriter keeps the first write error and drops everything after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
