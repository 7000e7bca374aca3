package regexlib

// Build converts pattern into a Thompson NFA. Identifiers restart at zero, so
// equal patterns always produce identically numbered automata.
func (b *Builder) Build(pattern string) (*NFA, error) {
	b.ids.Reset()
	n, err := newParser(b, pattern).parse()
	if err != nil {
		return nil, err
	}
	n.Alphabet = CollectAlphabet(n.Transitions)
	return n, nil
}

// Build converts pattern with a fresh Builder.
func Build(pattern string) (*NFA, error) {
	return NewBuilder().Build(pattern)
}

func MustBuild(pattern string) *NFA {
	n, err := Build(pattern)
	if err != nil {
		panic(err)
	}
	return n
}
