package regexlib

// parser is a recursive-descent parser that builds the automaton while it
// reads. Precedence, loosest first: '|', concatenation, postfix * + ?.
//
//	alternation   := concatenation ('|' concatenation)*
//	concatenation := repetition+
//	repetition    := term ('*' | '+' | '?')*
//	term          := symbol | '(' alternation ')'
//
// A parser is used for exactly one pattern.
type parser struct {
	lex     *patternLexer
	b       *Builder
	pattern string
}

func newParser(b *Builder, pattern string) *parser {
	return &parser{lex: newLexer(pattern), b: b, pattern: pattern}
}

func (p *parser) parse() (*NFA, error) {
	if p.pattern == "" {
		return p.b.Empty(), nil
	}
	n, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}
	if tok := p.lex.peek(); tok.typ != tEOF {
		return nil, p.errorAt(UnexpectedTrailingInput, tok)
	}
	return n, nil
}

func (p *parser) parseAlternation() (*NFA, error) {
	left, err := p.parseConcatenation()
	if err != nil {
		return nil, err
	}
	for p.lex.peek().typ == tUnion {
		p.lex.next()
		right, err := p.parseConcatenation()
		if err != nil {
			return nil, err
		}
		left = p.b.Union(left, right)
	}
	return left, nil
}

func (p *parser) parseConcatenation() (*NFA, error) {
	left, err := p.parseRepetition()
	if err != nil {
		return nil, err
	}
	for {
		switch p.lex.peek().typ {
		case tEOF, tRParen, tUnion:
			return left, nil
		}
		right, err := p.parseRepetition()
		if err != nil {
			return nil, err
		}
		left = p.b.Concat(left, right)
	}
}

// parseRepetition applies stacked postfix operators in textual order, so
// "a*+" is plus(star(a)).
func (p *parser) parseRepetition() (*NFA, error) {
	n, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		switch p.lex.peek().typ {
		case tStar:
			n = p.b.Star(n)
		case tPlus:
			n = p.b.Plus(n)
		case tQMark:
			n = p.b.Optional(n)
		default:
			return n, nil
		}
		p.lex.next()
	}
}

func (p *parser) parseTerm() (*NFA, error) {
	tok := p.lex.next()
	switch tok.typ {
	case tEOF:
		return nil, p.errorAt(UnexpectedEndOfInput, tok)
	case tChar:
		if tok.ch == EpsilonSymbol {
			return nil, p.errorAt(ReservedSymbol, tok)
		}
		return p.b.Basic(tok.ch), nil
	case tLParen:
		n, err := p.parseAlternation()
		if err != nil {
			return nil, err
		}
		// the inner alternation only stops at ')' or the end of input
		if p.lex.next().typ != tRParen {
			return nil, p.errorAt(UnterminatedGroup, tok)
		}
		return n, nil
	default:
		return nil, p.errorAt(UnexpectedOperator, tok)
	}
}

func (p *parser) errorAt(kind ErrorKind, tok token) *SyntaxError {
	return &SyntaxError{Kind: kind, Pos: tok.pos, Char: tok.ch, Pattern: p.pattern}
}
