package regexlib

import (
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
)

type tokenType int

const (
	tEOF    tokenType = iota
	tChar             // literal rune
	tLParen           // (
	tRParen           // )
	tStar             // *
	tPlus             // +
	tQMark            // ?
	tUnion            // |
)

type token struct {
	typ tokenType
	ch  rune
	pos lexer.Position
}

// patternLexer walks the pattern one rune at a time. peek does not advance.
type patternLexer struct {
	input  string
	offset int
	column int
}

func newLexer(s string) *patternLexer { return &patternLexer{input: s, column: 1} }

func (l *patternLexer) position() lexer.Position {
	return lexer.Position{Offset: l.offset, Line: 1, Column: l.column}
}

func (l *patternLexer) peek() token {
	pos := l.position()
	if l.offset >= len(l.input) {
		return token{typ: tEOF, pos: pos}
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.offset:])
	return token{typ: classify(r), ch: r, pos: pos}
}

func (l *patternLexer) next() token {
	tok := l.peek()
	if tok.typ != tEOF {
		_, size := utf8.DecodeRuneInString(l.input[l.offset:])
		l.offset += size
		l.column++
	}
	return tok
}

func classify(r rune) tokenType {
	switch r {
	case '(':
		return tLParen
	case ')':
		return tRParen
	case '*':
		return tStar
	case '+':
		return tPlus
	case '?':
		return tQMark
	case '|':
		return tUnion
	default:
		return tChar
	}
}
