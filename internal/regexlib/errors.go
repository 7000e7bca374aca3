package regexlib

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ErrorKind classifies a pattern syntax error.
type ErrorKind int

const (
	// UnexpectedOperator: an operator appears where a symbol or group must start.
	UnexpectedOperator ErrorKind = iota + 1
	// UnterminatedGroup: a '(' has no matching ')'.
	UnterminatedGroup
	// UnexpectedTrailingInput: input remains after the whole expression was parsed.
	UnexpectedTrailingInput
	// UnexpectedEndOfInput: the pattern ends where a symbol or group is required.
	UnexpectedEndOfInput
	// ReservedSymbol: the pattern uses the rune that labels epsilon moves.
	ReservedSymbol
)

var (
	ErrUnexpectedOperator      = errors.New("unexpected operator")
	ErrUnterminatedGroup       = errors.New("missing closing parenthesis")
	ErrUnexpectedTrailingInput = errors.New("unexpected character")
	ErrUnexpectedEndOfInput    = errors.New("unexpected end of regular expression")
	ErrReservedSymbol          = errors.New("reserved epsilon symbol")
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedOperator:
		return "UnexpectedOperator"
	case UnterminatedGroup:
		return "UnterminatedGroup"
	case UnexpectedTrailingInput:
		return "UnexpectedTrailingInput"
	case UnexpectedEndOfInput:
		return "UnexpectedEndOfInput"
	case ReservedSymbol:
		return "ReservedSymbol"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case UnexpectedOperator:
		return ErrUnexpectedOperator
	case UnterminatedGroup:
		return ErrUnterminatedGroup
	case UnexpectedTrailingInput:
		return ErrUnexpectedTrailingInput
	case UnexpectedEndOfInput:
		return ErrUnexpectedEndOfInput
	case ReservedSymbol:
		return ErrReservedSymbol
	default:
		return nil
	}
}

// SyntaxError reports why a pattern could not be built. Pos.Offset is a byte
// offset into Pattern and Pos.Column the 1-based rune column. Char is the
// offending rune, or 0 when the input ended.
type SyntaxError struct {
	Kind    ErrorKind
	Pos     lexer.Position
	Char    rune
	Pattern string
}

var _ participle.Error = (*SyntaxError)(nil)

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("regex %q: %s", e.Pattern, e.Message())
}

// Message describes the error without the pattern.
func (e *SyntaxError) Message() string {
	msg := e.Kind.String()
	if err := e.Kind.sentinel(); err != nil {
		msg = err.Error()
	}
	if e.Char == 0 {
		return fmt.Sprintf("%s at position %d", msg, e.Pos.Offset)
	}
	return fmt.Sprintf("%s at position %d: %c", msg, e.Pos.Offset, e.Char)
}

func (e *SyntaxError) Position() lexer.Position { return e.Pos }

func (e *SyntaxError) Unwrap() error { return e.Kind.sentinel() }
