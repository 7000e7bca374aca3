package batch

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"regexnfa/internal/regexlib"
)

// Result pairs a file entry with the automaton built from its pattern.
type Result struct {
	Name    string
	Pattern string
	NFA     *regexlib.NFA
}

// BuildAll builds every entry of f in order. The first pattern that fails
// aborts the whole batch and no results are returned.
func BuildAll(f *File) ([]Result, error) {
	b := regexlib.NewBuilder()
	out := make([]Result, 0, len(f.Entries))
	for _, e := range f.Entries {
		n, err := b.Build(e.Pattern)
		if err != nil {
			return nil, entryError(e, err)
		}
		out = append(out, Result{Name: e.Name, Pattern: e.Pattern, NFA: n})
	}
	return out, nil
}

// entryError reports a pattern error at the entry that holds it. The
// pattern's own offset stays in the wrapped SyntaxError.
func entryError(e *Entry, err error) error {
	var se *regexlib.SyntaxError
	if errors.As(err, &se) {
		return &EntryError{Name: e.Name, Pos: e.Pos, Err: se}
	}
	return fmt.Errorf("%s: %w", e.Name, err)
}

// EntryError is a pattern syntax error inside a batch file.
type EntryError struct {
	Name string
	Pos  lexer.Position
	Err  *regexlib.SyntaxError
}

var _ participle.Error = (*EntryError)(nil)

func (e *EntryError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message())
}

func (e *EntryError) Message() string {
	return fmt.Sprintf("pattern %s: %s", e.Name, e.Err.Error())
}

func (e *EntryError) Position() lexer.Position { return e.Pos }

func (e *EntryError) Unwrap() error { return e.Err }
