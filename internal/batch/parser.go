package batch

import (
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// File is a list of named patterns:
//
//	// comments are skipped
//	digits = "(0|1)+"
//	ident  = `(a|b)(a|b|0|1)*`
type File struct {
	Entries []*Entry `parser:"@@*"`
}

type Entry struct {
	Pos lexer.Position

	Name    string `parser:"@Ident '='"`
	Pattern string `parser:"@(String | RawString)"`
}

var parser = participle.MustBuild[File](participle.Unquote("String", "RawString"))

// Parse reads a pattern file. filename is only used in positions.
func Parse(filename string, r io.Reader) (*File, error) {
	f, err := parser.Parse(filename, r)
	if err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

func ParseString(filename, data string) (*File, error) {
	f, err := parser.ParseString(filename, data)
	if err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Load parses the pattern file at path.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return Parse(path, fh)
}

// Validate rejects files that define the same name twice.
func (f *File) Validate() error {
	seen := map[string]*Entry{}
	for _, e := range f.Entries {
		if prev, ok := seen[e.Name]; ok {
			return participle.Errorf(e.Pos, "pattern %q already defined at %s", e.Name, prev.Pos)
		}
		seen[e.Name] = e
	}
	return nil
}
