package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"regexnfa/internal/batch"
	"regexnfa/internal/regexlib"
)

// render writes all results in the requested format. Several DOT graphs or
// tables are separated by a comment or heading naming the pattern; JSON is a
// single object keyed by name.
func render(w io.Writer, format string, results []batch.Result) error {
	switch format {
	case "dot":
		for i, r := range results {
			if len(results) > 1 {
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "// %s = %q\n", r.Name, r.Pattern)
			}
			if err := regexlib.ExportDOT(w, r.NFA); err != nil {
				return err
			}
		}
		return nil
	case "table":
		for i, r := range results {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%s = %q\n", r.Name, r.Pattern)
			if err := regexlib.WriteTable(w, r.NFA); err != nil {
				return err
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(results) == 1 {
			return enc.Encode(results[0].NFA)
		}
		byName := make(map[string]*regexlib.NFA, len(results))
		for _, r := range results {
			byName[r.Name] = r.NFA
		}
		return enc.Encode(byName)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// writeOutput writes data to path, or to stdout when path is "-". A failed
// close is reported like a failed write.
func writeOutput(path string, data []byte) (err error) {
	if path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = f.Write(data)
	return err
}
