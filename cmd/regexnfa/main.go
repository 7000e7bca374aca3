package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"

	"regexnfa/internal/batch"
	"regexnfa/internal/regexlib"
)

func main() {
	pattern := flag.String("re", "", "regular expression to convert")
	file := flag.String("f", "", "file of named patterns (name = \"pattern\")")
	format := flag.String("format", "dot", "output format: dot, json or table")
	outFile := flag.String("o", "-", "output file, - for stdout")
	pngFlag := flag.Bool("png", false, "render PNG via dot -Tpng (dot format, single pattern)")
	verbose := flag.Bool("v", false, "log a summary of every automaton")
	flag.Parse()

	logger := log.New(os.Stderr, "regexnfa: ", 0)

	patternSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "re" {
			patternSet = true
		}
	})
	if patternSet == (*file != "") {
		fmt.Fprintln(os.Stderr, "usage: regexnfa (-re <pattern> | -f <file>) [-format dot|json|table] [-o file] [-png] [-v]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	var results []batch.Result
	if patternSet {
		n, err := regexlib.Build(*pattern)
		if err != nil {
			logger.Fatal(err)
		}
		results = []batch.Result{{Name: "nfa", Pattern: *pattern, NFA: n}}
	} else {
		f, err := batch.Load(*file)
		if err != nil {
			logger.Fatal(err)
		}
		results, err = batch.BuildAll(f)
		if err != nil {
			logger.Fatal(err)
		}
	}

	if *verbose {
		for _, r := range results {
			logger.Printf("%s %q: %d states, %d transitions, alphabet %q",
				r.Name, r.Pattern, len(r.NFA.States), len(r.NFA.Edges()), string(r.NFA.Alphabet))
		}
	}

	var buf bytes.Buffer
	if err := render(&buf, *format, results); err != nil {
		logger.Fatal(err)
	}

	if *pngFlag {
		if *format != "dot" || len(results) != 1 || *outFile == "-" {
			logger.Fatal("-png needs -format dot, a single pattern and an -o file")
		}
		cmd := exec.Command("dot", "-Tpng", "-o", *outFile)
		cmd.Stdin = bytes.NewReader(buf.Bytes())
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			logger.Fatalf("dot failed: %v", err)
		}
		logger.Printf("PNG written to %s", *outFile)
		return
	}

	if err := writeOutput(*outFile, buf.Bytes()); err != nil {
		logger.Fatal(err)
	}
	if *outFile != "-" {
		logger.Printf("%s written to %s", *format, *outFile)
	}
}
