// Command loxscan tokenizes Lox source files and writes one JSON object
// per token to stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/go-json-experiment/json"
	"github.com/lmittmann/tint"

	"github.com/agentable/loxscan"
)

type tokenJSON struct {
	Kind  string `json:"kind"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text,omitzero"`
	Num   int64  `json:"num,omitzero"`
}

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "usage: %s [-v] file.lox ...\n", os.Args[0])
		os.Exit(2)
	}

	failed := false
	for _, path := range flag.Args() {
		n, err := dump(os.Stdout, path)
		if err != nil {
			logger.Error("scan failed", "file", path, "error", err)
			failed = true
			continue
		}
		logger.Debug("scanned", "file", path, "tokens", n)
	}
	if failed {
		os.Exit(1)
	}
}

// dump tokenizes the file at path and writes each token to w as a JSON
// line. Returns the number of tokens written.
func dump(w io.Writer, path string) (int, error) {
	tokens, err := loxscan.TokenizeFile(path)
	if err != nil {
		return 0, err
	}
	for _, tok := range tokens {
		out, err := json.Marshal(tokenJSON{
			Kind:  tok.Kind.String(),
			Start: tok.Start,
			End:   tok.End,
			Text:  tok.Text,
			Num:   tok.Num,
		})
		if err != nil {
			return 0, err
		}
		if _, err := fmt.Fprintf(w, "%s\n", out); err != nil {
			return 0, err
		}
	}
	return len(tokens), nil
}
