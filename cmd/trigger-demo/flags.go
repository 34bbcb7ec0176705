// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports -start, -end, -config, -words, -min-length, -log, -debug, -version

package main

import (
	"flag"
	"io"
	"strings"
)

type cliArgs struct {
	start     string
	end       string
	endSet    bool
	config    string
	words     []string
	minLength int
	logFile   string
	debug     bool
	version   bool
}

// listFlag accumulates comma-separated values across repeated flags.
type listFlag []string

func (l *listFlag) String() string { return strings.Join(*l, ",") }

func (l *listFlag) Set(v string) error {
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			*l = append(*l, p)
		}
	}
	return nil
}

func parseFlags(argv []string, errOut io.Writer) (cliArgs, error) {
	var args cliArgs
	var words listFlag

	fs := flag.NewFlagSet("trigger-demo", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&args.start, "start", "", "Trigger start delimiter (default \"%{\")")
	fs.StringVar(&args.end, "end", "", "Trigger end delimiter (default \"}\")")
	fs.StringVar(&args.config, "config", "", "Config file (json, yaml or toml); skips global/project lookup")
	fs.Var(&words, "words", "Word list files, comma separated (repeatable)")
	fs.IntVar(&args.minLength, "min-length", 0, "Minimum query length before suggestions show")
	fs.StringVar(&args.logFile, "log", "", "Write logs to this file instead of discarding them")
	fs.BoolVar(&args.debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")

	if err := fs.Parse(argv); err != nil {
		return cliArgs{}, err
	}

	// An explicitly empty -end is meaningful: no closing delimiter.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "end" {
			args.endSet = true
		}
	})
	args.words = words
	return args, nil
}
