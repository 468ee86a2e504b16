package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

const defaultSeparator = "\n-----\n"

// ErrUsage wraps flag parsing failures.
var ErrUsage = errors.New("usage error")

type cliFlags struct {
	maxLength   int
	config      string
	plain       bool
	json        bool
	watch       bool
	separator   string
	verbose     bool
	version     bool
	printConfig bool
}

// parseFlags parses args (including the program name) and returns the
// flags and the positional arguments.
func parseFlags(args []string, stderr io.Writer) (*cliFlags, []string, error) {
	f := &cliFlags{}
	fs := flag.NewFlagSet("telegramify", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: telegramify [flags] [file.md]\n\n")
		fmt.Fprintf(stderr, "Converts Markdown to Telegram HTML. Reads stdin when no file is given.\n\n")
		fs.PrintDefaults()
	}

	fs.IntVarP(&f.maxLength, "max-length", "m", 0, "max UTF-16 units per message (default from config, 4096)")
	fs.StringVarP(&f.config, "config", "c", "", "YAML render config file")
	fs.BoolVar(&f.plain, "plain", false, "render plain text instead of HTML")
	fs.BoolVar(&f.json, "json", false, "print chunks as JSON")
	fs.BoolVarP(&f.watch, "watch", "w", false, "re-render when the input file changes")
	fs.StringVar(&f.separator, "separator", defaultSeparator, "printed between chunks")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log pipeline stages to stderr")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	fs.BoolVar(&f.printConfig, "print-config", false, "print the resolved render config as YAML and exit")

	if len(args) > 0 {
		args = args[1:]
	}
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if f.maxLength < 0 {
		return nil, nil, fmt.Errorf("%w: --max-length must not be negative", ErrUsage)
	}
	return f, fs.Args(), nil
}
