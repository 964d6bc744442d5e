package main

import (
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/tsawler/tablestitch/tables"
)

// cliFlags holds the parsed command line.
type cliFlags struct {
	config       string
	output       string
	format       string
	pages        []int
	detector     string
	noSeparators bool
	logFormat    string
	quiet        bool
	verbose      bool
	version      bool

	// changed records which flags were given explicitly, so that they win
	// over the config file
	changed map[string]bool
}

// parseFlags parses args (without the program name) and returns the flags
// and the positional arguments.
func parseFlags(args []string, stderr io.Writer) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("tablestitch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &cliFlags{changed: make(map[string]bool)}

	fs.StringVarP(&f.output, "output", "o", "", "output file (default stdout)")
	fs.StringVarP(&f.format, "format", "f", "", "output format: markdown, json, yaml or html (default from output name, else markdown)")
	fs.IntSliceVarP(&f.pages, "pages", "p", nil, "only merge these page positions (1-indexed)")
	fs.StringVar(&f.detector, "detector", "pipe", "table detector: "+strings.Join(tables.ListDetectors(), ", "))
	fs.BoolVar(&f.noSeparators, "no-separators", false, "omit \"## Page N\" separators from markdown and html output")
	fs.StringVarP(&f.config, "config", "c", "", "YAML config file")
	fs.StringVar(&f.logFormat, "log-format", "", "log format: text or json (default text)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log every merge decision")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(stderr, fs) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	fs.Visit(func(fl *flag.Flag) {
		f.changed[fl.Name] = true
	})

	return f, fs.Args(), nil
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: tablestitch [flags] <file|->")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Merges markdown tables split across pages in a JSON, YAML or markdown page file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
}
