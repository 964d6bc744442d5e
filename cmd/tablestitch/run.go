package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/tsawler/tablestitch"
	"github.com/tsawler/tablestitch/format"
	"github.com/tsawler/tablestitch/pagefile"
	"github.com/tsawler/tablestitch/tables"
)

// run executes the command and returns its exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags, positional, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(stderr, "tablestitch:", err)
		return ExitUsage
	}

	if flags.version {
		fmt.Fprintln(stdout, "tablestitch", Version)
		return ExitSuccess
	}

	if len(positional) != 1 {
		fmt.Fprintln(stderr, "tablestitch: expected exactly one input file (use - for stdin)")
		return ExitUsage
	}

	opts, err := resolveOptions(flags)
	if err != nil {
		fmt.Fprintln(stderr, "tablestitch:", err)
		return exitCodeFor(err)
	}

	logger := newLogger(stderr, opts.level, opts.logFormat)

	if err := stitch(ctx, positional[0], stdin, stdout, opts, logger); err != nil {
		fmt.Fprintln(stderr, "tablestitch:", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// stitch loads the input, merges split tables and writes the result.
func stitch(ctx context.Context, input string, stdin io.Reader, stdout io.Writer, opts *options, logger *slog.Logger) error {
	file, err := readInput(ctx, input, stdin)
	if err != nil {
		return err
	}
	logger.Debug("loaded page file", "input", input, "pages", len(file.Pages), "title", file.Title)

	merged, warnings, err := tablestitch.FromPages(file.Pages).
		WithLogger(logger).
		WithDetector(opts.detector).
		Pages(opts.pages...).
		Merged()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	for _, w := range warnings {
		logger.Warn(w.Message, "page", w.Page, "kind", w.Kind.String())
	}

	result := &pagefile.File{
		Title:    file.Title,
		Metadata: file.Metadata,
		Preface:  file.Preface,
		Pages:    make([]tables.PageContent, len(merged)),
	}
	for i, mp := range merged {
		result.Pages[i] = tables.PageContent{Number: mp.Number, Text: mp.Text}
	}

	return writeOutput(opts, stdout, result)
}

// readInput loads a page file, or decodes standard input for "-".
func readInput(ctx context.Context, input string, stdin io.Reader) (*pagefile.File, error) {
	if input != "-" {
		return pagefile.Load(ctx, input)
	}

	file, err := pagefile.Decode(stdin, format.Unknown)
	if err != nil {
		return nil, fmt.Errorf("stdin: %w", err)
	}
	return file, nil
}

func writeOutput(opts *options, stdout io.Writer, file *pagefile.File) error {
	var encodeOpts []pagefile.EncodeOption
	if !opts.separators {
		encodeOpts = append(encodeOpts, pagefile.WithoutSeparators())
	}

	if opts.output == "" || opts.output == "-" {
		return pagefile.Encode(stdout, file, opts.format, encodeOpts...)
	}

	out, err := os.Create(opts.output)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	if err := pagefile.Encode(out, file, opts.format, encodeOpts...); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}
