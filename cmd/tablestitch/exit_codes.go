package main

import (
	"errors"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/tsawler/tablestitch/pagefile"
)

// Exit codes follow Unix conventions: 0=success, 1=general, 2=usage.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config or input
	ExitIO      = 3 // File not found, permission denied, write failure
)

// ErrUsage marks command line mistakes that are not flag parse errors.
var ErrUsage = errors.New("usage")

// ErrWriteOutput is returned when the result cannot be written.
var ErrWriteOutput = errors.New("failed to write output")

// exitCodeFor returns the exit code for an error. It uses errors.Is, so
// callers must wrap with %w.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/input errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, flag.ErrHelp) ||
		errors.Is(err, ErrConfigNotFound) ||
		errors.Is(err, ErrConfigParse) ||
		errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrInvalidLogFormat) ||
		errors.Is(err, pagefile.ErrEmptyInput) ||
		errors.Is(err, pagefile.ErrInputTooLarge) ||
		errors.Is(err, pagefile.ErrUnsupportedFormat) {
		return ExitUsage
	}

	return ExitGeneral
}
