// Command tablestitch merges markdown tables that were split across page
// boundaries in a page file.
//
// Usage:
//
//	tablestitch [flags] <file|->
//
// The input is a JSON or YAML list of pages, or a rendered markdown document
// with "## Page N" separators. The result is written in the same shape, or
// as HTML.
package main

import (
	"context"
	"os"
	"os/signal"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
