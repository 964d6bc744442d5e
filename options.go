package tablestitch

import (
	"log/slog"

	"github.com/tsawler/tablestitch/tables"
)

// stitchOptions holds configuration for a Stitcher.
type stitchOptions struct {
	// Page selection (1-indexed positions, stored as given)
	pages []int

	// Rendering
	excludeTitle      bool
	excludeSeparators bool

	detector tables.Detector
	logger   *slog.Logger
}

// defaultOptions returns the default stitching options.
func defaultOptions() stitchOptions {
	return stitchOptions{
		pages:    nil, // nil means all pages
		detector: tables.NewPipeDetector(),
		logger:   slog.New(slog.DiscardHandler),
	}
}

// clone creates a deep copy of stitchOptions.
func (o stitchOptions) clone() stitchOptions {
	newOpts := stitchOptions{
		excludeTitle:      o.excludeTitle,
		excludeSeparators: o.excludeSeparators,
		detector:          o.detector,
		logger:            o.logger,
	}

	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}
