package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/tsawler/tablestitch/format"
	"github.com/tsawler/tablestitch/internal/yamlutil"
)

var (
	ErrConfigNotFound   = errors.New("config file not found")
	ErrConfigParse      = errors.New("failed to parse config")
	ErrInvalidFormat    = errors.New("invalid output format")
	ErrInvalidLogFormat = errors.New("invalid log format")
)

// fileConfig is the YAML config file. Every field is optional; flags given
// on the command line take precedence.
type fileConfig struct {
	Output     string    `yaml:"output"`
	Format     string    `yaml:"format"`
	Pages      []int     `yaml:"pages"`
	Detector   string    `yaml:"detector"`
	Separators *bool     `yaml:"separators"`
	Log        logConfig `yaml:"log"`
}

type logConfig struct {
	Level  string `yaml:"level"` // debug, info, warn or error
	Format string `yaml:"format"`
}

// options is the resolved configuration of one run.
type options struct {
	output     string
	format     format.Format
	pages      []int
	detector   string
	separators bool
	level      slog.Level
	logFormat  string
}

// loadConfig reads a config file. An empty file is a valid, empty config.
func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &fileConfig{}
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}
	return cfg, nil
}

// resolveOptions merges defaults, the config file and the flags, in that
// order of increasing precedence.
func resolveOptions(f *cliFlags) (*options, error) {
	cfg := &fileConfig{}
	if f.config != "" {
		var err error
		if cfg, err = loadConfig(f.config); err != nil {
			return nil, err
		}
	}

	opts := &options{
		output:     cfg.Output,
		pages:      cfg.Pages,
		detector:   "pipe",
		separators: true,
		level:      slog.LevelWarn,
		logFormat:  "text",
	}
	if cfg.Detector != "" {
		opts.detector = cfg.Detector
	}
	if cfg.Separators != nil {
		opts.separators = *cfg.Separators
	}
	if cfg.Log.Level != "" {
		if err := opts.level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
			return nil, fmt.Errorf("%w: log level: %v", ErrConfigParse, err)
		}
	}
	if cfg.Log.Format != "" {
		opts.logFormat = cfg.Log.Format
	}

	formatName := cfg.Format
	if f.changed["output"] {
		opts.output = f.output
	}
	if f.changed["format"] {
		formatName = f.format
	}
	if f.changed["pages"] {
		opts.pages = f.pages
	}
	if f.changed["detector"] {
		opts.detector = f.detector
	}
	if f.changed["no-separators"] {
		opts.separators = !f.noSeparators
	}
	if f.changed["log-format"] {
		opts.logFormat = f.logFormat
	}
	if f.verbose {
		opts.level = slog.LevelDebug
	}
	if f.quiet {
		opts.level = slog.LevelError
	}

	if opts.logFormat != "text" && opts.logFormat != "json" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLogFormat, opts.logFormat)
	}

	switch {
	case formatName != "":
		parsed, ok := format.Parse(formatName)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, formatName)
		}
		opts.format = parsed
	case opts.output != "" && format.Detect(opts.output) != format.Unknown:
		opts.format = format.Detect(opts.output)
	default:
		opts.format = format.Markdown
	}

	return opts, nil
}
