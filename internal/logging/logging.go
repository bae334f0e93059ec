// Package logging creates the slog loggers of the commands.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
)

// Format is an output format.
type Format string

const (
	FormatAuto   Format = "auto"
	FormatText   Format = "text"
	FormatLogfmt Format = "logfmt"
	FormatJSON   Format = "json"
)

// ParseFormat parses a format name. The empty string is FormatAuto.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "":
		return FormatAuto, nil
	case FormatAuto, FormatText, FormatLogfmt, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown log format %q", s)
}

// isTerminal returns whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// New returns a logger writing to w. FormatAuto writes text to a terminal and
// logfmt otherwise.
func New(w io.Writer, level slog.Level, format Format) *slog.Logger {
	opts := log.Options{
		Level:           log.Level(level),
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	}
	switch format {
	case FormatText:
		opts.Formatter = log.TextFormatter
	case FormatLogfmt:
		opts.Formatter = log.LogfmtFormatter
	case FormatJSON:
		opts.Formatter = log.JSONFormatter
	default:
		if isTerminal(w) {
			opts.Formatter = log.TextFormatter
			opts.TimeFormat = time.Kitchen
		} else {
			opts.Formatter = log.LogfmtFormatter
		}
	}
	return slog.New(log.NewWithOptions(w, opts))
}
