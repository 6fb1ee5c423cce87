package ui

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/deckout/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how command output is rendered
type Format int

const (
	// FormatAuto picks terminal or text depending on where output goes
	FormatAuto Format = iota
	// FormatTerminal is styled, colored output
	FormatTerminal
	// FormatText is unstyled output
	FormatText
	// FormatJSON is machine-readable output
	FormatJSON
)

// formatNames maps each format to its canonical name followed by aliases
var formatNames = []struct {
	format Format
	names  []string
}{
	{FormatAuto, []string{"auto", ""}},
	{FormatTerminal, []string{"term", "terminal"}},
	{FormatText, []string{"text", "plain"}},
	{FormatJSON, []string{"json"}},
}

func (f Format) String() string {
	for _, entry := range formatNames {
		if entry.format == f {
			return entry.names[0]
		}
	}
	return "unknown"
}

// Formats returns the accepted --output-style values
func Formats() []string {
	names := make([]string, 0, len(formatNames))
	for _, entry := range formatNames {
		names = append(names, entry.names[0])
	}
	return names
}

// ParseFormat resolves a style name or alias, ignoring case
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, entry := range formatNames {
		for _, alias := range entry.names {
			if alias == name {
				return entry.format, nil
			}
		}
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s).
		WithDetail("valid", Formats())
}

// fdWriter is implemented by *os.File and anything else backed by a descriptor
type fdWriter interface {
	io.Writer
	Fd() uintptr
}

// DetectFormat resolves FormatAuto for w. NO_COLOR and non-tty descriptors
// give text; writers without a descriptor, such as buffers, get terminal
// styling.
func DetectFormat(w io.Writer) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	f, ok := w.(fdWriter)
	if !ok {
		return FormatTerminal
	}
	if fd := f.Fd(); !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return FormatText
	}

	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
