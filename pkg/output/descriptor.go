package output

import (
	"github.com/arthur-debert/deckout/pkg/options"
	"github.com/arthur-debert/deckout/pkg/presentation"
)

// Formatter writes a presentation to path. Resolved holds only the options
// the user set explicitly; formatters fill in the rest from their schema
// (see options.Schema.Effective).
type Formatter interface {
	Render(pres *presentation.Presentation, path string, resolved options.Resolved) error
}

// FormatterFunc adapts a function to the Formatter interface
type FormatterFunc func(pres *presentation.Presentation, path string, resolved options.Resolved) error

// Render calls f
func (f FormatterFunc) Render(pres *presentation.Presentation, path string, resolved options.Resolved) error {
	return f(pres, path, resolved)
}

// Descriptor declares an output format
type Descriptor struct {
	// Name is the unique format identifier used in "-f" and option keys
	Name string
	// Description is a one-line summary for listings
	Description string
	// Extension is the conventional file extension, including the dot
	Extension string
	// Schema lists the options the format accepts, in display order
	Schema options.Schema
	// New creates a formatter for a single export
	New func() Formatter
}

// OptionKeys returns the fully-qualified keys of every declared option
func (d Descriptor) OptionKeys() []string {
	keys := make([]string, len(d.Schema))
	for i, opt := range d.Schema {
		keys[i] = options.Key(d.Name, opt.Name)
	}
	return keys
}
