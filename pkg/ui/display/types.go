// Package display holds the result types deckout's commands hand to a ui
// renderer. They carry only strings so every renderer can print them as is.
package display

import (
	"github.com/arthur-debert/deckout/pkg/options"
	"github.com/arthur-debert/deckout/pkg/output"
)

// OptionSummary describes one option of a format
type OptionSummary struct {
	Key     string `json:"key"`     // "<format>.<option>"
	Name    string `json:"name"`    // bare option name
	Kind    string `json:"kind"`    // "int", "bool", "text", "float" or "list"
	Default string `json:"default"` // default in its printable form
	Help    string `json:"help,omitempty"`
}

// FormatSummary describes one registered output format
type FormatSummary struct {
	Name        string          `json:"name"`
	Extension   string          `json:"extension"`
	Description string          `json:"description"`
	Options     []OptionSummary `json:"options"`
}

// FormatList is the result of `deckout formats`
type FormatList struct {
	Formats []FormatSummary `json:"formats"`
}

// OptionList is the result of `deckout options`
type OptionList struct {
	Options []OptionSummary `json:"options"`
}

// ExportResult is the result of `deckout export`
type ExportResult struct {
	Source string `json:"source"`
	Title  string `json:"title,omitempty"`
	Format string `json:"format"`
	Path   string `json:"path"`
	Slides int    `json:"slides"`
}

// NewFormatSummary summarizes a descriptor
func NewFormatSummary(d output.Descriptor) FormatSummary {
	return FormatSummary{
		Name:        d.Name,
		Extension:   d.Extension,
		Description: d.Description,
		Options:     summarizeOptions(d.Name, d.Schema),
	}
}

// NewFormatList summarizes descriptors, keeping their order
func NewFormatList(descs []output.Descriptor) *FormatList {
	list := &FormatList{Formats: make([]FormatSummary, 0, len(descs))}
	for _, d := range descs {
		list.Formats = append(list.Formats, NewFormatSummary(d))
	}
	return list
}

// NewOptionList flattens the options of descs, formats in the given order
// and options in schema order
func NewOptionList(descs []output.Descriptor) *OptionList {
	list := &OptionList{Options: []OptionSummary{}}
	for _, d := range descs {
		list.Options = append(list.Options, summarizeOptions(d.Name, d.Schema)...)
	}
	return list
}

func summarizeOptions(format string, schema options.Schema) []OptionSummary {
	out := make([]OptionSummary, 0, len(schema))
	for _, opt := range schema {
		out = append(out, OptionSummary{
			Key:     options.Key(format, opt.Name),
			Name:    opt.Name,
			Kind:    opt.Kind().String(),
			Default: opt.Default.Repr(),
			Help:    opt.Help,
		})
	}
	return out
}
