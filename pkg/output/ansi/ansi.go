// Package ansi exports presentations as terminal text rendered with glamour,
// suitable for `less -R` or pasting into a terminal session.
package ansi

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/deckout/pkg/errors"
	"github.com/arthur-debert/deckout/pkg/options"
	"github.com/arthur-debert/deckout/pkg/output"
	"github.com/arthur-debert/deckout/pkg/presentation"
	"github.com/charmbracelet/glamour"
)

// Name is the format name
const Name = "ansi"

// Schema returns the options of the ansi format
func Schema() options.Schema {
	return options.Schema{
		{Name: "style", Default: options.Text("dark"), Help: "glamour style: dark, light, ascii, dracula, ..."},
		{Name: "width", Default: options.Int(80), Help: "Word wrap width"},
		{Name: "colors", Default: options.Bool(true), Help: "Emit ANSI colors; false forces the notty style"},
		{Name: "rule", Default: options.Text("─"), Help: "Character repeated to separate slides"},
	}
}

// Descriptor returns the ansi format descriptor
func Descriptor() output.Descriptor {
	return output.Descriptor{
		Name:        Name,
		Description: "Terminal text with ANSI styling, one block per slide",
		Extension:   ".ans",
		Schema:      Schema(),
		New:         func() output.Formatter { return &Formatter{} },
	}
}

// Formatter renders slides through glamour
type Formatter struct{}

// Render writes the styled slides to path
func (f *Formatter) Render(pres *presentation.Presentation, path string, resolved options.Resolved) error {
	settings := Schema().Effective(Name, resolved)

	style := settings.Text("style")
	if !settings.Bool("colors") {
		style = "notty"
	}
	width := int(settings.Int("width"))

	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(style)}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "cannot create ansi renderer with style %q", style).
			WithDetail("style", style)
	}

	rule := strings.Repeat(settings.Text("rule"), max(width, 1))

	var b strings.Builder
	for i, s := range pres.Slides {
		if i > 0 {
			b.WriteString(rule)
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "[%d/%d]\n", s.Number, len(pres.Slides))

		out, err := renderer.Render(s.Markdown)
		if err != nil {
			return errors.Wrapf(err, errors.ErrRender, "cannot render slide %d", s.Number).
				WithDetail("slide", s.Number)
		}
		b.WriteString(out)
	}

	return output.WriteArtifact(path, []byte(b.String()))
}
