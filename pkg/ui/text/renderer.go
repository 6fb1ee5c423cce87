// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/deckout/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.FormatList:
		for _, f := range v.Formats {
			if _, err := fmt.Fprintf(r.output, "%s (%s): %s\n", f.Name, f.Extension, f.Description); err != nil {
				return err
			}
			for _, o := range f.Options {
				if _, err := fmt.Fprintf(r.output, "  %s = %s  [%s]  %s\n", o.Key, o.Default, o.Kind, o.Help); err != nil {
					return err
				}
			}
		}
		return nil
	case *display.OptionList:
		for _, o := range v.Options {
			if _, err := fmt.Fprintf(r.output, "%s = %s\n", o.Key, o.Default); err != nil {
				return err
			}
		}
		return nil
	case *display.ExportResult:
		_, err := fmt.Fprintf(r.output, "Exported %s to %s (%s, %d slides)\n", v.Source, v.Path, v.Format, v.Slides)
		return err
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
