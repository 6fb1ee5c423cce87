// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/deckout/pkg/ui/display"
	"github.com/arthur-debert/deckout/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
)

// Renderer provides styled terminal output
type Renderer struct {
	output io.Writer
	styles *styles.Styles
}

// New creates a new terminal renderer with the default styles
func New(w io.Writer) (*Renderer, error) {
	return NewWithStyles(w, styles.Default()), nil
}

// NewWithStyles creates a terminal renderer using s
func NewWithStyles(w io.Writer, s *styles.Styles) *Renderer {
	return &Renderer{output: w, styles: s}
}

// RenderResult renders any result type with terminal styling
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.FormatList:
		return r.renderFormats(v)
	case *display.OptionList:
		return r.renderOptions(v.Options, "")
	case *display.ExportResult:
		_, err := fmt.Fprintf(r.output, "%s %s → %s %s\n",
			r.styles.Render("Success", "Exported"),
			r.styles.Render("FilePath", v.Source),
			r.styles.Render("FilePath", v.Path),
			r.styles.Render("Muted", fmt.Sprintf("(%s, %d slides)", v.Format, v.Slides)))
		return err
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderFormats(list *display.FormatList) error {
	for i, f := range list.Formats {
		if i > 0 {
			if _, err := fmt.Fprintln(r.output); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(r.output, "%s %s  %s\n",
			r.styles.Render("FormatName", f.Name),
			r.styles.Render("Extension", f.Extension),
			r.styles.Render("Description", f.Description)); err != nil {
			return err
		}
		if err := r.renderOptions(f.Options, "  "); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderOptions(opts []display.OptionSummary, indent string) error {
	keyWidth, defaultWidth := 0, 0
	for _, o := range opts {
		keyWidth = max(keyWidth, lipgloss.Width(o.Key))
		defaultWidth = max(defaultWidth, lipgloss.Width(o.Default))
	}

	for _, o := range opts {
		line := fmt.Sprintf("%s%s = %s %s",
			indent,
			r.styles.Render("OptionKey", pad(o.Key, keyWidth)),
			r.styles.Render("Default", pad(o.Default, defaultWidth)),
			r.styles.Render("Kind", pad(o.Kind, 5)))
		if o.Help != "" {
			line += "  " + r.styles.Render("Help", o.Help)
		}
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}
	return nil
}

// pad right-pads s to width terminal cells
func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "%s %v\n", r.styles.Render("Error", "Error:"), err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
