// Package html exports presentations as HTML: a standalone document
// ("html") or a bare fragment of slide sections ("html_raw").
package html

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/arthur-debert/deckout/pkg/errors"
	"github.com/arthur-debert/deckout/pkg/options"
	"github.com/arthur-debert/deckout/pkg/output"
	"github.com/arthur-debert/deckout/pkg/presentation"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

const (
	// Name is the standalone document format
	Name = "html"
	// RawName is the fragment format
	RawName = "html_raw"
)

// Schema returns the options of the html format
func Schema() options.Schema {
	return options.Schema{
		{Name: "title", Default: options.Text(""), Help: "Document title; defaults to the deck title"},
		{Name: "theme", Default: options.Text("light"), Help: "Color theme: light or dark"},
		{Name: "width", Default: options.Int(960), Help: "Slide width in pixels"},
		{Name: "height", Default: options.Int(540), Help: "Slide height in pixels"},
		{Name: "scale", Default: options.Float(1.0), Help: "Scale factor applied to every slide"},
		{Name: "stylesheets", Default: options.List(), Help: "Extra stylesheet URLs, comma separated"},
		{Name: "slide_numbers", Default: options.Bool(true), Help: "Show slide numbers"},
	}
}

// RawSchema returns the options of the html_raw format
func RawSchema() options.Schema {
	return options.Schema{
		{Name: "class", Default: options.Text("slide"), Help: "CSS class of each slide section"},
		{Name: "wrap", Default: options.Bool(false), Help: "Wrap the slides in a <div class=\"deck\">"},
		{Name: "separator", Default: options.Text("\n"), Help: "Text placed between slides"},
	}
}

// Descriptor returns the html format descriptor
func Descriptor() output.Descriptor {
	return output.Descriptor{
		Name:        Name,
		Description: "Standalone HTML document with one section per slide",
		Extension:   ".html",
		Schema:      Schema(),
		New:         func() output.Formatter { return NewDocument() },
	}
}

// RawDescriptor returns the html_raw format descriptor
func RawDescriptor() output.Descriptor {
	return output.Descriptor{
		Name:        RawName,
		Description: "HTML fragment of slide sections, for embedding",
		Extension:   ".html",
		Schema:      RawSchema(),
		New:         func() output.Formatter { return NewFragment() },
	}
}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
	)
}

// renderedSlide is a slide converted to HTML
type renderedSlide struct {
	Number int
	Title  string
	Body   template.HTML
}

func convertSlides(md goldmark.Markdown, pres *presentation.Presentation) ([]renderedSlide, error) {
	slides := make([]renderedSlide, 0, len(pres.Slides))
	for _, s := range pres.Slides {
		var buf bytes.Buffer
		if err := md.Convert([]byte(s.Markdown), &buf); err != nil {
			return nil, errors.Wrapf(err, errors.ErrRender, "cannot convert slide %d", s.Number).
				WithDetail("slide", s.Number)
		}
		slides = append(slides, renderedSlide{
			Number: s.Number,
			Title:  s.Title,
			Body:   template.HTML(buf.String()),
		})
	}
	return slides, nil
}

// Fragment renders html_raw output
type Fragment struct {
	md goldmark.Markdown
}

// NewFragment creates an html_raw formatter
func NewFragment() *Fragment {
	return &Fragment{md: newMarkdown()}
}

// Render writes the slide sections to path
func (f *Fragment) Render(pres *presentation.Presentation, path string, resolved options.Resolved) error {
	settings := RawSchema().Effective(RawName, resolved)

	slides, err := convertSlides(f.md, pres)
	if err != nil {
		return err
	}

	class := template.HTMLEscapeString(settings.Text("class"))
	sections := make([]string, len(slides))
	for i, s := range slides {
		sections[i] = fmt.Sprintf("<section class=\"%s\" id=\"slide-%d\">\n%s</section>", class, s.Number, s.Body)
	}

	body := strings.Join(sections, settings.Text("separator"))
	if settings.Bool("wrap") {
		body = "<div class=\"deck\">\n" + body + "\n</div>"
	}
	return output.WriteArtifact(path, []byte(body+"\n"))
}
