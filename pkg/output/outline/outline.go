// Package outline exports the slide structure of a presentation as an
// OPML outline, which outliners and mind-mapping tools can import.
package outline

import (
	"fmt"

	"github.com/arthur-debert/deckout/pkg/errors"
	"github.com/arthur-debert/deckout/pkg/options"
	"github.com/arthur-debert/deckout/pkg/output"
	"github.com/arthur-debert/deckout/pkg/presentation"
	"github.com/beevik/etree"
)

// Name is the format name
const Name = "outline"

// Schema returns the options of the outline format
func Schema() options.Schema {
	return options.Schema{
		{Name: "title", Default: options.Text(""), Help: "Outline title; defaults to the deck title"},
		{Name: "indent", Default: options.Int(2), Help: "Spaces per nesting level; 0 writes a single line"},
		{Name: "include_body", Default: options.Bool(false), Help: "Attach each slide's markdown as a note"},
	}
}

// Descriptor returns the outline format descriptor
func Descriptor() output.Descriptor {
	return output.Descriptor{
		Name:        Name,
		Description: "OPML outline of slide titles",
		Extension:   ".opml",
		Schema:      Schema(),
		New:         func() output.Formatter { return &Formatter{} },
	}
}

// Formatter writes OPML documents
type Formatter struct{}

// Render writes the outline of pres to path
func (f *Formatter) Render(pres *presentation.Presentation, path string, resolved options.Resolved) error {
	settings := Schema().Effective(Name, resolved)

	doc := Build(pres, settings)

	data, err := doc.WriteToBytes()
	if err != nil {
		return errors.Wrap(err, errors.ErrRender, "cannot serialize outline")
	}
	return output.WriteArtifact(path, data)
}

// Build creates the OPML document for pres
func Build(pres *presentation.Presentation, settings options.Settings) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	opml := doc.CreateElement("opml")
	opml.CreateAttr("version", "2.0")

	title := settings.Text("title")
	if title == "" {
		title = pres.Title("Presentation")
	}

	head := opml.CreateElement("head")
	head.CreateElement("title").SetText(title)
	if pres.Meta.Author != "" {
		head.CreateElement("ownerName").SetText(pres.Meta.Author)
	}
	if pres.Meta.Date != "" {
		head.CreateElement("dateCreated").SetText(pres.Meta.Date)
	}

	body := opml.CreateElement("body")
	for _, s := range pres.Slides {
		item := body.CreateElement("outline")
		text := s.Title
		if text == "" {
			text = fmt.Sprintf("Slide %d", s.Number)
		}
		item.CreateAttr("text", text)
		if settings.Bool("include_body") {
			item.CreateAttr("_note", s.Markdown)
		}
	}

	if indent := int(settings.Int("indent")); indent > 0 {
		doc.Indent(indent)
	} else {
		doc.Indent(etree.NoIndent)
	}
	return doc
}
