package html

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/arthur-debert/deckout/pkg/errors"
	"github.com/arthur-debert/deckout/pkg/logging"
	"github.com/arthur-debert/deckout/pkg/options"
	"github.com/arthur-debert/deckout/pkg/output"
	"github.com/arthur-debert/deckout/pkg/presentation"
	"github.com/yuin/goldmark"
)

type theme struct {
	Background string
	Foreground string
	SlideBG    string
	Accent     string
}

var themes = map[string]theme{
	"light": {Background: "#e8e8e8", Foreground: "#1d1d1d", SlideBG: "#ffffff", Accent: "#5a56e0"},
	"dark":  {Background: "#101014", Foreground: "#e6e6e6", SlideBG: "#1d1d24", Accent: "#9d99ff"},
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
{{- if .Author}}
<meta name="author" content="{{.Author}}">
{{- end}}
{{- range .Stylesheets}}
<link rel="stylesheet" href="{{.}}">
{{- end}}
<style>
{{.CSS}}
</style>
</head>
<body>
{{- range .Slides}}
<section class="slide" id="slide-{{.Number}}">
{{.Body}}
{{- if $.SlideNumbers}}
<footer class="slide-number">{{.Number}} / {{$.Total}}</footer>
{{- end}}
</section>
{{- end}}
</body>
</html>
`))

type page struct {
	Title        string
	Author       string
	Stylesheets  []string
	CSS          template.CSS
	Slides       []renderedSlide
	SlideNumbers bool
	Total        int
}

// Document renders standalone html output
type Document struct {
	md goldmark.Markdown
}

// NewDocument creates an html formatter
func NewDocument() *Document {
	return &Document{md: newMarkdown()}
}

// Render writes a complete HTML document to path
func (d *Document) Render(pres *presentation.Presentation, path string, resolved options.Resolved) error {
	logger := logging.GetLogger("output.html")
	settings := Schema().Effective(Name, resolved)

	slides, err := convertSlides(d.md, pres)
	if err != nil {
		return err
	}

	themeName := settings.Text("theme")
	th, ok := themes[themeName]
	if !ok {
		logger.Warn().Str("theme", themeName).Msg("Unknown html theme, using light")
		th = themes["light"]
	}

	title := settings.Text("title")
	if title == "" {
		title = pres.Title("Presentation")
	}

	var buf bytes.Buffer
	err = pageTemplate.Execute(&buf, page{
		Title:        title,
		Author:       pres.Meta.Author,
		Stylesheets:  settings.List("stylesheets"),
		CSS:          stylesheet(th, settings),
		Slides:       slides,
		SlideNumbers: settings.Bool("slide_numbers"),
		Total:        len(slides),
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrRender, "cannot render html page")
	}

	logger.Debug().Int("slides", len(slides)).Int("bytes", buf.Len()).Msg("Rendered html document")
	return output.WriteArtifact(path, buf.Bytes())
}

func stylesheet(th theme, settings options.Settings) template.CSS {
	return template.CSS(fmt.Sprintf(`body { margin: 0; padding: 1em 0; background: %s; color: %s; font-family: system-ui, sans-serif; }
.slide { position: relative; box-sizing: border-box; width: %dpx; height: %dpx; margin: 2em auto; padding: 2.5em 3em; overflow: hidden; background: %s; border-radius: 6px; transform: scale(%g); transform-origin: top center; }
.slide h1, .slide h2, .slide h3 { color: %s; }
.slide pre { padding: 0.75em; overflow-x: auto; background: rgba(127, 127, 127, 0.12); }
.slide-number { position: absolute; right: 1.5em; bottom: 1em; font-size: 0.8em; opacity: 0.6; }`,
		th.Background, th.Foreground,
		settings.Int("width"), settings.Int("height"), th.SlideBG, settings.Float("scale"),
		th.Accent))
}
