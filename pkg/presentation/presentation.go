// Package presentation parses markdown slide decks into the in-memory model
// that output formats render.
//
// A deck may start with a YAML front matter block delimited by "---" lines.
// Slides are separated by "---" lines outside fenced code blocks; a deck
// without separators is split on its shallowest heading level instead.
package presentation

import (
	"os"
	"strings"

	"github.com/arthur-debert/deckout/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Meta holds the deck-level front matter
type Meta struct {
	Title  string                 `yaml:"title" json:"title" msgpack:"title"`
	Author string                 `yaml:"author" json:"author" msgpack:"author"`
	Date   string                 `yaml:"date" json:"date" msgpack:"date"`
	Extra  map[string]interface{} `yaml:",inline" json:"extra,omitempty" msgpack:"extra,omitempty"`
}

// Slide is a single slide's markdown source
type Slide struct {
	Number   int    `json:"number" msgpack:"number"`
	Title    string `json:"title" msgpack:"title"`
	Markdown string `json:"markdown" msgpack:"markdown"`
}

// Presentation is a parsed deck
type Presentation struct {
	Meta   Meta    `json:"meta" msgpack:"meta"`
	Slides []Slide `json:"slides" msgpack:"slides"`
	Source string  `json:"source,omitempty" msgpack:"source,omitempty"`
}

// Load reads and parses the deck at path
func Load(path string) (*Presentation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read presentation %s", path).
			WithDetail("path", path)
	}

	pres, err := Parse(data)
	if err != nil {
		return nil, err
	}
	pres.Source = path
	return pres, nil
}

// Parse parses a markdown deck
func Parse(data []byte) (*Presentation, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	lines := strings.Split(text, "\n")

	pres := &Presentation{}

	body, front, hasFront := splitFrontMatter(lines)
	if hasFront {
		if err := yaml.Unmarshal([]byte(strings.Join(front, "\n")), &pres.Meta); err != nil {
			return nil, errors.Wrap(err, errors.ErrPresentationParse, "invalid front matter")
		}
	}

	chunks := splitOnSeparators(body)
	if len(chunks) == 1 {
		chunks = splitOnHeadings(body)
	}

	for _, chunk := range chunks {
		md := strings.TrimSpace(strings.Join(chunk, "\n"))
		if md == "" {
			continue
		}
		pres.Slides = append(pres.Slides, Slide{
			Number:   len(pres.Slides) + 1,
			Title:    firstHeading(chunk),
			Markdown: md,
		})
	}

	if pres.Meta.Title == "" && len(pres.Slides) > 0 {
		pres.Meta.Title = pres.Slides[0].Title
	}

	return pres, nil
}

// Title returns the deck title, falling back to fallback when none is set
func (p *Presentation) Title(fallback string) string {
	if p.Meta.Title != "" {
		return p.Meta.Title
	}
	return fallback
}

func splitFrontMatter(lines []string) (body, front []string, ok bool) {
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return lines, nil, false
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return lines[i+1:], lines[1:i], true
		}
	}
	return lines, nil, false
}

func splitOnSeparators(lines []string) [][]string {
	var chunks [][]string
	var current []string
	var fence string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if f := fenceMarker(trimmed); f != "" {
			switch {
			case fence == "":
				fence = f
			case strings.HasPrefix(trimmed, fence):
				fence = ""
			}
		}
		if fence == "" && trimmed == "---" {
			chunks = append(chunks, current)
			current = nil
			continue
		}
		current = append(current, line)
	}
	return append(chunks, current)
}

func splitOnHeadings(lines []string) [][]string {
	level := 0
	inFence := false
	for _, line := range lines {
		if fenceMarker(strings.TrimSpace(line)) != "" {
			inFence = !inFence
			continue
		}
		if l := headingLevel(line); !inFence && l > 0 && (level == 0 || l < level) {
			level = l
		}
	}
	if level == 0 {
		return [][]string{lines}
	}

	var chunks [][]string
	var current []string
	inFence = false
	for _, line := range lines {
		if fenceMarker(strings.TrimSpace(line)) != "" {
			inFence = !inFence
		}
		if !inFence && headingLevel(line) == level && strings.TrimSpace(strings.Join(current, "")) != "" {
			chunks = append(chunks, current)
			current = nil
		}
		current = append(current, line)
	}
	return append(chunks, current)
}

func fenceMarker(trimmed string) string {
	for _, f := range []string{"```", "~~~"} {
		if strings.HasPrefix(trimmed, f) {
			return f
		}
	}
	return ""
}

func headingLevel(line string) int {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n == 0 || n > 6 || (n < len(line) && line[n] != ' ') {
		return 0
	}
	return n
}

func firstHeading(lines []string) string {
	inFence := false
	for _, line := range lines {
		if fenceMarker(strings.TrimSpace(line)) != "" {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		if l := headingLevel(line); l > 0 {
			return strings.TrimSpace(line[l:])
		}
	}
	return ""
}
