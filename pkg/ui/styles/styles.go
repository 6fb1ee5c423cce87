// Package styles maps semantic names to lipgloss styles for deckout's
// terminal output.
//
// Styles are declared in styles.yaml with adaptive colors that follow the
// terminal's light or dark background:
//
//	colors:
//	  accent: {light: "#5A56E0", dark: "#7571F9"}
//	styles:
//	  Header: {bold: true, foreground: accent}
package styles

import (
	_ "embed"
	"os"
	"sort"
	"sync"

	"github.com/arthur-debert/deckout/pkg/errors"
	"github.com/arthur-debert/deckout/pkg/logging"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold        bool   `yaml:"bold,omitempty"`
	Italic      bool   `yaml:"italic,omitempty"`
	Underline   bool   `yaml:"underline,omitempty"`
	Foreground  string `yaml:"foreground,omitempty"`
	Background  string `yaml:"background,omitempty"`
	MarginLeft  int    `yaml:"marginLeft,omitempty"`
	PaddingLeft int    `yaml:"paddingLeft,omitempty"`
}

// Config represents the complete styles file
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Styles maps semantic names to lipgloss styles
type Styles struct {
	styles map[string]lipgloss.Style
}

//go:embed styles.yaml
var embeddedStyles []byte

var (
	defaultOnce   sync.Once
	defaultStyles *Styles
)

// Default returns the embedded styles. A broken embedded file degrades to
// unstyled output rather than failing the command.
func Default() *Styles {
	defaultOnce.Do(func() {
		s, err := Parse(embeddedStyles)
		if err != nil {
			logger := logging.GetLogger("styles")
			logger.Warn().Err(err).Msg("Using unstyled output")
			s = &Styles{styles: map[string]lipgloss.Style{}}
		}
		defaultStyles = s
	})
	return defaultStyles
}

// Load reads styles from a YAML file
func Load(path string) (*Styles, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read styles file %s", path).
			WithDetail("path", path)
	}
	return Parse(data)
}

// Parse builds styles from YAML data
func Parse(data []byte) (*Styles, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "failed to parse styles")
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(config.Colors))
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	s := &Styles{styles: make(map[string]lipgloss.Style, len(config.Styles))}
	for name, def := range config.Styles {
		s.styles[name] = buildStyle(def, colors)
	}
	return s, nil
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	// colors may be named or literal
	if def.Foreground != "" {
		if color, ok := colors[def.Foreground]; ok {
			style = style.Foreground(color)
		} else {
			style = style.Foreground(lipgloss.Color(def.Foreground))
		}
	}
	if def.Background != "" {
		if color, ok := colors[def.Background]; ok {
			style = style.Background(color)
		} else {
			style = style.Background(lipgloss.Color(def.Background))
		}
	}

	if def.MarginLeft > 0 {
		style = style.MarginLeft(def.MarginLeft)
	}
	if def.PaddingLeft > 0 {
		style = style.PaddingLeft(def.PaddingLeft)
	}
	return style
}

// Get returns the named style, or an empty style when it is not defined
func (s *Styles) Get(name string) lipgloss.Style {
	if style, ok := s.styles[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Has reports whether name is defined
func (s *Styles) Has(name string) bool {
	_, ok := s.styles[name]
	return ok
}

// Names returns the defined style names, sorted
func (s *Styles) Names() []string {
	names := make([]string, 0, len(s.styles))
	for name := range s.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render applies the named style to text
func (s *Styles) Render(name, text string) string {
	return s.Get(name).Render(text)
}
