package ui_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/deckout/pkg/errors"
	"github.com/arthur-debert/deckout/pkg/options"
	"github.com/arthur-debert/deckout/pkg/output"
	"github.com/arthur-debert/deckout/pkg/ui"
	"github.com/arthur-debert/deckout/pkg/ui/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDescriptors() []output.Descriptor {
	return []output.Descriptor{
		{
			Name:        "html",
			Description: "Standalone HTML document",
			Extension:   ".html",
			Schema: options.Schema{
				{Name: "title", Default: options.Text(""), Help: "Document title"},
				{Name: "width", Default: options.Int(960)},
			},
		},
		{
			Name:        "json",
			Description: "Presentation dump",
			Extension:   ".json",
			Schema: options.Schema{
				{Name: "fields", Default: options.List("meta", "slides")},
			},
		},
	}
}

func TestNewRenderer(t *testing.T) {
	tests := []struct {
		name        string
		format      ui.Format
		expectError bool
	}{
		{name: "terminal", format: ui.FormatTerminal},
		{name: "text", format: ui.FormatText},
		{name: "json", format: ui.FormatJSON},
		{name: "auto with buffer", format: ui.FormatAuto},
		{name: "invalid format", format: ui.Format(999), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderer, err := ui.NewRenderer(tt.format, &bytes.Buffer{})
			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, renderer)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, renderer)
		})
	}
}

func TestRendererInterface(t *testing.T) {
	for _, format := range []ui.Format{ui.FormatTerminal, ui.FormatText, ui.FormatJSON} {
		t.Run(format.String(), func(t *testing.T) {
			buf := &bytes.Buffer{}
			renderer, err := ui.NewRenderer(format, buf)
			require.NoError(t, err)

			assert.NoError(t, renderer.RenderMessage("test message"))
			assert.NoError(t, renderer.RenderError(assert.AnError))
			assert.NoError(t, renderer.RenderResult(display.NewFormatList(testDescriptors())))
			assert.NoError(t, renderer.RenderResult(map[string]string{"test": "data"}))
			assert.NotEmpty(t, buf.String())
		})
	}
}

func TestTextRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatText, buf)
	require.NoError(t, err)

	t.Run("option list matches describe lines", func(t *testing.T) {
		buf.Reset()
		descs := testDescriptors()
		require.NoError(t, renderer.RenderResult(display.NewOptionList(descs)))

		var want []string
		for _, d := range descs {
			want = append(want, output.Describe(d)...)
		}
		assert.Equal(t, want, splitLines(buf.String()))
	})

	t.Run("format list", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderResult(display.NewFormatList(testDescriptors())))
		out := buf.String()
		assert.Contains(t, out, "html (.html): Standalone HTML document")
		assert.Contains(t, out, `  html.title = ""  [text]  Document title`)
		assert.Contains(t, out, "  json.fields = meta,slides  [list]")
	})

	t.Run("export result", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderResult(&display.ExportResult{
			Source: "talk.md", Format: "html", Path: "talk.html", Slides: 3,
		}))
		assert.Equal(t, "Exported talk.md to talk.html (html, 3 slides)\n", buf.String())
	})

	t.Run("error", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderError(assert.AnError))
		assert.Equal(t, "Error: "+assert.AnError.Error()+"\n", buf.String())
	})
}

func TestTerminalRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatTerminal, buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderResult(display.NewFormatList(testDescriptors())))
	out := buf.String()
	for _, want := range []string{"html", ".html", "Standalone HTML document", "html.title", "Document title", "json.fields", "meta,slides"} {
		assert.Contains(t, out, want)
	}

	buf.Reset()
	require.NoError(t, renderer.RenderResult(&display.ExportResult{Source: "a.md", Path: "a.json", Format: "json", Slides: 1}))
	assert.Contains(t, buf.String(), "Exported")
	assert.Contains(t, buf.String(), "a.json")
}

func TestJSONRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatJSON, buf)
	require.NoError(t, err)

	t.Run("render message", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderMessage("hello world"))

		var result map[string]string
		require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
		assert.Equal(t, "hello world", result["message"])
	})

	t.Run("render plain error", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderError(assert.AnError))

		var result map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
		assert.Equal(t, assert.AnError.Error(), result["error"])
		assert.NotContains(t, result, "code")
	})

	t.Run("render coded error", func(t *testing.T) {
		buf.Reset()
		err := errors.New(errors.ErrUnknownFormat, "unknown").WithDetail("format", "gif")
		require.NoError(t, renderer.RenderError(err))

		var result map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
		assert.Equal(t, "UNKNOWN_FORMAT", result["code"])
		assert.Equal(t, map[string]interface{}{"format": "gif"}, result["details"])
	})

	t.Run("render format list", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderResult(display.NewFormatList(testDescriptors())))

		var result display.FormatList
		require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
		require.Len(t, result.Formats, 2)
		assert.Equal(t, "html", result.Formats[0].Name)
		assert.Equal(t, display.OptionSummary{
			Key: "html.width", Name: "width", Kind: "int", Default: "960",
		}, result.Formats[0].Options[1])
	})
}

func splitLines(s string) []string {
	var lines []string
	for _, line := range bytes.Split(bytes.TrimRight([]byte(s), "\n"), []byte("\n")) {
		lines = append(lines, string(line))
	}
	return lines
}
