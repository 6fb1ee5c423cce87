package output_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arthur-debert/deckout/pkg/errors"
	"github.com/arthur-debert/deckout/pkg/options"
	"github.com/arthur-debert/deckout/pkg/output"
	"github.com/arthur-debert/deckout/pkg/presentation"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingFormatter captures what the dispatcher hands to a formatter
type recordingFormatter struct {
	calls    int
	pres     *presentation.Presentation
	path     string
	resolved options.Resolved
}

func (f *recordingFormatter) Render(pres *presentation.Presentation, path string, resolved options.Resolved) error {
	f.calls++
	f.pres = pres
	f.path = path
	f.resolved = resolved
	return nil
}

func descriptor(name string, schema options.Schema, f output.Formatter) output.Descriptor {
	return output.Descriptor{
		Name:      name,
		Extension: "." + name,
		Schema:    schema,
		New:       func() output.Formatter { return f },
	}
}

func htmlSchema() options.Schema {
	return options.Schema{
		{Name: "flag", Default: options.Bool(false)},
		{Name: "count", Default: options.Int(0)},
		{Name: "items", Default: options.List()},
		{Name: "title", Default: options.Text("deck")},
		{Name: "scale", Default: options.Float(1)},
	}
}

func newTestRegistry(t *testing.T) (*output.Registry, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	reg := output.NewRegistry(output.WithLogger(zerolog.New(&buf).Level(zerolog.WarnLevel)))
	reg.Register(descriptor("html", htmlSchema(), &recordingFormatter{}))
	reg.Register(descriptor("gif", options.Schema{
		{Name: "fps", Default: options.Int(10)},
		{Name: "keep_frames", Default: options.Bool(false)},
	}, &recordingFormatter{}))
	reg.Register(descriptor("ansi", options.Schema{
		{Name: "width", Default: options.Int(80)},
	}, &recordingFormatter{}))
	return reg, &buf
}

func warnings(buf *bytes.Buffer) []string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func TestLookup(t *testing.T) {
	reg, _ := newTestRegistry(t)

	d, err := reg.Lookup("gif")
	require.NoError(t, err)
	assert.Equal(t, "gif", d.Name)

	_, err = reg.Lookup("pdf")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownFormat))
	details := errors.GetErrorDetails(err)
	assert.Equal(t, "pdf", details["format"])
	assert.Equal(t, []string{"ansi", "gif", "html"}, details["valid"])
}

func TestListNamesIsSorted(t *testing.T) {
	reg, _ := newTestRegistry(t)
	assert.Equal(t, []string{"ansi", "gif", "html"}, reg.ListNames())
}

func TestListOptions(t *testing.T) {
	reg, _ := newTestRegistry(t)

	keys := reg.ListOptions()
	assert.Equal(t, []string{
		"html.flag", "html.count", "html.items", "html.title", "html.scale",
		"gif.fps", "gif.keep_frames",
		"ansi.width",
	}, keys)

	seen := make(map[string]bool)
	for _, k := range keys {
		assert.False(t, seen[k], "duplicate key %s", k)
		seen[k] = true
	}
}

func TestRegisterOverwrites(t *testing.T) {
	reg, _ := newTestRegistry(t)

	reg.Register(descriptor("gif", options.Schema{
		{Name: "loop", Default: options.Bool(true)},
	}, &recordingFormatter{}))

	assert.Equal(t, []string{"ansi", "gif", "html"}, reg.ListNames())
	assert.Equal(t, []string{
		"html.flag", "html.count", "html.items", "html.title", "html.scale",
		"gif.loop",
		"ansi.width",
	}, reg.ListOptions())

	_, err := reg.GetDefault("gif", "fps")
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownOption))
}

func TestRegisterRejectsBrokenDescriptors(t *testing.T) {
	reg := output.NewRegistry()

	assert.Panics(t, func() {
		reg.Register(output.Descriptor{Name: "nofactory"})
	})
	assert.Panics(t, func() {
		reg.Register(descriptor("", nil, &recordingFormatter{}))
	})
	assert.Panics(t, func() {
		reg.Register(descriptor("bad", options.Schema{{Name: "x"}}, &recordingFormatter{}))
	})
}

func TestGetDefault(t *testing.T) {
	reg, _ := newTestRegistry(t)

	for _, d := range reg.Formats() {
		for _, opt := range d.Schema {
			first, err := reg.GetDefault(d.Name, opt.Name)
			require.NoError(t, err)
			second, err := reg.GetDefault(d.Name, opt.Name)
			require.NoError(t, err)

			assert.True(t, opt.Default.Equal(first), "%s.%s", d.Name, opt.Name)
			assert.Equal(t, first.Kind(), second.Kind())
		}
	}
}

func TestGetDefaultErrors(t *testing.T) {
	reg, _ := newTestRegistry(t)

	_, err := reg.GetDefault("pdf", "dpi")
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownFormat))

	_, err = reg.GetDefault("html", "nonexistent")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownOption))
	details := errors.GetErrorDetails(err)
	assert.Equal(t, "html", details["format"])
	assert.Equal(t, "nonexistent", details["option"])
	assert.Equal(t, []string{"flag", "count", "items", "title", "scale"}, details["valid"])
	assert.Contains(t, err.Error(), "flag, count, items, title, scale")
}
