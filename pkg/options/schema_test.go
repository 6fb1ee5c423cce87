package options_test

import (
	"testing"

	"github.com/arthur-debert/deckout/pkg/errors"
	"github.com/arthur-debert/deckout/pkg/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() options.Schema {
	return options.Schema{
		{Name: "title", Default: options.Text("")},
		{Name: "width", Default: options.Int(960)},
		{Name: "scale", Default: options.Float(1)},
		{Name: "numbers", Default: options.Bool(true)},
		{Name: "stylesheets", Default: options.List()},
	}
}

func TestSchemaLookup(t *testing.T) {
	schema := testSchema()

	opt, ok := schema.Lookup("width")
	require.True(t, ok)
	assert.Equal(t, options.KindInt, opt.Kind())

	_, ok = schema.Lookup("height")
	assert.False(t, ok)

	assert.Equal(t, []string{"title", "width", "scale", "numbers", "stylesheets"}, schema.Names())
}

func TestSchemaValidate(t *testing.T) {
	assert.NoError(t, testSchema().Validate())

	assert.Error(t, options.Schema{{Name: "", Default: options.Int(1)}}.Validate())
	assert.Error(t, options.Schema{{Name: "x"}}.Validate())
	assert.Error(t, options.Schema{
		{Name: "x", Default: options.Int(1)},
		{Name: "x", Default: options.Int(2)},
	}.Validate())
}

func TestSchemaEffective(t *testing.T) {
	resolved := options.Resolved{
		"html.width":   options.Int(1280),
		"html.numbers": options.Bool(false),
		"html.bogus":   options.Int(1),
		"ansi.width":   options.Int(40),
		"html.scale":   options.Text("wrong kind"),
	}

	settings := testSchema().Effective("html", resolved)

	assert.Len(t, settings, 5)
	assert.Equal(t, int64(1280), settings.Int("width"))
	assert.False(t, settings.Bool("numbers"))
	assert.Equal(t, 1.0, settings.Float("scale"))
	assert.Equal(t, "", settings.Text("title"))
	assert.Empty(t, settings.List("stylesheets"))
	_, ok := settings["bogus"]
	assert.False(t, ok)
}

func TestSplitToken(t *testing.T) {
	tests := []struct {
		input  string
		format string
		option string
		raw    interface{}
	}{
		{input: "html.width=1280", format: "html", option: "width", raw: "1280"},
		{input: "html.numbers", format: "html", option: "numbers", raw: true},
		{input: "html.title=a=b.c", format: "html", option: "title", raw: "a=b.c"},
		{input: "html.title=", format: "html", option: "title", raw: ""},
		{input: "html.sub.option=x", format: "html", option: "sub.option", raw: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok, err := options.SplitToken(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.format, tok.Format)
			assert.Equal(t, tt.option, tok.Option)
			assert.Equal(t, tt.raw, tok.Raw)
			assert.Equal(t, tt.format+"."+tt.option, tok.Key())
		})
	}
}

func TestSplitTokenErrors(t *testing.T) {
	for _, input := range []string{"width=3", "nodot", ".width=3", "html.=3", ""} {
		t.Run(input, func(t *testing.T) {
			_, err := options.SplitToken(input)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)
		})
	}
}
