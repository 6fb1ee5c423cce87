// Package dump exports the parsed presentation model itself, as JSON or
// MessagePack, for tooling that wants the slides without any styling.
package dump

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/arthur-debert/deckout/pkg/errors"
	"github.com/arthur-debert/deckout/pkg/logging"
	"github.com/arthur-debert/deckout/pkg/options"
	"github.com/arthur-debert/deckout/pkg/output"
	"github.com/arthur-debert/deckout/pkg/presentation"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	// JSONName is the json format name
	JSONName = "json"
	// MsgpackName is the msgpack format name
	MsgpackName = "msgpack"
)

// Fields lists the presentation fields a dump may contain
var Fields = []string{"meta", "slides", "source"}

func defaultFields() options.Value {
	return options.List("meta", "slides")
}

// JSONSchema returns the options of the json format
func JSONSchema() options.Schema {
	return options.Schema{
		{Name: "indent", Default: options.Int(2), Help: "Spaces of indentation; 0 writes compact JSON"},
		{Name: "fields", Default: defaultFields(), Help: "Fields to include: " + strings.Join(Fields, ", ")},
	}
}

// MsgpackSchema returns the options of the msgpack format
func MsgpackSchema() options.Schema {
	return options.Schema{
		{Name: "compact_ints", Default: options.Bool(true), Help: "Encode integers in the smallest representation"},
		{Name: "fields", Default: defaultFields(), Help: "Fields to include: " + strings.Join(Fields, ", ")},
	}
}

// JSONDescriptor returns the json format descriptor
func JSONDescriptor() output.Descriptor {
	return output.Descriptor{
		Name:        JSONName,
		Description: "Presentation model as JSON",
		Extension:   ".json",
		Schema:      JSONSchema(),
		New:         func() output.Formatter { return output.FormatterFunc(renderJSON) },
	}
}

// MsgpackDescriptor returns the msgpack format descriptor
func MsgpackDescriptor() output.Descriptor {
	return output.Descriptor{
		Name:        MsgpackName,
		Description: "Presentation model as MessagePack",
		Extension:   ".msgpack",
		Schema:      MsgpackSchema(),
		New:         func() output.Formatter { return output.FormatterFunc(renderMsgpack) },
	}
}

// Select builds the map of requested fields. Unknown field names are
// logged and left out.
func Select(pres *presentation.Presentation, fields []string) map[string]interface{} {
	logger := logging.GetLogger("output.dump")
	data := make(map[string]interface{}, len(fields))
	for _, field := range fields {
		switch field {
		case "meta":
			data[field] = pres.Meta
		case "slides":
			data[field] = pres.Slides
		case "source":
			data[field] = pres.Source
		case "":
		default:
			logger.Warn().Str("field", field).Strs("valid", Fields).Msg("Ignoring unknown dump field")
		}
	}
	return data
}

func renderJSON(pres *presentation.Presentation, path string, resolved options.Resolved) error {
	settings := JSONSchema().Effective(JSONName, resolved)
	data := Select(pres, settings.List("fields"))

	var (
		out []byte
		err error
	)
	if indent := int(settings.Int("indent")); indent > 0 {
		out, err = json.MarshalIndent(data, "", strings.Repeat(" ", indent))
	} else {
		out, err = json.Marshal(data)
	}
	if err != nil {
		return errors.Wrap(err, errors.ErrRender, "cannot encode presentation as json")
	}
	return output.WriteArtifact(path, append(out, '\n'))
}

func renderMsgpack(pres *presentation.Presentation, path string, resolved options.Resolved) error {
	settings := MsgpackSchema().Effective(MsgpackName, resolved)
	data := Select(pres, settings.List("fields"))

	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.UseCompactInts(settings.Bool("compact_ints"))
	enc.SetSortMapKeys(true)
	if err := enc.Encode(data); err != nil {
		return errors.Wrap(err, errors.ErrRender, "cannot encode presentation as msgpack")
	}
	return output.WriteArtifact(path, buf.Bytes())
}
