// Package json writes command results as indented JSON, one document per call
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/deckout/pkg/errors"
)

type errorPayload struct {
	Error   string                 `json:"error"`
	Code    string                 `json:"code,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

type messagePayload struct {
	Message string `json:"message"`
}

// Renderer encodes results for scripts and other tools
type Renderer struct {
	enc *json.Encoder
}

// New creates a JSON renderer writing to w
func New(w io.Writer) (*Renderer, error) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &Renderer{enc: enc}, nil
}

// RenderResult encodes result as is; display types carry their own tags
func (r *Renderer) RenderResult(result interface{}) error {
	return r.enc.Encode(result)
}

// RenderError encodes the error message, plus code and details for coded errors
func (r *Renderer) RenderError(err error) error {
	payload := errorPayload{Error: err.Error()}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		payload.Code = string(code)
		payload.Details = errors.GetErrorDetails(err)
	}
	return r.enc.Encode(payload)
}

func (r *Renderer) RenderMessage(msg string) error {
	return r.enc.Encode(messagePayload{Message: msg})
}
