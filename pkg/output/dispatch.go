package output

import (
	"github.com/arthur-debert/deckout/pkg/errors"
	"github.com/arthur-debert/deckout/pkg/logging"
	"github.com/arthur-debert/deckout/pkg/options"
	"github.com/arthur-debert/deckout/pkg/presentation"
)

// GetFormat returns the descriptor for name. Unlike ParseOptions, an
// unknown name is an error the caller must not ignore.
func (r *Registry) GetFormat(name string) (Descriptor, error) {
	return r.Lookup(name)
}

// Render exports pres to path using the named format. Only the explicitly
// resolved options are handed to the formatter.
func (r *Registry) Render(pres *presentation.Presentation, path, format string, resolved options.Resolved) error {
	d, err := r.GetFormat(format)
	if err != nil {
		return err
	}
	if pres == nil {
		return errors.New(errors.ErrInvalidInput, "no presentation to render")
	}

	logger := r.log().With().Str("format", d.Name).Str("path", path).Logger()
	done := logging.LogOperationStart(logger, "render")
	defer done()

	logger.Info().Int("options", len(resolved)).Int("slides", len(pres.Slides)).Msg("Rendering presentation")

	if err := d.New().Render(pres, path, resolved); err != nil {
		if errors.GetErrorCode(err) != errors.ErrUnknown {
			return err
		}
		return errors.Wrapf(err, errors.ErrRender, "%s export failed", d.Name).
			WithDetail("format", d.Name).
			WithDetail("path", path)
	}
	return nil
}
