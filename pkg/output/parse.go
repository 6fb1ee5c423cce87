package output

import (
	"github.com/arthur-debert/deckout/pkg/errors"
	"github.com/arthur-debert/deckout/pkg/options"
)

// ParseOptions resolves raw "-o" tokens into typed option values.
//
// Every failure is confined to its own token: malformed keys, unknown
// formats, unknown options and values that cannot be coerced are logged as
// warnings and the token is skipped. A key given twice keeps the last value.
func (r *Registry) ParseOptions(tokens []string) options.Resolved {
	resolved := make(options.Resolved, len(tokens))

	for _, token := range tokens {
		key, value, err := r.resolveToken(token)
		if err != nil {
			r.log().Warn().
				Err(err).
				Str("option", token).
				Str("code", string(errors.GetErrorCode(err))).
				Msg("Ignoring output format option")
			continue
		}
		resolved[key] = value
	}

	r.log().Debug().Int("tokens", len(tokens)).Int("resolved", len(resolved)).Msg("Parsed output options")
	return resolved
}

func (r *Registry) resolveToken(token string) (string, options.Value, error) {
	tok, err := options.SplitToken(token)
	if err != nil {
		return "", options.Value{}, err
	}

	def, err := r.GetDefault(tok.Format, tok.Option)
	if err != nil {
		return "", options.Value{}, err
	}

	value, err := options.Coerce(tok.Raw, def.Kind())
	if err != nil {
		return "", options.Value{}, errors.Wrapf(err, errors.GetErrorCode(err),
			"option %s expects a %s value", tok.Key(), def.Kind()).
			WithDetail("option", tok.Key())
	}
	return tok.Key(), value, nil
}
