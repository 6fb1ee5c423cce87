package options

import (
	"strings"

	"github.com/arthur-debert/deckout/pkg/errors"
)

// Token is a single "-o" argument split into its parts
type Token struct {
	Format string
	Option string
	// Raw is the text after "=", or true for a bare flag
	Raw interface{}
}

// Key returns the fully-qualified option key
func (t Token) Key() string {
	return Key(t.Format, t.Option)
}

// SplitToken parses "format.option" or "format.option=value". The value is
// everything after the first "=", so values may themselves contain "=" or ".".
func SplitToken(s string) (Token, error) {
	key, value, hasValue := strings.Cut(s, "=")

	format, option, ok := strings.Cut(key, ".")
	if !ok || format == "" || option == "" {
		return Token{}, errors.Newf(errors.ErrInvalidInput,
			"option key %q must have the form <format>.<option>", key).
			WithDetail("token", s)
	}

	tok := Token{Format: format, Option: option, Raw: true}
	if hasValue {
		tok.Raw = value
	}
	return tok, nil
}
