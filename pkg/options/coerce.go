package options

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/deckout/pkg/errors"
)

// Coerce converts raw into a Value of the given kind.
//
// raw may be a string (text from the command line), a bool (an implicit
// flag) or an already coerced Value. A Value that already has the wanted
// kind is returned unchanged, so coercion is idempotent. A Text Value of
// another kind is coerced from its text; any other mismatch is an error.
func Coerce(raw interface{}, kind Kind) (Value, error) {
	if !kind.Valid() {
		return Value{}, unsupportedKind(kind)
	}

	switch r := raw.(type) {
	case Value:
		if r.kind == kind {
			return r, nil
		}
		if r.kind == KindText {
			return coerceText(r.s, kind)
		}
		return Value{}, coercionError(r.String(), kind,
			"option value %q of kind %s cannot be used as %s", r.String(), r.kind, kind)
	case string:
		return coerceText(r, kind)
	case bool:
		return coerceFlag(r, kind)
	default:
		return Value{}, errors.Newf(errors.ErrCoercion, "option value of type %T cannot be coerced", raw).
			WithDetail("kind", kind.String())
	}
}

// coerceFlag handles a bare flag such as "-o html.slide_numbers"
func coerceFlag(b bool, kind Kind) (Value, error) {
	switch kind {
	case KindBool:
		return Bool(b), nil
	case KindList:
		return Value{}, coercionError(strconv.FormatBool(b), kind, "list options require a text value")
	}
	return coerceText(strconv.FormatBool(b), kind)
}

func coerceText(s string, kind Kind) (Value, error) {
	switch kind {
	case KindInt:
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return Value{}, coercionError(s, kind, "option value %q could not be converted to an int", s)
		}
		return Int(n), nil
	case KindBool:
		switch {
		case strings.EqualFold(s, "true"):
			return Bool(true), nil
		case strings.EqualFold(s, "false"):
			return Bool(false), nil
		}
		return Value{}, coercionError(s, kind, "option value %q could not be converted to a bool", s)
	case KindText:
		return Text(s), nil
	case KindFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return Value{}, coercionError(s, kind, "option value %q could not be converted to a float", s)
		}
		return Float(f), nil
	case KindList:
		parts := strings.Split(s, ",")
		for i, p := range parts {
			parts[i] = strings.TrimSpace(p)
		}
		return Value{kind: KindList, items: parts}, nil
	}
	return Value{}, unsupportedKind(kind)
}

func unsupportedKind(kind Kind) *errors.Error {
	return errors.Newf(errors.ErrUnsupportedType, "option kind %d is not supported", int(kind)).
		WithDetail("kind", kind.String())
}

func coercionError(raw string, kind Kind, format string, args ...interface{}) *errors.Error {
	return errors.Newf(errors.ErrCoercion, format, args...).
		WithDetail("value", raw).
		WithDetail("kind", kind.String())
}
