package options

import "github.com/arthur-debert/deckout/pkg/errors"

// Option declares a single format option. The kind of Default is the kind
// every override must be coerced to.
type Option struct {
	Name    string
	Default Value
	Help    string
}

// Kind returns the declared kind of the option
func (o Option) Kind() Kind { return o.Default.Kind() }

// Schema is the ordered set of options a format accepts
type Schema []Option

// Lookup finds an option by name
func (s Schema) Lookup(name string) (Option, bool) {
	for _, opt := range s {
		if opt.Name == name {
			return opt, true
		}
	}
	return Option{}, false
}

// Names returns option names in declaration order
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, opt := range s {
		names[i] = opt.Name
	}
	return names
}

// Validate checks that every option has a name, a valid kind and no duplicate
func (s Schema) Validate() error {
	seen := make(map[string]bool, len(s))
	for _, opt := range s {
		if opt.Name == "" {
			return errors.New(errors.ErrInvalidInput, "option with empty name")
		}
		if !opt.Kind().Valid() {
			return errors.Newf(errors.ErrInvalidInput, "option %q has no default value", opt.Name)
		}
		if seen[opt.Name] {
			return errors.Newf(errors.ErrInvalidInput, "option %q declared twice", opt.Name)
		}
		seen[opt.Name] = true
	}
	return nil
}

// Effective merges the resolved overrides for format over the schema
// defaults. Resolved entries for other formats, unknown options or
// mismatched kinds are ignored.
func (s Schema) Effective(format string, resolved Resolved) Settings {
	settings := make(Settings, len(s))
	for _, opt := range s {
		settings[opt.Name] = opt.Default
		if v, ok := resolved[Key(format, opt.Name)]; ok && v.Kind() == opt.Kind() {
			settings[opt.Name] = v
		}
	}
	return settings
}

// Resolved maps fully-qualified "<format>.<option>" keys to coerced values
type Resolved map[string]Value

// Key builds the fully-qualified key for an option
func Key(format, option string) string {
	return format + "." + option
}

// Settings maps option names to the values a formatter should use
type Settings map[string]Value

// Int returns the int setting name
func (s Settings) Int(name string) int64 { return s[name].AsInt() }

// Bool returns the bool setting name
func (s Settings) Bool(name string) bool { return s[name].AsBool() }

// Text returns the text setting name
func (s Settings) Text(name string) string { return s[name].AsText() }

// Float returns the float setting name
func (s Settings) Float(name string) float64 { return s[name].AsFloat() }

// List returns the list setting name
func (s Settings) List(name string) []string { return s[name].AsList() }
