package output

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/deckout/pkg/errors"
	"github.com/arthur-debert/deckout/pkg/logging"
	"github.com/arthur-debert/deckout/pkg/options"
	"github.com/arthur-debert/deckout/pkg/registry"
	"github.com/rs/zerolog"
)

// Registry maps format names to their descriptors
type Registry struct {
	formats registry.Registry[Descriptor]
	logger  *zerolog.Logger
}

// RegistryOption configures a Registry
type RegistryOption func(*Registry)

// WithLogger sets the logger that receives option parsing warnings
func WithLogger(logger zerolog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = &logger
	}
}

// NewRegistry creates an empty format registry
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		formats: registry.New[Descriptor](),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// log returns the configured logger, or the current global "output" logger
func (r *Registry) log() *zerolog.Logger {
	if r.logger != nil {
		return r.logger
	}
	logger := logging.GetLogger("output")
	return &logger
}

// Register adds a format, replacing any format already registered under
// the same name. A descriptor without a name, formatter constructor or
// with an invalid schema is a programming error and panics.
func (r *Registry) Register(d Descriptor) {
	if d.New == nil {
		panic(fmt.Sprintf("output format %q has no formatter constructor", d.Name))
	}
	if err := d.Schema.Validate(); err != nil {
		panic(fmt.Sprintf("output format %q has an invalid schema: %v", d.Name, err))
	}
	if r.formats.Has(d.Name) {
		r.log().Debug().Str("format", d.Name).Msg("Replacing registered output format")
	}
	registry.MustRegister(r.formats, d.Name, d)
}

// Lookup returns the descriptor registered under name
func (r *Registry) Lookup(name string) (Descriptor, error) {
	d, err := r.formats.Get(name)
	if err != nil {
		valid := r.ListNames()
		return Descriptor{}, errors.Newf(errors.ErrUnknownFormat,
			"output format %q must be one of: %s", name, strings.Join(valid, ", ")).
			WithDetail("format", name).
			WithDetail("valid", valid)
	}
	return d, nil
}

// ListNames returns every registered format name, sorted
func (r *Registry) ListNames() []string {
	return r.formats.List()
}

// Formats returns every descriptor in registration order
func (r *Registry) Formats() []Descriptor {
	return r.formats.Values()
}

// ListOptions returns every "<format>.<option>" key, formats in
// registration order and options in schema order
func (r *Registry) ListOptions() []string {
	var keys []string
	for _, d := range r.Formats() {
		keys = append(keys, d.OptionKeys()...)
	}
	return keys
}

// GetDefault returns the declared default of format's option
func (r *Registry) GetDefault(format, option string) (options.Value, error) {
	d, err := r.Lookup(format)
	if err != nil {
		return options.Value{}, err
	}

	opt, ok := d.Schema.Lookup(option)
	if !ok {
		valid := d.Schema.Names()
		return options.Value{}, errors.Newf(errors.ErrUnknownOption,
			"format %q option %q must be one of: %s", format, option, strings.Join(valid, ", ")).
			WithDetail("format", format).
			WithDetail("option", option).
			WithDetail("valid", valid)
	}
	return opt.Default, nil
}
