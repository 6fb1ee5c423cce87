// Package builtin registers the output formats that ship with deckout.
package builtin

import (
	"github.com/arthur-debert/deckout/pkg/output"
	"github.com/arthur-debert/deckout/pkg/output/ansi"
	"github.com/arthur-debert/deckout/pkg/output/dump"
	"github.com/arthur-debert/deckout/pkg/output/html"
	"github.com/arthur-debert/deckout/pkg/output/outline"
)

// Descriptors returns the built-in formats in registration order
func Descriptors() []output.Descriptor {
	return []output.Descriptor{
		html.Descriptor(),
		html.RawDescriptor(),
		ansi.Descriptor(),
		outline.Descriptor(),
		dump.JSONDescriptor(),
		dump.MsgpackDescriptor(),
	}
}

// Register adds every built-in format to reg, in a fixed order
func Register(reg *output.Registry) {
	for _, d := range Descriptors() {
		reg.Register(d)
	}
}

// NewRegistry returns a registry holding the built-in formats
func NewRegistry(opts ...output.RegistryOption) *output.Registry {
	reg := output.NewRegistry(opts...)
	Register(reg)
	return reg
}
