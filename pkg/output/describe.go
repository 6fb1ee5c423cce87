package output

import (
	"fmt"

	"github.com/arthur-debert/deckout/pkg/options"
)

// DescribeAll returns one "<format>.<option> = <default>" line per declared
// option, formats in registration order and options in schema order
func (r *Registry) DescribeAll() []string {
	var lines []string
	for _, d := range r.Formats() {
		lines = append(lines, Describe(d)...)
	}
	return lines
}

// Describe returns the help lines for a single format
func Describe(d Descriptor) []string {
	lines := make([]string, 0, len(d.Schema))
	for _, opt := range d.Schema {
		lines = append(lines, fmt.Sprintf("%s = %s", options.Key(d.Name, opt.Name), opt.Default.Repr()))
	}
	return lines
}
