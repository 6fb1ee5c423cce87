// Package options defines the typed values that output formats accept as
// options, the ordered schemas formats declare them in, and the coercion of
// raw command-line text into those values.
//
// There are exactly five kinds of option value: int, bool, text, float and
// list (of text). A schema entry's default value doubles as the declaration
// of the option's kind; any user supplied override is coerced to that kind.
//
//	schema := options.Schema{
//		{Name: "width", Default: options.Int(960)},
//		{Name: "stylesheets", Default: options.List()},
//	}
//	v, err := options.Coerce("1280", schema[0].Default.Kind())
package options
