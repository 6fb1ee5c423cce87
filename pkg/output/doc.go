// Package output selects the output format a presentation is exported to
// and resolves the "-o format.option=value" strings users pass on the
// command line into typed option values.
//
// Formats describe themselves with a Descriptor: a name, an ordered option
// schema and a constructor for the Formatter that writes the artifact. A
// Registry is populated once at startup, in an explicit order, and then
// only read:
//
//	reg := output.NewRegistry()
//	builtin.Register(reg)
//
//	resolved := reg.ParseOptions([]string{"html.width=1280", "html.slide_numbers=false"})
//	err := reg.Render(pres, "deck.html", "html", resolved)
//
// ParseOptions is forgiving: a token naming an unknown format or option, or
// carrying a value that cannot be coerced, is logged as a warning and
// skipped. Render and GetFormat are strict: an unknown format name aborts
// the export.
package output
