package deckout

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Export markdown slide decks to other formats"
	MsgExportShort     = "Export a deck with an output format"
	MsgFormatsShort    = "List the available output formats"
	MsgOptionsShort    = "List output format options and their defaults"
	MsgConfigShort     = "Print the effective configuration"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate the deckout man page"
	MsgVersionShort    = "Print version information"

	// Status messages
	MsgVersionFormat = "deckout %s\n"

	// Error messages
	MsgErrNoCommand     = "no command specified"
	MsgErrOutputStyle   = "invalid --output-style: %w"
	MsgErrLoadConfig    = "failed to load configuration: %w"
	MsgErrGenerateMan   = "failed to generate man page: %w"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagOutputStyle = "Style of deckout's own output: auto, term, text or json"
	MsgFlagConfig      = "User config file (default $XDG_CONFIG_HOME/deckout/config.toml)"
	MsgFlagFormat      = "Output format (see \"deckout formats\")"
	MsgFlagOutput      = "Path of the exported file"
	MsgFlagOption      = "Format option as <format>.<option>[=<value>], repeatable"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/export-long.txt
	msgExportLongRaw string
	MsgExportLong    = strings.TrimSpace(msgExportLongRaw)

	//go:embed msgs/export-example.txt
	msgExportExampleRaw string
	MsgExportExample    = strings.TrimRight(msgExportExampleRaw, "\n")

	//go:embed msgs/options-long.txt
	msgOptionsLongRaw string
	MsgOptionsLong    = strings.TrimSpace(msgOptionsLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
