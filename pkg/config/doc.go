// Package config loads deckout's layered configuration with koanf.
//
// Layers, lowest precedence first:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config, $XDG_CONFIG_HOME/deckout/config.toml
//  3. the project config, .deckout.toml or deckout.toml in the working directory
//  4. DECKOUT_* environment variables (DECKOUT_OUTPUT_FORMAT -> output.format)
//  5. LoadOptions.Overrides, dotted keys set by the caller
//
// Later layers replace earlier values; lists are replaced, not appended.
package config
