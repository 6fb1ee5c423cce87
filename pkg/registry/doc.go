// Package registry provides a generic, thread-safe registry that maps
// names to items and remembers the order in which names were first
// registered. Registries are populated explicitly at startup by the code
// that owns them; there is no package-level global instance.
package registry
