// Package clapbash gives shell scripts a declarative, typed command-line
// interface. A JSON document describes the accepted arguments; the engine
// compiles it into a validated schema, matches a live argument vector
// against it, and emits a deterministic set of environment variable
// bindings for the target executable.
//
// The package is a facade: compilation, scanning, matching and binding
// live in the core package, document handling in config, and the final
// process replacement in handoff.
package clapbash

//go:generate gomarkdoc ./ -o docs/clapbash.md
