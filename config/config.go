// Package config models the JSON configuration document that declares a
// script's command-line interface: program metadata, the target
// executable, and an ordered list of argument declarations.
//
// The document is validated structurally against a JSON Schema before it
// is decoded, so downstream packages never inspect raw JSON again.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	clierr "github.com/FlorianNAdam/clap-bash/errors"
)

// Document is the root of the configuration document. Args is an ordered
// list of single-key objects; the list order is the declaration order of
// the arguments, which matters for positional matching.
type Document struct {
	Name    string `json:"name"`
	About   string `json:"about,omitempty"`
	Version string `json:"version,omitempty"`

	// Executable is the path handed to the process handoff once matching
	// succeeds. A document may omit it only when it declares subcommands.
	Executable string `json:"executable,omitempty"`

	Args        []map[string]Arg     `json:"args,omitempty"`
	Subcommands map[string]*Document `json:"subcommands,omitempty"`
}

// Arg declares a single argument. All fields are optional; absence of
// both Long and Short marks the argument positional.
type Arg struct {
	Long      string `json:"long,omitempty"`
	Short     string `json:"short,omitempty"`
	ValueName string `json:"value_name,omitempty"`
	Help      string `json:"help,omitempty"`
	Required  bool   `json:"required,omitempty"`

	// ArgAction is one of "set", "append", "count", "set_true" ("flag" is
	// accepted as an alias). Empty means "set".
	ArgAction string `json:"arg_action,omitempty"`

	// NumberOfValues is the arity of a single occurrence. Nil means the
	// action's default: 1 for value-bearing actions, 0 for presence-only.
	NumberOfValues *int `json:"number_of_values,omitempty"`

	// Multiple marks the terminal positional as unbounded: it absorbs
	// every remaining positional token.
	Multiple bool `json:"multiple,omitempty"`

	// EnvVar overrides the environment variable name derived from the
	// argument key.
	EnvVar string `json:"env_var,omitempty"`
}

// Load validates data against the document schema and decodes it.
// Structural violations are reported as SchemaError.
func Load(data []byte) (*Document, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, clierr.NewSchemaError("", fmt.Sprintf("invalid JSON: %v", err))
	}
	if err := documentSchema.Validate(raw); err != nil {
		return nil, clierr.NewSchemaError("", fmt.Sprintf("document does not match schema: %v", err))
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, clierr.NewSchemaError("", fmt.Sprintf("decoding document: %v", err))
	}
	return &doc, nil
}

// LoadFile reads path and delegates to Load.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Load(data)
}
