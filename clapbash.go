package clapbash

import (
	"github.com/FlorianNAdam/clap-bash/config"
	"github.com/FlorianNAdam/clap-bash/core"
	"github.com/FlorianNAdam/clap-bash/display"
)

// LoadConfig decodes and structurally validates a JSON configuration
// document. The document declares the program metadata, the target
// executable, and an ordered list of argument specifications.
//
// Usage:
//
//	doc, err := clapbash.LoadConfig([]byte(`{
//		"name": "backup",
//		"executable": "./backup.sh",
//		"args": [
//			{"input":   {"long": "input", "short": "i", "required": true}},
//			{"verbose": {"long": "verbose", "arg_action": "set_true"}}
//		]
//	}`))
var LoadConfig = config.Load

// LoadConfigFile reads a configuration document from a file and delegates
// to LoadConfig.
var LoadConfigFile = config.LoadFile

// Compile turns a loaded configuration document into a validated Schema.
// It rejects ambiguous or contradictory specifications (duplicate keys or
// spellings, arity/action mismatches, misordered positionals, colliding
// environment names) with a SchemaError naming the offending key; no
// partial schema is ever produced.
var Compile = core.Compile

// Match interprets an argument vector against a compiled schema and
// returns the collected values, counters and presence set, or one of the
// MatchError kinds (unknown argument, missing value, unexpected argument,
// missing required). Matching is a single deterministic left-to-right
// pass; a literal "--" token makes every later token positional.
var Match = core.Match

// Bind derives the environment bindings from a completed match: the
// variable name is the transliterated argument key (or its declared
// env_var override), multi-value collections are joined with
// core.ValueSeparator, counts become decimal strings, and presence flags
// become "true". Arguments never supplied are omitted.
var Bind = core.Bind

// BuildHelp renders usage text for a compiled schema.
var BuildHelp = display.BuildHelp

// BuildVersion renders the "name vX.Y.Z" version line.
var BuildVersion = display.BuildVersion

// Parse runs the full engine over a raw configuration document and an
// argument vector: load, compile, match, bind. It returns the bindings
// for the leaf command together with the executable the caller should
// transfer control to.
//
// Usage:
//
//	bindings, executable, err := clapbash.Parse(configJSON, os.Args[2:])
//	if err != nil {
//		log.Fatal(err)
//	}
func Parse(data []byte, argv []string) (Bindings, string, error) {
	doc, err := config.Load(data)
	if err != nil {
		return nil, "", err
	}
	schema, err := core.Compile(doc)
	if err != nil {
		return nil, "", err
	}
	res, err := core.Match(schema, argv)
	if err != nil {
		return nil, "", err
	}
	leaf := res.Leaf()
	return core.Bind(leaf.Schema, leaf), leaf.Schema.Executable, nil
}
