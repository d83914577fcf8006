package clapbash

import (
	"github.com/FlorianNAdam/clap-bash/config"
	"github.com/FlorianNAdam/clap-bash/core"
)

// Document is the raw configuration document: program metadata, the
// target executable, an ordered list of single-key argument objects, and
// optional nested subcommand documents.
type Document = config.Document

// Arg is one raw argument declaration inside a Document. All fields are
// optional; an argument with neither a long nor a short spelling is
// positional.
type Arg = config.Arg

// Schema is a compiled, validated argument grammar. Instances are
// produced only by Compile.
type Schema = core.Schema

// Spec is one compiled argument declaration inside a Schema.
type Spec = core.Spec

// Action is the accumulation policy applied when an argument is matched.
type Action = core.Action

// Result is the accumulated parse state produced by Match.
type Result = core.Result

// Bindings is the final mapping from environment variable name to string
// payload, ready for the process handoff.
type Bindings = core.Bindings

// Accumulation policies.
const (
	Set     = core.Set
	Append  = core.Append
	Count   = core.Count
	SetTrue = core.SetTrue
)

// ValueSeparator joins multi-value collections into one environment
// string. Values containing it are not escaped.
const ValueSeparator = core.ValueSeparator
