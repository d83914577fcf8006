package core

import (
	"strconv"
	"strings"
)

// ValueSeparator joins multi-value and appended values into a single
// environment string. It mirrors the behavior shell callers already rely
// on; values containing the separator are not escaped, which is a
// documented limitation of the binding format.
const ValueSeparator = ","

// Bindings is the final, immutable mapping from environment variable name
// to string payload. It is created once per run, handed to the process
// handoff, and never mutated afterward.
type Bindings map[string]string

// Bind derives the environment bindings from a completed match. It is
// pure and total: specs never supplied on the command line (and not
// required, or matching would have failed) are omitted entirely.
func Bind(schema *Schema, res *Result) Bindings {
	b := make(Bindings, len(schema.Specs))
	for i := range schema.Specs {
		spec := &schema.Specs[i]
		if !res.Seen[spec.Key] {
			continue
		}
		switch spec.Action {
		case Count:
			b[spec.EnvVar] = strconv.Itoa(res.Counts[spec.Key])
		case SetTrue:
			b[spec.EnvVar] = "true"
		default:
			b[spec.EnvVar] = strings.Join(res.Values[spec.Key], ValueSeparator)
		}
	}
	return b
}
