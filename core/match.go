package core

import (
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/FlorianNAdam/clap-bash/errors"
)

// Result is the outcome of matching an argument vector against a schema.
// Values holds the collected raw strings per key (a list even for
// single-value arguments, so append semantics stay uniform), Counts the
// occurrence counters for count actions, and Seen every key that appeared
// at least once.
//
// When the vector named a subcommand, Sub holds the recursive result for
// it and the receiver covers only the tokens before the subcommand name.
type Result struct {
	Schema *Schema
	Values map[string][]string
	Counts map[string]int
	Seen   map[string]bool

	SubName string
	Sub     *Result
}

// Leaf follows the subcommand chain to the innermost result. Its schema
// carries the executable the handoff should transfer control to.
func (r *Result) Leaf() *Result {
	leaf := r
	for leaf.Sub != nil {
		leaf = leaf.Sub
	}
	return leaf
}

// Match interprets argv against a compiled schema in a single
// left-to-right pass with no backtracking. The only lookahead is the
// fixed value window a flag's arity consumes; the only global check is
// the required-argument sweep once the vector is exhausted.
func Match(schema *Schema, argv []string) (*Result, error) {
	res := &Result{
		Schema: schema,
		Values: map[string][]string{},
		Counts: map[string]int{},
		Seen:   map[string]bool{},
	}

	sc := NewScanner(argv)
	positionals := schema.Positionals()
	posIdx := 0  // cursor over not-yet-saturated positional specs
	posFill := 0 // tokens already absorbed by positionals[posIdx]

	for {
		tok, ok := sc.Next()
		if !ok {
			break
		}

		switch tok.Kind {
		case TokenTerminator:
			// Consumed, never forwarded; the scanner classifies the rest
			// as positional.

		case TokenLong, TokenShort:
			var spec *Spec
			if tok.Kind == TokenLong {
				spec = schema.LookupLong(tok.Name)
			} else {
				spec = schema.LookupShort(tok.Name)
			}
			if spec == nil {
				return nil, errors.NewUnknownArgument(tok.Text, suggestSpelling(schema, tok))
			}

			values, err := consumeValues(sc, spec, tok)
			if err != nil {
				return nil, err
			}
			res.record(spec, values)

		case TokenPositional:
			// A positional before the terminator names a subcommand when
			// the schema declares any. Remaining tokens belong to it.
			if len(schema.Subcommands) > 0 && !sc.Terminated() {
				return dispatch(schema, res, tok.Text, sc.Rest())
			}

			for posIdx < len(positionals) && !positionals[posIdx].Multiple && posFill >= positionals[posIdx].NValues {
				posIdx++
				posFill = 0
			}
			if posIdx >= len(positionals) {
				return nil, errors.NewUnexpectedArgument(tok.Text)
			}
			p := positionals[posIdx]
			res.Values[p.Key] = append(res.Values[p.Key], tok.Text)
			res.Seen[p.Key] = true
			posFill++
		}
	}

	if err := checkRequired(schema, res); err != nil {
		return nil, err
	}
	return res, nil
}

// consumeValues collects the value window for one flag occurrence. An
// inline "=value" serves as the sole value when the arity is exactly one;
// inline values on any other arity are rejected rather than dropped.
func consumeValues(sc *Scanner, spec *Spec, tok Token) ([]string, error) {
	if tok.HasInline {
		if spec.NValues != 1 {
			return nil, errors.NewUnexpectedArgument(tok.Text)
		}
		return []string{tok.Inline}, nil
	}
	var values []string
	for i := 0; i < spec.NValues; i++ {
		raw, ok := sc.NextRaw()
		if !ok {
			return nil, errors.NewMissingValue(spec.Key, spec.NValues, len(values))
		}
		values = append(values, raw)
	}
	return values, nil
}

// record applies the spec's action to the accumulated state.
func (r *Result) record(spec *Spec, values []string) {
	switch spec.Action {
	case Set:
		r.Values[spec.Key] = values
	case Append:
		r.Values[spec.Key] = append(r.Values[spec.Key], values...)
	case Count:
		r.Counts[spec.Key]++
	case SetTrue:
		// presence only
	}
	r.Seen[spec.Key] = true
}

// dispatch resolves name against the schema's subcommands, verifies the
// tokens already matched satisfy this level's required arguments, and
// recurses into the subcommand with the remaining vector.
func dispatch(schema *Schema, res *Result, name string, rest []string) (*Result, error) {
	sub, ok := schema.Subcommands[name]
	if !ok {
		return nil, errors.NewUnknownSubcommand(name, closestMatch(name, schema.SubcommandNames()))
	}
	if err := checkRequired(schema, res); err != nil {
		return nil, err
	}
	subRes, err := Match(sub, rest)
	if err != nil {
		return nil, err
	}
	res.SubName = name
	res.Sub = subRes
	return res, nil
}

// checkRequired fails on the first required-but-unseen spec in
// declaration order.
func checkRequired(schema *Schema, res *Result) error {
	for i := range schema.Specs {
		spec := &schema.Specs[i]
		if spec.Required && !res.Seen[spec.Key] {
			return errors.NewMissingRequired(spec.Key)
		}
	}
	return nil
}

// suggestSpelling finds the closest declared spelling for an unknown
// option token, already dashed for display.
func suggestSpelling(schema *Schema, tok Token) string {
	var candidates []string
	if tok.Kind == TokenLong {
		for name := range schema.byLong {
			candidates = append(candidates, name)
		}
	} else {
		for name := range schema.byShort {
			candidates = append(candidates, name)
		}
	}
	best := closestMatch(tok.Name, candidates)
	if best == "" {
		return ""
	}
	if tok.Kind == TokenLong {
		return "--" + best
	}
	return "-" + best
}

// closestMatch returns the best fuzzy match for target among candidates,
// or empty string when nothing ranks.
func closestMatch(target string, candidates []string) string {
	if target == "" || len(candidates) == 0 {
		return ""
	}
	ranks := fuzzy.RankFindFold(target, candidates)
	if len(ranks) == 0 {
		// Also try the reverse direction so a typo like "srve" still finds
		// "serve" even though it is not a subsequence of it.
		for _, c := range candidates {
			if fuzzy.MatchFold(c, target) || fuzzy.LevenshteinDistance(target, c) <= 2 {
				return c
			}
		}
		return ""
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	return best.Target
}
