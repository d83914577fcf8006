package errors

import (
	stderrors "errors"
	"fmt"
)

// Sentinel errors for use with errors.Is. Each typed error below reports
// itself as matching the sentinel of its category, so callers can branch
// on the category without unpacking the concrete type.
var (
	// ErrSchema matches every compile-time failure of the argument schema.
	ErrSchema = stderrors.New("invalid argument schema")
	// ErrMatch matches every parse-time failure against a compiled schema.
	ErrMatch = stderrors.New("argument match failure")
)

// SchemaError indicates a malformed or self-contradictory configuration
// document. It is always a packaging error, never a user error: it is
// surfaced before any command-line argument is examined.
type SchemaError struct {
	Key  string // offending argument key, if the rule is key-scoped
	Rule string // the violated rule, in user-facing words
}

func (e SchemaError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("invalid schema: %s", e.Rule)
	}
	return fmt.Sprintf("invalid schema: argument %q: %s", e.Key, e.Rule)
}

func (e SchemaError) Is(target error) bool { return target == ErrSchema }

// UnknownArgumentError indicates the command line contained a flag that no
// declared argument spells. Suggestion, if present, is a close match the
// user may have intended.
type UnknownArgumentError struct{ Token, Suggestion string }

func (e UnknownArgumentError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown argument: %s (did you mean %q?)", e.Token, e.Suggestion)
	}
	return fmt.Sprintf("unknown argument: %s", e.Token)
}

func (e UnknownArgumentError) Is(target error) bool { return target == ErrMatch }

// MissingValueError indicates a flag consumed fewer value tokens than its
// declared arity.
type MissingValueError struct {
	Key  string
	Want int // declared number_of_values
	Got  int // values actually present
}

func (e MissingValueError) Error() string {
	return fmt.Sprintf("argument %q expects %d value(s), got %d", e.Key, e.Want, e.Got)
}

func (e MissingValueError) Is(target error) bool { return target == ErrMatch }

// UnexpectedArgumentError indicates a token that no remaining positional
// slot can absorb, or an inline value supplied to a flag whose arity
// cannot accept one.
type UnexpectedArgumentError struct{ Token string }

func (e UnexpectedArgumentError) Error() string {
	return fmt.Sprintf("unexpected argument: %s", e.Token)
}

func (e UnexpectedArgumentError) Is(target error) bool { return target == ErrMatch }

// MissingRequiredError indicates a required argument never appeared on the
// command line.
type MissingRequiredError struct{ Key string }

func (e MissingRequiredError) Error() string {
	return fmt.Sprintf("missing required argument: %s", e.Key)
}

func (e MissingRequiredError) Is(target error) bool { return target == ErrMatch }

// UnknownSubcommandError indicates the user invoked a subcommand that does
// not exist. Suggestion, if present, is a close match the user may have
// intended.
type UnknownSubcommandError struct{ Name, Suggestion string }

func (e UnknownSubcommandError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown subcommand: %s (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown subcommand: %s", e.Name)
}

func (e UnknownSubcommandError) Is(target error) bool { return target == ErrMatch }

// Helper constructors
func NewSchemaError(key, rule string) error { return SchemaError{Key: key, Rule: rule} }
func NewUnknownArgument(token, suggestion string) error {
	return UnknownArgumentError{Token: token, Suggestion: suggestion}
}
func NewMissingValue(key string, want, got int) error {
	return MissingValueError{Key: key, Want: want, Got: got}
}
func NewUnexpectedArgument(token string) error { return UnexpectedArgumentError{Token: token} }
func NewMissingRequired(key string) error      { return MissingRequiredError{Key: key} }
func NewUnknownSubcommand(name, suggestion string) error {
	return UnknownSubcommandError{Name: name, Suggestion: suggestion}
}
