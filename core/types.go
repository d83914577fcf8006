package core

// Action is the accumulation policy applied when an argument is matched.
type Action int

const (
	// Set stores the occurrence's value(s); the last occurrence wins.
	Set Action = iota
	// Append accumulates every occurrence's value(s) in arrival order.
	Append
	// Count counts occurrences and consumes no value tokens.
	Count
	// SetTrue records presence once; repetition is idempotent.
	SetTrue
)

// TakesValues reports whether the action consumes value tokens.
func (a Action) TakesValues() bool { return a == Set || a == Append }

func (a Action) String() string {
	switch a {
	case Set:
		return "set"
	case Append:
		return "append"
	case Count:
		return "count"
	case SetTrue:
		return "set_true"
	}
	return "unknown"
}

// Spec is one compiled argument declaration. Key is the stable identity
// used for value lookup; EnvVar is the resolved environment variable name
// (an explicit override or the transliterated key).
type Spec struct {
	Key       string
	Long      string
	Short     string
	ValueName string
	Help      string
	Required  bool
	Action    Action
	NValues   int
	Multiple  bool
	EnvVar    string
}

// Positional reports whether the spec is matched by position rather than
// by a flag spelling.
func (s *Spec) Positional() bool { return s.Long == "" && s.Short == "" }

// Hint is the value placeholder shown in help output.
func (s *Spec) Hint() string {
	if s.ValueName != "" {
		return s.ValueName
	}
	return upper(s.Key)
}

// Schema is a validated argument grammar: program metadata plus an
// ordered sequence of unique specs. Instances are produced only by
// Compile and are immutable afterward.
type Schema struct {
	Name       string
	About      string
	Version    string
	Executable string

	Specs       []Spec
	Subcommands map[string]*Schema

	byKey   map[string]*Spec
	byLong  map[string]*Spec
	byShort map[string]*Spec
}

// Lookup returns the spec with the given key, or nil.
func (s *Schema) Lookup(key string) *Spec { return s.byKey[key] }

// LookupLong returns the spec spelled --name, or nil.
func (s *Schema) LookupLong(name string) *Spec { return s.byLong[name] }

// LookupShort returns the spec spelled -name, or nil.
func (s *Schema) LookupShort(name string) *Spec { return s.byShort[name] }

// Positionals returns the positional specs in declaration order.
func (s *Schema) Positionals() []*Spec {
	var out []*Spec
	for i := range s.Specs {
		if s.Specs[i].Positional() {
			out = append(out, &s.Specs[i])
		}
	}
	return out
}

// SubcommandNames returns the declared subcommand names, unordered.
func (s *Schema) SubcommandNames() []string {
	var out []string
	for name := range s.Subcommands {
		out = append(out, name)
	}
	return out
}

func upper(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'a' && b[i] <= 'z' {
			b[i] -= 'a' - 'A'
		}
	}
	return string(b)
}
