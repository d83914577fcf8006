package core

import (
	"fmt"
	"strings"

	"github.com/FlorianNAdam/clap-bash/config"
	"github.com/FlorianNAdam/clap-bash/errors"
	"github.com/FlorianNAdam/clap-bash/internal/common"
)

// Compile turns a configuration document into a validated Schema. It is a
// pure transformation and fails fast: the first violated rule aborts with
// a SchemaError naming the offending key, and no partial schema is ever
// returned.
func Compile(doc *config.Document) (*Schema, error) {
	return compileDoc(doc, "")
}

// compileDoc compiles one document level. Subcommand documents may omit
// their name; the key they are registered under serves as the fallback.
func compileDoc(doc *config.Document, fallbackName string) (*Schema, error) {
	name := doc.Name
	if name == "" {
		name = fallbackName
	}
	if name == "" {
		return nil, errors.NewSchemaError("", "missing program name")
	}
	if doc.Executable == "" && len(doc.Subcommands) == 0 {
		return nil, errors.NewSchemaError("", "document declares neither an executable nor subcommands")
	}

	s := &Schema{
		Name:       name,
		About:      doc.About,
		Version:    doc.Version,
		Executable: doc.Executable,
	}

	keys := map[string]bool{}
	longs := map[string]string{}    // spelling -> claiming key
	shorts := map[string]string{}   // spelling -> claiming key
	envNames := map[string]string{} // env name -> claiming key
	unboundedSeen := false

	for _, entry := range doc.Args {
		if len(entry) != 1 {
			return nil, errors.NewSchemaError("", "each args entry must declare exactly one argument")
		}
		var key string
		var arg config.Arg
		for k, a := range entry {
			key, arg = k, a
		}

		spec, err := compileArg(key, arg)
		if err != nil {
			return nil, err
		}

		if keys[key] {
			return nil, errors.NewSchemaError(key, "duplicate argument key")
		}
		if prev, ok := longs[spec.Long]; spec.Long != "" && ok {
			return nil, errors.NewSchemaError(key, fmt.Sprintf("long spelling --%s already used by %q", spec.Long, prev))
		}
		if prev, ok := shorts[spec.Short]; spec.Short != "" && ok {
			return nil, errors.NewSchemaError(key, fmt.Sprintf("short spelling -%s already used by %q", spec.Short, prev))
		}
		if prev, ok := envNames[spec.EnvVar]; ok {
			return nil, errors.NewSchemaError(key, fmt.Sprintf("environment name %s already produced by %q", spec.EnvVar, prev))
		}

		if spec.Positional() {
			if unboundedSeen {
				return nil, errors.NewSchemaError(key, "positional follows an unbounded positional")
			}
			if spec.Multiple {
				unboundedSeen = true
			}
		}

		keys[key] = true
		longs[spec.Long] = key
		shorts[spec.Short] = key
		envNames[spec.EnvVar] = key
		s.Specs = append(s.Specs, spec)
	}

	// Lookup indexes are built once the spec slice is final, so the
	// pointers stay valid for the schema's lifetime.
	s.byKey = make(map[string]*Spec, len(s.Specs))
	s.byLong = map[string]*Spec{}
	s.byShort = map[string]*Spec{}
	for i := range s.Specs {
		p := &s.Specs[i]
		s.byKey[p.Key] = p
		if p.Long != "" {
			s.byLong[p.Long] = p
		}
		if p.Short != "" {
			s.byShort[p.Short] = p
		}
	}

	if len(doc.Subcommands) > 0 {
		if len(s.Positionals()) > 0 {
			return nil, errors.NewSchemaError("", "positional arguments and subcommands cannot be mixed on one command")
		}
		s.Subcommands = make(map[string]*Schema, len(doc.Subcommands))
		for subName, sub := range doc.Subcommands {
			if subName == "" {
				return nil, errors.NewSchemaError("", "subcommand with empty name")
			}
			if sub == nil {
				return nil, errors.NewSchemaError("", fmt.Sprintf("subcommand %q has no definition", subName))
			}
			compiled, err := compileDoc(sub, subName)
			if err != nil {
				return nil, err
			}
			s.Subcommands[subName] = compiled
		}
	}

	return s, nil
}

// compileArg validates a single declaration and resolves its defaults.
func compileArg(key string, arg config.Arg) (Spec, error) {
	var none Spec
	if key == "" {
		return none, errors.NewSchemaError("", "argument with empty key")
	}

	action, err := parseAction(key, arg.ArgAction)
	if err != nil {
		return none, err
	}

	nvalues := 0
	if action.TakesValues() {
		nvalues = 1
	}
	if arg.NumberOfValues != nil {
		nvalues = *arg.NumberOfValues
	}
	switch {
	case nvalues < 0:
		return none, errors.NewSchemaError(key, "number_of_values must be non-negative")
	case nvalues == 0 && action.TakesValues():
		return none, errors.NewSchemaError(key, fmt.Sprintf("action %q requires number_of_values >= 1", action))
	case nvalues >= 1 && !action.TakesValues():
		return none, errors.NewSchemaError(key, fmt.Sprintf("action %q cannot consume values", action))
	}

	if strings.HasPrefix(arg.Long, "-") {
		return none, errors.NewSchemaError(key, "long spelling must be written without leading dashes")
	}
	if len(arg.Short) > 1 {
		return none, errors.NewSchemaError(key, "short spelling must be a single character")
	}
	if arg.Short == "-" {
		return none, errors.NewSchemaError(key, "short spelling must not be a dash")
	}

	positional := arg.Long == "" && arg.Short == ""
	if positional && !action.TakesValues() {
		return none, errors.NewSchemaError(key, fmt.Sprintf("positional argument cannot use action %q", action))
	}
	if !positional && arg.Multiple {
		return none, errors.NewSchemaError(key, `multiple is only valid on positional arguments (use arg_action "append" for flags)`)
	}

	envName := common.EnvName(key)
	if arg.EnvVar != "" {
		if !common.ValidEnvName(arg.EnvVar) {
			return none, errors.NewSchemaError(key, fmt.Sprintf("env_var %q is not a valid environment variable name", arg.EnvVar))
		}
		envName = arg.EnvVar
	}

	return Spec{
		Key:       key,
		Long:      arg.Long,
		Short:     arg.Short,
		ValueName: arg.ValueName,
		Help:      arg.Help,
		Required:  arg.Required,
		Action:    action,
		NValues:   nvalues,
		Multiple:  arg.Multiple,
		EnvVar:    envName,
	}, nil
}

func parseAction(key, name string) (Action, error) {
	switch name {
	case "", "set":
		return Set, nil
	case "append":
		return Append, nil
	case "count":
		return Count, nil
	case "set_true", "flag":
		return SetTrue, nil
	}
	return Set, errors.NewSchemaError(key, fmt.Sprintf("unrecognized arg_action %q", name))
}
