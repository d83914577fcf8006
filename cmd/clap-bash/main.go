package main

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FlorianNAdam/clap-bash/config"
	"github.com/FlorianNAdam/clap-bash/core"
	"github.com/FlorianNAdam/clap-bash/display"
	clierr "github.com/FlorianNAdam/clap-bash/errors"
	"github.com/FlorianNAdam/clap-bash/handoff"
)

var osExit = os.Exit // Mockable for testing

func main() {
	var (
		configJSON string
		configFile string
		exportSelf bool
	)

	rootCmd := &cobra.Command{
		Use:           "clap-bash (--config <json> | --config-file <path>) -- [script arguments]",
		Short:         "Declarative, typed argument parsing for shell scripts",
		Long:          "clap-bash parses command-line arguments against a JSON argument specification,\nconverts the matched values into environment variables, and replaces itself\nwith the target executable.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dash := cmd.ArgsLenAtDash()
			if (dash < 0 && len(args) > 0) || dash > 0 {
				return fmt.Errorf("script arguments must follow a literal --")
			}
			trailing := args
			if dash >= 0 {
				trailing = args[dash:]
			}
			return run(configJSON, configFile, exportSelf, trailing)
		},
	}

	rootCmd.Flags().StringVar(&configJSON, "config", "", "Inline JSON configuration document")
	rootCmd.Flags().StringVar(&configFile, "config-file", "", "Path to a JSON configuration document")
	rootCmd.Flags().BoolVar(&exportSelf, "export-self", false, "Expose this binary's location as CLAP_BASH to the target")
	rootCmd.MarkFlagsMutuallyExclusive("config", "config-file")
	rootCmd.MarkFlagsOneRequired("config", "config-file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if stderrors.Is(err, clierr.ErrSchema) {
			osExit(2)
		}
		osExit(1)
	}
}

// run drives the full pipeline: load, compile, intercept help/version,
// match, bind, and hand off. Every fallible step happens before the
// handoff, so a partial environment can never reach the target.
func run(configJSON, configFile string, exportSelf bool, argv []string) error {
	var (
		doc *config.Document
		err error
	)
	if configFile != "" {
		doc, err = config.LoadFile(configFile)
	} else {
		doc, err = config.Load([]byte(configJSON))
	}
	if err != nil {
		return err
	}

	schema, err := core.Compile(doc)
	if err != nil {
		return err
	}

	if text, ok := intercept(schema, argv); ok {
		fmt.Println(text)
		osExit(0)
	}

	res, err := core.Match(schema, argv)
	if err != nil {
		return err
	}

	leaf := res.Leaf()
	if leaf.Schema.Executable == "" {
		names := leaf.Schema.SubcommandNames()
		return fmt.Errorf("missing subcommand (expected one of: %s)", strings.Join(names, ", "))
	}

	env := handoff.Environ(os.Environ(), core.Bind(leaf.Schema, leaf))
	if exportSelf {
		env, err = handoff.WithSelf(env)
		if err != nil {
			return err
		}
	}
	return handoff.Exec(leaf.Schema.Executable, env)
}

// intercept scans the script arguments for help or version requests
// before matching, descending through subcommand names so that
// "app serve --help" shows the serve schema. Tokens after a literal --
// are script values and never intercepted.
func intercept(schema *core.Schema, argv []string) (string, bool) {
	cur := schema
	prefix := schema.Name
	for _, a := range argv {
		switch a {
		case "--":
			return "", false
		case "-h":
			return scopedHelp(cur, prefix, false), true
		case "--help":
			return scopedHelp(cur, prefix, true), true
		case "--version":
			if schema.Version == "" {
				continue
			}
			return display.BuildVersion(schema.Name, schema.Version), true
		default:
			if sub, ok := cur.Subcommands[a]; ok {
				cur = sub
				prefix += " " + a
			}
		}
	}
	return "", false
}

func scopedHelp(s *core.Schema, name string, long bool) string {
	scoped := *s
	scoped.Name = name
	return display.BuildHelp(&scoped, long)
}
