package display

import (
	"fmt"
	"sort"
	"strings"

	"github.com/FlorianNAdam/clap-bash/core"
)

// BuildHelp renders the usage text for a compiled schema. When long is
// true the program's about text is included after the usage line.
func BuildHelp(s *core.Schema, long bool) string {
	var builder strings.Builder
	builder.WriteString(ansiHelp("Usage:", ansiBold, ansiUnderline) + " ")
	builder.WriteString(ansiHelp(s.Name, ansiBold))

	for _, p := range s.Positionals() {
		if !p.Required {
			continue
		}
		builder.WriteString(fmt.Sprintf(" [%s]", strings.ToUpper(p.Key)))
	}
	if len(s.Subcommands) > 0 {
		builder.WriteString(" <SUBCOMMAND>")
	}
	builder.WriteString(" [OPTIONS]\n")

	if long && s.About != "" {
		builder.WriteString("\n" + s.About + "\n")
	}

	if sub := subcommandsHelp(s); sub != "" {
		builder.WriteString("\n" + ansiHelp("Subcommands:", ansiBold, ansiUnderline) + "\n")
		builder.WriteString(sub)
	}

	if args := argsHelp(s); args != "" {
		builder.WriteString("\n" + ansiHelp("Arguments:", ansiBold, ansiUnderline) + "\n")
		builder.WriteString(args)
	}

	builder.WriteString("\n" + ansiHelp("Options:", ansiBold, ansiUnderline) + "\n")
	builder.WriteString(optionsHelp(s))

	return builder.String()
}

// BuildSubcommandHelp renders help for a subcommand, keeping the parent
// program name in the usage line (e.g. "app serve [OPTIONS]").
func BuildSubcommandHelp(parent *core.Schema, name string, long bool) (string, error) {
	sub, ok := parent.Subcommands[name]
	if !ok {
		return "", fmt.Errorf("no such subcommand: %s", name)
	}
	scoped := *sub
	scoped.Name = parent.Name + " " + name
	return BuildHelp(&scoped, long), nil
}

// === HELPERS ===

// subcommandsHelp returns the formatted subcommand lines, sorted by name.
func subcommandsHelp(s *core.Schema) string {
	if len(s.Subcommands) == 0 {
		return ""
	}
	names := s.SubcommandNames()
	sort.Strings(names)

	var lines []string
	maxLen := 0
	for _, name := range names {
		line := fmt.Sprintf("  %s||%s", name, s.Subcommands[name].About)
		if i := strings.Index(line, "||"); i > maxLen {
			maxLen = i
		}
		lines = append(lines, line)
	}
	return alignColumns(lines, maxLen)
}

// argsHelp generates help text for positional arguments.
func argsHelp(s *core.Schema) string {
	var lines []string
	maxLen := 0
	for _, p := range s.Positionals() {
		col := fmt.Sprintf("  [%s]", strings.ToUpper(p.Hint()))
		if len(col) > maxLen {
			maxLen = len(col)
		}
		lines = append(lines, col+"||"+p.Help)
	}
	return alignColumns(lines, maxLen)
}

// optionsHelp generates help text for flagged arguments, plus the
// automatic --help and --version rows when the schema enables them.
func optionsHelp(s *core.Schema) string {
	var lines []string
	maxLen := 0

	add := func(col, help string) {
		if len(col) > maxLen {
			maxLen = len(col)
		}
		lines = append(lines, col+"||"+help)
	}

	for i := range s.Specs {
		spec := &s.Specs[i]
		if spec.Positional() {
			continue
		}

		hint := ""
		if spec.Action.TakesValues() {
			hint = " [" + strings.ToUpper(spec.Hint()) + "]"
			if spec.NValues > 1 {
				hint += fmt.Sprintf("x%d", spec.NValues)
			}
		}

		var col string
		switch {
		case spec.Short != "" && spec.Long != "":
			col = fmt.Sprintf("  -%s, --%s%s", spec.Short, spec.Long, hint)
		case spec.Short != "":
			col = fmt.Sprintf("  -%s%s", spec.Short, hint)
		default:
			col = fmt.Sprintf("  --%s%s", spec.Long, hint)
		}
		add(col, spec.Help)
	}

	add("  -h, --help", "Show this help message")
	if s.Version != "" {
		add("  --version", "Show version information")
	}

	return alignColumns(lines, maxLen)
}

// alignColumns pads the "||"-split column of each line to maxLen and
// joins the halves with two spaces, the same trick the option and
// argument sections share.
func alignColumns(lines []string, maxLen int) string {
	var builder strings.Builder
	for _, line := range lines {
		parts := strings.SplitN(line, "||", 2)
		padding := strings.Repeat(" ", maxLen-len(parts[0]))
		builder.WriteString(fmt.Sprintf("%s%s  %s\n", parts[0], padding, parts[1]))
	}
	return builder.String()
}
