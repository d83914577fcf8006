package core

import (
	stderrs "errors"
	"testing"

	"github.com/chriso345/gore/assert"

	"github.com/FlorianNAdam/clap-bash/config"
	clierr "github.com/FlorianNAdam/clap-bash/errors"
)

func intPtr(n int) *int { return &n }

func docWith(args ...map[string]config.Arg) *config.Document {
	return &config.Document{
		Name:       "tool",
		Executable: "./tool.sh",
		Args:       args,
	}
}

func TestCompile_Defaults(t *testing.T) {
	schema, err := Compile(docWith(
		map[string]config.Arg{"input": {Long: "input", Short: "i"}},
		map[string]config.Arg{"verbose": {Long: "verbose", ArgAction: "set_true"}},
		map[string]config.Arg{"level": {Short: "l", ArgAction: "count"}},
		map[string]config.Arg{"target": {}},
	))
	assert.Nil(t, err)

	input := schema.Lookup("input")
	assert.Equal(t, input.Action, Set)
	assert.Equal(t, input.NValues, 1)
	assert.Equal(t, input.EnvVar, "INPUT")

	verbose := schema.Lookup("verbose")
	assert.Equal(t, verbose.Action, SetTrue)
	assert.Equal(t, verbose.NValues, 0)

	level := schema.Lookup("level")
	assert.Equal(t, level.Action, Count)
	assert.Equal(t, level.NValues, 0)

	target := schema.Lookup("target")
	assert.True(t, target.Positional())
}

func TestCompile_LookupIndexes(t *testing.T) {
	schema, err := Compile(docWith(
		map[string]config.Arg{"alpha": {Long: "alpha", Short: "a"}},
		map[string]config.Arg{"beta": {Long: "beta"}},
	))
	assert.Nil(t, err)
	assert.Equal(t, schema.LookupLong("alpha").Key, "alpha")
	assert.Equal(t, schema.LookupShort("a").Key, "alpha")
	assert.Equal(t, schema.LookupLong("beta").Key, "beta")
	assert.True(t, schema.LookupShort("b") == nil)
}

func TestCompile_FlagAlias(t *testing.T) {
	schema, err := Compile(docWith(
		map[string]config.Arg{"force": {Long: "force", ArgAction: "flag"}},
	))
	assert.Nil(t, err)
	assert.Equal(t, schema.Lookup("force").Action, SetTrue)
}

func TestCompile_EnvVarOverride(t *testing.T) {
	schema, err := Compile(docWith(
		map[string]config.Arg{"input": {Long: "input", EnvVar: "SOURCE_FILE"}},
	))
	assert.Nil(t, err)
	assert.Equal(t, schema.Lookup("input").EnvVar, "SOURCE_FILE")
}

func TestCompile_Rejections(t *testing.T) {
	cases := []struct {
		name string
		doc  *config.Document
	}{
		{"missing program name", &config.Document{Executable: "./x"}},
		{"no executable or subcommands", &config.Document{Name: "tool"}},
		{"unrecognized action", docWith(map[string]config.Arg{"a": {Long: "a2", ArgAction: "store"}})},
		{"negative arity", docWith(map[string]config.Arg{"a": {Long: "a2", NumberOfValues: intPtr(-1)}})},
		{"set with zero values", docWith(map[string]config.Arg{"a": {Long: "a2", NumberOfValues: intPtr(0)}})},
		{"count with values", docWith(map[string]config.Arg{"a": {Long: "a2", ArgAction: "count", NumberOfValues: intPtr(1)}})},
		{"set_true with values", docWith(map[string]config.Arg{"a": {Long: "a2", ArgAction: "set_true", NumberOfValues: intPtr(2)}})},
		{"dashed long spelling", docWith(map[string]config.Arg{"a": {Long: "--a2"}})},
		{"multi-char short", docWith(map[string]config.Arg{"a": {Short: "ab"}})},
		{"dash short", docWith(map[string]config.Arg{"a": {Short: "-"}})},
		{"positional flag action", docWith(map[string]config.Arg{"a": {ArgAction: "set_true"}})},
		{"multiple on flagged arg", docWith(map[string]config.Arg{"a": {Long: "a2", Multiple: true}})},
		{"duplicate key", docWith(
			map[string]config.Arg{"a": {Long: "one"}},
			map[string]config.Arg{"a": {Long: "two"}},
		)},
		{"duplicate long", docWith(
			map[string]config.Arg{"a": {Long: "same"}},
			map[string]config.Arg{"b": {Long: "same"}},
		)},
		{"duplicate short", docWith(
			map[string]config.Arg{"a": {Short: "s"}},
			map[string]config.Arg{"b": {Short: "s"}},
		)},
		{"env name collision by transliteration", docWith(
			map[string]config.Arg{"my-arg": {Long: "my-arg"}},
			map[string]config.Arg{"my_arg": {Long: "my-arg2"}},
		)},
		{"env name collision by override", docWith(
			map[string]config.Arg{"a": {Long: "a2", EnvVar: "OUT"}},
			map[string]config.Arg{"out": {Long: "out"}},
		)},
		{"invalid env override", docWith(map[string]config.Arg{"a": {Long: "a2", EnvVar: "9BAD"}})},
		{"positional after unbounded", docWith(
			map[string]config.Arg{"rest": {Multiple: true}},
			map[string]config.Arg{"tail": {}},
		)},
		{"two unbounded positionals", docWith(
			map[string]config.Arg{"rest": {Multiple: true}},
			map[string]config.Arg{"more": {Multiple: true}},
		)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compile(tc.doc)
			assert.NotNil(t, err)
			assert.True(t, stderrs.Is(err, clierr.ErrSchema))
		})
	}
}

func TestCompile_FailsFastNamesKey(t *testing.T) {
	_, err := Compile(docWith(
		map[string]config.Arg{"fine": {Long: "fine"}},
		map[string]config.Arg{"broken": {Long: "broken", ArgAction: "count", NumberOfValues: intPtr(3)}},
	))
	assert.NotNil(t, err)

	var se clierr.SchemaError
	ok := stderrs.As(err, &se)
	assert.True(t, ok)
	assert.Equal(t, se.Key, "broken")
}

func TestCompile_UnboundedMustBeLastPositionalOnly(t *testing.T) {
	// Flagged args may still follow an unbounded positional.
	_, err := Compile(docWith(
		map[string]config.Arg{"rest": {Multiple: true}},
		map[string]config.Arg{"verbose": {Long: "verbose", ArgAction: "set_true"}},
	))
	assert.Nil(t, err)
}

func TestCompile_Subcommands(t *testing.T) {
	doc := &config.Document{
		Name: "app",
		Subcommands: map[string]*config.Document{
			"serve": {
				Executable: "./serve.sh",
				Args: []map[string]config.Arg{
					{"port": {Long: "port"}},
				},
			},
		},
	}
	schema, err := Compile(doc)
	assert.Nil(t, err)
	sub := schema.Subcommands["serve"]
	assert.NotNil(t, sub)
	assert.Equal(t, sub.Name, "serve")
	assert.Equal(t, sub.Executable, "./serve.sh")
}

func TestCompile_SubcommandsExcludePositionals(t *testing.T) {
	doc := &config.Document{
		Name:       "app",
		Executable: "./app.sh",
		Args: []map[string]config.Arg{
			{"target": {}},
		},
		Subcommands: map[string]*config.Document{
			"serve": {Executable: "./serve.sh"},
		},
	}
	_, err := Compile(doc)
	assert.NotNil(t, err)
	assert.True(t, stderrs.Is(err, clierr.ErrSchema))
}

func TestCompile_SubcommandErrorsPropagate(t *testing.T) {
	doc := &config.Document{
		Name: "app",
		Subcommands: map[string]*config.Document{
			"serve": {
				Executable: "./serve.sh",
				Args: []map[string]config.Arg{
					{"port": {Long: "port", ArgAction: "bogus"}},
				},
			},
		},
	}
	_, err := Compile(doc)
	assert.NotNil(t, err)

	var se clierr.SchemaError
	ok := stderrs.As(err, &se)
	assert.True(t, ok)
	assert.Equal(t, se.Key, "port")
}
