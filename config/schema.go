package config

import "github.com/santhosh-tekuri/jsonschema/v5"

// documentSchema is the structural contract for the configuration
// document. Everything semantic (uniqueness, action/arity consistency,
// positional ordering) is the schema compiler's job; this layer only
// rejects shapes the compiler should never see, such as an args entry
// with more than one key or an unrecognized field.
var documentSchema = jsonschema.MustCompileString("clap-bash/config.schema.json", `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"$defs": {
		"document": {
			"type": "object",
			"properties": {
				"name":        {"type": "string"},
				"about":       {"type": "string"},
				"version":     {"type": "string"},
				"executable":  {"type": "string"},
				"args": {
					"type": "array",
					"items": {
						"type": "object",
						"minProperties": 1,
						"maxProperties": 1,
						"additionalProperties": {"$ref": "#/$defs/arg"}
					}
				},
				"subcommands": {
					"type": "object",
					"additionalProperties": {"$ref": "#/$defs/document"}
				}
			},
			"additionalProperties": false
		},
		"arg": {
			"type": "object",
			"properties": {
				"long":             {"type": "string"},
				"short":            {"type": "string", "minLength": 1, "maxLength": 1},
				"value_name":       {"type": "string"},
				"help":             {"type": "string"},
				"required":         {"type": "boolean"},
				"arg_action":       {"enum": ["set", "append", "count", "set_true", "flag"]},
				"number_of_values": {"type": "integer", "minimum": 0},
				"multiple":         {"type": "boolean"},
				"env_var":          {"type": "string"}
			},
			"additionalProperties": false
		}
	},
	"$ref": "#/$defs/document"
}`)
