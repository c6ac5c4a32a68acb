// Package cliconfig is the CLI's external-collaborator configuration
// layer: it loads a run spec from YAML, applies .env-sourced defaults,
// and initializes the dual-sink (console + rotating file) structured
// logger the cmd/anytimectl sub-commands use. None of this is imported
// by the core packages; cliconfig depends on spec only to build a
// spec.StreamSpec/ABSpec from the parsed YAML.
package cliconfig
