package output

// Package output renders draw records for the command line as coloured text,
// JSON or YAML.
