// Package app wires application dependencies for the CLI.
//
// It loads Config (YAML, environment-expanded), builds the logger, the
// metrics recorder and the key and signature services, and exposes them via
// the Wire struct for commands to use.
package app
