// Package app wires application dependencies for the CLI.
//
// It builds the concrete stores, the prover and the high-level services from
// Config, exposing them via the Wire struct and the App handle commands use.
package app
