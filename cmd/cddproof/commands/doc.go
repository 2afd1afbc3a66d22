// Package commands defines the cddproof CLI and wires dependencies for subcommands.
//
// Commands
//
//   - claim new      Issue a claim with a fresh investor unique ID
//   - claim import   Import a plaintext claim file into the encrypted store
//   - claim list     List stored claims
//   - cdd-id         Print the CDD identifier of a claim
//   - scope-id       Print the scope identifier of a claim for a scope
//   - prove          Create a proof for one claim, or every claim with --all
//   - verify         Verify one proof record
//   - verify-all     Verify every proof record in a directory
//
// # Implementation
//
// The root command resolves the home directory, builds a slog logger on
// stderr and the dependency graph (stores, prover, services) before any
// subcommand runs. Identifiers are printed as lowercase hex on stdout.
package commands
