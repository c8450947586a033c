// Package cli provides the interactive ledger command-line client.
//
// It wires configuration, the configured storage substrate and the account
// services into two front ends: an interactive REPL (App.Run) and one-shot
// subcommands (see Commands) that log in, run a single operation and exit.
//
// Key features:
//   - Register / Login / Logout
//   - Add a value, list values, show the total
//   - Clear all values after confirmation
//
// All user-visible text is produced here; the services only classify errors.
package cli
