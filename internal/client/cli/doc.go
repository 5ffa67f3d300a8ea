// Package cli provides the interactive staffscore command-line client.
//
// It wires configuration and the HTTP API client into a small REPL. Typical
// flow: sign up (picking the store through the country, company and branch
// lists), log in, then record and review scores.
//
// Key features:
//   - Signup / Login / Refresh / Logout
//   - Store lookup by country, company and branch
//   - Add a score and show the latest ones
//   - Browse learning resources and quiz questions
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
