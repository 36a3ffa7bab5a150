// Package cli provides the interactive CoachDesk terminal console.
//
// It wires configuration, the local state database, the HTTP API adapter,
// and an interactive REPL over the store tree. Typical flow: restore the
// persisted session, resolve the current user, and execute admin or trainer
// commands against the backend.
//
// Key features:
//   - Login / Signup / Logout with persisted sessions
//   - Admin user management: list, search, delete, role changes
//   - Trainer workflows: trainees, certificates, videos, reviews
//   - Admin verification queue and moderation reports
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
