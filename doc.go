// Package accounts provides a small in-memory user account registry.
//
// Registry:
//   - Records are keyed by username and owned exclusively by the registry
//     instance that created them. Lookups return copies.
//   - Register validates in a fixed order: duplicate username, password
//     length, minimum age. The first failing rule decides the error.
//   - Login compares the stored password verbatim and does not consult the
//     active flag. Passwords are kept in plaintext; this package is not a
//     credential store for production use.
//
// Concurrency:
//   - The default Registry is meant for single goroutine use. Wrap it with
//     Synchronized when several goroutines share an instance.
//
// Activity sinks:
//   - ActivitySink receives best-effort audit events for registrations,
//     login checks, deactivations and clears. Sink errors are logged and never
//     surface to the caller.
package accounts
