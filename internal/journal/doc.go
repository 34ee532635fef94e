// Package journal records merge and sync run history in a local SQLite
// database so past runs can be inspected from the CLI.
package journal
