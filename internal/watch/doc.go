// Package watch runs periodic sync-and-merge cycles under a single-instance
// file lock.
package watch
