// Command camkit is the CLI for the camera footage toolkit: device sync,
// daily merge with duration normalization, clip inspection, and small
// stream-copy edits.
package main
