// Package ffmpeg builds and runs ffmpeg invocations for the handful of
// operations camkit needs: stream-copy concatenation, synchronized speed
// changes, slicing, scaling, muting, and subtitle burns. The package never
// decodes media itself; it only shapes arguments and reports engine
// failures with their diagnostics attached.
package ffmpeg
