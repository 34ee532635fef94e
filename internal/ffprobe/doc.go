// Package ffprobe shells out to ffprobe and reduces its JSON report to the
// duration and stream facts the rest of camkit needs.
package ffprobe
