// Package merge implements the duration-normalization pipeline: clips are
// joined by stream copy and, when the joined duration exceeds the target
// ceiling, time-compressed with a synchronized video timestamp rescale and
// a chained pitch-preserving audio tempo adjustment.
package merge
