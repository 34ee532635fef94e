package merge

import "errors"

// Pipeline error taxonomy. Every failure is fatal for the run; cleanup of
// intermediates still happens before the error surfaces.
var (
	// ErrNoMatchingFiles means discovery produced nothing to merge.
	ErrNoMatchingFiles = errors.New("no matching files")
	// ErrInputNotFound means a discovered path vanished before manifest build.
	ErrInputNotFound = errors.New("input file not found")
	// ErrProbe means the engine could not report duration or streams.
	ErrProbe = errors.New("probe failed")
	// ErrConcat means the stream-copy concatenation invocation failed.
	ErrConcat = errors.New("concat failed")
	// ErrTranscode means the speed-change invocation failed.
	ErrTranscode = errors.New("transcode failed")
)
