package epubgen

import "errors"

// Input-shape errors returned by Generate before any output is produced.
// Malformed chapter content is never an error; it is repaired or stripped.
var (
	ErrMissingTitle       = errors.New("epubgen: request has no title")
	ErrMissingAuthor      = errors.New("epubgen: request has no author")
	ErrNoChapters         = errors.New("epubgen: request has no chapters")
	ErrMissingDestination = errors.New("epubgen: request has no destination path")
)
