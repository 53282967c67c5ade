package classifier

import "errors"

var (
	// ErrNoPatterns is returned when a pattern file contains no usable patterns.
	ErrNoPatterns = errors.New("pattern list is empty")

	// ErrParsingPatterns is returned when a pattern file cannot be decoded.
	ErrParsingPatterns = errors.New("failed to parse pattern file")
)
