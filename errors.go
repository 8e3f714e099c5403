package urldetector

import (
	"errors"

	"github.com/ravensec/urldetector/textreader"
)

// ErrMalformedURL is returned by ParseSingle when text contains zero URLs, or more than one.
var ErrMalformedURL = errors.New("urldetector: text does not contain exactly one URL")

// ErrBacktrackLimitExceeded is textreader's pathological-input guard, re-exported here so callers
// driving the public API never need to import textreader directly to recognize it with errors.As.
type ErrBacktrackLimitExceeded = textreader.ErrBacktrackLimitExceeded
