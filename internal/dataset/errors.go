package dataset

import "errors"

// Dataset load error sentinels.
var (
	ErrMissingColumn  = errors.New("required column missing")
	ErrMalformedRow   = errors.New("malformed row")
	ErrInvalidOutcome = errors.New("class must be 0 or 1")
	ErrEmptyDataset   = errors.New("dataset has no records")
)
