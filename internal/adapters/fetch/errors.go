package fetch

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrFetchFailed = errors.New("fetch failed")
	ErrBadStatus   = errors.New("unexpected status")
)
