package nhl

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrDecodeFailed = errors.New("roster decode failed")
)
