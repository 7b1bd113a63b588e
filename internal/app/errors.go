package app

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrNotConfigured = errors.New("pipeline not configured")
	ErrNoData        = errors.New("no data fetched from any source")
)
