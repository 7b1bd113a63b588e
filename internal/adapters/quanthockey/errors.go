package quanthockey

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrParseFailed = errors.New("stats page parse failed")
)
