package aggregate

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrInvalidRecord marks a malformed player record reaching the
	// aggregator. Validated input is a precondition; this aborts the run
	// rather than producing a silently wrong ranking.
	ErrInvalidRecord = errors.New("invalid player record")
)
