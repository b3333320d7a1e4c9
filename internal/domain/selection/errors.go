package selection

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrSelection marks structural precondition violations: wrong role
	// count or an undersized player pool.
	ErrSelection = errors.New("selection failed")
)
