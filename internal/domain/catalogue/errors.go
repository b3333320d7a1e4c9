package catalogue

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrUnknownRole     = errors.New("unknown role")
	ErrUnknownCategory = errors.New("unknown category")
)
