package tableio

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrUnsupportedFormat = errors.New("unsupported table format")
	ErrLoadTable         = errors.New("load table failed")
)
