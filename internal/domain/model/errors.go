package model

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrInvalidPlayerID marks player identifiers that fail validation.
	ErrInvalidPlayerID = errors.New("invalid player id")

	// ErrTableShape marks programmer-induced shape violations: typed
	// vectors that disagree with the catalogue lengths.
	ErrTableShape = errors.New("table shape violation")
)
