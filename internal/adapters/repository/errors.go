package repository

import "errors"

// Sentinel kinds for pool-store errors.
var (
	ErrNotFound     = errors.New("player not found")
	ErrInvalidLimit = errors.New("invalid ranking limit")
)
