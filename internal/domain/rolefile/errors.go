package rolefile

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrRoleFile marks any structural violation of the role-file grammar.
	ErrRoleFile = errors.New("invalid role file")
)
