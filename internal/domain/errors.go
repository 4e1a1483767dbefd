package domain

import "errors"

// ErrValidation indicates a malformed or incomplete request payload.
// Individual validation failures wrap it with field context.
var ErrValidation = errors.New("invalid data")
