package sdk

import "errors"

var (
	// ErrHandlerNil is returned when the provided function handler is nil.
	ErrHandlerNil = errors.New("function handler cannot be nil")
)
