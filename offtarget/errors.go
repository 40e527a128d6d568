package offtarget

import "errors"

var (
	ErrWindowLength     = errors.New("offtarget: window length must be positive")
	ErrUnboundedIndex   = errors.New("offtarget: index has no fixed key length")
	ErrIndexMode        = errors.New("offtarget: index does not record occurrences")
	ErrInvalidLength    = errors.New("offtarget: sequence length must be positive")
	ErrInvalidTolerance = errors.New("offtarget: tolerance must not be negative")
)
