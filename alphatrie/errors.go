package alphatrie

import "errors"

var (
	ErrEmptyAlphabet    = errors.New("alphatrie: empty alphabet")
	ErrAlphabetTooLarge = errors.New("alphatrie: alphabet has more than 64 symbols")
	ErrInvalidLength    = errors.New("alphatrie: negative key length")
	ErrLengthMismatch   = errors.New("alphatrie: key length does not match")
	ErrInvalidSymbol    = errors.New("alphatrie: invalid symbol")
)
