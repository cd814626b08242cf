package linhash

import "errors"

// ErrInvalidInitSize is returned by New when the requested initial bucket
// count is zero or not a power of two.
var ErrInvalidInitSize = errors.New("linhash: init size must be a positive power of two")

// ErrInvalidLoadFactor is returned by New when the requested max load
// factor is not strictly positive.
var ErrInvalidLoadFactor = errors.New("linhash: max load factor must be positive")
