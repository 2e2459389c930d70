package chainmap

import "errors"

var (
	ErrZeroCapacity = errors.New("chainmap: capacity must be at least 1")
	ErrNilHashFunc  = errors.New("chainmap: hash function is required")
	ErrNilEqualFunc = errors.New("chainmap: equality function is required")
	ErrClosed       = errors.New("chainmap: map is closed")
)
