package exception

import "errors"

// Record and keyed-store errors
var (
	ErrNotFound        = errors.New("key not found")
	ErrMalformedRecord = errors.New("malformed record")
	ErrDuplicateKey    = errors.New("duplicate key")
)
