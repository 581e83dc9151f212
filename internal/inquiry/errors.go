package inquiry

import "errors"

// Lifecycle errors. Plain sentinels so callers can match them with
// errors.Is through any wrapping.
var (
	ErrInvalidInitialState = errors.New("inquiry must start in RECEIVED state")
	ErrInvalidTransition   = errors.New("invalid inquiry state transition")
)
