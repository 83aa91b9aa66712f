package profile

import "errors"

var (
	// ErrShapeMismatch indicates a width, sequence length, or target length
	// that does not match the profile or alphabet, or a frequency column that
	// does not sum to 1.
	ErrShapeMismatch = errors.New("profile: shape mismatch")
	// ErrWindowNotOdd indicates a window width used as a context window is even.
	ErrWindowNotOdd = errors.New("profile: window width must be odd")
	// ErrNegativeCount indicates a negative count or frequency was supplied.
	ErrNegativeCount = errors.New("profile: counts/frequencies must be non-negative")
	// ErrNeffTooSmall indicates a column's effective sequence count is below 1.
	ErrNeffTooSmall = errors.New("profile: N_eff must be >= 1")
	// ErrTargetNotNormalized indicates a training pair target does not sum to 1.
	ErrTargetNotNormalized = errors.New("profile: training pair target must sum to 1")
)
