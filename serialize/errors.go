package serialize

import "errors"

var (
	// ErrMalformedRecord indicates a record missing a required header
	// field, an unexpected type tag, or a body line with the wrong number
	// of columns.
	ErrMalformedRecord = errors.New("serialize: malformed record")
	// ErrTruncatedRecord indicates end-of-input before a record's "//"
	// terminator was reached.
	ErrTruncatedRecord = errors.New("serialize: truncated record")
	// ErrShapeMismatch indicates a declared count (num_profiles, nstates,
	// ncols, alph) did not match the number of records or columns actually
	// present.
	ErrShapeMismatch = errors.New("serialize: shape mismatch")
)
