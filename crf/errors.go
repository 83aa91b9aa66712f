package crf

import "errors"

var (
	// ErrShapeMismatch indicates a state/CRF window or alphabet size mismatch.
	ErrShapeMismatch = errors.New("crf: shape mismatch")
	// ErrEmptyCRF indicates a CRF was constructed with zero states.
	ErrEmptyCRF = errors.New("crf: must have at least one state")
	// ErrZeroNormalizer indicates a training pair's predicted pseudocount
	// mass on a letter with positive target mass was zero or negative: a
	// fatal numerical fault that callers should surface rather than mask.
	ErrZeroNormalizer = errors.New("crf: predicted pseudocount mass is non-positive for a letter with positive target mass")
	// ErrBadSigma indicates a non-positive regularization width.
	ErrBadSigma = errors.New("crf: sigma_context, sigma_decay, and sigma_bias must be positive")
	// ErrBlockRange indicates an invalid (b, B) block specification.
	ErrBlockRange = errors.New("crf: block index must satisfy 0 <= b < B")
)
