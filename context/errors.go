package context

import "errors"

var (
	// ErrShapeMismatch indicates a component/library window or alphabet
	// size mismatch, a background length mismatch, or an out-of-range EM
	// configuration value.
	ErrShapeMismatch = errors.New("context: shape mismatch")
	// ErrZeroPosterior indicates every component scored to zero probability
	// mass on a training pair: a fatal numerical fault.
	ErrZeroPosterior = errors.New("context: sum of posteriors is zero")
	// ErrNotLogSpace indicates an indices-based score was requested against
	// a component whose profile is not tagged log-space.
	ErrNotLogSpace = errors.New("context: component profile must be log-space for indices scoring")
	// ErrEmptyLibrary indicates a library was constructed with zero components.
	ErrEmptyLibrary = errors.New("context: library must have at least one component")
	// ErrBadAdmixture indicates an admixture coefficient is outside [0, 1].
	ErrBadAdmixture = errors.New("context: admixture must be in [0, 1]")
	// ErrNotConverged is a non-fatal signal, not an error: see Driver.Run's
	// returned converged boolean instead. Retained here only as a sentinel
	// for callers that want to treat exhaustion as an error explicitly.
	ErrNotConverged = errors.New("context: max_scans exhausted before convergence")
)
