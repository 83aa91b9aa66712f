package kernel

import "errors"

var (
	// ErrWindowNotOdd indicates a configured window width is not odd.
	ErrWindowNotOdd = errors.New("kernel: window width must be odd")
	// ErrBadWeight indicates weight_center or weight_decay is out of its
	// documented range.
	ErrBadWeight = errors.New("kernel: weight_center must be > 0 and weight_decay must be in (0, 1]")
	// ErrColumnShape indicates a component's column count does not match
	// the configured window width.
	ErrColumnShape = errors.New("kernel: component column count must equal window width")
)
