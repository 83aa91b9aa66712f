package optimize

import "errors"

// ErrOracleFailed wraps an error surfaced by the oracle during an
// optimizer step, e.g. a zero normalizer encountered while scoring a pair.
var ErrOracleFailed = errors.New("optimize: oracle evaluation failed")
