// Package crf implements the discriminative conditional random field model
// shape: a set of linear state scorers (bias + positional context weights)
// combined with per-state pseudocount logits, trained by regularized
// gradient optimization of conditional log-likelihood.
//
// What:
//
//   - State: a bias, a W x A context-weight matrix, and a pseudocount
//     logit vector whose softmax is the state's effective pseudocount
//     distribution.
//   - CRF: an ordered, homogeneous set of states.
//   - Posterior: softmax (natural-log-sum-exp) normalization over states
//     and the resulting mixed pseudocount distribution.
//   - Evaluator: the conditional log-likelihood, its gradient, the
//     Gaussian prior, and its gradient, for a contiguous block of training
//     pairs — the performance-critical routine of the engine.
//
// Unlike package context, which works in base-2 log space throughout, the
// CRF path uses natural log/exp exclusively for its softmax normalization.
//
// Errors:
//
//   - ErrShapeMismatch: state/CRF window or alphabet size mismatch.
//   - ErrZeroNormalizer: a training pair's predicted pseudocount mass on a
//     letter with positive target mass is zero, a fatal numerical fault.
package crf
