// Package context implements the generative context library: a mixture of
// positional profile components with prior weights and pseudocount
// vectors, trained by expectation-maximization and queried
// for posteriors and mixed pseudocounts.
//
// What:
//
//   - Component: one mixture element — a W x A profile (log- or
//     linear-space), a prior π_k, and a pseudocount vector p_k.
//   - Library: an ordered, homogeneous set of components.
//   - Posterior/MixedPseudocount/Admix: P(z=k|window) and the resulting mixed pseudocount
//     distribution, with optional admixture against the observed letter.
//   - Driver: the online mini-batch EM trainer.
//
// Errors:
//
//   - ErrShapeMismatch: component/library window or alphabet size mismatch.
//   - ErrZeroPosterior: all components scored to zero probability mass on
//     a training pair, a fatal numerical fault.
//   - ErrNotLogSpace: an indices-based score was requested against a
//     component whose profile is not in log-space.
package context
