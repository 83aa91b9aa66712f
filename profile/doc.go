// Package profile holds the count/frequency profile and training-pair data
// shapes exchanged between the engine and its collaborators (the alignment
// reader and the pairwise search driver, both out of scope here).
//
// What:
//
//   - CountProfile: a W x A matrix of residue counts or frequencies for a
//     window of W columns, plus a per-column effective sequence count.
//   - TrainingPair: a window x[W] of alphabet indices with a target
//     distribution y[A], the unit of work for EM and CRF training.
//
// Errors:
//
//   - ErrShapeMismatch: alphabet size or window width does not match.
//   - ErrWindowNotOdd: a window width used as a context window is even.
//   - ErrNegativeCount: a negative count/frequency was supplied.
//   - ErrNeffTooSmall: N_eff < 1 for some column.
package profile
