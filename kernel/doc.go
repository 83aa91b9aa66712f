// Package kernel implements the positional-weighted emission/context
// scoring kernel shared by context libraries and CRFs. It
// has no notion of components, states, or training; it only knows how to
// turn a window of column parameters and a positional weight schedule into
// a score against a count profile, a concrete sequence, or (with an
// externally added bias) a CRF state.
//
// Two functions share one positional-weight schedule:
//
//   - ScoreCountProfile: dot-product score against a profile subject,
//     log-space or linear-space depending on a caller-supplied flag.
//   - ScoreIndices: lookup score against a concrete sequence/window of
//     alphabet indices, skipping "any" positions. The CRF-state shape is
//     this score plus a bias the caller adds.
//
// Both accept partial overlap at subject boundaries; weights outside the
// subject simply do not contribute.
package kernel
