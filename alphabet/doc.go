// Package alphabet defines the ordered symbol set shared by every other
// package in the engine: amino-acid or nucleotide residues, a distinguished
// "any" wildcard, a background distribution, and a substitution matrix used
// only as a reference denominator in log-likelihood computations.
//
// The alphabet is an immutable handle constructed once and threaded through
// every constructor that needs it; there is no process-wide singleton.
package alphabet
