package alphabet

import "errors"

var (
	// ErrEmptyAlphabet indicates an alphabet was constructed with zero symbols.
	ErrEmptyAlphabet = errors.New("alphabet: symbol list must be non-empty")
	// ErrDuplicateSymbol indicates the same residue appears twice in a symbol list.
	ErrDuplicateSymbol = errors.New("alphabet: duplicate residue in symbol list")
	// ErrUnknownSymbol indicates a residue was looked up that is not part of the alphabet.
	ErrUnknownSymbol = errors.New("alphabet: residue not in alphabet")
	// ErrBackgroundSum indicates a background distribution does not sum to 1.
	ErrBackgroundSum = errors.New("alphabet: background distribution does not sum to 1")
	// ErrBackgroundShape indicates a background distribution's length does not match the alphabet size.
	ErrBackgroundShape = errors.New("alphabet: background distribution length must equal alphabet size")
	// ErrSubstitutionShape indicates a substitution matrix is not A x A.
	ErrSubstitutionShape = errors.New("alphabet: substitution matrix must be A x A")
)
