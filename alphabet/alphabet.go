package alphabet

import "fmt"

// Residue is a single symbol drawn from an alphabet: an amino acid, a
// nucleotide, or the distinguished "any"/wildcard letter.
type Residue byte

// Alphabet is an ordered, fixed-size set of residues plus a distinguished
// "any" symbol. It is an immutable handle: once built it is shared
// read-only by every constructor that takes one, never mutated, and never
// kept behind a package-level singleton.
type Alphabet struct {
	symbols []Residue
	index   map[Residue]int
	any     Residue
}

// New builds an alphabet from an ordered, duplicate-free symbol list and a
// distinguished "any" residue. The any residue need not (and normally does
// not) appear in symbols; its index, returned by IndexAny, is always len(symbols)
// so that comparisons of the form idx >= A correctly identify it as
// distinguished from every ordinary letter, per the any-symbol invariant.
func New(symbols []Residue, any Residue) (*Alphabet, error) {
	if len(symbols) == 0 {
		return nil, ErrEmptyAlphabet
	}
	index := make(map[Residue]int, len(symbols))
	for i, r := range symbols {
		if _, ok := index[r]; ok {
			return nil, fmt.Errorf("%w: %c", ErrDuplicateSymbol, r)
		}
		index[r] = i
	}
	cp := make([]Residue, len(symbols))
	copy(cp, symbols)
	return &Alphabet{symbols: cp, index: index, any: any}, nil
}

// Len returns A, the number of ordinary symbols in the alphabet.
func (a *Alphabet) Len() int { return len(a.symbols) }

// Index returns the position of r in the alphabet. If r is the "any"
// residue, or any other residue outside the ordinary symbol list, it
// returns A (i.e. Len()) and false.
func (a *Alphabet) Index(r Residue) (int, bool) {
	if i, ok := a.index[r]; ok {
		return i, true
	}
	return a.Len(), false
}

// IndexAny is like Index but never fails: unknown residues (including the
// any residue) collapse to the sentinel index A, which by construction
// compares >= A for every ordinary letter.
func (a *Alphabet) IndexAny(r Residue) int {
	if i, ok := a.index[r]; ok {
		return i
	}
	return a.Len()
}

// Symbol returns the residue at ordinary index i. Panics if i is out of
// [0, Len()); callers are expected to have validated shapes at
// construction, per the "fatal at construction, not at use" error policy.
func (a *Alphabet) Symbol(i int) Residue {
	return a.symbols[i]
}

// Symbols returns the ordered symbol list. The returned slice must not be
// mutated by the caller.
func (a *Alphabet) Symbols() []Residue { return a.symbols }

// Any returns the distinguished "any" residue.
func (a *Alphabet) Any() Residue { return a.any }

// IsAny reports whether idx is the sentinel "any" index, i.e. idx >= Len().
func (a *Alphabet) IsAny(idx int) bool { return idx >= a.Len() }

// String renders the alphabet's ordinary symbols in order, e.g.
// "ACDEFGHIKLMNPQRSTVWY".
func (a *Alphabet) String() string {
	bs := make([]byte, len(a.symbols))
	for i, r := range a.symbols {
		bs[i] = byte(r)
	}
	return string(bs)
}

// Amino is the canonical 20-letter amino-acid alphabet in alphabetical
// order, with 'X' as the any/wildcard residue.
func Amino() *Alphabet {
	a, err := New([]Residue("ACDEFGHIKLMNPQRSTVWY"), 'X')
	if err != nil {
		panic(err) // unreachable: the literal above is duplicate-free
	}
	return a
}

// Nucleic is the canonical 4-letter nucleotide alphabet, with 'N' as the
// any/wildcard residue.
func Nucleic() *Alphabet {
	a, err := New([]Residue("ACGT"), 'N')
	if err != nil {
		panic(err)
	}
	return a
}
