package profile

import (
	"fmt"
	"math"

	"github.com/soedinglab/csblast/alphabet"
)

// CountProfile is a W x A matrix of non-negative residue counts or
// frequencies for a window of W columns, plus a per-column effective
// sequence count N_eff >= 1. When IsCounts is false, every column must sum
// to 1 within epsilon; counts and frequencies are related by
// counts = frequencies * N_eff.
type CountProfile struct {
	alphabet *alphabet.Alphabet
	values   [][]float64 // values[col][letter]
	neff     []float64
	isCounts bool
}

const normEpsilon = 1e-6

// New builds a zeroed count profile of the given width over a, tagged as
// holding counts (isCounts=true) or frequencies (isCounts=false). N_eff
// defaults to 1 for every column.
func New(a *alphabet.Alphabet, width int, isCounts bool) (*CountProfile, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: width must be positive", ErrShapeMismatch)
	}
	values := make([][]float64, width)
	neff := make([]float64, width)
	for i := range values {
		values[i] = make([]float64, a.Len())
		neff[i] = 1
	}
	return &CountProfile{alphabet: a, values: values, neff: neff, isCounts: isCounts}, nil
}

// Width returns W, the number of columns.
func (p *CountProfile) Width() int { return len(p.values) }

// AlphabetSize returns A.
func (p *CountProfile) AlphabetSize() int { return p.alphabet.Len() }

// Alphabet returns the profile's alphabet.
func (p *CountProfile) Alphabet() *alphabet.Alphabet { return p.alphabet }

// IsCounts reports whether the stored values are raw counts (true) or
// normalized frequencies (false).
func (p *CountProfile) IsCounts() bool { return p.isCounts }

// At returns the value at column col, letter a.
func (p *CountProfile) At(col, a int) float64 { return p.values[col][a] }

// Set assigns the value at column col, letter a. Negative values are
// rejected.
func (p *CountProfile) Set(col, a int, v float64) error {
	if v < 0 {
		return ErrNegativeCount
	}
	p.values[col][a] = v
	return nil
}

// Column returns a copy of column col.
func (p *CountProfile) Column(col int) []float64 {
	out := make([]float64, len(p.values[col]))
	copy(out, p.values[col])
	return out
}

// NEff returns the effective sequence count for column col.
func (p *CountProfile) NEff(col int) float64 { return p.neff[col] }

// SetNEff assigns the effective sequence count for column col. Values below
// 1 are rejected per the N_eff >= 1 invariant.
func (p *CountProfile) SetNEff(col int, n float64) error {
	if n < 1 {
		return ErrNeffTooSmall
	}
	p.neff[col] = n
	return nil
}

// AddSequence increments counts for a concrete window of residues, one per
// column, skipping any column whose residue is the alphabet's "any" symbol.
// The profile must already be tagged as holding counts.
func (p *CountProfile) AddSequence(seq []alphabet.Residue) error {
	if len(seq) != p.Width() {
		return fmt.Errorf("%w: sequence length %d, profile width %d",
			ErrShapeMismatch, len(seq), p.Width())
	}
	if !p.isCounts {
		return fmt.Errorf("%w: AddSequence requires a counts profile", ErrShapeMismatch)
	}
	for col, r := range seq {
		idx, ok := p.alphabet.Index(r)
		if !ok {
			continue // "any" or unrecognized residue contributes no count
		}
		p.values[col][idx]++
	}
	return nil
}

// ToFrequencies returns a new profile with each column normalized to sum to
// 1. N_eff values are carried over unchanged. Columns that sum to zero are
// left as all-zero (no evidence to distribute).
func (p *CountProfile) ToFrequencies() *CountProfile {
	out := &CountProfile{
		alphabet: p.alphabet,
		values:   make([][]float64, p.Width()),
		neff:     append([]float64(nil), p.neff...),
		isCounts: false,
	}
	for col := range p.values {
		row := make([]float64, p.AlphabetSize())
		var total float64
		for _, v := range p.values[col] {
			total += v
		}
		if total > 0 {
			for a, v := range p.values[col] {
				row[a] = v / total
			}
		}
		out.values[col] = row
	}
	return out
}

// ToCounts returns a new profile with each column scaled by its N_eff,
// converting a frequency profile into a counts profile.
func (p *CountProfile) ToCounts() *CountProfile {
	out := &CountProfile{
		alphabet: p.alphabet,
		values:   make([][]float64, p.Width()),
		neff:     append([]float64(nil), p.neff...),
		isCounts: true,
	}
	for col := range p.values {
		row := make([]float64, p.AlphabetSize())
		for a, v := range p.values[col] {
			row[a] = v * p.neff[col]
		}
		out.values[col] = row
	}
	return out
}

// Validate checks the column-normalization invariant for frequency
// profiles: every column with nonzero total must sum to 1 within
// normEpsilon (all-zero columns are accepted). Counts profiles need no
// normalization and are only checked for negative entries.
func (p *CountProfile) Validate() error {
	if p.isCounts {
		for col := range p.values {
			for a, v := range p.values[col] {
				if v < 0 {
					return fmt.Errorf("%w: column %d letter %d", ErrNegativeCount, col, a)
				}
			}
		}
		return nil
	}
	for col := range p.values {
		var sum float64
		for _, v := range p.values[col] {
			sum += v
		}
		if sum == 0 {
			continue
		}
		if math.Abs(sum-1) > normEpsilon {
			return fmt.Errorf("%w: column %d sums to %v", ErrShapeMismatch, col, sum)
		}
	}
	return nil
}
