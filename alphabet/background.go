package alphabet

import "fmt"

// Background is a distribution f(a) over an alphabet, used as a reference
// in log-likelihood denominators. It never participates
// in scoring directly; it only rescales likelihood against a null model.
type Background struct {
	alphabet *Alphabet
	f        []float64
}

// NewBackground builds a background distribution from per-index
// frequencies that must sum to 1 within 1e-6 and have length equal to the
// alphabet size.
func NewBackground(a *Alphabet, f []float64) (*Background, error) {
	if len(f) != a.Len() {
		return nil, ErrBackgroundShape
	}
	var sum float64
	for _, v := range f {
		sum += v
	}
	if sum < 1-1e-6 || sum > 1+1e-6 {
		return nil, fmt.Errorf("%w: got %v", ErrBackgroundSum, sum)
	}
	cp := make([]float64, len(f))
	copy(cp, f)
	return &Background{alphabet: a, f: cp}, nil
}

// F returns f(a) for ordinary index a.
func (b *Background) F(a int) float64 { return b.f[a] }

// Len returns A.
func (b *Background) Len() int { return len(b.f) }

// Alphabet returns the alphabet this background is defined over.
func (b *Background) Alphabet() *Alphabet { return b.alphabet }

// AminoBackground returns the Robinson & Robinson (1991) standard amino
// acid background frequencies, in the canonical order used by Amino().
func AminoBackground() *Background {
	bg, err := NewBackground(Amino(), []float64{
		0.078, // A
		0.019, // C
		0.054, // D
		0.063, // E
		0.039, // F
		0.074, // G
		0.023, // H
		0.052, // I
		0.058, // K
		0.088, // L
		0.022, // M
		0.044, // N
		0.052, // P
		0.040, // Q
		0.052, // R
		0.071, // S
		0.058, // T
		0.066, // V
		0.014, // W
		0.033, // Y
	})
	if err != nil {
		panic(err) // unreachable: table sums to 1 by construction
	}
	return bg
}

// NucleicBackground returns a uniform nucleotide background.
func NucleicBackground() *Background {
	bg, err := NewBackground(Nucleic(), []float64{0.25, 0.25, 0.25, 0.25})
	if err != nil {
		panic(err)
	}
	return bg
}

// Substitution holds a substitution matrix supplying conditional
// frequencies f(a|b), used only as a reference in some log-likelihood
// computations. It is derived from a joint target-frequency
// matrix q(a,b) and a background distribution: f(a|b) = q(a,b) / f(b).
type Substitution struct {
	alphabet *Alphabet
	cond     [][]float64 // cond[a][b] = f(a|b)
}

// NewSubstitution builds a substitution matrix from a symmetric joint
// target-frequency matrix q and a matching background distribution.
func NewSubstitution(a *Alphabet, q [][]float64, bg *Background) (*Substitution, error) {
	n := a.Len()
	if len(q) != n {
		return nil, ErrSubstitutionShape
	}
	cond := make([][]float64, n)
	for i := 0; i < n; i++ {
		if len(q[i]) != n {
			return nil, ErrSubstitutionShape
		}
		cond[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if bg.F(j) == 0 {
				continue
			}
			cond[i][j] = q[i][j] / bg.F(j)
		}
	}
	return &Substitution{alphabet: a, cond: cond}, nil
}

// Conditional returns f(a|b).
func (s *Substitution) Conditional(a, b int) float64 { return s.cond[a][b] }

// Alphabet returns the alphabet this substitution matrix is defined over.
func (s *Substitution) Alphabet() *Alphabet { return s.alphabet }
