package context

import (
	"math"

	"github.com/soedinglab/csblast/kernel"
)

// Posterior computes P(z=k | x) for every component in the library against
// a concrete window of alphabet indices:
// unnormalized r_k = π_k · 2^score(k,·), normalized across k. Every
// component's profile must be log-space (the additive score formula for a
// concrete window only has log2-score semantics when the profile already
// holds log2 values).
//
// The normalization is computed with a base-2 log-sum-exp shift for
// numerical stability; this does not change the mathematical result, only
// its conditioning.
func Posterior(lib *Library, weights []float64, x []int, anyIndex int) ([]float64, error) {
	u := make([]float64, lib.NumComponents())
	for k, c := range lib.Components {
		if !c.LogSpace {
			return nil, ErrNotLogSpace
		}
		score := kernel.ScoreIndices(weights, x, anyIndex, c.Profile, lib.Center())
		if c.Prior <= 0 {
			u[k] = math.Inf(-1)
		} else {
			u[k] = math.Log2(c.Prior) + score
		}
	}
	return softmax2(u)
}

// softmax2 normalizes a vector of log2-unnormalized weights into a
// probability distribution, using a max-shift for stability. Returns
// ErrZeroPosterior if every entry is -Inf, since a zero sum during
// normalization is a fatal numerical fault.
func softmax2(u []float64) ([]float64, error) {
	m := math.Inf(-1)
	for _, v := range u {
		if v > m {
			m = v
		}
	}
	if math.IsInf(m, -1) {
		return nil, ErrZeroPosterior
	}
	p := make([]float64, len(u))
	var sum float64
	for k, v := range u {
		p[k] = math.Exp2(v - m)
		sum += p[k]
	}
	if sum == 0 {
		return nil, ErrZeroPosterior
	}
	for k := range p {
		p[k] /= sum
	}
	return p, nil
}

// MixedPseudocount computes p(a) = Σ_k P(z=k|·) · p_k[a] from a posterior
// vector.
func MixedPseudocount(lib *Library, posterior []float64) []float64 {
	out := make([]float64, lib.AlphabetSize())
	for k, c := range lib.Components {
		for a, v := range c.Pseudocount {
			out[a] += posterior[k] * v
		}
	}
	return out
}

// Admix blends an observed center letter against a predicted pseudocount
// distribution: p'(a) = (1-τ)·δ(center=a) + τ·p(a), with τ in [0,1].
// centerLetter is the alphabet index of the observed center residue; if it
// is the "any" sentinel (>= alphabetSize), no mass is assigned to the delta
// term.
func Admix(p []float64, centerLetter int, tau float64) ([]float64, error) {
	if tau < 0 || tau > 1 {
		return nil, ErrBadAdmixture
	}
	out := make([]float64, len(p))
	for a, v := range p {
		out[a] = tau * v
	}
	if centerLetter >= 0 && centerLetter < len(out) {
		out[centerLetter] += 1 - tau
	}
	return out, nil
}

// Admixture selects τ given a configured scheme: a constant,
// or a function of the effective sequence count N_eff,
// τ = a / (1 + (N_eff-1)/b).
type Admixture struct {
	Constant    bool
	Tau         float64 // used when Constant
	DivergenceA float64 // used when !Constant
	DivergenceB float64
}

// ConstantAdmixture returns an admixture scheme with a fixed τ.
func ConstantAdmixture(tau float64) Admixture {
	return Admixture{Constant: true, Tau: tau}
}

// DivergenceDependentAdmixture returns a, b-parameterized admixture scheme.
func DivergenceDependentAdmixture(a, b float64) Admixture {
	return Admixture{Constant: false, DivergenceA: a, DivergenceB: b}
}

// Resolve computes τ for a given N_eff.
func (adm Admixture) Resolve(neff float64) float64 {
	if adm.Constant {
		return adm.Tau
	}
	return adm.DivergenceA / (1 + (neff-1)/adm.DivergenceB)
}
