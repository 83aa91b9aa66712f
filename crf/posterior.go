package crf

import (
	"math"

	"github.com/soedinglab/csblast/kernel"
)

// Scores computes u_k = b_k + Σ w[·]·c_k[·,x[·]] for every state.
func Scores(c *CRF, weights []float64, x []int, anyIndex int) []float64 {
	u := make([]float64, c.NumStates())
	center := c.Center()
	for k, s := range c.States {
		u[k] = s.Bias + kernel.ScoreIndices(weights, x, anyIndex, s.ContextWeights, center)
	}
	return u
}

// logSumExp returns m + log(Σ exp(u_i - m)) with m = max(u), the natural-
// log-domain normalizer used throughout the CRF path.
func logSumExp(u []float64) (m, lse float64) {
	m = math.Inf(-1)
	for _, v := range u {
		if v > m {
			m = v
		}
	}
	var sum float64
	for _, v := range u {
		sum += math.Exp(v - m)
	}
	return m, m + math.Log(sum)
}

// Posterior computes P(z=k|x) for every state via the log-sum-exp softmax
// of Scores.
func Posterior(c *CRF, weights []float64, x []int, anyIndex int) []float64 {
	u := Scores(c, weights, x, anyIndex)
	_, lse := logSumExp(u)
	p := make([]float64, len(u))
	for k, v := range u {
		p[k] = math.Exp(v - lse)
	}
	return p
}

// MixedPseudocount computes p(a) = Σ_k P(z=k|·)·softmax(q_k)[a].
func MixedPseudocount(c *CRF, posterior []float64) []float64 {
	out := make([]float64, c.AlphabetSize())
	for k, s := range c.States {
		pc := s.Pseudocount()
		for a, v := range pc {
			out[a] += posterior[k] * v
		}
	}
	return out
}
