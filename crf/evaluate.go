package crf

import (
	"math"
	"sync"

	"github.com/soedinglab/csblast/profile"
)

// EvaluationConfig bundles the shared inputs to a likelihood/gradient
// evaluation: the positional weight schedule, the background distribution,
// the alphabet's "any" sentinel index, and the worker count for the
// per-training-pair parallel reduction.
type EvaluationConfig struct {
	Weights    []float64
	Background []float64
	AnyIndex   int
	Workers    int
}

// Evaluate computes the conditional log-likelihood L and its gradient g_L
// over a contiguous slice of training pairs, parallelized by training-pair index with thread-local
// accumulators merged at a join barrier in worker-id order.
func Evaluate(c *CRF, pairs []*profile.TrainingPair, cfg EvaluationConfig) (float64, *Gradient, error) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > len(pairs) {
		workers = len(pairs)
	}
	if workers == 0 {
		return 0, NewGradient(c.NumStates(), c.Width, c.AlphabetSize()), nil
	}
	ranges := partitionContiguous(len(pairs), workers)

	partialL := make([]float64, len(ranges))
	partialG := make([]*Gradient, len(ranges))
	errs := make([]error, len(ranges))

	// Precompute every state's pseudocount distribution once: it does not
	// depend on the training pair.
	pc := make([][]float64, c.NumStates())
	for k, s := range c.States {
		pc[k] = s.Pseudocount()
	}

	var wg sync.WaitGroup
	for wi, r := range ranges {
		wg.Add(1)
		go func(wi int, r blockRange) {
			defer wg.Done()
			localG := NewGradient(c.NumStates(), c.Width, c.AlphabetSize())
			var localL float64
			for _, pair := range pairs[r.start:r.end] {
				ll, err := accumulatePair(c, pc, pair, cfg, localG)
				if err != nil {
					errs[wi] = err
					return
				}
				localL += ll
			}
			partialL[wi] = localL
			partialG[wi] = localG
		}(wi, r)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return 0, nil, err
		}
	}

	totalG := NewGradient(c.NumStates(), c.Width, c.AlphabetSize())
	var totalL float64
	for wi := range ranges {
		totalG.AddFrom(partialG[wi])
		totalL += partialL[wi]
	}
	return totalL, totalG, nil
}

// accumulatePair computes one training pair's contribution to L and adds
// its contribution to g_L in place.
func accumulatePair(c *CRF, pc [][]float64, pair *profile.TrainingPair, cfg EvaluationConfig, g *Gradient) (float64, error) {
	u := Scores(c, cfg.Weights, pair.X, cfg.AnyIndex)
	_, lse := logSumExp(u)

	K := c.NumStates()
	P := make([]float64, K)
	for k, v := range u {
		P[k] = math.Exp(v - lse)
	}

	A := c.AlphabetSize()
	r := make([]float64, A)
	for k := range P {
		for a := 0; a < A; a++ {
			r[a] += P[k] * pc[k][a]
		}
	}

	var ll float64
	for a, y := range pair.Y {
		if y == 0 {
			continue
		}
		if r[a] <= 0 {
			return 0, ErrZeroNormalizer
		}
		ll += y * (math.Log(r[a]) - math.Log(cfg.Background[a]))
	}

	for k := 0; k < K; k++ {
		var phi, psi float64
		for a, y := range pair.Y {
			if r[a] > 0 {
				phi += y * (pc[k][a]/r[a] - 1)
				psi += pc[k][a] * y / r[a]
			}
		}
		g.Bias[k] += P[k] * phi

		for j := 0; j < c.Width; j++ {
			idx := pair.X[j]
			if idx == cfg.AnyIndex {
				continue
			}
			g.Context[k][j][idx] += P[k] * phi * cfg.Weights[j]
		}

		for a := 0; a < A; a++ {
			if r[a] <= 0 {
				continue
			}
			y := pair.Y[a]
			g.PseudocountWeight[k][a] += P[k] * pc[k][a] * (y/r[a] - psi)
		}
	}
	return ll, nil
}

type blockRange struct{ start, end int }

// partitionContiguous splits [0,n) into numBlocks contiguous, near-equal
// ranges.
func partitionContiguous(n, numBlocks int) []blockRange {
	if numBlocks > n {
		numBlocks = n
	}
	if numBlocks <= 0 {
		numBlocks = 1
	}
	base := n / numBlocks
	rem := n % numBlocks
	ranges := make([]blockRange, 0, numBlocks)
	start := 0
	for i := 0; i < numBlocks; i++ {
		size := base
		if i < rem {
			size++
		}
		ranges = append(ranges, blockRange{start, start + size})
		start += size
	}
	return ranges
}
