package crf

import (
	"fmt"

	"github.com/soedinglab/csblast/profile"
)

// Oracle is the stable value+gradient interface the optimizer façade
// consumes: "evaluate at θ over block b of B" returning
// (L, Π, g_L, g_Π). Block b=0, B=1 denotes full-corpus evaluation; larger
// B slices the corpus (optionally permuted by Shuffle) into contiguous
// blocks for HMC-style leapfrog steps.
type Oracle struct {
	Width        int
	AlphabetSize int
	NumStates    int
	Pairs        []*profile.TrainingPair // full corpus, immutable
	Shuffle      []int                   // optional permutation of indices; nil = identity
	Eval         EvaluationConfig
	Prior        PriorConfig
}

// NewOracle validates shapes and widths/sigmas before returning an Oracle.
func NewOracle(
	width, alphabetSize, numStates int,
	pairs []*profile.TrainingPair,
	eval EvaluationConfig,
	prior PriorConfig,
) (*Oracle, error) {
	if err := prior.Validate(); err != nil {
		return nil, err
	}
	if len(eval.Weights) != width {
		return nil, fmt.Errorf("%w: weight schedule length %d, width %d", ErrShapeMismatch, len(eval.Weights), width)
	}
	if len(eval.Background) != alphabetSize {
		return nil, fmt.Errorf("%w: background length %d, alphabet size %d", ErrShapeMismatch, len(eval.Background), alphabetSize)
	}
	return &Oracle{
		Width: width, AlphabetSize: alphabetSize, NumStates: numStates,
		Pairs: pairs, Eval: eval, Prior: prior,
	}, nil
}

// Evaluate unpacks θ into a CRF of the oracle's shape, evaluates likelihood
// and prior (and their gradients) over block b of B, and returns everything
// as flat vectors in the same [b_k, c_k row-major, q_k] layout as θ.
func (o *Oracle) Evaluate(theta []float64, b, B int) (L, Pi float64, gL, gPi []float64, err error) {
	if B <= 0 || b < 0 || b >= B {
		return 0, 0, nil, nil, ErrBlockRange
	}
	model, err := Unpack(theta, o.Width, o.AlphabetSize, o.NumStates)
	if err != nil {
		return 0, 0, nil, nil, err
	}

	idx := o.blockRange(b, B)
	blockPairs := o.gather(idx)

	L, gradL, err := Evaluate(model, blockPairs, o.Eval)
	if err != nil {
		return 0, 0, nil, nil, err
	}
	f := float64(len(idx.indices)) / float64(len(o.Pairs))
	Pi, gradPi := Prior(model, o.Prior, f)

	return L, Pi, gradL.Flatten(), gradPi.Flatten(), nil
}

type blockIndices struct{ indices []int }

// blockRange resolves block b of B into the training-pair indices it
// covers, honoring an optional shuffle permutation.
func (o *Oracle) blockRange(b, B int) blockIndices {
	ranges := partitionContiguous(len(o.Pairs), B)
	if b >= len(ranges) {
		b = len(ranges) - 1
	}
	r := ranges[b]
	n := r.end - r.start
	indices := make([]int, n)
	for i := 0; i < n; i++ {
		pos := r.start + i
		if o.Shuffle != nil {
			indices[i] = o.Shuffle[pos]
		} else {
			indices[i] = pos
		}
	}
	return blockIndices{indices: indices}
}

func (o *Oracle) gather(idx blockIndices) []*profile.TrainingPair {
	out := make([]*profile.TrainingPair, len(idx.indices))
	for i, p := range idx.indices {
		out[i] = o.Pairs[p]
	}
	return out
}
