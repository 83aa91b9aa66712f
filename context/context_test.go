package context

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soedinglab/csblast/kernel"
	"github.com/soedinglab/csblast/profile"
)

// A single uniform component with admixture τ=1 yields a
// mixed pseudocount equal to the uniform prior for every letter.
func TestUniformComponentFullAdmixtureYieldsUniformPseudocount(t *testing.T) {
	const alphabetSize = 20
	comp := NewUniformComponent(1, alphabetSize, 1.0)
	for a := range comp.Pseudocount {
		comp.Pseudocount[a] = 0.05
	}
	lib, err := NewLibrary(1, []*Component{comp})
	require.NoError(t, err)

	weights, err := kernel.PositionalWeights(1, kernel.DefaultWeightConfig())
	require.NoError(t, err)

	x := []int{3}
	posterior, err := Posterior(lib, weights, x, alphabetSize)
	require.NoError(t, err)
	require.Len(t, posterior, 1)
	assert.InDelta(t, 1.0, posterior[0], 1e-9)

	mixed := MixedPseudocount(lib, posterior)
	for _, v := range mixed {
		assert.InDelta(t, 0.05, v, 1e-9)
	}

	admixed, err := Admix(mixed, x[0], 1.0)
	require.NoError(t, err)
	for _, v := range admixed {
		assert.InDelta(t, 0.05, v, 1e-9)
	}
}

// Two identical-profile components with equal priors
// and one-hot pseudocounts on distinct letters split the posterior evenly.
func TestTwoComponentsWithEqualPriorsSplitPosteriorEvenly(t *testing.T) {
	const alphabetSize = 20
	const idxA, idxR = 0, 14 // canonical amino order ACDEFGHIKLMNPQRSTVWY

	c1 := NewUniformComponent(1, alphabetSize, 0.5)
	c2 := NewUniformComponent(1, alphabetSize, 0.5)
	for a := range c1.Pseudocount {
		c1.Pseudocount[a] = 0
		c2.Pseudocount[a] = 0
	}
	c1.Pseudocount[idxA] = 1
	c2.Pseudocount[idxR] = 1

	lib, err := NewLibrary(1, []*Component{c1, c2})
	require.NoError(t, err)
	weights, err := kernel.PositionalWeights(1, kernel.DefaultWeightConfig())
	require.NoError(t, err)

	posterior, err := Posterior(lib, weights, []int{idxA}, alphabetSize)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, posterior[0], 1e-9)
	assert.InDelta(t, 0.5, posterior[1], 1e-9)

	mixed := MixedPseudocount(lib, posterior)
	assert.InDelta(t, 0.5, mixed[idxA], 1e-9)
	assert.InDelta(t, 0.5, mixed[idxR], 1e-9)
	for a, v := range mixed {
		if a != idxA && a != idxR {
			assert.InDelta(t, 0.0, v, 1e-9)
		}
	}
}

// A deterministic single-point corpus (same x, y=delta
// on the center letter): after a single batch-EM scan the priors stay
// normalized and every component that received posterior mass has that
// exact one-hot emission column.
func TestSinglePointCorpusConvergesToOneHotEmission(t *testing.T) {
	const alphabetSize = 4
	const idx = 2

	c1 := NewUniformComponent(1, alphabetSize, 0.5)
	c2 := NewUniformComponent(1, alphabetSize, 0.5)
	lib, err := NewLibrary(1, []*Component{c1, c2})
	require.NoError(t, err)

	y := make([]float64, alphabetSize)
	y[idx] = 1
	pair, err := profile.NewTrainingPair([]int{idx}, y, alphabetSize)
	require.NoError(t, err)

	background := []float64{0.25, 0.25, 0.25, 0.25}
	cfg := DefaultConfig()
	cfg.MaxScans = 1
	cfg.MinScans = 1
	cfg.NumBlocks = 1
	cfg.Blending = 1.0

	driver, err := NewDriver(lib, cfg, background)
	require.NoError(t, err)

	_, err = driver.Run([]*profile.TrainingPair{pair}, nil)
	require.NoError(t, err)

	// Both components start identical, so the posterior is 0.5/0.5 and
	// both absorb evidence symmetrically in this single-point, two-
	// component corpus: each keeps π=0.5, and both pick up the same
	// one-hot emission column since they receive identical posterior mass.
	require.NoError(t, lib.CheckPriorNormalization())
	for _, c := range lib.Components {
		lin := c.ToLinearSpace()
		assert.InDelta(t, 1.0, lin.Profile[0][idx], 1e-6)
	}
}
