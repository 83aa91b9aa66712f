package crf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soedinglab/csblast/kernel"
	"github.com/soedinglab/csblast/profile"
)

func uniformBackground(a int) []float64 {
	out := make([]float64, a)
	for i := range out {
		out[i] = 1.0 / float64(a)
	}
	return out
}

func zeroCRF(k, width, alphabetSize int) *CRF {
	states := make([]*State, k)
	for i := range states {
		states[i] = NewZeroState(width, alphabetSize)
	}
	c, err := NewCRF(width, states)
	if err != nil {
		panic(err)
	}
	return c
}

// At θ=0, K=3, W=1, uniform y, the conditional
// log-likelihood and the entire gradient vector are exactly zero.
func TestZeroThetaYieldsZeroLikelihoodAndGradient(t *testing.T) {
	const k, width, a = 3, 1, 20
	c := zeroCRF(k, width, a)
	y := uniformBackground(a)
	pair, err := profile.NewTrainingPair([]int{0}, y, a)
	require.NoError(t, err)

	weights, err := kernel.PositionalWeights(width, kernel.DefaultWeightConfig())
	require.NoError(t, err)

	cfg := EvaluationConfig{Weights: weights, Background: uniformBackground(a), AnyIndex: a, Workers: 1}
	L, grad, err := Evaluate(c, []*profile.TrainingPair{pair}, cfg)
	require.NoError(t, err)
	assert.InDelta(t, 0, L, 1e-12)

	flat := grad.Flatten()
	for _, v := range flat {
		assert.InDelta(t, 0, v, 1e-12)
	}
}

// Prior at b_k=2 for all states, zero context/pc
// weights, sigma_bias=10: Π = -K*4/200, and the bias gradient entry for
// every state is -0.02.
func TestPriorAtConstantBiasMatchesClosedForm(t *testing.T) {
	const k, width, a = 3, 1, 4
	states := make([]*State, k)
	for i := range states {
		s := NewZeroState(width, a)
		s.Bias = 2
		states[i] = s
	}
	c, err := NewCRF(width, states)
	require.NoError(t, err)

	cfg := PriorConfig{SigmaContext: 0.3, SigmaDecay: 0.9, SigmaBias: 10}
	pi, grad := Prior(c, cfg, 1.0)
	assert.InDelta(t, -float64(k)*4.0/200.0, pi, 1e-12)
	for _, b := range grad.Bias {
		assert.InDelta(t, -0.02, b, 1e-12)
	}
}

// Softmax shift-invariance: perturbing every
// q_k[a] by +7 does not change the predicted pseudocount distribution.
func TestSoftmaxShiftInvariance(t *testing.T) {
	const width, a = 1, 5
	s := NewZeroState(width, a)
	for i := range s.PseudocountWeights {
		s.PseudocountWeights[i] = float64(i)
	}
	before := s.Pseudocount()

	shifted := NewZeroState(width, a)
	for i := range shifted.PseudocountWeights {
		shifted.PseudocountWeights[i] = s.PseudocountWeights[i] + 7
	}
	after := shifted.Pseudocount()

	for i := range before {
		assert.InDelta(t, before[i], after[i], 1e-8)
	}
}

// Posterior is a distribution.
func TestPosteriorSumsToOne(t *testing.T) {
	const k, width, a = 4, 3, 6
	states := make([]*State, k)
	for i := range states {
		s := NewZeroState(width, a)
		s.Bias = float64(i) * 0.3
		for j := range s.ContextWeights {
			for l := range s.ContextWeights[j] {
				s.ContextWeights[j][l] = 0.1 * float64((i+j+l)%5)
			}
		}
		states[i] = s
	}
	c, err := NewCRF(width, states)
	require.NoError(t, err)
	weights, err := kernel.PositionalWeights(width, kernel.DefaultWeightConfig())
	require.NoError(t, err)

	p := Posterior(c, weights, []int{0, 1, 2}, a)
	var sum float64
	for _, v := range p {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

// Prior gradient block-additivity: the sum of
// block prior gradients equals the whole-corpus prior gradient.
func TestPriorBlockAdditivity(t *testing.T) {
	const k, width, a = 2, 3, 4
	states := make([]*State, k)
	for i := range states {
		s := NewZeroState(width, a)
		s.Bias = 1.5
		for j := range s.ContextWeights {
			for l := range s.ContextWeights[j] {
				s.ContextWeights[j][l] = 0.2 * float64(j+l+1)
			}
		}
		states[i] = s
	}
	c, err := NewCRF(width, states)
	require.NoError(t, err)
	cfg := DefaultPriorConfig()

	_, gWhole := Prior(c, cfg, 1.0)

	for _, B := range []int{2, 3} {
		sum := NewGradient(k, width, a)
		for b := 0; b < B; b++ {
			f := 1.0 / float64(B)
			_, gBlock := Prior(c, cfg, f)
			sum.AddFrom(gBlock)
		}
		flatWhole := gWhole.Flatten()
		flatSum := sum.Flatten()
		for i := range flatWhole {
			assert.InDelta(t, flatWhole[i], flatSum[i], 1e-9)
		}
	}
}

// Gradient check: analytic gradient matches
// numerical central-difference gradient within 1e-4 relative error.
func TestGradientCheckCentralDifference(t *testing.T) {
	const k, width, a = 2, 3, 3
	c := zeroCRF(k, width, a)
	// Perturb away from the degenerate all-zero point, which has zero gradient.
	for i, s := range c.States {
		s.Bias = 0.1 * float64(i+1)
		for j := range s.ContextWeights {
			for l := range s.ContextWeights[j] {
				s.ContextWeights[j][l] = 0.05 * float64(i+j+l+1)
			}
		}
		for l := range s.PseudocountWeights {
			// Not a constant shift between states: equal softmax(q_k) for
			// every state would leave the bias and context gradients at zero.
			s.PseudocountWeights[l] = 0.02 * float64((i+1)*(l+1))
		}
	}
	weights, err := kernel.PositionalWeights(width, kernel.DefaultWeightConfig())
	require.NoError(t, err)
	background := uniformBackground(a)

	y1 := []float64{0.5, 0.3, 0.2}
	pair1, err := profile.NewTrainingPair([]int{0, 1, 2}, y1, a)
	require.NoError(t, err)
	y2 := []float64{0.2, 0.2, 0.6}
	pair2, err := profile.NewTrainingPair([]int{2, 0, 1}, y2, a)
	require.NoError(t, err)
	pairs := []*profile.TrainingPair{pair1, pair2}

	cfg := EvaluationConfig{Weights: weights, Background: background, AnyIndex: a, Workers: 1}

	theta := Pack(c)
	_, analytic, err := Evaluate(c, pairs, cfg)
	require.NoError(t, err)
	analyticFlat := analytic.Flatten()

	evalAt := func(th []float64) float64 {
		model, err := Unpack(th, width, a, k)
		require.NoError(t, err)
		L, _, err := Evaluate(model, pairs, cfg)
		require.NoError(t, err)
		return L
	}

	const eps = 1e-5
	for i := range theta {
		plus := append([]float64(nil), theta...)
		minus := append([]float64(nil), theta...)
		plus[i] += eps
		minus[i] -= eps
		numeric := (evalAt(plus) - evalAt(minus)) / (2 * eps)

		diff := math.Abs(numeric - analyticFlat[i])
		denom := math.Max(math.Abs(numeric), 1e-8)
		assert.Less(t, diff/denom, 1e-4, "param %d: analytic=%v numeric=%v", i, analyticFlat[i], numeric)
	}
}
