package optimize

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// HMCConfig configures the leapfrog sampler arm of the optimizer façade.
type HMCConfig struct {
	StepSize      float64
	LeapfrogSteps int
	Mass          float64
}

// DefaultHMCConfig returns a step size of 1e-3, 20 leapfrog steps per
// trajectory, and unit mass.
func DefaultHMCConfig() HMCConfig {
	return HMCConfig{StepSize: 1e-3, LeapfrogSteps: 20, Mass: 1.0}
}

// HMCSampler drives an Oracle with Hamiltonian Monte Carlo: leapfrog
// integration under potential U(θ) = -(L+Π) with Gaussian momentum and a
// Metropolis accept/reject step comparing total energy before and after.
type HMCSampler struct {
	Oracle   Oracle
	Config   HMCConfig
	momentum distuv.Normal
	accept   distuv.Uniform
}

// NewHMCSampler builds a sampler whose momentum and acceptance draws share
// a single seeded source.
func NewHMCSampler(o Oracle, cfg HMCConfig, seed uint64) *HMCSampler {
	src := rand.NewSource(seed)
	return &HMCSampler{
		Oracle:   o,
		Config:   cfg,
		momentum: distuv.Normal{Mu: 0, Sigma: math.Sqrt(cfg.Mass), Src: src},
		accept:   distuv.Uniform{Min: 0, Max: 1, Src: src},
	}
}

// potentialAndGrad evaluates U(θ) = -(L+Π) and its gradient over block b of
// B, negating the oracle's maximized likelihood+prior into the minimized
// potential HMC integrates against.
func (s *HMCSampler) potentialAndGrad(theta []float64, b, B int) (float64, []float64, error) {
	L, Pi, gL, gPi, err := s.Oracle.Evaluate(theta, b, B)
	if err != nil {
		return 0, nil, err
	}
	u := -(L + Pi)
	grad := make([]float64, len(gL))
	for i := range grad {
		grad[i] = -(gL[i] + gPi[i])
	}
	return u, grad, nil
}

// Step runs one leapfrog trajectory from theta over block b of B and
// applies the Metropolis criterion, returning the accepted (or rejected,
// unchanged) position.
func (s *HMCSampler) Step(theta []float64, b, B int) ([]float64, bool, error) {
	n := len(theta)
	p := make([]float64, n)
	for i := range p {
		p[i] = s.momentum.Rand()
	}

	u0, grad, err := s.potentialAndGrad(theta, b, B)
	if err != nil {
		return nil, false, err
	}
	k0 := kineticEnergy(p, s.Config.Mass)

	x := append([]float64(nil), theta...)
	pCur := append([]float64(nil), p...)

	// Half step, LeapfrogSteps full steps, final half step: standard
	// leapfrog integration.
	floats.AddScaled(pCur, -s.Config.StepSize/2, grad)
	for step := 0; step < s.Config.LeapfrogSteps; step++ {
		for i := range x {
			x[i] += s.Config.StepSize * pCur[i] / s.Config.Mass
		}
		_, grad, err = s.potentialAndGrad(x, b, B)
		if err != nil {
			return nil, false, err
		}
		stepSize := s.Config.StepSize
		if step == s.Config.LeapfrogSteps-1 {
			stepSize /= 2
		}
		floats.AddScaled(pCur, -stepSize, grad)
	}

	u1, _, err := s.potentialAndGrad(x, b, B)
	if err != nil {
		return nil, false, err
	}
	k1 := kineticEnergy(pCur, s.Config.Mass)

	deltaH := (u1 + k1) - (u0 + k0)
	if deltaH <= 0 || math.Exp(-deltaH) > s.accept.Rand() {
		return x, true, nil
	}
	return theta, false, nil
}

func kineticEnergy(p []float64, mass float64) float64 {
	return 0.5 * floats.Dot(p, p) / mass
}
