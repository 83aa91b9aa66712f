package crf

import "math"

// PriorConfig holds the Gaussian prior's regularization widths: sigma_context and sigma_decay shape a position-dependent width
// σ_jk = sigma_context · sigma_decay^|j-center|, sigma_bias regularizes
// the bias term directly. Pseudocount weights are never regularized,
// since their softmax is invariant to a constant shift.
type PriorConfig struct {
	SigmaContext float64
	SigmaDecay   float64
	SigmaBias    float64
}

// DefaultPriorConfig returns the documented defaults.
func DefaultPriorConfig() PriorConfig {
	return PriorConfig{SigmaContext: 0.3, SigmaDecay: 0.9, SigmaBias: 10.0}
}

// Validate checks that every width is positive.
func (cfg PriorConfig) Validate() error {
	if cfg.SigmaContext <= 0 || cfg.SigmaDecay <= 0 || cfg.SigmaBias <= 0 {
		return ErrBadSigma
	}
	return nil
}

// sigmaAt returns σ_jk for column j with the given center.
func sigmaAt(cfg PriorConfig, j, center int) float64 {
	d := j - center
	if d < 0 {
		d = -d
	}
	return cfg.SigmaContext * math.Pow(cfg.SigmaDecay, float64(d))
}

// Prior evaluates the Gaussian prior Π and its gradient g_Π over a CRF,
// scaled by fraction f = (n_end-n_beg)/N so that the whole-corpus gradient
// equals the sum of per-block gradients.
func Prior(c *CRF, cfg PriorConfig, f float64) (pi float64, grad *Gradient) {
	center := c.Center()
	grad = NewGradient(c.NumStates(), c.Width, c.AlphabetSize())
	for k, s := range c.States {
		pi += -s.Bias * s.Bias / (2 * cfg.SigmaBias * cfg.SigmaBias)
		grad.Bias[k] = -f * s.Bias / (cfg.SigmaBias * cfg.SigmaBias)

		for j, row := range s.ContextWeights {
			sigma := sigmaAt(cfg, j, center)
			denom := 2 * sigma * sigma
			for a, w := range row {
				pi += -(w * w) / denom
				grad.Context[k][j][a] = -f * w / (sigma * sigma)
			}
		}
		// PseudocountWeight gradient stays zero: not regularized.
	}
	return f * pi, grad
}
