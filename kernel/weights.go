package kernel

import "math"

// WeightConfig configures the positional weight schedule applied across a
// context window: the center column carries weight WeightCenter, and each
// column i positions away from the center decays geometrically by
// WeightDecay^i.
type WeightConfig struct {
	WeightCenter float64 // w_c > 0, default 1.6
	WeightDecay  float64 // w_d in (0, 1], default 0.85
}

// DefaultWeightConfig returns the engine's documented defaults.
func DefaultWeightConfig() WeightConfig {
	return WeightConfig{WeightCenter: 1.6, WeightDecay: 0.85}
}

// Validate checks that the configuration is in its documented range.
func (c WeightConfig) Validate() error {
	if c.WeightCenter <= 0 || c.WeightDecay <= 0 || c.WeightDecay > 1 {
		return ErrBadWeight
	}
	return nil
}

// PositionalWeights computes the length-W weight schedule for a window of
// the given odd width: w[c] = WeightCenter, and for i = 1..c,
// w[c-i] = w[c+i] = WeightCenter * WeightDecay^i, where c = (width-1)/2.
func PositionalWeights(width int, cfg WeightConfig) ([]float64, error) {
	if width%2 == 0 {
		return nil, ErrWindowNotOdd
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := (width - 1) / 2
	w := make([]float64, width)
	w[c] = cfg.WeightCenter
	for i := 1; i <= c; i++ {
		wi := cfg.WeightCenter * math.Pow(cfg.WeightDecay, float64(i))
		w[c-i] = wi
		w[c+i] = wi
	}
	return w, nil
}

// Center returns (width-1)/2, the index of the middle column of a window
// of the given odd width.
func Center(width int) int { return (width - 1) / 2 }
