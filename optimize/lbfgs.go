package optimize

import (
	"fmt"

	gonumopt "gonum.org/v1/gonum/optimize"
)

// Oracle is the façade's only dependency: "evaluate at θ over block b of
// B" returning (L, Π, g_L, g_Π). package crf's Oracle type satisfies this
// interface structurally.
type Oracle interface {
	Evaluate(theta []float64, b, B int) (L, Pi float64, gL, gPi []float64, err error)
}

// LBFGSConfig configures the batched L-BFGS arm of the optimizer façade.
type LBFGSConfig struct {
	MaxIterations     int
	GradientThreshold float64 // gonum/optimize convergence threshold; 0 uses the library default
}

// DefaultLBFGSConfig returns reasonable defaults for full-corpus training.
func DefaultLBFGSConfig() LBFGSConfig {
	return LBFGSConfig{MaxIterations: 500, GradientThreshold: 1e-6}
}

// RunLBFGS drives the oracle's full-corpus evaluation (block 0 of 1) with
// gonum's L-BFGS method, minimizing the negative of (L + Π). It returns the
// optimized parameter vector and the underlying gonum result.
func RunLBFGS(o Oracle, theta0 []float64, cfg LBFGSConfig) ([]float64, *gonumopt.Result, error) {
	var evalErr error

	problem := gonumopt.Problem{
		Func: func(x []float64) float64 {
			L, Pi, _, _, err := o.Evaluate(x, 0, 1)
			if err != nil {
				evalErr = err
				return 0
			}
			return -(L + Pi)
		},
		Grad: func(grad, x []float64) {
			_, _, gL, gPi, err := o.Evaluate(x, 0, 1)
			if err != nil {
				evalErr = err
				for i := range grad {
					grad[i] = 0
				}
				return
			}
			for i := range grad {
				grad[i] = -(gL[i] + gPi[i])
			}
		},
	}

	settings := &gonumopt.Settings{
		MajorIterations:   cfg.MaxIterations,
		GradientThreshold: cfg.GradientThreshold,
	}

	result, err := gonumopt.Minimize(problem, theta0, settings, &gonumopt.LBFGS{})
	if evalErr != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrOracleFailed, evalErr)
	}
	if err != nil {
		return nil, nil, err
	}
	return result.X, result, nil
}
