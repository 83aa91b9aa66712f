package context

import (
	"fmt"
	"math"

	"github.com/soedinglab/csblast/kernel"
)

// Library is an ordered, homogeneous set of context components sharing a
// window width and alphabet size. A library exclusively owns
// its components.
type Library struct {
	Components []*Component
	Width      int
}

// NewLibrary validates and assembles a library from components that must
// all share the given window width and an alphabet size inferred from the
// first component.
func NewLibrary(width int, components []*Component) (*Library, error) {
	if len(components) == 0 {
		return nil, ErrEmptyLibrary
	}
	alphabetSize := components[0].AlphabetSize()
	for i, c := range components {
		if err := c.Validate(width, alphabetSize); err != nil {
			return nil, fmt.Errorf("component %d: %w", i, err)
		}
	}
	return &Library{Components: components, Width: width}, nil
}

// NumComponents returns K.
func (l *Library) NumComponents() int { return len(l.Components) }

// AlphabetSize returns A.
func (l *Library) AlphabetSize() int { return l.Components[0].AlphabetSize() }

// Center returns (Width-1)/2.
func (l *Library) Center() int { return kernel.Center(l.Width) }

const normEpsilon = 1e-6

// CheckColumnNormalization verifies that every component's every column
// sums to 1 in linear space, or has log-sum-exp 0 in log space, within
// 1e-6.
func (l *Library) CheckColumnNormalization() error {
	for k, c := range l.Components {
		for j, row := range c.Profile {
			if c.LogSpace {
				lse := logSumExp2(row)
				if math.Abs(lse) > normEpsilon {
					return fmt.Errorf("%w: component %d column %d logsumexp=%v", ErrShapeMismatch, k, j, lse)
				}
			} else {
				var sum float64
				for _, v := range row {
					sum += v
				}
				if math.Abs(sum-1) > normEpsilon {
					return fmt.Errorf("%w: component %d column %d sum=%v", ErrShapeMismatch, k, j, sum)
				}
			}
		}
	}
	return nil
}

// CheckPriorNormalization verifies that Σ_k π_k = 1 within 1e-6.
func (l *Library) CheckPriorNormalization() error {
	var sum float64
	for _, c := range l.Components {
		sum += c.Prior
	}
	if math.Abs(sum-1) > normEpsilon {
		return fmt.Errorf("%w: priors sum to %v", ErrShapeMismatch, sum)
	}
	return nil
}

func logSumExp2(xs []float64) float64 {
	m := math.Inf(-1)
	for _, x := range xs {
		if x > m {
			m = x
		}
	}
	if math.IsInf(m, -1) {
		return m
	}
	var sum float64
	for _, x := range xs {
		sum += math.Exp2(x - m)
	}
	return m + math.Log2(sum)
}
