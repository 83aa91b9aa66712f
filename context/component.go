package context

import (
	"fmt"
	"math"
)

// Component is a single context-library mixture element: a W x A profile
// (log2-space when LogSpace is true, linear-space probabilities
// otherwise), a prior weight, and a pseudocount distribution over the
// alphabet.
type Component struct {
	Profile     [][]float64 // W x A
	Prior       float64     // π_k, in [0, 1]
	Pseudocount []float64   // p_k, len A, sums to 1
	LogSpace    bool
}

// NewUniformComponent builds a component of the given shape with a uniform
// profile and uniform pseudocount vector, in log-space. Uniform
// initialization is a safe, deterministic starting point before a caller
// samples from training data.
func NewUniformComponent(width, alphabetSize int, prior float64) *Component {
	profile := make([][]float64, width)
	uniform := 1.0 / float64(alphabetSize)
	logUniform := math.Log2(uniform)
	for i := range profile {
		row := make([]float64, alphabetSize)
		for a := range row {
			row[a] = logUniform
		}
		profile[i] = row
	}
	pc := make([]float64, alphabetSize)
	for a := range pc {
		pc[a] = uniform
	}
	return &Component{Profile: profile, Prior: prior, Pseudocount: pc, LogSpace: true}
}

// Width returns the number of columns in the component's profile.
func (c *Component) Width() int { return len(c.Profile) }

// AlphabetSize returns A.
func (c *Component) AlphabetSize() int { return len(c.Pseudocount) }

// Validate checks the component's shape against an expected window width
// and alphabet size.
func (c *Component) Validate(width, alphabetSize int) error {
	if len(c.Profile) != width {
		return fmt.Errorf("%w: component has %d columns, want %d", ErrShapeMismatch, len(c.Profile), width)
	}
	for i, row := range c.Profile {
		if len(row) != alphabetSize {
			return fmt.Errorf("%w: component column %d has %d letters, want %d",
				ErrShapeMismatch, i, len(row), alphabetSize)
		}
	}
	if len(c.Pseudocount) != alphabetSize {
		return fmt.Errorf("%w: pseudocount vector has %d letters, want %d",
			ErrShapeMismatch, len(c.Pseudocount), alphabetSize)
	}
	return nil
}

// ToLogSpace returns a copy of the component with its profile converted to
// log2-space, or itself unchanged if already log-space. Zero entries map
// to negative infinity, matching the fixed-point serialization's "*"
// convention for zero.
func (c *Component) ToLogSpace() *Component {
	if c.LogSpace {
		return c
	}
	profile := make([][]float64, len(c.Profile))
	for i, row := range c.Profile {
		nr := make([]float64, len(row))
		for a, v := range row {
			if v <= 0 {
				nr[a] = math.Inf(-1)
			} else {
				nr[a] = math.Log2(v)
			}
		}
		profile[i] = nr
	}
	return &Component{Profile: profile, Prior: c.Prior, Pseudocount: append([]float64(nil), c.Pseudocount...), LogSpace: true}
}

// ToLinearSpace returns a copy of the component with its profile converted
// to linear probabilities, or itself unchanged if already linear-space.
func (c *Component) ToLinearSpace() *Component {
	if !c.LogSpace {
		return c
	}
	profile := make([][]float64, len(c.Profile))
	for i, row := range c.Profile {
		nr := make([]float64, len(row))
		for a, v := range row {
			nr[a] = math.Exp2(v)
		}
		profile[i] = nr
	}
	return &Component{Profile: profile, Prior: c.Prior, Pseudocount: append([]float64(nil), c.Pseudocount...), LogSpace: false}
}
