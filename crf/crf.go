package crf

import (
	"fmt"

	"github.com/soedinglab/csblast/kernel"
)

// CRF is an ordered, homogeneous set of states sharing a window width.
// A CRF exclusively owns its states.
type CRF struct {
	States []*State
	Width  int
}

// NewCRF validates and assembles a CRF from states that must all share the
// given window width and an alphabet size inferred from the first state.
func NewCRF(width int, states []*State) (*CRF, error) {
	if len(states) == 0 {
		return nil, ErrEmptyCRF
	}
	alphabetSize := states[0].AlphabetSize()
	for i, s := range states {
		if err := s.Validate(width, alphabetSize); err != nil {
			return nil, fmt.Errorf("state %d: %w", i, err)
		}
	}
	return &CRF{States: states, Width: width}, nil
}

// NumStates returns K.
func (c *CRF) NumStates() int { return len(c.States) }

// AlphabetSize returns A.
func (c *CRF) AlphabetSize() int { return c.States[0].AlphabetSize() }

// Center returns (Width-1)/2.
func (c *CRF) Center() int { return kernel.Center(c.Width) }
