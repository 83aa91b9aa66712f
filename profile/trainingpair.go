package profile

import (
	"fmt"
	"math"
)

// TrainingPair is one unit of training/inference work: a window of W
// alphabet indices (the middle index is the "center" column) together with
// a target distribution y over A letters. Training pairs are created once
// from the corpus and are immutable for the lifetime of a training run.
type TrainingPair struct {
	X []int     // len W, ordinary indices or the alphabet's "any" sentinel
	Y []float64 // len A, sums to 1
}

// NewTrainingPair validates and constructs a training pair. W = len(x) must
// be odd; y must have length alphabetSize and sum to 1 within epsilon.
func NewTrainingPair(x []int, y []float64, alphabetSize int) (*TrainingPair, error) {
	if len(x)%2 == 0 {
		return nil, ErrWindowNotOdd
	}
	if len(y) != alphabetSize {
		return nil, fmt.Errorf("%w: target length %d, alphabet size %d",
			ErrShapeMismatch, len(y), alphabetSize)
	}
	var sum float64
	for _, v := range y {
		sum += v
	}
	if math.Abs(sum-1) > normEpsilon {
		return nil, fmt.Errorf("%w: target sums to %v", ErrTargetNotNormalized, sum)
	}
	xs := append([]int(nil), x...)
	ys := append([]float64(nil), y...)
	return &TrainingPair{X: xs, Y: ys}, nil
}

// Width returns W.
func (tp *TrainingPair) Width() int { return len(tp.X) }

// Center returns the index of the middle column, (W-1)/2.
func (tp *TrainingPair) Center() int { return (len(tp.X) - 1) / 2 }
