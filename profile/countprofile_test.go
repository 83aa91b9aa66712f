package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soedinglab/csblast/alphabet"
)

func TestAddSequenceAndConvert(t *testing.T) {
	a := alphabet.Amino()
	p, err := New(a, 3, true)
	require.NoError(t, err)

	require.NoError(t, p.AddSequence([]alphabet.Residue("ACA")))
	require.NoError(t, p.AddSequence([]alphabet.Residue("ACC")))

	idxA, _ := a.Index('A')
	idxC, _ := a.Index('C')
	assert.Equal(t, 2.0, p.At(0, idxA))
	assert.Equal(t, 2.0, p.At(1, idxC))
	assert.Equal(t, 1.0, p.At(2, idxA))
	assert.Equal(t, 1.0, p.At(2, idxC))

	freq := p.ToFrequencies()
	require.NoError(t, freq.Validate())
	assert.InDelta(t, 1.0, freq.At(0, idxA), 1e-9)
	assert.InDelta(t, 0.5, freq.At(2, idxA), 1e-9)
	assert.InDelta(t, 0.5, freq.At(2, idxC), 1e-9)
}

func TestAddSequenceSkipsAny(t *testing.T) {
	a := alphabet.Amino()
	p, err := New(a, 1, true)
	require.NoError(t, err)
	require.NoError(t, p.AddSequence([]alphabet.Residue("X")))
	for i := 0; i < a.Len(); i++ {
		assert.Equal(t, 0.0, p.At(0, i))
	}
}

func TestToCountsRoundTrip(t *testing.T) {
	a := alphabet.Nucleic()
	p, err := New(a, 1, false)
	require.NoError(t, err)
	require.NoError(t, p.Set(0, 0, 0.25))
	require.NoError(t, p.Set(0, 1, 0.25))
	require.NoError(t, p.Set(0, 2, 0.25))
	require.NoError(t, p.Set(0, 3, 0.25))
	require.NoError(t, p.SetNEff(0, 4))

	counts := p.ToCounts()
	for i := 0; i < a.Len(); i++ {
		assert.InDelta(t, 1.0, counts.At(0, i), 1e-9)
	}

	back := counts.ToFrequencies()
	for i := 0; i < a.Len(); i++ {
		assert.InDelta(t, 0.25, back.At(0, i), 1e-9)
	}
}

func TestNewTrainingPairRejectsEvenWindow(t *testing.T) {
	_, err := NewTrainingPair([]int{0, 1}, []float64{1}, 1)
	require.ErrorIs(t, err, ErrWindowNotOdd)
}

func TestNewTrainingPairRejectsBadTarget(t *testing.T) {
	_, err := NewTrainingPair([]int{0}, []float64{0.5, 0.4}, 2)
	require.ErrorIs(t, err, ErrTargetNotNormalized)
}

func TestTrainingPairCenter(t *testing.T) {
	tp, err := NewTrainingPair([]int{0, 1, 2}, []float64{1}, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, tp.Center())
}
