package alphabet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAminoAlphabet(t *testing.T) {
	a := Amino()
	assert.Equal(t, 20, a.Len())
	assert.Equal(t, "ACDEFGHIKLMNPQRSTVWY", a.String())

	idx, ok := a.Index('A')
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = a.Index('Y')
	require.True(t, ok)
	assert.Equal(t, 19, idx)

	// The any residue, and anything else outside the alphabet, resolves to
	// the sentinel index A and compares >= A for every ordinary letter.
	assert.Equal(t, a.Len(), a.IndexAny('X'))
	assert.True(t, a.IsAny(a.IndexAny('X')))
	for i := 0; i < a.Len(); i++ {
		assert.Less(t, i, a.IndexAny('X'))
	}
}

func TestNewRejectsDuplicates(t *testing.T) {
	_, err := New([]Residue("AAB"), 'X')
	require.ErrorIs(t, err, ErrDuplicateSymbol)
}

func TestNewRejectsEmpty(t *testing.T) {
	_, err := New(nil, 'X')
	require.ErrorIs(t, err, ErrEmptyAlphabet)
}

func TestAminoBackgroundSumsToOne(t *testing.T) {
	bg := AminoBackground()
	var sum float64
	for i := 0; i < bg.Len(); i++ {
		sum += bg.F(i)
	}
	assert.InDelta(t, 1.0, sum, 1e-6)
}

func TestNewBackgroundRejectsBadSum(t *testing.T) {
	_, err := NewBackground(Amino(), make([]float64, 20))
	require.ErrorIs(t, err, ErrBackgroundSum)
}

func TestNewBackgroundRejectsShapeMismatch(t *testing.T) {
	_, err := NewBackground(Amino(), []float64{1.0})
	require.ErrorIs(t, err, ErrBackgroundShape)
}
