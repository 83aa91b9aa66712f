package serialize_test

import (
	"bufio"
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soedinglab/csblast/alphabet"
	"github.com/soedinglab/csblast/context"
	"github.com/soedinglab/csblast/crf"
	"github.com/soedinglab/csblast/profile"
	"github.com/soedinglab/csblast/serialize"
)

func TestComponentRoundTrip(t *testing.T) {
	const width, a = 3, 4
	c := context.NewUniformComponent(width, a, 0.25)
	c.Pseudocount[0] = 0.4
	c.Pseudocount[1] = 0.3
	c.Pseudocount[2] = 0.2
	c.Pseudocount[3] = 0.1

	var buf bytes.Buffer
	require.NoError(t, serialize.WriteComponent(&buf, c))

	sc := bufio.NewScanner(&buf)
	got, err := serialize.ReadComponent(sc, width, a)
	require.NoError(t, err)

	assert.InDelta(t, c.Prior, got.Prior, 1e-9)
	assert.Equal(t, c.LogSpace, got.LogSpace)
	for j, row := range c.Profile {
		for k, v := range row {
			assert.InDelta(t, v, got.Profile[j][k], 1e-6)
		}
	}
	for i, v := range c.Pseudocount {
		assert.InDelta(t, v, got.Pseudocount[i], 1e-6)
	}
}

func TestComponentRoundTripWithZero(t *testing.T) {
	const width, a = 1, 3
	c := context.NewUniformComponent(width, a, 1.0)
	c.Profile[0][0] = math.Inf(-1)

	var buf bytes.Buffer
	require.NoError(t, serialize.WriteComponent(&buf, c))
	assert.Contains(t, buf.String(), "*")

	sc := bufio.NewScanner(&buf)
	got, err := serialize.ReadComponent(sc, width, a)
	require.NoError(t, err)
	assert.True(t, math.IsInf(got.Profile[0][0], -1))
}

func TestLibraryRoundTrip(t *testing.T) {
	const width, a = 1, 4
	c1 := context.NewUniformComponent(width, a, 0.5)
	c2 := context.NewUniformComponent(width, a, 0.5)
	lib, err := context.NewLibrary(width, []*context.Component{c1, c2})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, serialize.WriteLibrary(&buf, lib, 7))

	got, iterations, err := serialize.ReadLibrary(&buf)
	require.NoError(t, err)
	assert.Equal(t, 7, iterations)
	assert.Equal(t, lib.NumComponents(), got.NumComponents())
	assert.Equal(t, lib.Width, got.Width)
}

// Serialize -> deserialize -> serialize yields byte-identical output.
func TestLibrarySerializeDeserializeSerializeIsByteIdentical(t *testing.T) {
	const width, a = 3, 4
	c1 := context.NewUniformComponent(width, a, 0.5)
	c2 := context.NewUniformComponent(width, a, 0.5)
	c2.Pseudocount[0] = 0.7
	lib, err := context.NewLibrary(width, []*context.Component{c1, c2})
	require.NoError(t, err)

	var first bytes.Buffer
	require.NoError(t, serialize.WriteLibrary(&first, lib, 3))

	roundTripped, iterations, err := serialize.ReadLibrary(bytes.NewReader(first.Bytes()))
	require.NoError(t, err)

	var second bytes.Buffer
	require.NoError(t, serialize.WriteLibrary(&second, roundTripped, iterations))

	assert.Equal(t, first.String(), second.String())
}

func TestCRFRoundTrip(t *testing.T) {
	const width, a = 1, 4
	states := []*crf.State{crf.NewZeroState(width, a), crf.NewZeroState(width, a)}
	states[0].Bias = 1.5
	states[1].Bias = -0.75
	states[1].ContextWeights[0][2] = 0.125
	states[1].PseudocountWeights[3] = -2.0
	c, err := crf.NewCRF(width, states)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, serialize.WriteCRF(&buf, c))

	got, err := serialize.ReadCRF(&buf)
	require.NoError(t, err)
	require.Equal(t, c.NumStates(), got.NumStates())
	for k, s := range c.States {
		assert.InDelta(t, s.Bias, got.States[k].Bias, 1e-6)
		for j, row := range s.ContextWeights {
			for l, v := range row {
				assert.InDelta(t, v, got.States[k].ContextWeights[j][l], 1e-6)
			}
		}
		for l, v := range s.PseudocountWeights {
			assert.InDelta(t, v, got.States[k].PseudocountWeights[l], 1e-6)
		}
	}
}

func TestCRFSerializeDeserializeSerializeIsByteIdentical(t *testing.T) {
	const width, a = 2, 3
	states := []*crf.State{crf.NewZeroState(width, a)}
	states[0].Bias = 0.333
	states[0].ContextWeights[1][0] = -1.25
	c, err := crf.NewCRF(width, states)
	require.NoError(t, err)

	var first bytes.Buffer
	require.NoError(t, serialize.WriteCRF(&first, c))

	roundTripped, err := serialize.ReadCRF(bytes.NewReader(first.Bytes()))
	require.NoError(t, err)

	var second bytes.Buffer
	require.NoError(t, serialize.WriteCRF(&second, roundTripped))

	assert.Equal(t, first.String(), second.String())
}

func TestCountProfileRoundTrip(t *testing.T) {
	amino := alphabet.Amino()
	p, err := profile.New(amino, 2, true)
	require.NoError(t, err)
	require.NoError(t, p.Set(0, 0, 5))
	require.NoError(t, p.Set(0, 1, 3))
	require.NoError(t, p.SetNEff(0, 4.5))
	require.NoError(t, p.Set(1, 2, 9))

	var buf bytes.Buffer
	require.NoError(t, serialize.WriteCountProfile(&buf, p))

	got, err := serialize.ReadCountProfile(&buf, amino)
	require.NoError(t, err)
	assert.Equal(t, p.Width(), got.Width())
	assert.InDelta(t, 5, got.At(0, 0), 1e-6)
	assert.InDelta(t, 3, got.At(0, 1), 1e-6)
	assert.InDelta(t, 4.5, got.NEff(0), 1e-9)
	assert.InDelta(t, 9, got.At(1, 2), 1e-6)
}
