package generate

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]Algorithm{
		"dfs":         AlgorithmBacktracker,
		"backtracker": AlgorithmBacktracker,
		"DFS":         AlgorithmBacktracker,
		"prim":        AlgorithmPrim,
		" Wilson ":    AlgorithmWilson,
	}
	for in, want := range cases {
		got, err := ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseAlgorithm("kruskal")
	assert.True(t, errors.Is(err, ErrUnknownAlgorithm))
	_, err = ParseAlgorithm("")
	assert.True(t, errors.Is(err, ErrUnknownAlgorithm))
}

func TestAlgorithm_StringRoundTrip(t *testing.T) {
	for _, a := range Algorithms {
		back, err := ParseAlgorithm(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, back)
	}
	assert.Equal(t, "Algorithm(9)", Algorithm(9).String())
}

func TestAlgorithm_JSON(t *testing.T) {
	type payload struct {
		Algo Algorithm `json:"algorithm"`
	}
	data, err := json.Marshal(payload{Algo: AlgorithmWilson})
	require.NoError(t, err)
	assert.JSONEq(t, `{"algorithm":"wilson"}`, string(data))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"algorithm":"backtracker"}`), &p))
	assert.Equal(t, AlgorithmBacktracker, p.Algo)

	assert.Error(t, json.Unmarshal([]byte(`{"algorithm":"maze"}`), &p))
	_, err = json.Marshal(payload{})
	assert.Error(t, err)
}

func TestGenerate_Dispatch(t *testing.T) {
	for _, a := range Algorithms {
		g, err := Generate(a, 7, 5, WithSeed(11))
		require.NoError(t, err, a.String())
		assert.True(t, g.IsPerfect(), a.String())
	}

	// Generate with a seed matches the direct call.
	want, _ := Wilson(7, 5, WithSeed(11))
	got, _ := Generate(AlgorithmWilson, 7, 5, WithSeed(11))
	assert.True(t, want.Equal(got))

	_, err := Generate(Algorithm(0), 7, 5)
	assert.True(t, errors.Is(err, ErrUnknownAlgorithm))
	_, err = Generate(AlgorithmPrim, 0, 5)
	assert.True(t, errors.Is(err, ErrInvalidDimension))
}
