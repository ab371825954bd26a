package maze

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Perfect(t *testing.T) {
	g := lShape(t)
	assert.NoError(t, g.Validate())
	assert.True(t, g.IsPerfect())

	one, err := New(1, 1)
	require.NoError(t, err)
	assert.True(t, one.IsPerfect(), "a single cell is a trivial spanning tree")
}

func TestValidate_Violations(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int
		want error
	}{
		{"walled", [][]int{{0, 0}, {0, 0}}, ErrDisconnected},
		{"partial", [][]int{{8, 4}, {0, 0}}, ErrDisconnected},
		{"cycle", [][]int{{10, 6}, {9, 5}}, ErrCycle},
		{"asymmetric", [][]int{{8, 0}}, ErrAsymmetricPassage},
		{"leaves north", [][]int{{1}}, ErrOutOfBounds},
		{"leaves east", [][]int{{8, 12}}, ErrOutOfBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := FromRows(tc.rows)
			require.NoError(t, err)
			err = g.Validate()
			assert.True(t, errors.Is(err, tc.want), "got %v, want %v", err, tc.want)
			assert.False(t, g.IsPerfect())
		})
	}
}

func TestValidate_ReportsLoopClosingEdge(t *testing.T) {
	g, err := New(3, 3)
	require.NoError(t, err)
	// A 2×2 ring in the lower right corner; edges arrive in row-major order,
	// so (1,2)-(2,2) is the one that closes it.
	require.NoError(t, g.Carve(1, 1, East))
	require.NoError(t, g.Carve(1, 1, South))
	require.NoError(t, g.Carve(2, 1, South))
	require.NoError(t, g.Carve(1, 2, East))

	err = g.Validate()
	require.True(t, errors.Is(err, ErrCycle), "got %v", err)
	assert.Contains(t, err.Error(), "(1,2)-(2,2)")
}
