package csp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_SolvesAllDifferentTriple(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	s := NewStore()
	a := s.NewVar(2)
	b := s.NewVar(2)
	c := s.NewVar(2)
	require.NoError(s.AddConstraint(NotEqual(a, b)))
	require.NoError(s.AddConstraint(NotEqual(b, c)))
	require.NoError(s.AddConstraint(NotEqual(a, c)))

	sol, ok, err := NewSearch().Solve(context.Background(), s)
	require.NoError(err)
	require.True(ok)

	seen := map[int]bool{}
	for _, v := range sol {
		assert.False(seen[v], "solution must assign distinct values")
		seen[v] = true
	}
}

func TestSearch_UnsatisfiableReturnsFalse(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	// Three pairwise-distinct variables over a two-value domain: a
	// pigeonhole contradiction no single propagator can see, so the
	// search itself has to exhaust the tree to prove it.
	s := NewStore()
	a := s.NewVar(1)
	b := s.NewVar(1)
	c := s.NewVar(1)
	require.NoError(s.AddConstraint(NotEqual(a, b)))
	require.NoError(s.AddConstraint(NotEqual(b, c)))
	require.NoError(s.AddConstraint(NotEqual(a, c)))

	_, ok, err := NewSearch().Solve(context.Background(), s)
	require.NoError(err)
	assert.False(ok)
}

func TestSearch_RespectsContextCancellation(t *testing.T) {
	require := require.New(t)

	s := NewStore()
	s.NewVar(1)
	s.NewVar(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok, err := NewSearch().Solve(ctx, s)
	require.Error(err)
	require.False(ok)
}
