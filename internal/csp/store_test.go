package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AssignPropagatesNotEqual(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	s := NewStore()
	a := s.NewVar(2)
	b := s.NewVar(2)
	require.NoError(s.AddConstraint(NotEqual(a, b)))

	require.NoError(s.Assign(a, 1))
	assert.False(s.Domain(b).Has(1))
	assert.Equal(2, s.Domain(b).Count())
}

func TestStore_AssignConflictReturnsInconsistent(t *testing.T) {
	require := require.New(t)
	s := NewStore()
	a := s.NewVar(1)
	b := s.NewVar(1)
	require.NoError(s.AddConstraint(Equal(a, b)))
	require.NoError(s.Assign(a, 0))
	require.ErrorIs(s.Assign(b, 1), ErrInconsistent)
}

func TestStore_LessEqualPropagatesBothWays(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	s := NewStore()
	a := s.NewVar(10)
	b := s.NewVar(10)
	require.NoError(s.AddConstraint(LessEqual(a, b)))
	require.NoError(s.Assign(b, 3))
	assert.Equal(0, s.Domain(a).CurrentMin())
	assert.Equal(3, s.Domain(a).CurrentMax())

	// The other direction needs a fresh pair: b above is already fixed.
	s = NewStore()
	a = s.NewVar(10)
	b = s.NewVar(10)
	require.NoError(s.AddConstraint(LessEqual(a, b)))
	require.NoError(s.Assign(a, 2))
	assert.Equal(2, s.Domain(b).CurrentMin())
}

func TestStore_LessThan(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	s := NewStore()
	a := s.NewVar(10)
	b := s.NewVar(10)
	require.NoError(s.AddConstraint(LessThan(a, b)))
	require.NoError(s.Assign(b, 3))
	assert.Equal(2, s.Domain(a).CurrentMax())
}

func TestStore_CheckWaitsForFullAssignment(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	s := NewStore()
	indicator := s.NewBoolVar()
	target := s.NewVar(3)
	require.NoError(s.AddConstraint(Check([]Var{indicator, target}, func(vals []int) bool {
		// "if indicator == 1 then target == 2"
		return vals[0] != 1 || vals[1] == 2
	})))

	require.NoError(s.Assign(indicator, 1))
	assert.False(s.Domain(target).IsSingleton(), "check must not narrow until every watched var is singleton")

	require.Error(s.Assign(target, 1), "fixing target away from the required value must now fail")
}

func TestStore_FuncConstraint(t *testing.T) {
	require := require.New(t)

	s := NewStore()
	a := s.NewVar(3)
	b := s.NewVar(3)
	parity := NewFunc([]Var{a, b}, func(s *Store) (bool, error) {
		da, db := s.Domain(a), s.Domain(b)
		if !da.IsSingleton() || !db.IsSingleton() {
			return false, nil
		}
		if (da.SingletonValue()+db.SingletonValue())%2 != 0 {
			return false, ErrInconsistent
		}
		return false, nil
	})
	require.NoError(s.AddConstraint(parity))

	require.NoError(s.Assign(a, 1))
	require.Error(s.Assign(b, 2), "odd sum must be rejected")
}

func TestStore_CheckAcceptsConsistentAssignment(t *testing.T) {
	require := require.New(t)

	s := NewStore()
	indicator := s.NewBoolVar()
	target := s.NewVar(3)
	require.NoError(s.AddConstraint(Check([]Var{indicator, target}, func(vals []int) bool {
		return vals[0] != 1 || vals[1] == 2
	})))

	require.NoError(s.Assign(indicator, 1))
	require.NoError(s.Assign(target, 2))
}
