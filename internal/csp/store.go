package csp

import (
	"errors"

	"github.com/gitrdm/gokanlogic/pkg/minikanren"
)

// ErrInconsistent is returned by Store operations that would leave some
// variable's domain empty.
var ErrInconsistent = errors.New("csp: domain became empty")

// Var identifies a decision variable by its position in a Store's
// underlying minikanren.FDStore. Vars are only meaningful relative to the
// Store that created them.
type Var int

// Constraint is a propagator over a fixed set of variables.
// Equal/NotEqual/LessEqual/LessThan are special-cased by
// Store.AddConstraint and registered directly against the backing
// FDStore via AddInequalityConstraint, which propagates real bound
// changes through the store's own fixpoint loop; everything else (Check,
// Func) runs as a minikanren.CustomConstraint wrapping Propagate.
type Constraint interface {
	Vars() []Var
	Propagate(s *Store) (changed bool, err error)
}

// storeDomainCap bounds the shared 1..n range every variable in a Store is
// carved out of. minikanren.FDStore (github.com/gitrdm/gokanlogic) sizes
// its BitSet domains once per store rather than per variable, so DPQA's
// heterogeneous per-variable bounds (grid columns, AOD rows, stage
// counts, boolean flags) all have to fit inside one shared range; every
// DPQA instance and test fixture in this repo needs at most a few
// hundred values, so a generous fixed cap avoids ever rebuilding the
// backing store once constraints are registered against it.
const storeDomainCap = 4096

// Store holds a minikanren.FDStore and translates between its 1-based,
// shared-range BitSet domains and the 0-based, per-variable-bounded
// decision variables internal/dpqa allocates: FDStore/FDVar bitset
// domains, AddInequalityConstraint for pairwise relations, and
// CustomConstraint for the DPQA encoder's reified "if these coordinates
// take these values, then these others must" rules (A2-A9, C2-C3), which
// have no natural arc-consistent narrowing and are instead checked once
// every watched variable is singleton.
type Store struct {
	fd     *minikanren.FDStore
	fdVars []*minikanren.FDVar
	bounds []int // inclusive 0-based upper bound per Var
}

// NewStore returns an empty store backed by a fresh minikanren.FDStore
// sized to storeDomainCap.
func NewStore() *Store {
	return &Store{fd: minikanren.NewFDStoreWithDomain(storeDomainCap)}
}

// NewVar allocates a fresh variable with domain {0, ..., max} and returns
// it. max must be non-negative and fit within storeDomainCap.
func (s *Store) NewVar(max int) Var {
	if max < 0 {
		panic("csp: domain max must be non-negative")
	}
	if max+1 > storeDomainCap {
		panic("csp: variable domain exceeds this store's shared range")
	}

	fv := s.fd.NewVar()
	idx := len(s.fdVars)
	s.fdVars = append(s.fdVars, fv)
	s.bounds = append(s.bounds, max)

	if max+1 < storeDomainCap {
		restricted := minikanren.NewBitSet(storeDomainCap)
		for val := max + 2; val <= storeDomainCap; val++ {
			restricted = restricted.RemoveValue(val)
		}
		if err := s.fd.IntersectDomains(fv, restricted); err != nil {
			panic(err)
		}
	}
	return Var(idx)
}

// NewBoolVar is shorthand for NewVar(1): a 0/1 decision variable.
func (s *Store) NewBoolVar() Var { return s.NewVar(1) }

// NumVars returns the number of variables registered with the store.
func (s *Store) NumVars() int { return len(s.fdVars) }

// Domain returns v's current domain, translated from the underlying
// FDVar's 1-based BitSet back into the caller's 0-based view.
func (s *Store) Domain(v Var) Domain {
	bs := s.fdVars[v].Domain()
	d := EmptyDomain(s.bounds[v])
	bs.IterateValues(func(val int) {
		d = d.with(val-1, true)
	})
	return d
}

// AddConstraint registers c against the backing FDStore and runs its
// initial propagation.
func (s *Store) AddConstraint(c Constraint) error {
	if ic, ok := c.(ineqConstraint); ok {
		a, b := s.fdVars[ic.a], s.fdVars[ic.b]
		switch ic.kind {
		case kindEqual:
			if err := s.fd.AddInequalityConstraint(a, b, minikanren.IneqLessEqual); err != nil {
				return translateErr(err)
			}
			return translateErr(s.fd.AddInequalityConstraint(a, b, minikanren.IneqGreaterEqual))
		case kindNotEqual:
			return translateErr(s.fd.AddInequalityConstraint(a, b, minikanren.IneqNotEqual))
		case kindLessEqual:
			return translateErr(s.fd.AddInequalityConstraint(a, b, minikanren.IneqLessEqual))
		case kindLessThan:
			return translateErr(s.fd.AddInequalityConstraint(a, b, minikanren.IneqLessThan))
		}
	}
	return translateErr(s.fd.AddCustomConstraint(&checkAdapter{store: s, inner: c}))
}

// Assign narrows v to the singleton {val}, propagating to a fixpoint
// through the backing FDStore.
func (s *Store) Assign(v Var, val int) error {
	return translateErr(s.fd.Assign(s.fdVars[v], val+1))
}

// translateErr maps minikanren's inconsistency sentinels (domain
// exhaustion from propagation, and the store-is-inconsistent value
// Assign reports on a conflicting singleton) onto ErrInconsistent so
// callers outside this package never need to know the backing solver's
// own error values; any other error (including ErrInconsistent itself,
// returned directly by checkAdapter) passes through unchanged.
func translateErr(err error) error {
	if err == minikanren.ErrDomainEmpty || err == minikanren.ErrInconsistent {
		return ErrInconsistent
	}
	return err
}
