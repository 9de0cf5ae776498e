package csp

import "github.com/gitrdm/gokanlogic/pkg/minikanren"

// ineqKind tags which pairwise relationship an ineqConstraint enforces.
// Store.AddConstraint recognizes this type and registers it directly
// against the backing FDStore via AddInequalityConstraint rather than
// routing it through the generic CustomConstraint path, since the
// library's own bidirectional bound propagation is strictly stronger
// than a generate-and-test check.
type ineqKind int

const (
	kindEqual ineqKind = iota
	kindNotEqual
	kindLessEqual
	kindLessThan
)

type ineqConstraint struct {
	a, b Var
	kind ineqKind
}

// Equal returns a constraint enforcing a == b.
func Equal(a, b Var) Constraint { return ineqConstraint{a, b, kindEqual} }

// NotEqual returns a constraint enforcing a != b.
func NotEqual(a, b Var) Constraint { return ineqConstraint{a, b, kindNotEqual} }

// LessEqual returns a constraint enforcing a <= b.
func LessEqual(a, b Var) Constraint { return ineqConstraint{a, b, kindLessEqual} }

// LessThan returns a constraint enforcing a < b.
func LessThan(a, b Var) Constraint { return ineqConstraint{a, b, kindLessThan} }

func (c ineqConstraint) Vars() []Var { return []Var{c.a, c.b} }

// Propagate is a read-only consistency check. Store.AddConstraint
// registers the real, narrowing version of this relationship directly
// against the backing FDStore before this method ever runs in the
// normal solve path; it only matters if a caller evaluates the
// constraint outside a Store (e.g. in a test), so it stays faithful to
// the same relationship rather than being left as a stub.
func (c ineqConstraint) Propagate(s *Store) (bool, error) {
	da, db := s.Domain(c.a), s.Domain(c.b)
	if !da.IsSingleton() || !db.IsSingleton() {
		return false, nil
	}
	va, vb := da.SingletonValue(), db.SingletonValue()
	var ok bool
	switch c.kind {
	case kindEqual:
		ok = va == vb
	case kindNotEqual:
		ok = va != vb
	case kindLessEqual:
		ok = va <= vb
	case kindLessThan:
		ok = va < vb
	}
	if ok {
		return false, nil
	}
	return true, ErrInconsistent
}

// Func wraps a closure as a Constraint, mirroring minikanren's
// CustomConstraint pattern one level up:
// callers express bespoke consistency checks (reified booleans,
// implications, distance bounds) without declaring a new named type per
// rule. Unlike Check, Func calls its closure on every propagation pass,
// whether or not its variables are singleton yet, so the closure has to
// handle partial assignments itself. It reports inconsistency by
// returning a non-nil error rather than narrowing any domain itself,
// since it runs from inside the backing FDStore's own propagation pass.
type Func struct {
	vars      []Var
	propagate func(s *Store) (bool, error)
}

// NewFunc builds a Func constraint over vars, using propagate as its
// consistency check.
func NewFunc(vars []Var, propagate func(s *Store) (bool, error)) Constraint {
	return &Func{vars: vars, propagate: propagate}
}

func (f *Func) Vars() []Var { return f.vars }

func (f *Func) Propagate(s *Store) (bool, error) { return f.propagate(s) }

// Check wraps an arbitrary boolean predicate over a fixed set of
// variables as a Constraint: it is a "generate and test" propagator
// rather than an arc-consistency one. It fires its predicate only once
// every variable in vars has narrowed to a single value, and reports
// inconsistency if the predicate then fails. This is the shape the
// DPQA encoder's conditional architectural rules (A2-A9, C2, C3) need:
// each rule is naturally a reified "if these coordinates/flags take
// these values, then these other coordinates must" statement, which is
// far simpler to state correctly as a direct check on a complete local
// assignment than as a family of narrowing rules over partial ones.
// Search still explores efficiently because the cheaper structural
// constraints (Equal, NotEqual, LessEqual, LessThan), registered
// directly against minikanren's own inequality propagators, prune the
// bulk of the tree before Check predicates are ever evaluated.
func Check(vars []Var, pred func(vals []int) bool) Constraint {
	return &checkConstraint{vars: vars, pred: pred}
}

type checkConstraint struct {
	vars []Var
	pred func(vals []int) bool
}

func (c *checkConstraint) Vars() []Var { return c.vars }

func (c *checkConstraint) Propagate(s *Store) (bool, error) {
	vals := make([]int, len(c.vars))
	for i, v := range c.vars {
		d := s.Domain(v)
		if !d.IsSingleton() {
			return false, nil
		}
		vals[i] = d.SingletonValue()
	}
	if c.pred(vals) {
		return false, nil
	}
	return true, ErrInconsistent
}

// checkAdapter wraps any Constraint as a minikanren.CustomConstraint so
// Store.AddConstraint can register it against the backing FDStore
// (fd_custom.go's AddCustomConstraint). Its Propagate only reads FDVar
// domains, via the package's lock-free FDVar.Domain()/IsSingleton()
// accessors, and reports inconsistency by returning an error: it never
// calls back into the store's own locking API (Assign/Remove/
// IntersectDomains/...), since this method runs while the FDStore's own
// propagation loop already holds that lock.
type checkAdapter struct {
	store *Store
	inner Constraint
}

func (a *checkAdapter) Variables() []*minikanren.FDVar {
	vs := a.inner.Vars()
	out := make([]*minikanren.FDVar, len(vs))
	for i, v := range vs {
		out[i] = a.store.fdVars[v]
	}
	return out
}

func (a *checkAdapter) Propagate(*minikanren.FDStore) (bool, error) {
	_, err := a.inner.Propagate(a.store)
	if err != nil {
		return false, err
	}
	return false, nil
}

func (a *checkAdapter) IsSatisfied() bool {
	_, err := a.inner.Propagate(a.store)
	return err == nil
}
