package csp

import (
	"context"
)

// Search performs chronological backtracking search over a Store's
// variables, delegating the traversal itself to minikanren.FDStore.Solve:
// iterative stack-based backtracking with an initial fixpoint propagation
// pass, first-fail variable selection (skipping any variable already
// narrowed to a single value), and ctx-cancellation checked once per node.
// This package keeps the first-fail default the DPQA encoding has always
// used rather than reimplementing that traversal by hand.
type Search struct{}

// NewSearch returns a Search using the library's first-fail labeling
// heuristic, a reasonable default for the lightly-structured 0/1 and
// small-integer domains the DPQA encoding produces.
func NewSearch() *Search {
	return &Search{}
}

// Solve searches for one assignment of every store variable consistent
// with all registered constraints. It returns the assignment indexed by
// Var, ok=true on success, ok=false if the problem is unsatisfiable, and a
// non-nil error only for context cancellation or a constraint error other
// than plain inconsistency.
func (se *Search) Solve(ctx context.Context, s *Store) ([]int, bool, error) {
	solutions, err := s.fd.Solve(ctx, 1)
	if err != nil {
		// The library surfaces a root-level contradiction (its initial
		// propagation pass failing) as an error rather than as zero
		// solutions; to this package's callers both simply mean unsat.
		if translateErr(err) == ErrInconsistent {
			return nil, false, nil
		}
		return nil, false, err
	}
	if len(solutions) == 0 {
		return nil, false, nil
	}

	raw := solutions[0]
	sol := make([]int, len(raw))
	for i, val := range raw {
		sol[i] = val - 1
	}
	return sol, true, nil
}
