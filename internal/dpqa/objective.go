package dpqa

import "github.com/kegliz/dpqac/internal/csp"

// Objective selects the optional lexicographic minimization goals. The
// schedule is correct without them; they are strictly a quality lever.
// internal/csp's Search is feasibility-only, so minimization is
// approximated by branch-and-bound re-solves with a tightening bound
// constraint between rounds.
type Objective int

const (
	// ObjectiveNone runs a single feasibility solve with no optimization.
	ObjectiveNone Objective = iota
	// ObjectiveTransfers minimizes total trap transfers, then total AOD
	// occupancy, lexicographically.
	ObjectiveTransfers
)

// flatAODVars returns every aod[q][t] variable, in (q, t) order, plus its
// stage width, so a bound constraint can index back into it.
func flatAODVars(v *vars) ([]csp.Var, int) {
	vs := make([]csp.Var, 0, v.nQubits*v.t)
	for q := 0; q < v.nQubits; q++ {
		vs = append(vs, v.aod[q]...)
	}
	return vs, v.t
}

// transferBound returns a constraint enforcing that the total number of
// (q, t) pairs with aod[q][t] != aod[q][t-1] is at most bound.
func transferBound(v *vars, bound int) csp.Constraint {
	flat, t := flatAODVars(v)
	return csp.Check(flat, func(vals []int) bool {
		transfers := 0
		for q := 0; q < v.nQubits; q++ {
			base := q * t
			for tt := 1; tt < t; tt++ {
				if vals[base+tt] != vals[base+tt-1] {
					transfers++
				}
			}
		}
		return transfers <= bound
	})
}

// occupancyBound returns a constraint enforcing that the total count of
// aod[q][t] == true is at most bound.
func occupancyBound(v *vars, bound int) csp.Constraint {
	flat, _ := flatAODVars(v)
	return csp.Check(flat, func(vals []int) bool {
		occupied := 0
		for _, val := range vals {
			if val == 1 {
				occupied++
			}
		}
		return occupied <= bound
	})
}

func countTransfers(v *vars, sol []int) int {
	transfers := 0
	for q := 0; q < v.nQubits; q++ {
		for t := 1; t < v.t; t++ {
			if sol[v.aod[q][t]] != sol[v.aod[q][t-1]] {
				transfers++
			}
		}
	}
	return transfers
}

func countOccupancy(v *vars, sol []int) int {
	occupied := 0
	for q := 0; q < v.nQubits; q++ {
		for t := 0; t < v.t; t++ {
			if sol[v.aod[q][t]] == 1 {
				occupied++
			}
		}
	}
	return occupied
}
