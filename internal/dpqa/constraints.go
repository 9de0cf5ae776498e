package dpqa

import (
	"github.com/kegliz/dpqac/internal/csp"
	"github.com/kegliz/dpqac/qc/circuit"
)

// encode asserts every architectural and circuit-dependency constraint
// (A1-A9, C1-C4) against v's store. Assertions are built as
// straight-line conjunctions over v's variables: the Go control flow
// here only constructs the constraint set (one constraint per
// qubit/stage/gate combination the rule quantifies over); no constraint
// itself branches on a solved value.
//
// A1 (grid bounds) needs no explicit assertion: every x/y/c/r variable is
// allocated in variables.go with exactly the domain A1 requires.
func encode(v *vars, circ *circuit.Circuit) error {
	if err := a2SLMStationary(v); err != nil {
		return err
	}
	if err := a3AODPersists(v); err != nil {
		return err
	}
	if err := a4Rigidity(v); err != nil {
		return err
	}
	if err := a5OrderReflects(v); err != nil {
		return err
	}
	if err := a6OrderPreserved(v); err != nil {
		return err
	}
	if err := a7Crowding(v); err != nil {
		return err
	}
	if err := a8SiteExclusion(v); err != nil {
		return err
	}
	if err := a9NoSwapThroughSite(v); err != nil {
		return err
	}
	if err := c1GateTimeBounds(v); err != nil {
		return err
	}
	if err := c2EntanglingCoincidence(v, circ); err != nil {
		return err
	}
	if err := c3InteractionExactness(v, circ); err != nil {
		return err
	}
	if err := c4GateKindCoScheduling(v, circ); err != nil {
		return err
	}
	return nil
}

// check registers a Check constraint and folds its error, shorthand used
// throughout this file's O(qubits^2 * T) assertion loops.
func check(v *vars, vs []csp.Var, pred func(vals []int) bool) error {
	return v.store.AddConstraint(csp.Check(vs, pred))
}

// A2 SLM is stationary: if aod[q][t'] is false, x and y must match t'-1.
func a2SLMStationary(v *vars) error {
	for q := 0; q < v.nQubits; q++ {
		for t := 1; t < v.t; t++ {
			aod := v.aod[q][t]
			if err := check(v, []csp.Var{aod, v.x[q][t], v.x[q][t-1]}, func(vals []int) bool {
				return vals[0] != 0 || vals[1] == vals[2]
			}); err != nil {
				return err
			}
			if err := check(v, []csp.Var{aod, v.y[q][t], v.y[q][t-1]}, func(vals []int) bool {
				return vals[0] != 0 || vals[1] == vals[2]
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

// A3 AOD logical coordinates persist while held.
func a3AODPersists(v *vars) error {
	for q := 0; q < v.nQubits; q++ {
		for t := 1; t < v.t; t++ {
			aod := v.aod[q][t]
			if err := check(v, []csp.Var{aod, v.c[q][t], v.c[q][t-1]}, func(vals []int) bool {
				return vals[0] != 1 || vals[1] == vals[2]
			}); err != nil {
				return err
			}
			if err := check(v, []csp.Var{aod, v.r[q][t], v.r[q][t-1]}, func(vals []int) bool {
				return vals[0] != 1 || vals[1] == vals[2]
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

// A4 AOD row/column rigidity: a shared logical column/row moves as one.
func a4Rigidity(v *vars) error {
	for t := 1; t < v.t; t++ {
		for q := 0; q < v.nQubits; q++ {
			for qp := q + 1; qp < v.nQubits; qp++ {
				vs := []csp.Var{v.aod[q][t-1], v.aod[qp][t-1], v.c[q][t-1], v.c[qp][t-1], v.x[q][t], v.x[qp][t]}
				if err := check(v, vs, bothAODImpliesEqual); err != nil {
					return err
				}
				vs = []csp.Var{v.aod[q][t-1], v.aod[qp][t-1], v.r[q][t-1], v.r[qp][t-1], v.y[q][t], v.y[qp][t]}
				if err := check(v, vs, bothAODImpliesEqual); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// bothAODImpliesEqual: vals = [aodQ, aodQP, logicalQ, logicalQP, physQ, physQP].
// If both qubits are in the AOD and their logical coordinate matches,
// their physical coordinate at the next stage must match too.
func bothAODImpliesEqual(vals []int) bool {
	aodQ, aodQP, logQ, logQP, physQ, physQP := vals[0], vals[1], vals[2], vals[3], vals[4], vals[5]
	if aodQ == 1 && aodQP == 1 && logQ == logQP {
		return physQ == physQP
	}
	return true
}

// A5 SLM order reflects AOD order: physical order at t pins logical order.
func a5OrderReflects(v *vars) error {
	for t := 0; t < v.t; t++ {
		for q := 0; q < v.nQubits; q++ {
			for qp := q + 1; qp < v.nQubits; qp++ {
				vs := []csp.Var{v.aod[q][t], v.aod[qp][t], v.x[q][t], v.x[qp][t], v.c[q][t], v.c[qp][t]}
				if err := check(v, vs, bothAODImpliesOrder); err != nil {
					return err
				}
				vs = []csp.Var{v.aod[q][t], v.aod[qp][t], v.y[q][t], v.y[qp][t], v.r[q][t], v.r[qp][t]}
				if err := check(v, vs, bothAODImpliesOrder); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// bothAODImpliesOrder: vals = [aodQ, aodQP, physQ, physQP, logQ, logQP].
func bothAODImpliesOrder(vals []int) bool {
	aodQ, aodQP, physQ, physQP, logQ, logQP := vals[0], vals[1], vals[2], vals[3], vals[4], vals[5]
	if aodQ != 1 || aodQP != 1 {
		return true
	}
	if physQ < physQP && !(logQ < logQP) {
		return false
	}
	if physQP < physQ && !(logQP < logQ) {
		return false
	}
	return true
}

// A6 AOD order preserved across moves: logical order at t-1 bounds
// physical order at t (columns/rows cannot cross in transit).
func a6OrderPreserved(v *vars) error {
	for t := 1; t < v.t; t++ {
		for q := 0; q < v.nQubits; q++ {
			for qp := q + 1; qp < v.nQubits; qp++ {
				vs := []csp.Var{v.aod[q][t-1], v.aod[qp][t-1], v.c[q][t-1], v.c[qp][t-1], v.x[q][t], v.x[qp][t]}
				if err := check(v, vs, bothAODImpliesOrderPreserved); err != nil {
					return err
				}
				vs = []csp.Var{v.aod[q][t-1], v.aod[qp][t-1], v.r[q][t-1], v.r[qp][t-1], v.y[q][t], v.y[qp][t]}
				if err := check(v, vs, bothAODImpliesOrderPreserved); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// bothAODImpliesOrderPreserved: vals = [aodQ, aodQP, logQprev, logQPprev, physQ, physQP].
func bothAODImpliesOrderPreserved(vals []int) bool {
	aodQ, aodQP, logQ, logQP, physQ, physQP := vals[0], vals[1], vals[2], vals[3], vals[4], vals[5]
	if aodQ != 1 || aodQP != 1 {
		return true
	}
	if logQ < logQP && physQ > physQP {
		return false
	}
	if logQP < logQ && physQP > physQ {
		return false
	}
	return true
}

// A7 AOD crowding: logical separation of 3 or more forces strict physical
// separation at the next stage. The antecedent is always the *previous*
// stage's aod flag and logical coordinate, including the t=0 boundary
// case, where "previous" collapses to the same stage.
func a7Crowding(v *vars) error {
	for t := 0; t < v.t; t++ {
		prev := t
		if t > 0 {
			prev = t - 1
		}
		for q := 0; q < v.nQubits; q++ {
			for qp := q + 1; qp < v.nQubits; qp++ {
				vs := []csp.Var{v.aod[q][prev], v.aod[qp][prev], v.c[q][prev], v.c[qp][prev], v.x[q][t], v.x[qp][t]}
				if err := check(v, vs, bothAODImpliesCrowdingSeparation); err != nil {
					return err
				}
				vs = []csp.Var{v.aod[q][prev], v.aod[qp][prev], v.r[q][prev], v.r[qp][prev], v.y[q][t], v.y[qp][t]}
				if err := check(v, vs, bothAODImpliesCrowdingSeparation); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// bothAODImpliesCrowdingSeparation: vals = [aodQ, aodQP, logQprev, logQPprev, physQ, physQP].
func bothAODImpliesCrowdingSeparation(vals []int) bool {
	aodQ, aodQP, logQ, logQP, physQ, physQP := vals[0], vals[1], vals[2], vals[3], vals[4], vals[5]
	if aodQ != 1 || aodQP != 1 {
		return true
	}
	if logQ-logQP >= 3 && !(physQ > physQP) {
		return false
	}
	if logQP-logQ >= 3 && !(physQP > physQ) {
		return false
	}
	return true
}

// A8 Site exclusion: no two qubits of the same trap type may share a
// site. Mixed AOD/SLM coincidence is left unconstrained here; C2/C3
// govern when that coincidence is legal (a firing gate) or forbidden.
func a8SiteExclusion(v *vars) error {
	for t := 0; t < v.t; t++ {
		for q := 0; q < v.nQubits; q++ {
			for qp := q + 1; qp < v.nQubits; qp++ {
				vs := []csp.Var{
					v.aod[q][t], v.aod[qp][t],
					v.c[q][t], v.c[qp][t], v.r[q][t], v.r[qp][t],
					v.x[q][t], v.x[qp][t], v.y[q][t], v.y[qp][t],
				}
				if err := check(v, vs, siteExclusion); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func siteExclusion(vals []int) bool {
	aodQ, aodQP := vals[0], vals[1]
	cQ, cQP, rQ, rQP := vals[2], vals[3], vals[4], vals[5]
	xQ, xQP, yQ, yQP := vals[6], vals[7], vals[8], vals[9]
	if aodQ == 1 && aodQP == 1 && cQ == cQP && rQ == rQP {
		return false
	}
	if aodQ == 0 && aodQP == 0 && xQ == xQP && yQ == yQP {
		return false
	}
	return true
}

// A9 No swap through a shared site: two atoms occupying the same site at
// t' must each carry over their trap type from t'-1 unchanged.
func a9NoSwapThroughSite(v *vars) error {
	for t := 1; t < v.t; t++ {
		for q := 0; q < v.nQubits; q++ {
			for qp := q + 1; qp < v.nQubits; qp++ {
				vs := []csp.Var{
					v.x[q][t], v.x[qp][t], v.y[q][t], v.y[qp][t],
					v.aod[q][t], v.aod[q][t-1], v.aod[qp][t], v.aod[qp][t-1],
				}
				if err := check(v, vs, noSwapThroughSite); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func noSwapThroughSite(vals []int) bool {
	xQ, xQP, yQ, yQP := vals[0], vals[1], vals[2], vals[3]
	aodQt, aodQtm1, aodQPt, aodQPtm1 := vals[4], vals[5], vals[6], vals[7]
	if xQ != xQP || yQ != yQP {
		return true
	}
	return aodQt == aodQtm1 && aodQPt == aodQPtm1
}

// C1 Gate time bounds and dependencies. Bounds are enforced by tg's
// domain (variables.go); dependency ordering is a genuine propagator,
// not a Check, since it prunes usefully long before any variable is
// singleton.
func c1GateTimeBounds(v *vars) error {
	for _, pair := range v.depPairs {
		if err := v.store.AddConstraint(csp.LessThan(v.tg[pair[0]], v.tg[pair[1]])); err != nil {
			return err
		}
	}
	return nil
}
