package dpqa

import (
	"github.com/kegliz/dpqac/internal/csp"
	"github.com/kegliz/dpqac/qc/circuit"
)

// pairKey orders a qubit pair so (q, q') and (q', q) land on the same
// multimap entry.
type pairKey struct{ lo, hi int }

func makePairKey(a, b int) pairKey {
	if a < b {
		return pairKey{a, b}
	}
	return pairKey{b, a}
}

// C2 Entangling coincidence: a gate's two qubits must share a site at the
// stage it fires.
func c2EntanglingCoincidence(v *vars, circ *circuit.Circuit) error {
	for i, g := range circ.Gates() {
		qc, qt := g.Qubits()
		for t := 0; t < v.t; t++ {
			if err := check(v, []csp.Var{v.tg[i], v.x[qc][t], v.x[qt][t]}, tgFiresImpliesEqual(t)); err != nil {
				return err
			}
			if err := check(v, []csp.Var{v.tg[i], v.y[qc][t], v.y[qt][t]}, tgFiresImpliesEqual(t)); err != nil {
				return err
			}
		}
	}
	return nil
}

func tgFiresImpliesEqual(t int) func(vals []int) bool {
	return func(vals []int) bool {
		if vals[0] != t {
			return true
		}
		return vals[1] == vals[2]
	}
}

// C3 Interaction exactness: a coincidence between two qubits is legal
// only when some gate on that exact pair fires at that stage; qubit pairs
// no gate ever couples may never coincide at all.
func c3InteractionExactness(v *vars, circ *circuit.Circuit) error {
	byPair := make(map[pairKey][]int)
	for i, g := range circ.Gates() {
		qc, qt := g.Qubits()
		k := makePairKey(qc, qt)
		byPair[k] = append(byPair[k], i)
	}

	for q := 0; q < v.nQubits; q++ {
		for qp := q + 1; qp < v.nQubits; qp++ {
			gates, coupled := byPair[pairKey{q, qp}]
			for t := 0; t < v.t; t++ {
				vs := []csp.Var{v.x[q][t], v.x[qp][t], v.y[q][t], v.y[qp][t]}
				if !coupled {
					if err := check(v, vs, neverCoincide); err != nil {
						return err
					}
					continue
				}
				tgVars := make([]csp.Var, len(gates))
				for gi, idx := range gates {
					tgVars[gi] = v.tg[idx]
				}
				if err := check(v, append(vs, tgVars...), coincidenceNeedsFiringGate(t)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func neverCoincide(vals []int) bool {
	xQ, xQP, yQ, yQP := vals[0], vals[1], vals[2], vals[3]
	return xQ != xQP || yQ != yQP
}

func coincidenceNeedsFiringGate(t int) func(vals []int) bool {
	return func(vals []int) bool {
		xQ, xQP, yQ, yQP := vals[0], vals[1], vals[2], vals[3]
		if xQ != xQP || yQ != yQP {
			return true
		}
		for _, tg := range vals[4:] {
			if tg == t {
				return true
			}
		}
		return false
	}
}

// C4 Gate-kind co-scheduling: only one gate kind fires per stage.
func c4GateKindCoScheduling(v *vars, circ *circuit.Circuit) error {
	gates := circ.Gates()
	for i := 0; i < len(gates); i++ {
		for j := i + 1; j < len(gates); j++ {
			if gates[i].Kind() == gates[j].Kind() {
				continue
			}
			if err := v.store.AddConstraint(csp.NotEqual(v.tg[i], v.tg[j])); err != nil {
				return err
			}
		}
	}
	return nil
}
