package dpqa

import (
	"github.com/kegliz/dpqac/internal/csp"
	"github.com/kegliz/dpqac/qc/circuit"
)

// vars allocates and holds the decision variables for one (circuit,
// Instance) solve call, plus the precomputed dependency pairs the
// encoder asserts ordering over. A fresh vars is built per
// Compiler.Solve call and discarded with it.
type vars struct {
	store *csp.Store

	nQubits int
	nGates  int
	t       int // T: number of scheduling time steps

	x, y [][]csp.Var // [qubit][t], SLM coordinates
	c, r [][]csp.Var // [qubit][t], AOD logical coordinates
	aod  [][]csp.Var // [qubit][t], boolean: held by AOD

	tg []csp.Var // [gate], time step the gate fires at

	depPairs [][2]int // dependency pairs from circuit.DependencyPairs()
}

// newVars allocates the full variable schema for c against inst, with T
// equal to the circuit's stage count plus inst.ExtraStages.
func newVars(c *circuit.Circuit, inst *Instance) *vars {
	nQubits := c.NQubits()
	nGates := c.NGates()
	t := c.StageCount() + inst.ExtraStages
	if t < 1 {
		t = 1
	}

	store := csp.NewStore()
	v := &vars{
		store:    store,
		nQubits:  nQubits,
		nGates:   nGates,
		t:        t,
		x:        make([][]csp.Var, nQubits),
		y:        make([][]csp.Var, nQubits),
		c:        make([][]csp.Var, nQubits),
		r:        make([][]csp.Var, nQubits),
		aod:      make([][]csp.Var, nQubits),
		tg:       make([]csp.Var, nGates),
		depPairs: c.DependencyPairs(),
	}

	for q := 0; q < nQubits; q++ {
		v.x[q] = make([]csp.Var, t)
		v.y[q] = make([]csp.Var, t)
		v.c[q] = make([]csp.Var, t)
		v.r[q] = make([]csp.Var, t)
		v.aod[q] = make([]csp.Var, t)
		for tt := 0; tt < t; tt++ {
			v.x[q][tt] = store.NewVar(inst.Cols - 1)
			v.y[q][tt] = store.NewVar(inst.Rows - 1)
			v.c[q][tt] = store.NewVar(inst.AODCols - 1)
			v.r[q][tt] = store.NewVar(inst.AODRows - 1)
			v.aod[q][tt] = store.NewBoolVar()
		}
	}
	for i := 0; i < nGates; i++ {
		v.tg[i] = store.NewVar(t - 1)
	}

	return v
}
