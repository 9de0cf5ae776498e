package dpqa

import (
	"sort"

	"github.com/kegliz/dpqac/internal/csp"
	"github.com/kegliz/dpqac/internal/instr"
	"github.com/kegliz/dpqac/qc/circuit"
	"github.com/kegliz/dpqac/qc/gate"
)

// moveGroup accumulates the qubits sharing one (from, to) translation so
// they can be emitted as a single MoveAODCol/MoveAODRow instruction.
type moveGroup struct {
	from, to int
	qubits   []int
}

// decode reads a satisfying assignment back into an instruction stream:
// one pass over t = 0…T−1, Init at t=0, then at every t a gate bundle
// for whatever fires there (t=0 included; a single-stage circuit has
// nowhere else to fire), and at t≥1 the movement instructions ahead of
// that bundle.
func decode(v *vars, sol []int, circ *circuit.Circuit) []instr.Instruction {
	var out []instr.Instruction

	for t := 0; t < v.t; t++ {
		if t == 0 {
			for q := 0; q < v.nQubits; q++ {
				out = append(out, instr.Init(q, sol[v.x[q][0]], sol[v.y[q][0]], sol[v.aod[q][0]] == 1))
			}
		} else {
			out = append(out, decodeTransfers(v, sol, t)...)
			out = append(out, decodeMoves(v, sol, t, v.c, v.x, instr.MoveAODCol)...)
			out = append(out, decodeMoves(v, sol, t, v.r, v.y, instr.MoveAODRow)...)
		}
		if g := decodeGateBundle(v, sol, circ, t); g != nil {
			out = append(out, *g)
		}
	}

	return out
}

// decodeTransfers emits MoveToSLM for every qubit whose aod flag fell
// from true at t-1 to false at t, in qubit-index order.
func decodeTransfers(v *vars, sol []int, t int) []instr.Instruction {
	var out []instr.Instruction
	for q := 0; q < v.nQubits; q++ {
		if sol[v.aod[q][t-1]] == 1 && sol[v.aod[q][t]] == 0 {
			out = append(out, instr.MoveToSLM(q))
		}
	}
	return out
}

// decodeMoves groups qubits whose physical coordinate changed while their
// logical AOD coordinate stayed fixed, keyed by (from, to), and emits one
// instruction per group via build. logical/phys hold the c/r and x/y
// variable tables respectively.
func decodeMoves(v *vars, sol []int, t int, logical, phys [][]csp.Var, build func([]int, int, int) instr.Instruction) []instr.Instruction {
	groups := make(map[[2]int]*moveGroup)
	var order [][2]int

	for q := 0; q < v.nQubits; q++ {
		from, to := sol[phys[q][t-1]], sol[phys[q][t]]
		if sol[logical[q][t]] != sol[logical[q][t-1]] || from == to {
			continue
		}
		key := [2]int{from, to}
		g, ok := groups[key]
		if !ok {
			g = &moveGroup{from: from, to: to}
			groups[key] = g
			order = append(order, key)
		}
		g.qubits = append(g.qubits, q)
	}

	sort.Slice(order, func(i, j int) bool {
		return order[i][0] < order[j][0] || (order[i][0] == order[j][0] && order[i][1] < order[j][1])
	})

	var out []instr.Instruction
	for _, key := range order {
		g := groups[key]
		out = append(out, build(g.qubits, g.from, g.to))
	}
	return out
}

// decodeGateBundle collects every gate whose tg equals t, in original
// gate order, and returns a single Gate instruction, or nil if none fire.
func decodeGateBundle(v *vars, sol []int, circ *circuit.Circuit, t int) *instr.Instruction {
	var fired []gate.Gate
	for i, g := range circ.Gates() {
		if sol[v.tg[i]] == t {
			fired = append(fired, g)
		}
	}
	if len(fired) == 0 {
		return nil
	}
	g := instr.Gate(fired)
	return &g
}
