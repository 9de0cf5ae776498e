// Package circuit models a quantum circuit as an ordered sequence of
// two-qubit gates plus a derived stage partition: the grouping of gates
// into time steps the scheduler will later assign to a DPQA instance.
// The representation is deliberately flat (a gate slice and a qubit
// count), since the stage partition is a commutation-aware greedy
// placement (see RecalculateStages), not a topological layering over a
// dependency DAG.
package circuit

import (
	"fmt"
	"strings"

	"github.com/kegliz/dpqac/qc/gate"
)

// Circuit is an ordered, mutable sequence of two-qubit gates plus a
// derived stage partition. The zero value is not usable; construct with
// New.
type Circuit struct {
	gates   []gate.Gate
	stages  [][]int // stages[s] is a sorted list of gate indices placed in stage s
	nQubits int
}

// New returns an empty circuit.
func New() *Circuit {
	return &Circuit{}
}

// Append adds a gate to the tail of the circuit, growing the qubit count
// if needed, and places it in a new trailing singleton stage. Callers
// that want a compacted stage partition should follow with
// RecalculateStages.
func (c *Circuit) Append(g gate.Gate) {
	ctrl, tgt := g.Qubits()
	if ctrl+1 > c.nQubits {
		c.nQubits = ctrl + 1
	}
	if tgt+1 > c.nQubits {
		c.nQubits = tgt + 1
	}
	idx := len(c.gates)
	c.gates = append(c.gates, g)
	c.stages = append(c.stages, []int{idx})
}

// NQubits returns one plus the maximum qubit index referenced by any
// gate in the circuit.
func (c *Circuit) NQubits() int { return c.nQubits }

// NGates returns the number of gates appended to the circuit.
func (c *Circuit) NGates() int { return len(c.gates) }

// StageCount returns the number of stages in the current partition.
func (c *Circuit) StageCount() int { return len(c.stages) }

// Gate returns the gate at index i in append order.
func (c *Circuit) Gate(i int) gate.Gate { return c.gates[i] }

// Gates returns a copy of the circuit's gates in append order.
func (c *Circuit) Gates() []gate.Gate {
	out := make([]gate.Gate, len(c.gates))
	copy(out, c.gates)
	return out
}

// Stages returns a copy of the current stage partition: Stages()[s] is
// the sorted list of gate indices placed in stage s.
func (c *Circuit) Stages() [][]int {
	out := make([][]int, len(c.stages))
	for i, s := range c.stages {
		cp := make([]int, len(s))
		copy(cp, s)
		out[i] = cp
	}
	return out
}

// StageOf returns the stage index holding gate i under the current
// partition.
func (c *Circuit) StageOf(i int) int {
	for s, gates := range c.stages {
		for _, gi := range gates {
			if gi == i {
				return s
			}
		}
	}
	return -1
}

// Renumber rewrites qubit indices so the set of qubits actually
// referenced by the circuit's gates is exactly {0, ..., n-1}. If the
// referenced set is already contiguous from 0, Renumber does nothing and
// returns false. Otherwise each referenced index is remapped to its rank
// in ascending order and Renumber returns true.
func (c *Circuit) Renumber() bool {
	seen := make([]bool, c.nQubits)
	for _, g := range c.gates {
		ctrl, tgt := g.Qubits()
		seen[ctrl] = true
		seen[tgt] = true
	}

	contiguous := true
	for _, s := range seen {
		if !s {
			contiguous = false
			break
		}
	}
	if contiguous {
		return false
	}

	newIdx := make([]int, c.nQubits)
	n := 0
	for q, s := range seen {
		if s {
			newIdx[q] = n
			n++
		}
	}

	for i, g := range c.gates {
		ctrl, tgt := g.Qubits()
		c.gates[i] = gate.New(g.Kind(), newIdx[ctrl], newIdx[tgt])
	}
	c.nQubits = n
	return true
}

// RecalculateStages recomputes the stage partition with a greedy
// backward-sweep: gates are processed in original append order, and each
// gate is placed in the earliest stage whose qubits are still free,
// without crossing a stage containing a gate it does not commute with
// (a dependency barrier). If no such stage exists, the gate starts a new
// trailing stage.
//
// Returns true iff the recomputed partition differs from the prior one
// (some gate moved to a different stage); a second call on an unchanged
// circuit is idempotent and returns false.
func (c *Circuit) RecalculateStages() bool {
	newStages := make([][]int, 0, len(c.gates))

	for gi, g := range c.gates {
		placed := -1
		for s := len(newStages) - 1; s >= 0; s-- {
			barrier := false
			free := true
			for _, other := range newStages[s] {
				oh := c.gates[other]
				if !g.Commutes(oh) {
					barrier = true
					break
				}
				if !g.Parallel(oh) {
					free = false
				}
			}
			if barrier {
				break
			}
			if free {
				placed = s
			}
		}

		if placed == -1 {
			newStages = append(newStages, []int{gi})
		} else {
			newStages[placed] = append(newStages[placed], gi)
		}
	}

	changed := !stagesEqual(c.stages, newStages)
	c.stages = newStages
	return changed
}

func stagesEqual(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

// DependencyPairs returns, for every pair of gates (g0, g1) where g0's
// stage immediately precedes g1's stage under the current partition, the
// pair (g0, g1). These are the cross-stage ordering constraints the
// encoder asserts between gate times.
func (c *Circuit) DependencyPairs() [][2]int {
	var pairs [][2]int
	for s := 0; s+1 < len(c.stages); s++ {
		for _, g0 := range c.stages[s] {
			for _, g1 := range c.stages[s+1] {
				pairs = append(pairs, [2]int{g0, g1})
			}
		}
	}
	return pairs
}

// String renders the circuit as "Circuit with N gates:\n    g0, g1, ...".
func (c *Circuit) String() string {
	parts := make([]string, len(c.gates))
	for i, g := range c.gates {
		parts[i] = g.String()
	}
	return fmt.Sprintf("Circuit with %d gates:\n    %s", len(c.gates), strings.Join(parts, ", "))
}
