// Package gate defines the two-qubit gate model the scheduler reasons
// about: a gate's kind, its control/target qubits, and the commutation
// and parallelism predicates the circuit package uses to build stages.
package gate

import "fmt"

// Kind identifies which of the two supported two-qubit gates this is.
type Kind int

const (
	CX Kind = iota
	CZ
)

// String renders the kind the way it prints in an Execute{...} bundle.
func (k Kind) String() string {
	switch k {
	case CX:
		return "CX"
	case CZ:
		return "CZ"
	default:
		return "UNKNOWN"
	}
}

// Gate is an immutable two-qubit gate application.
type Gate struct {
	kind    Kind
	control int
	target  int
}

// New constructs a gate. Control and target must be non-negative and
// distinct; New panics otherwise, the same contract circuit.Append relies
// on (callers validate qubit indices before constructing a Gate).
func New(kind Kind, control, target int) Gate {
	if control < 0 || target < 0 {
		panic("gate: qubit index must be non-negative")
	}
	if control == target {
		panic("gate: control and target must differ")
	}
	return Gate{kind: kind, control: control, target: target}
}

func (g Gate) Kind() Kind         { return g.kind }
func (g Gate) Control() int       { return g.control }
func (g Gate) Target() int        { return g.target }
func (g Gate) Qubits() (int, int) { return g.control, g.target }

// String renders a gate exactly as spec'd for Execute{...} bundles:
// "CX(ctrl, target)" or "CZ(ctrl, target)".
func (g Gate) String() string {
	return fmt.Sprintf("%s(%d, %d)", g.kind, g.control, g.target)
}

// Commutes reports whether g and h can be reordered without changing the
// circuit's semantics:
//   - disjoint qubit sets always commute
//   - two CZs always commute
//   - two CXs commute iff neither's target equals the other's control
//   - a CX and a CZ commute iff their targets differ
//
// Symmetric, and reflexive (a gate commutes with itself).
func (g Gate) Commutes(h Gate) bool {
	if g.disjoint(h) {
		return true
	}
	switch {
	case g.kind == CZ && h.kind == CZ:
		return true
	case g.kind == CX && h.kind == CX:
		return g.control != h.target && h.control != g.target
	default:
		// one CX, one CZ, either order: only targets matter.
		return g.target != h.target
	}
}

// Parallel reports whether g and h act on entirely disjoint qubits, i.e.
// they can execute at the same physical time step regardless of kind or
// commutation.
func (g Gate) Parallel(h Gate) bool {
	return g.disjoint(h)
}

func (g Gate) disjoint(h Gate) bool {
	return g.control != h.control && g.control != h.target &&
		g.target != h.control && g.target != h.target
}
