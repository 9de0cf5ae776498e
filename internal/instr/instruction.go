// Package instr defines the instruction stream a solved DPQA schedule
// decodes to: atom placement, AOD column/row translation, AOD-to-SLM
// transfer, and gate execution bundles. The textual renderings are
// stable and test-facing; downstream tooling may parse them.
package instr

import (
	"fmt"
	"strings"

	"github.com/kegliz/dpqac/qc/gate"
)

// Instruction is one step of a decoded DPQA schedule. The zero value is
// not meaningful; build instructions with the constructors below.
type Instruction struct {
	kind kind

	qubit int
	x, y  int
	inAOD bool

	qubits   []int
	from, to int

	gates []gate.Gate
}

type kind int

const (
	kindInit kind = iota
	kindMoveAODRow
	kindMoveAODCol
	kindMoveToSLM
	kindMoveToAOD
	kindGate
)

// Init records a qubit's starting trap site at t=0.
func Init(qubit, x, y int, inAOD bool) Instruction {
	return Instruction{kind: kindInit, qubit: qubit, x: x, y: y, inAOD: inAOD}
}

// MoveAODRow records a group of qubits sharing an AOD row translating
// together in y between consecutive stages.
func MoveAODRow(qubits []int, yFrom, yTo int) Instruction {
	return Instruction{kind: kindMoveAODRow, qubits: qubits, from: yFrom, to: yTo}
}

// MoveAODCol records a group of qubits sharing an AOD column translating
// together in x between consecutive stages.
func MoveAODCol(qubits []int, xFrom, xTo int) Instruction {
	return Instruction{kind: kindMoveAODCol, qubits: qubits, from: xFrom, to: xTo}
}

// MoveToSLM records a qubit transferring from the AOD into the SLM.
func MoveToSLM(qubit int) Instruction {
	return Instruction{kind: kindMoveToSLM, qubit: qubit}
}

// MoveToAOD records a qubit transferring from the SLM into the AOD. The
// decoder never emits this: SLM-to-AOD pickup is implicit in the next
// MoveAODRow/MoveAODCol the qubit participates in. Kept for symmetry with
// the instruction set the scheduler's internal model admits, and for
// callers that want an explicit trace.
func MoveToAOD(qubit int) Instruction {
	return Instruction{kind: kindMoveToAOD, qubit: qubit}
}

// Gate records a bundle of gates executing simultaneously at one stage,
// in original circuit order.
func Gate(gates []gate.Gate) Instruction {
	return Instruction{kind: kindGate, gates: gates}
}

// IsInit reports whether this is an Init instruction.
func (i Instruction) IsInit() bool { return i.kind == kindInit }

// IsGate reports whether this is a Gate instruction.
func (i Instruction) IsGate() bool { return i.kind == kindGate }

// IsMove reports whether this is a MoveAODRow or MoveAODCol instruction.
func (i Instruction) IsMove() bool {
	return i.kind == kindMoveAODRow || i.kind == kindMoveAODCol
}

// Gates returns the gate bundle for a Gate instruction, or nil otherwise.
func (i Instruction) Gates() []gate.Gate { return i.gates }

// Qubit returns the qubit for Init, MoveToSLM and MoveToAOD instructions.
func (i Instruction) Qubit() int { return i.qubit }

func (i Instruction) String() string {
	switch i.kind {
	case kindInit:
		site := "SLM"
		if i.inAOD {
			site = "AOD"
		}
		return fmt.Sprintf("Initialize qubit %d at x=%d, y=%d (%s)", i.qubit, i.x, i.y, site)
	case kindMoveAODRow:
		return fmt.Sprintf("Move qubit row %s from y=%d to y=%d", debugIntSlice(i.qubits), i.from, i.to)
	case kindMoveAODCol:
		return fmt.Sprintf("Move qubit column %s from x=%d to x=%d", debugIntSlice(i.qubits), i.from, i.to)
	case kindMoveToSLM:
		return fmt.Sprintf("Transfer qubit %d to SLM", i.qubit)
	case kindMoveToAOD:
		return fmt.Sprintf("Transfer qubit %d to AOD", i.qubit)
	case kindGate:
		parts := make([]string, len(i.gates))
		for j, g := range i.gates {
			parts[j] = g.String()
		}
		return fmt.Sprintf("Execute [%s]", strings.Join(parts, ", "))
	default:
		return "UNKNOWN"
	}
}

// debugIntSlice renders an int slice the way Rust's {:?} renders a Vec:
// "[0, 1, 2]".
func debugIntSlice(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
