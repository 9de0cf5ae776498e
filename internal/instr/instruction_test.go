package instr

import (
	"testing"

	"github.com/kegliz/dpqac/qc/gate"
	"github.com/stretchr/testify/assert"
)

func TestInstruction_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("Initialize qubit 0 at x=1, y=2 (SLM)", Init(0, 1, 2, false).String())
	assert.Equal("Initialize qubit 1 at x=0, y=0 (AOD)", Init(1, 0, 0, true).String())
	assert.Equal("Move qubit row [0, 1, 2] from y=1 to y=2", MoveAODRow([]int{0, 1, 2}, 1, 2).String())
	assert.Equal("Move qubit column [3] from x=0 to x=1", MoveAODCol([]int{3}, 0, 1).String())
	assert.Equal("Transfer qubit 4 to SLM", MoveToSLM(4).String())
	assert.Equal("Transfer qubit 5 to AOD", MoveToAOD(5).String())
	assert.Equal(
		"Execute [CZ(0, 1), CX(1, 2)]",
		Gate([]gate.Gate{gate.New(gate.CZ, 0, 1), gate.New(gate.CX, 1, 2)}).String(),
	)
}

func TestInstruction_Accessors(t *testing.T) {
	assert := assert.New(t)

	init := Init(2, 1, 1, false)
	assert.True(init.IsInit())
	assert.Equal(2, init.Qubit())
	assert.False(init.IsGate())

	g := Gate([]gate.Gate{gate.New(gate.CX, 0, 1)})
	assert.True(g.IsGate())
	assert.Len(g.Gates(), 1)
}
