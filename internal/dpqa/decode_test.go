package dpqa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kegliz/dpqac/qc/gate"
)

// solBuilder fills a solution array against a vars schema the way
// Search.Solve would, so decode's grouping and ordering rules can be
// exercised on a hand-built model without running the solver.
type solBuilder struct {
	v   *vars
	sol []int
}

func newSolBuilder(v *vars) *solBuilder {
	return &solBuilder{v: v, sol: make([]int, v.store.NumVars())}
}

func (b *solBuilder) qubit(q, t, x, y, c, r int, inAOD bool) *solBuilder {
	b.sol[b.v.x[q][t]] = x
	b.sol[b.v.y[q][t]] = y
	b.sol[b.v.c[q][t]] = c
	b.sol[b.v.r[q][t]] = r
	if inAOD {
		b.sol[b.v.aod[q][t]] = 1
	}
	return b
}

func (b *solBuilder) gateAt(i, t int) *solBuilder {
	b.sol[b.v.tg[i]] = t
	return b
}

func TestDecode_GroupsSharedColumnIntoOneMove(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	c := buildCircuit(gate.New(gate.CZ, 0, 2), gate.New(gate.CZ, 1, 3))
	c.RecalculateStages()
	require.Equal(1, c.StageCount())

	inst := NewInstanceAOD(2, 2, 2, 2)
	inst.SetExtraStages(1)
	v := newVars(c, inst)
	require.Equal(2, v.t)

	// Qubits 0 and 1 sit in SLM at x=1; qubits 2 and 3 share AOD column
	// c=0 at x=0 and translate together onto them for the gate stage.
	b := newSolBuilder(v).
		qubit(0, 0, 1, 0, 0, 0, false).qubit(0, 1, 1, 0, 0, 0, false).
		qubit(1, 0, 1, 1, 0, 0, false).qubit(1, 1, 1, 1, 0, 0, false).
		qubit(2, 0, 0, 0, 0, 0, true).qubit(2, 1, 1, 0, 0, 0, true).
		qubit(3, 0, 0, 1, 0, 1, true).qubit(3, 1, 1, 1, 0, 1, true).
		gateAt(0, 1).gateAt(1, 1)

	instructions := decode(v, b.sol, c)
	require.Len(instructions, 6, "4 Init, one grouped column move, one gate bundle")

	for q := 0; q < 4; q++ {
		assert.True(instructions[q].IsInit())
		assert.Equal(q, instructions[q].Qubit(), "Init instructions come in qubit order")
	}
	assert.Equal("Move qubit column [2, 3] from x=0 to x=1", instructions[4].String(),
		"qubits sharing an AOD column must move as one instruction, in qubit order")
	assert.Equal("Execute [CZ(0, 2), CZ(1, 3)]", instructions[5].String(),
		"every gate with tg=1 lands in the stage's single bundle, in original gate order")
}

func TestDecode_EmitsTransferAfterSeparation(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	c := buildCircuit(gate.New(gate.CZ, 0, 1))

	inst := NewInstance(2, 1)
	inst.SetExtraStages(2)
	v := newVars(c, inst)
	require.Equal(3, v.t)

	// Qubit 1 fires its gate on qubit 0's site at t=0, slides its AOD row
	// away at t=1, and parks into the SLM at t=2.
	b := newSolBuilder(v).
		qubit(0, 0, 0, 0, 0, 0, false).qubit(0, 1, 0, 0, 0, 0, false).qubit(0, 2, 0, 0, 0, 0, false).
		qubit(1, 0, 0, 0, 0, 0, true).qubit(1, 1, 0, 1, 0, 0, true).qubit(1, 2, 0, 1, 0, 0, false).
		gateAt(0, 0)

	instructions := decode(v, b.sol, c)
	require.Len(instructions, 5)

	assert.Equal("Initialize qubit 0 at x=0, y=0 (SLM)", instructions[0].String())
	assert.Equal("Initialize qubit 1 at x=0, y=0 (AOD)", instructions[1].String())
	assert.Equal("Execute [CZ(0, 1)]", instructions[2].String(),
		"a gate bundle at t=0 follows the Init block")
	assert.Equal("Move qubit row [1] from y=0 to y=1", instructions[3].String())
	assert.Equal("Transfer qubit 1 to SLM", instructions[4].String())
}
