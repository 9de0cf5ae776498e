package circuit

import (
	"testing"

	"github.com/kegliz/dpqac/qc/gate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircuit_AppendGrowsQubits(t *testing.T) {
	assert := assert.New(t)
	c := New()
	c.Append(gate.New(gate.CX, 0, 1))
	assert.Equal(2, c.NQubits())
	c.Append(gate.New(gate.CZ, 1, 5))
	assert.Equal(6, c.NQubits())
	assert.Equal(2, c.NGates())
	assert.Equal(2, c.StageCount(), "append places each gate in its own trailing stage")
}

func TestCircuit_Renumber(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	c := New()
	c.Append(gate.New(gate.CX, 1, 2))
	c.Append(gate.New(gate.CZ, 2, 5))
	require.Equal(6, c.NQubits())

	changed := c.Renumber()
	assert.True(changed)
	assert.Equal(3, c.NQubits())

	seen := make([]bool, c.NQubits())
	for _, g := range c.Gates() {
		ctrl, tgt := g.Qubits()
		seen[ctrl], seen[tgt] = true, true
	}
	for q, ok := range seen {
		assert.True(ok, "qubit %d must be referenced after renumber", q)
	}
}

func TestCircuit_RenumberUnchangedWhenContiguous(t *testing.T) {
	assert := assert.New(t)
	c := New()
	c.Append(gate.New(gate.CX, 0, 1))
	c.Append(gate.New(gate.CZ, 1, 2))
	assert.False(c.Renumber())
}

func TestCircuit_RenumberIdempotent(t *testing.T) {
	assert := assert.New(t)
	c := New()
	c.Append(gate.New(gate.CX, 1, 2))
	c.Append(gate.New(gate.CZ, 2, 5))
	assert.True(c.Renumber())
	assert.False(c.Renumber(), "a second renumber on an already-contiguous circuit must be a no-op")
}

func TestCircuit_RecalculateStages_PublishedFigure(t *testing.T) {
	assert := assert.New(t)
	c := New()
	pairs := [][2]int{{2, 4}, {3, 5}, {0, 1}, {2, 3}, {4, 5}, {0, 2}, {1, 3}, {0, 4}, {1, 5}}
	for _, p := range pairs {
		c.Append(gate.New(gate.CZ, p[0], p[1]))
	}
	changed := c.RecalculateStages()
	assert.True(changed)
	assert.Equal(4, c.StageCount())

	for s, stage := range c.Stages() {
		for i := 0; i < len(stage); i++ {
			assert.Equal(s, c.StageOf(stage[i]))
			for j := i + 1; j < len(stage); j++ {
				gi, gj := c.Gate(stage[i]), c.Gate(stage[j])
				assert.True(gi.Parallel(gj), "gates sharing a stage must touch disjoint qubits")
			}
		}
	}
}

func TestCircuit_RecalculateStagesIdempotent(t *testing.T) {
	assert := assert.New(t)
	c := New()
	c.Append(gate.New(gate.CZ, 0, 2))
	c.Append(gate.New(gate.CZ, 1, 3))
	c.Append(gate.New(gate.CZ, 2, 4))
	c.Append(gate.New(gate.CZ, 3, 5))

	assert.True(c.RecalculateStages())
	before := c.Stages()
	assert.False(c.RecalculateStages(), "recalculating an already-stable partition must report unchanged")
	assert.Equal(before, c.Stages())
}

func TestCircuit_DependencyPairs(t *testing.T) {
	assert := assert.New(t)
	c := New()
	c.Append(gate.New(gate.CZ, 0, 1))
	c.Append(gate.New(gate.CZ, 1, 2))
	c.RecalculateStages()

	require.Equal(t, 2, c.StageCount())
	pairs := c.DependencyPairs()
	assert.Equal([][2]int{{0, 1}}, pairs)
}

func TestCircuit_GateKindSeparationDoesNotAffectStaging(t *testing.T) {
	// CX and CZ on disjoint qubits commute and may share a stage; the
	// encoder (not the circuit) is responsible for keeping kinds apart
	// at a single gate time (see internal/dpqa constraint C4).
	assert := assert.New(t)
	c := New()
	c.Append(gate.New(gate.CZ, 0, 2))
	c.Append(gate.New(gate.CZ, 1, 3))
	c.Append(gate.New(gate.CX, 4, 5))
	c.Append(gate.New(gate.CX, 6, 7))
	c.RecalculateStages()
	assert.Equal(1, c.StageCount())
}

func TestCircuit_String(t *testing.T) {
	assert := assert.New(t)
	c := New()
	c.Append(gate.New(gate.CZ, 0, 1))
	c.Append(gate.New(gate.CX, 1, 2))
	assert.Equal("Circuit with 2 gates:\n    CZ(0, 1), CX(1, 2)", c.String())
}
