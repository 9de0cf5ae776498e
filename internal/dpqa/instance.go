// Package dpqa implements the constraint system and scheduler for the
// Dynamically-Programmable Qubit Array: the variable schema, the A1-A9
// and C1-C4 constraint encoder, the optional lexicographic objective, and
// the solve/decode pipeline that turns a satisfying assignment into an
// internal/instr instruction stream.
package dpqa

import "fmt"

// Instance is the physical architecture a circuit is scheduled
// against: an SLM grid (rows x cols) and an AOD logical grid (aod_rows x
// aod_cols), plus a slack of extra stages beyond the circuit's own stage
// count. The grid sizes are set at construction; the slack can be
// changed afterwards with SetExtraStages. A plain struct rather than a functional-options builder, since
// an instance is just five integers.
type Instance struct {
	Rows, Cols       int
	AODRows, AODCols int
	ExtraStages      int
}

// NewInstance returns an Instance whose AOD grid inherits the SLM grid's
// dimensions. Most callers want Compiler's New/NewAOD instead, which pair
// an Instance with the solve-time knobs (objective, logger); NewInstance
// exists for callers that only need the architecture value itself.
func NewInstance(rows, cols int) *Instance {
	return NewInstanceAOD(rows, cols, rows, cols)
}

// NewInstanceAOD returns an Instance with an independently sized AOD
// logical grid.
func NewInstanceAOD(rows, cols, aodRows, aodCols int) *Instance {
	return &Instance{Rows: rows, Cols: cols, AODRows: aodRows, AODCols: aodCols}
}

// SetExtraStages sets the relaxation slack added to the circuit's own
// stage count to form T, the number of scheduling time steps.
func (d *Instance) SetExtraStages(n int) { d.ExtraStages = n }

// String renders the instance's grid dimensions for debug logging.
func (d *Instance) String() string {
	return fmt.Sprintf("DPQA solver\n    grid:     %d x %d\n    AOD grid: %d x %d",
		d.Rows, d.Cols, d.AODRows, d.AODCols)
}
