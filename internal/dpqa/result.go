package dpqa

import "github.com/kegliz/dpqac/internal/instr"

// Result is the two-valued outcome of a solve call: the
// architecture/circuit pair is either schedulable at the configured
// stage count, or it is not. There is no partial result.
type Result struct {
	ok           bool
	instructions []instr.Instruction
}

// Succeeded builds a Result carrying a satisfying instruction stream.
func Succeeded(instructions []instr.Instruction) Result {
	return Result{ok: true, instructions: instructions}
}

// Failed builds a Result representing unsat or solver-unknown; both are
// reported identically, with no distinction the caller can observe
// beyond retrying with more stages or a larger grid.
func Failed() Result {
	return Result{}
}

// Ok reports whether the solve succeeded.
func (r Result) Ok() bool { return r.ok }

// Instructions returns the decoded instruction stream. Empty, and
// meaningless, when Ok is false.
func (r Result) Instructions() []instr.Instruction { return r.instructions }
