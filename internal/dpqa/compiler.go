package dpqa

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kegliz/dpqac/internal/csp"
	"github.com/kegliz/dpqac/internal/logger"
	"github.com/kegliz/dpqac/qc/circuit"
)

// Compiler schedules circuits onto a DPQA architecture: an Instance
// plus the solve-time knobs (objective, search strategy, logger) that
// do not belong to the physical architecture itself. A Compiler carries
// no state across Solve calls; every call builds and discards its own
// vars/csp.Store.
type Compiler struct {
	inst      *Instance
	objective Objective
	search    *csp.Search
	log       *logger.Logger
}

// New returns a Compiler whose AOD grid inherits the SLM grid's
// dimensions.
func New(rows, cols int) *Compiler {
	return NewAOD(rows, cols, rows, cols)
}

// NewAOD returns a Compiler with an independently sized AOD logical grid.
func NewAOD(rows, cols, aodRows, aodCols int) *Compiler {
	return &Compiler{
		inst:   NewInstanceAOD(rows, cols, aodRows, aodCols),
		search: csp.NewSearch(),
		log:    logger.NewLogger(logger.LoggerOptions{}),
	}
}

// SetExtraStages sets the relaxation slack: T = circuit.StageCount() +
// extraStages for every subsequent solve call.
func (c *Compiler) SetExtraStages(n int) { c.inst.SetExtraStages(n) }

// SetObjective selects the optional lexicographic minimization goals.
// ObjectiveNone (the default) runs a single feasibility solve.
func (c *Compiler) SetObjective(o Objective) { c.objective = o }

// SetLogger replaces the Compiler's logger, so a CLI driver can hand down
// a pre-configured root logger instead of every package constructing its
// own, and tests can inject a silent one.
func (c *Compiler) SetLogger(l *logger.Logger) { c.log = l }

// Instance exposes the underlying DPQA architecture, mainly so callers
// can render it (String()) alongside a solve outcome.
func (c *Compiler) Instance() *Instance { return c.inst }

// Solve runs one solve of circ against c's Instance with no deadline. See
// SolveWithContext for the cancellable form.
func (c *Compiler) Solve(circ *circuit.Circuit) (Result, error) {
	return c.SolveWithContext(context.Background(), circ)
}

// SolveWithContext runs the full solve/decode pipeline: allocate a
// fresh variable schema, assert every A1-A9/C1-C4 constraint, run the
// search procedure (optionally re-solving under a tightening bound for
// the lexicographic objective), and on sat decode the model into an
// instruction stream. Returns Failed with a nil error on unsat or a
// cancelled/timed-out search; callers cannot distinguish the two, and
// retry with more stages or a larger grid either way. A non-nil error
// is returned only when encoding or search fails with an error other
// than plain inconsistency or cancellation. ErrInternalModelMissing is
// declared but never returned here, since Search.Solve only ever returns
// a fully singleton assignment or ok=false.
func (c *Compiler) SolveWithContext(ctx context.Context, circ *circuit.Circuit) (Result, error) {
	solveID := uuid.NewString()
	log := c.log.SpawnForSolve(solveID)
	start := time.Now()

	v, sol, ok, err := c.solveFeasible(ctx, circ, log)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		log.Info().Str("outcome", "infeasible").Dur("elapsed", time.Since(start)).Msg("solve finished")
		return Failed(), nil
	}

	if c.objective != ObjectiveNone {
		sol, err = c.minimizeTransfers(ctx, circ, sol)
		if err != nil {
			return Result{}, err
		}
		sol, err = c.minimizeOccupancy(ctx, circ, sol)
		if err != nil {
			return Result{}, err
		}
	}

	instructions := decode(v, sol, circ)
	log.Info().
		Str("outcome", "succeeded").
		Dur("elapsed", time.Since(start)).
		Int("transfers", countTransfers(v, sol)).
		Int("occupancy", countOccupancy(v, sol)).
		Int("n_instructions", len(instructions)).
		Msg("solve finished")
	return Succeeded(instructions), nil
}

// solveFeasible allocates a fresh variable schema for circ against c's
// Instance, asserts every architectural/dependency constraint, and runs a
// single feasibility search. Returns the vars (needed by the caller to
// decode), the solution array, and ok=false on unsat or cancellation.
func (c *Compiler) solveFeasible(ctx context.Context, circ *circuit.Circuit, log *logger.Logger) (*vars, []int, bool, error) {
	v := newVars(circ, c.inst)
	log.Debug().
		Int("rows", c.inst.Rows).Int("cols", c.inst.Cols).
		Int("aod_rows", c.inst.AODRows).Int("aod_cols", c.inst.AODCols).
		Int("extra_stages", c.inst.ExtraStages).
		Int("n_qubits", v.nQubits).Int("n_gates", v.nGates).Int("n_stages", v.t).
		Msg("solve starting")

	if err := encode(v, circ); err != nil {
		if err == csp.ErrInconsistent {
			return v, nil, false, nil
		}
		return v, nil, false, err
	}

	sol, ok, err := c.search.Solve(ctx, v.store)
	if err != nil {
		if err == context.Canceled || err == context.DeadlineExceeded {
			return v, nil, false, nil
		}
		return v, nil, false, err
	}
	return v, sol, ok, nil
}

// rebuildAndBound rebuilds a fresh variable schema for circ (newVars and
// encode are pure functions of (circ, c.inst), so every rebuild allocates
// the same variables in the same order, so a solution array produced
// against one build remains valid against any other), asserts every
// constraint boundCons yields, and searches for a satisfying assignment.
// Used by the branch-and-bound minimization loops below: tightening the
// bound on a fresh store avoids needing to expose Store's internal
// backtracking snapshot outside package csp.
func (c *Compiler) rebuildAndBound(ctx context.Context, circ *circuit.Circuit, boundCons func(*vars) []csp.Constraint) ([]int, bool, error) {
	v := newVars(circ, c.inst)
	if err := encode(v, circ); err != nil {
		if err == csp.ErrInconsistent {
			return nil, false, nil
		}
		return nil, false, err
	}
	for _, cons := range boundCons(v) {
		if err := v.store.AddConstraint(cons); err != nil {
			if err == csp.ErrInconsistent {
				return nil, false, nil
			}
			return nil, false, err
		}
	}
	sol, ok, err := c.search.Solve(ctx, v.store)
	if err != nil {
		if err == context.Canceled || err == context.DeadlineExceeded {
			return nil, false, nil
		}
		return nil, false, err
	}
	return sol, ok, nil
}

// minimizeTransfers is the first lexicographic goal: repeatedly
// re-solve with "total transfers <= current best - 1" until that
// becomes unsatisfiable, the standard CSP branch-and-bound idiom
// substituting for a native optimizing procedure.
func (c *Compiler) minimizeTransfers(ctx context.Context, circ *circuit.Circuit, best []int) ([]int, error) {
	for {
		v := newVars(circ, c.inst)
		bound := countTransfers(v, best) - 1
		if bound < 0 {
			return best, nil
		}
		candidate, ok, err := c.rebuildAndBound(ctx, circ, func(vv *vars) []csp.Constraint {
			return []csp.Constraint{transferBound(vv, bound)}
		})
		if err != nil {
			return nil, err
		}
		if !ok {
			return best, nil
		}
		best = candidate
	}
}

// minimizeOccupancy is the second lexicographic goal, run after
// minimizeTransfers has already fixed the first criterion.
// Every round also re-asserts "transfers <= transfers(best)" so occupancy
// improves without regressing the first, already-minimized goal.
func (c *Compiler) minimizeOccupancy(ctx context.Context, circ *circuit.Circuit, best []int) ([]int, error) {
	for {
		v := newVars(circ, c.inst)
		transfers := countTransfers(v, best)
		occupancy := countOccupancy(v, best) - 1
		if occupancy < 0 {
			return best, nil
		}
		candidate, ok, err := c.rebuildAndBound(ctx, circ, func(vv *vars) []csp.Constraint {
			return []csp.Constraint{transferBound(vv, transfers), occupancyBound(vv, occupancy)}
		})
		if err != nil {
			return nil, err
		}
		if !ok {
			return best, nil
		}
		best = candidate
	}
}
