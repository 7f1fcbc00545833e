// Package benchmark scores the greedy allocator against a linear relaxation
// of the assignment problem. The relaxation ignores travel and event
// windows: fractional service variables, at-most-once coverage per event
// and a service-time-only capacity per boat. Its objective is an optimistic
// upper reference, not an achievable plan, so the reported gap measures how
// much the heuristic loses to routing and timing constraints combined.
package benchmark

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/Asiantown/GeoEvents/core/model"
	"github.com/Asiantown/GeoEvents/core/patrol"
)

// DefaultEventLimit caps the LP size when Compare is called with limit <= 0.
const DefaultEventLimit = 10

// ErrInfeasible indicates the LP solver failed on the relaxation.
var ErrInfeasible = errors.New("lp infeasible")

// Result reports both objectives over the same truncated event set.
type Result struct {
	LPObjective        float64
	HeuristicObjective float64
	// GapPercent is how far the heuristic falls short of the relaxation,
	// as a percentage of the relaxation's objective.
	GapPercent float64
	// LPSelections lists the event ids each boat serves with weight
	// above one half in the fractional solution.
	LPSelections map[string][]int
	Assignments  []model.Assignment
}

// lpSolve points to the function used to solve the LP. It can be overridden
// in tests to simulate solver failures.
var lpSolve = solveLP

// Compare runs the greedy allocator and the relaxation on the first limit
// events and reports both objectives. Events beyond the limit are dropped
// to keep the LP small.
func Compare(events []model.StationaryEvent, boats []model.PatrolBoat, limit int) (Result, error) {
	if limit <= 0 {
		limit = DefaultEventLimit
	}
	if len(events) > limit {
		events = events[:limit]
	}

	assignments, err := patrol.Assign(events, boats)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		Assignments:  assignments,
		LPSelections: make(map[string][]int, len(boats)),
	}
	for _, a := range assignments {
		res.HeuristicObjective += a.TotalWeight
	}
	if len(events) == 0 || len(boats) == 0 {
		return res, nil
	}

	objective, sol, err := lpSolve(events, boats)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInfeasible, err)
	}
	res.LPObjective = objective
	for bi, b := range boats {
		var ids []int
		for ei, e := range events {
			if sol[bi*len(events)+ei] > 0.5 {
				ids = append(ids, e.EventID)
			}
		}
		res.LPSelections[b.BoatID] = ids
	}
	if res.LPObjective > 0 {
		res.GapPercent = 100 * (res.LPObjective - res.HeuristicObjective) / res.LPObjective
	}
	return res, nil
}

// solveLP maximises total served value over service variables x[b*E+e] in
// [0, 1], subject to at-most-once coverage per event and a per-boat budget
// of duration plus detect buffer. Returns the objective and the flattened
// variable values.
func solveLP(events []model.StationaryEvent, boats []model.PatrolBoat) (float64, []float64, error) {
	ne, nb := len(events), len(boats)
	nVar := nb * ne

	c := make([]float64, nVar)
	for bi := 0; bi < nb; bi++ {
		for ei, e := range events {
			c[bi*ne+ei] = -e.Value()
		}
	}

	// Rows: coverage per event, capacity per boat, then x >= 0. The
	// coverage rows already imply x <= 1 once x is non-negative.
	rows := ne + nb + nVar
	g := mat.NewDense(rows, nVar, nil)
	h := make([]float64, rows)
	for ei := range events {
		for bi := 0; bi < nb; bi++ {
			g.Set(ei, bi*ne+ei, 1)
		}
		h[ei] = 1
	}
	for bi, b := range boats {
		row := ne + bi
		for ei, e := range events {
			g.Set(row, bi*ne+ei, e.DurationSec+math.Max(b.DetectBuffer, 0))
		}
		h[row] = b.ShiftLimit
	}
	for v := 0; v < nVar; v++ {
		g.Set(ne+nb+v, v, -1)
	}

	cStd, aStd, bStd := lp.Convert(c, g, h, nil, nil)
	opt, sol, err := lp.Simplex(cStd, aStd, bStd, 1e-7, nil)
	if err != nil {
		return 0, nil, err
	}
	return -opt, sol[:nVar], nil
}
