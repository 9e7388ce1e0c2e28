package main

import (
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Result is the outcome of one problem. Plan is nil when the problem is
// infeasible or invalid.
type Result struct {
	Problem *Problem
	Plan    *Plan
	Err     error
}

// Removable returns the removable edge count, -1 for infeasible
// problems.
func (r *Result) Removable() int {
	if r.Plan == nil {
		return -1
	}
	return r.Plan.Removable
}

func solveProblem(p *Problem, db *ResultsDb) *Result {
	rs := &Result{
		Problem: p,
	}
	plan, err := PlanRemoval(p.N, p.Edges)
	if err != nil && !errors.Is(err, ErrInfeasible) {
		rs.Err = errors.WithMessagef(err, "problem %d", p.Id)
		return rs
	}
	rs.Plan = plan
	if db != nil {
		err = db.PutProblem(p)
		if err == nil {
			err = db.PutPlan(p.Id, plan)
		}
		if err != nil {
			rs.Err = errors.Wrapf(err, "cannot store problem %d", p.Id)
		}
	}
	return rs
}

// SolveProblems plans every problem using the given number of workers
// and returns results in input order. Infeasible problems are results
// with a nil plan, not errors. When db is not nil, problems and plans
// are stored there.
func SolveProblems(problems []*Problem, workers int, db *ResultsDb,
	logger *zap.Logger) ([]*Result, error) {

	if workers < 1 {
		workers = 1
	}
	type Request struct {
		Index  int
		Result *Result
	}
	pendings := make(chan int)
	results := make(chan Request)
	running := sync.WaitGroup{}
	for i := 0; i < workers; i++ {
		running.Add(1)
		go func() {
			defer running.Done()
			for idx := range pendings {
				results <- Request{
					Index:  idx,
					Result: solveProblem(problems[idx], db),
				}
			}
		}()
	}
	go func() {
		for i := range problems {
			pendings <- i
		}
		close(pendings)
	}()
	go func() {
		running.Wait()
		close(results)
	}()

	var err error
	solved := make([]*Result, len(problems))
	seen := 0
	for rq := range results {
		seen++
		if seen%100 == 0 {
			logger.Info("solving", zap.Int("done", seen), zap.Int("total", len(problems)))
		}
		rs := rq.Result
		solved[rq.Index] = rs
		if rs.Err != nil {
			logger.Error("cannot solve problem", zap.Int64("id", rs.Problem.Id), zap.Error(rs.Err))
			err = multierr.Append(err, rs.Err)
			continue
		}
		logger.Debug("solved", zap.Int64("id", rs.Problem.Id), zap.Int("removable", rs.Removable()))
	}
	return solved, err
}
