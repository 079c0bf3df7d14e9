package health

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Status values reported per component.
const (
	StatusUp   = "up"
	StatusDown = "down"
)

// Report status values.
const (
	StatusReady    = "ready"
	StatusNotReady = "not_ready"
)

// Checker checks a single dependency.
type Checker interface {
	// Name identifies the dependency in the report (e.g. "database").
	Name() string
	// Check returns nil when the dependency is usable.
	Check(ctx context.Context) error
}

// Result is the outcome of one checker.
type Result struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Report aggregates the results of every checker.
type Report struct {
	Status string            `json:"status"`
	Checks map[string]Result `json:"checks"`
}

// Ready reports whether every check passed.
func (r Report) Ready() bool {
	return r.Status == StatusReady
}

// Run executes the checkers concurrently, each bounded by timeout.
// A report with no checkers is ready.
func Run(ctx context.Context, timeout time.Duration, checkers ...Checker) Report {
	report := Report{
		Status: StatusReady,
		Checks: make(map[string]Result, len(checkers)),
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, chk := range checkers {
		g.Go(func() error {
			cctx, cancel := context.WithTimeout(gctx, timeout)
			defer cancel()

			res := Result{Status: StatusUp}
			if err := chk.Check(cctx); err != nil {
				res = Result{Status: StatusDown, Error: err.Error()}
			}

			mu.Lock()
			defer mu.Unlock()
			report.Checks[chk.Name()] = res
			if res.Status != StatusUp {
				report.Status = StatusNotReady
			}
			return nil
		})
	}
	_ = g.Wait()

	return report
}
