package solver

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/katalvlaran/littletsp/tsp"
)

// Status is the lifecycle of a job as seen by clients.
type Status string

const (
	StatusQueued    Status = "queued"
	StatusRunning   Status = "running"
	StatusSolved    Status = "solved"
	StatusNoTour    Status = "no_tour"
	StatusCancelled Status = "cancelled"
	StatusFailed    Status = "failed"
)

// Terminal reports whether no further change can happen.
func (s Status) Terminal() bool {
	switch s {
	case StatusSolved, StatusNoTour, StatusCancelled, StatusFailed:
		return true
	default:
		return false
	}
}

// Outcome is the single result of a search.
type Outcome struct {
	Status  Status        `json:"status"`
	Route   *tsp.Route    `json:"route,omitempty"`
	Err     error         `json:"-"`
	Stats   tsp.Stats     `json:"stats"`
	Elapsed time.Duration `json:"elapsed"`
	Cached  bool          `json:"cached"`
}

// newOutcome classifies a search result.
func newOutcome(r tsp.Route, stats tsp.Stats, err error, elapsed time.Duration) Outcome {
	out := Outcome{Stats: stats, Elapsed: elapsed, Err: err}
	switch {
	case err == nil:
		out.Status = StatusSolved
		out.Route = &r
	case errors.Is(err, tsp.ErrNoTour):
		out.Status = StatusNoTour
	case errors.Is(err, tsp.ErrCancelled):
		out.Status = StatusCancelled
	default:
		out.Status = StatusFailed
	}
	return out
}

// cost is the route cost for logging, or -1 without a route.
func (o Outcome) cost() int {
	if o.Route == nil {
		return -1
	}
	return o.Route.Cost
}

// Job is one submitted search.
type Job struct {
	ID      string
	Nodes   int
	Created time.Time

	cancel context.CancelFunc
	done   chan Outcome
	ended  chan struct{}
	once   sync.Once

	mu      sync.Mutex
	status  Status
	outcome Outcome
}

func newJob(id string, nodes int, cancel context.CancelFunc) *Job {
	return &Job{
		ID:      id,
		Nodes:   nodes,
		Created: time.Now(),
		cancel:  cancel,
		done:    make(chan Outcome, 1),
		ended:   make(chan struct{}),
		status:  StatusQueued,
	}
}

// Done delivers the Outcome exactly once, then nothing more. Use Wait or
// Snapshot to read it again.
func (j *Job) Done() <-chan Outcome { return j.done }

// Cancel asks the search to stop. The job still delivers an Outcome,
// cancelled unless the search had already finished.
func (j *Job) Cancel() { j.cancel() }

// Wait blocks until the job ends or ctx is done.
func (j *Job) Wait(ctx context.Context) (Outcome, error) {
	select {
	case <-j.ended:
		out, _ := j.Snapshot()
		return out, nil
	case <-ctx.Done():
		return Outcome{}, ctx.Err()
	}
}

// Snapshot returns the current status and, once terminal, the Outcome.
func (j *Job) Snapshot() (Outcome, Status) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.outcome, j.status
}

func (j *Job) start() {
	j.mu.Lock()
	if j.status == StatusQueued {
		j.status = StatusRunning
	}
	j.mu.Unlock()
}

func (j *Job) finish(out Outcome) {
	j.once.Do(func() {
		j.mu.Lock()
		j.outcome = out
		j.status = out.Status
		j.mu.Unlock()

		j.done <- out
		close(j.ended)
	})
}
