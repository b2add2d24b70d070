// Package solver runs tsp searches for callers that must not block: the
// HTTP API and the CLI.
//
// A Service owns a bounded set of workers, an optional route cache and the
// registry of submitted jobs. Each job delivers exactly one Outcome.
package solver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/littletsp/cache"
	"github.com/katalvlaran/littletsp/matrix"
	"github.com/katalvlaran/littletsp/tsp"
)

var (
	// ErrClosed is returned by Submit and Solve after Close.
	ErrClosed = errors.New("solver: service closed")

	// ErrUnknownJob is returned for job IDs the service does not hold.
	ErrUnknownJob = errors.New("solver: unknown job")
)

// Options configures a Service. Zero fields take the documented defaults.
type Options struct {
	Solve     tsp.Options   // zero value: Little without a size limit
	Timeout   time.Duration // per search; 0 disables
	Workers   int           // concurrent searches; default 1
	Cache     cache.Cache   // default NullCache
	CacheTTL  time.Duration
	Retention time.Duration // how long finished jobs stay in Get; 0 keeps them
	Logger    *log.Logger   // default log.Default()
}

// Service runs searches on a bounded worker pool.
type Service struct {
	opts   Options
	logger *log.Logger
	cache  cache.Cache
	sem    chan struct{}

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	jobs   map[string]*Job
	closed bool
}

// New creates a Service. The cache is owned by the caller.
func New(opts Options) *Service {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Cache == nil {
		opts.Cache = cache.NewNullCache()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &Service{
		opts:   opts,
		logger: opts.Logger,
		cache:  opts.Cache,
		sem:    make(chan struct{}, opts.Workers),
		ctx:    ctx,
		cancel: cancel,
		jobs:   make(map[string]*Job),
	}
}

// Submit validates m and queues a search. Input errors are returned here,
// not through the Outcome.
func (s *Service) Submit(m *matrix.Costs) (*Job, error) {
	n, err := s.opts.Solve.Validate(m)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}

	ctx, cancel := s.searchContext(s.ctx)
	j := newJob(uuid.NewString(), n, cancel)
	s.jobs[j.ID] = j
	s.wg.Add(1)
	go s.run(ctx, j, m.Clone())

	s.logger.Debug("job queued", "id", j.ID, "nodes", n)
	return j, nil
}

// Get returns the job with the given ID.
func (s *Service) Get(id string) (*Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownJob, id)
	}
	return j, nil
}

// Cancel stops the job with the given ID. Cancelling a finished job is a
// no-op.
func (s *Service) Cancel(id string) error {
	j, err := s.Get(id)
	if err != nil {
		return err
	}
	j.Cancel()
	return nil
}

// Solve runs one search on the caller's goroutine, sharing the worker limit
// and the cache with submitted jobs.
func (s *Service) Solve(ctx context.Context, m *matrix.Costs) (Outcome, error) {
	if _, err := s.opts.Solve.Validate(m); err != nil {
		return Outcome{}, err
	}
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return Outcome{}, ErrClosed
	}

	ctx, cancel := s.searchContext(ctx)
	defer cancel()
	stop := context.AfterFunc(s.ctx, cancel)
	defer stop()

	if err := s.acquire(ctx); err != nil {
		return newOutcome(tsp.Route{}, tsp.Stats{}, fmt.Errorf("%w: %w", tsp.ErrCancelled, err), 0), nil
	}
	defer s.release()

	return s.search(ctx, m), nil
}

// Close cancels every pending and running job and waits for them to
// deliver their outcomes.
func (s *Service) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
	return nil
}

// run is the goroutine behind one submitted job.
func (s *Service) run(ctx context.Context, j *Job, m *matrix.Costs) {
	defer s.wg.Done()
	defer j.cancel()

	if err := s.acquire(ctx); err != nil {
		j.finish(newOutcome(tsp.Route{}, tsp.Stats{}, fmt.Errorf("%w: %w", tsp.ErrCancelled, err), 0))
		s.logger.Info("job cancelled while queued", "id", j.ID)
		s.forgetLater(j)
		return
	}
	j.start()
	out := s.search(ctx, m)
	s.release()

	j.finish(out)
	s.logger.Info("job finished", "id", j.ID, "status", out.Status, "cost", out.cost(), "elapsed", out.Elapsed)
	s.forgetLater(j)
}

// search consults the cache, runs the configured algorithm and stores the
// result. Cancelled or failed searches are never cached.
func (s *Service) search(ctx context.Context, m *matrix.Costs) Outcome {
	key := cache.Key(m)
	if out, ok := s.lookup(ctx, key); ok {
		return out
	}

	start := time.Now()
	var (
		r     tsp.Route
		stats tsp.Stats
		err   error
	)
	if s.opts.Solve.Algo == tsp.LittleBranchAndBound {
		var e *tsp.Engine
		if e, err = tsp.NewEngine(m); err == nil {
			r, err = e.Run(ctx)
			stats = e.Stats()
		}
	} else {
		r, err = tsp.Solve(ctx, m, s.opts.Solve)
	}
	out := newOutcome(r, stats, err, time.Since(start))

	if out.Status == StatusSolved || out.Status == StatusNoTour {
		s.store(ctx, key, out)
	}
	return out
}

// cacheEntry is the cached form of a definitive outcome.
type cacheEntry struct {
	Route  *tsp.Route `json:"route,omitempty"`
	NoTour bool       `json:"no_tour,omitempty"`
}

func (s *Service) lookup(ctx context.Context, key string) (Outcome, bool) {
	data, hit, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("cache read failed", "key", key, "err", err)
		return Outcome{}, false
	}
	if !hit {
		return Outcome{}, false
	}
	var e cacheEntry
	if err := json.Unmarshal(data, &e); err != nil {
		s.logger.Warn("cache entry corrupt", "key", key, "err", err)
		return Outcome{}, false
	}

	s.logger.Debug("cache hit", "key", key)
	var out Outcome
	switch {
	case e.NoTour:
		out = newOutcome(tsp.Route{}, tsp.Stats{}, tsp.ErrNoTour, 0)
	case e.Route != nil:
		out = newOutcome(*e.Route, tsp.Stats{}, nil, 0)
	default:
		return Outcome{}, false
	}
	out.Cached = true

	return out, true
}

func (s *Service) store(ctx context.Context, key string, out Outcome) {
	e := cacheEntry{Route: out.Route, NoTour: out.Status == StatusNoTour}
	data, err := json.Marshal(e)
	if err == nil {
		err = s.cache.Set(ctx, key, data, s.opts.CacheTTL)
	}
	if err != nil {
		s.logger.Warn("cache write failed", "key", key, "err", err)
	}
}

// searchContext applies the per-search timeout.
func (s *Service) searchContext(parent context.Context) (context.Context, context.CancelFunc) {
	if s.opts.Timeout > 0 {
		return context.WithTimeout(parent, s.opts.Timeout)
	}
	return context.WithCancel(parent)
}

func (s *Service) acquire(ctx context.Context) error {
	select {
	case s.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return context.Cause(ctx)
	}
}

func (s *Service) release() { <-s.sem }

// forgetLater drops a finished job from the registry after Retention.
func (s *Service) forgetLater(j *Job) {
	if s.opts.Retention <= 0 {
		return
	}
	time.AfterFunc(s.opts.Retention, func() {
		s.mu.Lock()
		delete(s.jobs, j.ID)
		s.mu.Unlock()
	})
}
