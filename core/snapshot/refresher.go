package snapshot

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// State is the refresher lifecycle state.
type State int

const (
	StateIdle State = iota
	StateBuilding
	StatePublished
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateBuilding:
		return "building"
	case StatePublished:
		return "published"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SnapshotBuilder produces snapshots.
type SnapshotBuilder interface {
	Build(ctx context.Context) (*Snapshot, error)
}

// Status describes the refresher for health reporting.
type Status struct {
	State       State
	LastOutcome State
	LastAttempt time.Time
	LastSuccess time.Time
	LastError   error
	Builds      int
	Failures    int
}

// Refresher rebuilds and publishes snapshots.
type Refresher struct {
	builder  SnapshotBuilder
	store    *Store
	interval time.Duration
	logger   *zap.Logger

	trigger chan struct{}
	done    chan struct{}

	// build serializes Refresh calls.
	build  sync.Mutex
	mu     sync.RWMutex
	status Status
}

// NewRefresher creates a refresher publishing into store.
func NewRefresher(builder SnapshotBuilder, store *Store, interval time.Duration, logger *zap.Logger) *Refresher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if interval <= 0 {
		interval = time.Minute
	}
	return &Refresher{
		builder:  builder,
		store:    store,
		interval: interval,
		logger:   logger,
		trigger:  make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

// Start performs the first build and, when it succeeds, starts the
// background loop. The loop exits when ctx is cancelled.
func (r *Refresher) Start(ctx context.Context) error {
	if err := r.Refresh(ctx); err != nil {
		close(r.done)
		return err
	}
	go r.loop(ctx)
	return nil
}

// Done is closed once the background loop has exited.
func (r *Refresher) Done() <-chan struct{} {
	return r.done
}

// Trigger requests a rebuild. Requests made while one is pending coalesce.
func (r *Refresher) Trigger() {
	select {
	case r.trigger <- struct{}{}:
	default:
	}
}

// Refresh builds a snapshot and publishes it on success. On failure the
// current snapshot, if any, stays published.
func (r *Refresher) Refresh(ctx context.Context) error {
	r.build.Lock()
	defer r.build.Unlock()

	r.setState(func(s *Status) {
		s.State = StateBuilding
		s.LastAttempt = time.Now()
	})

	snap, err := r.builder.Build(ctx)
	if err != nil {
		r.setState(func(s *Status) {
			s.State = StateIdle
			s.LastOutcome = StateFailed
			s.LastError = err
			s.Failures++
		})
		if r.store.Current() != nil {
			r.logger.Error("Snapshot refresh failed, keeping previous snapshot", zap.Error(err))
		} else {
			r.logger.Error("Snapshot build failed", zap.Error(err))
		}
		return err
	}

	r.store.Publish(snap)
	r.setState(func(s *Status) {
		s.State = StateIdle
		s.LastOutcome = StatePublished
		s.LastSuccess = snap.BuiltAt()
		s.LastError = nil
		s.Builds++
	})
	return nil
}

// Status returns a copy of the current status.
func (r *Refresher) Status() Status {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.status
}

func (r *Refresher) setState(fn func(*Status)) {
	r.mu.Lock()
	fn(&r.status)
	r.mu.Unlock()
}

func (r *Refresher) loop(ctx context.Context) {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-r.trigger:
			r.logger.Info("Snapshot refresh triggered")
		}
		_ = r.Refresh(ctx)
	}
}
