package status

import (
	"time"

	"ornithe-meta/core/middleware/ready"
	"ornithe-meta/core/snapshot"
)

const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
	StatusStarting = "starting"
)

// RefresherStatus reports the background refresher.
type RefresherStatus interface {
	Status() snapshot.Status
}

// BreakerStates reports the circuit breaker of each upstream host.
type BreakerStates interface {
	BreakerStates() map[string]string
}

// Report is the body of GET /health.
type Report struct {
	Status    string            `json:"status"`
	Refresher RefresherReport   `json:"refresher"`
	Snapshot  *SnapshotReport   `json:"snapshot,omitempty"`
	Upstreams map[string]string `json:"upstreams"`
}

// RefresherReport mirrors snapshot.Status.
type RefresherReport struct {
	State       string     `json:"state"`
	LastOutcome string     `json:"lastOutcome"`
	LastAttempt *time.Time `json:"lastAttempt,omitempty"`
	LastSuccess *time.Time `json:"lastSuccess,omitempty"`
	LastError   string     `json:"lastError,omitempty"`
	Builds      int        `json:"builds"`
	Failures    int        `json:"failures"`
}

// SnapshotReport describes the published snapshot.
type SnapshotReport struct {
	Generations   snapshot.Generations `json:"generations"`
	BuiltAt       time.Time            `json:"builtAt"`
	AgeSeconds    int64                `json:"ageSeconds"`
	BuildDuration string               `json:"buildDuration"`
}

// Service assembles health reports.
type Service struct {
	store     ready.Source
	refresher RefresherStatus
	breakers  BreakerStates
	now       func() time.Time
}

// NewService creates a new status service.
func NewService(store ready.Source, refresher RefresherStatus, breakers BreakerStates) *Service {
	return &Service{store: store, refresher: refresher, breakers: breakers, now: time.Now}
}

// Report describes the current health.
func (s *Service) Report() Report {
	st := s.refresher.Status()
	r := Report{
		Status: StatusOK,
		Refresher: RefresherReport{
			State:       st.State.String(),
			LastOutcome: st.LastOutcome.String(),
			LastAttempt: optionalTime(st.LastAttempt),
			LastSuccess: optionalTime(st.LastSuccess),
			Builds:      st.Builds,
			Failures:    st.Failures,
		},
		Upstreams: map[string]string{},
	}
	if st.LastError != nil {
		r.Refresher.LastError = st.LastError.Error()
	}
	if s.breakers != nil {
		r.Upstreams = s.breakers.BreakerStates()
	}

	snap := s.store.Current()
	if snap == nil {
		r.Status = StatusStarting
		return r
	}
	r.Snapshot = &SnapshotReport{
		Generations:   snap.Generations(),
		BuiltAt:       snap.BuiltAt(),
		AgeSeconds:    int64(s.now().Sub(snap.BuiltAt()) / time.Second),
		BuildDuration: snap.BuildDuration().String(),
	}

	if st.LastOutcome == snapshot.StateFailed {
		r.Status = StatusDegraded
	}
	for _, state := range r.Upstreams {
		if state == "open" {
			r.Status = StatusDegraded
		}
	}
	return r
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
