package poller

import (
	"slices"
	"sync"
	"time"

	"github.com/02loveslollipop/chamber-air-dashboard/internal/sensor"
)

// Phase is the lifecycle stage of a series.
type Phase string

const (
	PhaseIdle          Phase = "idle"
	PhaseLoading       Phase = "loading"
	PhaseReady         Phase = "ready"
	PhaseRefreshFailed Phase = "refresh_failed"
	PhaseFailed        Phase = "failed"
)

// Snapshot is an immutable view of the series at one point in time.
type Snapshot struct {
	Phase       Phase           `json:"phase"`
	Points      []sensor.Record `json:"points"`
	LastUpdated *time.Time      `json:"last_updated,omitempty"`
	LastError   string          `json:"last_error,omitempty"`
}

// Latest returns the newest point, if any.
func (s Snapshot) Latest() (sensor.Record, bool) {
	if len(s.Points) == 0 {
		return sensor.Record{}, false
	}
	return s.Points[len(s.Points)-1], true
}

// HasData reports whether at least one successful fetch has been applied.
func (s Snapshot) HasData() bool {
	return s.Phase == PhaseReady || s.Phase == PhaseRefreshFailed
}

// State holds the series shown to consumers. Points are only ever replaced
// wholesale; a failed fetch keeps the previous points.
type State struct {
	mu          sync.RWMutex
	phase       Phase
	points      []sensor.Record
	lastUpdated *time.Time
	lastError   string
	appliedSeq  uint64
}

// NewState returns an empty, idle state.
func NewState() *State {
	return &State{phase: PhaseIdle, points: []sensor.Record{}}
}

// BeginFetch moves an idle state to loading.
func (s *State) BeginFetch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseIdle {
		s.phase = PhaseLoading
	}
}

// ApplySuccess replaces the points with the result of fetch seq. Results
// older than the last applied fetch are discarded and false is returned.
func (s *State) ApplySuccess(seq uint64, points []sensor.Record, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.appliedSeq {
		return false
	}
	s.appliedSeq = seq
	if points == nil {
		points = []sensor.Record{}
	}
	s.points = points
	s.lastUpdated = &now
	s.lastError = ""
	s.phase = PhaseReady
	return true
}

// ApplyFailure records the failure of fetch seq, keeping the previous points
// and lastUpdated. Stale failures are discarded and false is returned.
func (s *State) ApplyFailure(seq uint64, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.appliedSeq {
		return false
	}
	s.appliedSeq = seq
	s.lastError = err.Error()
	if len(s.points) > 0 {
		s.phase = PhaseRefreshFailed
	} else {
		s.phase = PhaseFailed
	}
	return true
}

// Snapshot returns a copy of the current state.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{
		Phase:     s.phase,
		Points:    slices.Clone(s.points),
		LastError: s.lastError,
	}
	if s.lastUpdated != nil {
		t := *s.lastUpdated
		snap.LastUpdated = &t
	}
	return snap
}
