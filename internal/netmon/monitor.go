// Package netmon reports connectivity state and a sync recommendation.
// The recommendation is a policy decision, not a raw connectivity check:
// a metered or flaky link yields WAIT even while technically connected.
package netmon

import (
	"context"
	"net"
	"sync"
	"time"
)

//go:generate moq -out monitor_mock.go . Monitor

// Recommendation tells the mutation path whether to attempt a direct
// apply or queue the operation for a later drain.
type Recommendation string

// Sync recommendations.
const (
	RecommendationProceed Recommendation = "proceed"
	RecommendationWait    Recommendation = "wait"
)

// NetworkState describes current connectivity.
type NetworkState struct {
	Connected bool `json:"connected"`
	Metered   bool `json:"metered"` // traffic-billed link, sync is undesirable
	Flaky     bool `json:"flaky"`   // recent probes failed intermittently
}

// Monitor reports network state. Implementations must be side-effect free
// reads; they are consulted before every mutation.
type Monitor interface {
	// State returns the current network state.
	State(ctx context.Context) (NetworkState, error)

	// Recommendation returns the sync recommendation derived from the
	// current state.
	Recommendation(ctx context.Context) (Recommendation, error)
}

// Recommend derives the sync recommendation from a network state.
// Shared by all Monitor implementations so the policy lives in one place.
func Recommend(st NetworkState) Recommendation {
	if !st.Connected || st.Metered || st.Flaky {
		return RecommendationWait
	}
	return RecommendationProceed
}

// Manual is a settable in-process monitor. It backs the CLI flags and
// tests; platform integrations feed it from their own connectivity events.
type Manual struct {
	mu    sync.RWMutex
	state NetworkState
}

// NewManual creates a manual monitor with the given initial state.
func NewManual(state NetworkState) *Manual {
	return &Manual{state: state}
}

// Set replaces the reported state.
func (m *Manual) Set(state NetworkState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = state
}

// State implements Monitor.
func (m *Manual) State(ctx context.Context) (NetworkState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state, nil
}

// Recommendation implements Monitor.
func (m *Manual) Recommendation(ctx context.Context) (Recommendation, error) {
	st, err := m.State(ctx)
	if err != nil {
		return RecommendationWait, err
	}
	return Recommend(st), nil
}

// probeHistory is the number of recent probe results kept for the
// flakiness heuristic.
const probeHistory = 5

// Probe is a monitor that checks reachability of a fixed address with a
// short dial. The link is considered flaky when some, but not all, of the
// recent probes failed.
type Probe struct {
	addr    string
	timeout time.Duration

	mu      sync.Mutex
	recent  []bool // ring of recent probe outcomes, true = success
	metered bool
}

// NewProbe creates a probe monitor dialing addr (host:port).
func NewProbe(addr string, timeout time.Duration) *Probe {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Probe{addr: addr, timeout: timeout}
}

// SetMetered marks the link as metered; metered links always yield WAIT.
func (p *Probe) SetMetered(metered bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.metered = metered
}

// State implements Monitor. Each call performs one probe and folds it
// into the recent history.
func (p *Probe) State(ctx context.Context) (NetworkState, error) {
	d := net.Dialer{Timeout: p.timeout}
	conn, err := d.DialContext(ctx, "tcp", p.addr)
	ok := err == nil
	if conn != nil {
		conn.Close()
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.recent = append(p.recent, ok)
	if len(p.recent) > probeHistory {
		p.recent = p.recent[len(p.recent)-probeHistory:]
	}

	failures := 0
	for _, r := range p.recent {
		if !r {
			failures++
		}
	}

	return NetworkState{
		Connected: ok,
		Metered:   p.metered,
		Flaky:     ok && failures > 0,
	}, nil
}

// Recommendation implements Monitor.
func (p *Probe) Recommendation(ctx context.Context) (Recommendation, error) {
	st, err := p.State(ctx)
	if err != nil {
		return RecommendationWait, err
	}
	return Recommend(st), nil
}
