package sync

import (
	gosync "sync"

	"github.com/google/uuid"
)

// LogicalClock is a Lamport clock used to timestamp queued operations.
// Logical timestamps order mutations deterministically without trusting
// the device wall clock, which can jump backwards between app restarts.
type LogicalClock struct {
	mu      gosync.Mutex
	counter int64
	nodeID  string
}

// NewLogicalClock creates a clock with a fresh node ID.
func NewLogicalClock() *LogicalClock {
	return &LogicalClock{nodeID: uuid.New().String()}
}

// NewLogicalClockWithNodeID creates a clock with a fixed node ID.
// Used in tests and when restoring persisted state.
func NewLogicalClockWithNodeID(nodeID string) *LogicalClock {
	return &LogicalClock{nodeID: nodeID}
}

// Tick advances the clock for a new local event and returns the new
// timestamp.
func (c *LogicalClock) Tick() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.counter++
	return c.counter
}

// Observe folds in a timestamp seen elsewhere, per the Lamport rule
// counter = max(counter, observed) + 1, and returns the new timestamp.
func (c *LogicalClock) Observe(observed int64) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if observed > c.counter {
		c.counter = observed
	}
	c.counter++
	return c.counter
}

// Now returns the current timestamp without advancing the clock.
func (c *LogicalClock) Now() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.counter
}

// NodeID returns the clock's node identifier.
func (c *LogicalClock) NodeID() string {
	return c.nodeID
}

// Restore sets the counter, used when loading persisted clock state
// after a restart.
func (c *LogicalClock) Restore(counter int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.counter = counter
}
