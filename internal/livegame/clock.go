package livegame

import (
	"fmt"
	"sync"
	"time"
)

// Clock is the operator's running game clock. It counts up and is never
// sent to the backend.
type Clock struct {
	mu          sync.Mutex
	now         func() time.Time
	running     bool
	startedAt   time.Time
	accumulated time.Duration
}

func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Start resumes counting; it is a no-op on a running clock.
func (c *Clock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return
	}
	c.running = true
	c.startedAt = c.now()
}

// Stop pauses the clock and keeps the elapsed time.
func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return
	}
	c.accumulated += c.now().Sub(c.startedAt)
	c.running = false
}

// Toggle starts a stopped clock or stops a running one, and reports whether
// it is running afterwards.
func (c *Clock) Toggle() bool {
	if c.Running() {
		c.Stop()
		return false
	}
	c.Start()
	return true
}

// Reset stops the clock and zeroes it.
func (c *Clock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = false
	c.accumulated = 0
	c.startedAt = time.Time{}
}

func (c *Clock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

func (c *Clock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return c.accumulated
	}
	return c.accumulated + c.now().Sub(c.startedAt)
}

// FormatElapsed renders d as MM:SS; minutes keep growing past 59.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func FormatElapsedSeconds(seconds int) string {
	return FormatElapsed(time.Duration(seconds) * time.Second)
}
