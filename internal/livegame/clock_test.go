package livegame

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeNow struct{ t time.Time }

func (f *fakeNow) Now() time.Time { return f.t }
func (f *fakeNow) Advance(d time.Duration) { f.t = f.t.Add(d) }

func TestClockAccumulatesAcrossStops(t *testing.T) {
	now := &fakeNow{t: time.Date(2026, 10, 20, 20, 30, 0, 0, time.UTC)}
	c := NewClock(now.Now)

	c.Start()
	now.Advance(90 * time.Second)
	c.Stop()
	now.Advance(time.Hour)
	assert.Equal(t, 90*time.Second, c.Elapsed())

	assert.True(t, c.Toggle())
	now.Advance(35 * time.Second)
	assert.Equal(t, "02:05", FormatElapsed(c.Elapsed()))
	assert.False(t, c.Toggle())
}

func TestClockResetStopsAndZeroes(t *testing.T) {
	now := &fakeNow{t: time.Unix(0, 0)}
	c := NewClock(now.Now)
	c.Start()
	now.Advance(time.Minute)

	c.Reset()
	now.Advance(time.Minute)
	assert.False(t, c.Running())
	assert.Zero(t, c.Elapsed())
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "00:00", FormatElapsed(0))
	assert.Equal(t, "00:00", FormatElapsed(-time.Second))
	assert.Equal(t, "09:59", FormatElapsed(9*time.Minute+59*time.Second+900*time.Millisecond))
	assert.Equal(t, "125:00", FormatElapsed(125*time.Minute))
}
