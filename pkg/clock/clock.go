package clock

import (
	"sync"
	"time"
)

type PassiveClock interface {
	Now() time.Time
	Since(time.Time) time.Duration
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

func (RealClock) Since(ts time.Time) time.Duration {
	return time.Since(ts)
}

// FakeClock is a PassiveClock that only moves when told to
type FakeClock struct {
	mu   sync.RWMutex
	time time.Time
}

func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{time: t}
}

func (f *FakeClock) Now() time.Time {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.time
}

func (f *FakeClock) Since(ts time.Time) time.Duration {
	return f.Now().Sub(ts)
}

func (f *FakeClock) Step(d time.Duration) {
	f.mu.Lock()
	f.time = f.time.Add(d)
	f.mu.Unlock()
}
