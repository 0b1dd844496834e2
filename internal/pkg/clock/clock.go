package clock

import "time"

// Clock abstracts the time source so tests can pin created-at stamps.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// FrozenClock returns a fixed instant until advanced.
type FrozenClock struct {
	currentTime time.Time
}

func NewFrozenClock(t time.Time) *FrozenClock {
	return &FrozenClock{currentTime: t}
}

func (c *FrozenClock) Now() time.Time {
	return c.currentTime
}

func (c *FrozenClock) Advance(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
