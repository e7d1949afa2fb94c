package ui

import (
	"sync"
	"time"
)

// Clock drives the dashboard's recurring date/time refresh. It is a plain
// periodic task: the callback carries no data dependency on the store.
type Clock struct {
	interval time.Duration
	onTick   func(time.Time)

	mu   sync.Mutex
	stop chan struct{}
}

// NewClock creates a clock that invokes onTick every interval once started.
func NewClock(interval time.Duration, onTick func(time.Time)) *Clock {
	return &Clock{
		interval: interval,
		onTick:   onTick,
	}
}

// Start begins ticking. Starting an already running clock is a no-op.
func (c *Clock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stop != nil {
		return
	}
	c.stop = make(chan struct{})

	go func(stop chan struct{}) {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case t := <-ticker.C:
				c.onTick(t)
			case <-stop:
				return
			}
		}
	}(c.stop)
}

// Stop halts the clock. Stopping a stopped clock is a no-op.
func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stop == nil {
		return
	}
	close(c.stop)
	c.stop = nil
}
