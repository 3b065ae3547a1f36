package backend

import "time"

// throttle coalesces a burst of pokes into a single tick on C once no poke
// has arrived for interval. It is owned by one goroutine.
type throttle struct {
	interval time.Duration
	timer    *time.Timer
}

func newThrottle(interval time.Duration) *throttle {
	if interval < 0 {
		interval = 0
	}
	t := time.NewTimer(interval)
	t.Stop()
	return &throttle{interval: interval, timer: t}
}

func (t *throttle) poke() {
	t.timer.Reset(t.interval)
}

func (t *throttle) C() <-chan time.Time {
	return t.timer.C
}

func (t *throttle) stop() {
	t.timer.Stop()
}
