package timer

import "time"

// Scheduler runs f once after d on its own goroutine. The returned func
// cancels the call and reports whether it was still pending.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) (cancel func() bool)
}

type wallClock struct{}

func (wallClock) AfterFunc(d time.Duration, f func()) func() bool {
	t := time.AfterFunc(d, f)
	return t.Stop
}

// WallClock returns a Scheduler backed by time.AfterFunc.
func WallClock() Scheduler {
	return wallClock{}
}
