package game

import "time"

// Clock schedules delayed callbacks. Production code uses SystemClock; tests
// substitute a manual clock so playback and the reminder timeout run
// deterministically.
type Clock interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a handle to one scheduled callback.
type Timer interface {
	// Stop cancels the callback; reports whether it was still pending.
	Stop() bool
}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// SystemClock returns a Clock backed by time.AfterFunc.
func SystemClock() Clock { return systemClock{} }
