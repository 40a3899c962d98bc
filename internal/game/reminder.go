package game

import "time"

// reminder is the inactivity timer that replays the sequence while the
// player is expected to act. At most one timer is outstanding: arming
// cancels any previous arm, and cancel is idempotent. The fire callback
// receives the sequence captured at arm time, so a replay always shows the
// sequence as it stood when playback last completed.
//
// Callers are expected to hold the session lock.
type reminder struct {
	clock Clock
	timer Timer
}

func (r *reminder) arm(seq []Color, d time.Duration, fire func(seq []Color)) {
	r.cancel()
	r.timer = r.clock.AfterFunc(d, func() { fire(seq) })
}

func (r *reminder) cancel() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}
