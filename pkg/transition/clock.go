package transition

import "time"

// Timer is a cancellable pending callback.
type Timer interface {
	// Stop cancels the timer. It reports whether the call prevented the
	// callback from running.
	Stop() bool
}

// Clock schedules deferred callbacks. The engine only ever needs
// one-shot timers; the default implementation delegates to
// time.AfterFunc. Tests substitute a manually advanced clock.
type Clock interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
