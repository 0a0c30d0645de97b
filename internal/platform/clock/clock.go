package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Timer is a handle to a scheduled action.
type Timer interface {
	// Stop cancels the action. It reports whether the call prevented the
	// action from running.
	Stop() bool
}

// Scheduler runs an action once after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

type SystemScheduler struct{}

func (SystemScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
