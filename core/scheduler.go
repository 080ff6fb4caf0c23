package core

import "time"

// Scheduler is the deferred-work collaborator widgets use for timed
// behavior, such as emitting an event after a fixed interval. The core never
// schedules anything itself; hosts supply an implementation suited to their
// runtime.
type Scheduler interface {
	// After runs fn once d has elapsed and returns a cancel func.
	// Cancelling after fn has run is a no-op.
	After(d time.Duration, fn func()) (cancel func())
}

// TimerScheduler schedules against the process clock. Callbacks run on a
// timer goroutine, so hosts that mutate widgets from them must add their own
// synchronization — same as any other cross-thread use of this package.
// UI hosts usually prefer a scheduler bridged into their event loop instead.
type TimerScheduler struct{}

func (TimerScheduler) After(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
