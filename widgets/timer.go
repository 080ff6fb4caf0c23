package widgets

import (
	"fmt"
	"time"

	"github.com/dimzfresh/widgetkit/core"
)

// Timer arms a single deferred emission: once armed it emits one
// timer.fired event after its interval. Timed behavior goes through the
// scheduler collaborator, never through the widget core itself.
type Timer struct {
	*core.Base
	Title    string
	Interval time.Duration

	sched  core.Scheduler
	cancel func()
	fired  bool
}

func NewTimer(id core.ID, title string, interval time.Duration, sched core.Scheduler) *Timer {
	return &Timer{Base: core.NewBase(id), Title: title, Interval: interval, sched: sched}
}

// Arm schedules the deferred emission. Arming an already-armed timer is a
// no-op; re-arming after it fired starts a fresh countdown.
func (t *Timer) Arm() {
	if t.cancel != nil || t.sched == nil {
		return
	}
	t.fired = false
	t.cancel = t.sched.After(t.Interval, func() {
		t.cancel = nil
		t.fired = true
		t.Emit(core.Event{Name: EventTimerFired, Payload: t.Interval})
	})
}

// Disarm cancels a pending emission, if any.
func (t *Timer) Disarm() {
	if t.cancel == nil {
		return
	}
	t.cancel()
	t.cancel = nil
}

func (t *Timer) Armed() bool { return t.cancel != nil }
func (t *Timer) Fired() bool { return t.fired }

func (t *Timer) Render(width int) string {
	status := "idle"
	switch {
	case t.cancel != nil:
		status = "armed"
	case t.fired:
		status = "fired"
	}
	return Chrome{
		Title:    t.Title,
		Content:  fmt.Sprintf("interval: %s  status: %s\n[enter] arm", t.Interval, status),
		Disabled: t.State() == core.StateDisabled,
	}.Render(width)
}
