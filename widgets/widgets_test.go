package widgets

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/dimzfresh/widgetkit/core"
)

// fakeScheduler hands control of deferred work to the test.
type fakeScheduler struct {
	delay     time.Duration
	fn        func()
	calls     int
	cancelled bool
}

func (s *fakeScheduler) After(d time.Duration, fn func()) func() {
	s.calls++
	s.delay, s.fn = d, fn
	return func() {
		s.cancelled = true
		s.fn = nil
	}
}

func (s *fakeScheduler) fire(t *testing.T) {
	t.Helper()
	if s.fn == nil {
		t.Fatal("nothing scheduled")
	}
	fn := s.fn
	s.fn = nil
	fn()
}

func TestBannerRendersTitleAndText(t *testing.T) {
	b := NewBanner("welcome", "Welcome", "hello there")
	out := ansi.Strip(b.Render(40))
	if !strings.Contains(out, "Welcome") || !strings.Contains(out, "hello there") {
		t.Fatalf("render missing title or text:\n%s", out)
	}
}

func TestCounterEmitsOnIncrement(t *testing.T) {
	c := NewCounter("clicks", "Clicks")
	var got []core.Event
	c.Events().Subscribe(func(ev core.Event) { got = append(got, ev) })

	c.Increment()
	c.Increment()

	if c.Count() != 2 {
		t.Fatalf("Count = %d, want 2", c.Count())
	}
	if len(got) != 2 {
		t.Fatalf("emitted %d events, want 2", len(got))
	}
	if got[0].Name != EventCount || got[0].Source != "clicks" {
		t.Errorf("event = %+v, want count from clicks", got[0])
	}
	if n, ok := got[1].Payload.(int); !ok || n != 2 {
		t.Errorf("second payload = %v, want 2", got[1].Payload)
	}
}

func TestDisabledCounterIgnoresIncrement(t *testing.T) {
	c := NewCounter("clicks", "Clicks")
	c.SetState(core.StateDisabled)
	c.Increment()
	if c.Count() != 0 {
		t.Fatalf("Count = %d, want 0 while disabled", c.Count())
	}
}

func TestTimerArmFiresThroughScheduler(t *testing.T) {
	sched := &fakeScheduler{}
	tm := NewTimer("t", "Timer", 3*time.Second, sched)

	var got []core.Event
	tm.Events().Subscribe(func(ev core.Event) { got = append(got, ev) })

	tm.Arm()
	if !tm.Armed() {
		t.Fatal("timer should report armed")
	}
	if sched.delay != 3*time.Second {
		t.Fatalf("scheduled delay = %s, want 3s", sched.delay)
	}

	sched.fire(t)
	if tm.Armed() || !tm.Fired() {
		t.Fatal("timer should be fired and disarmed after callback")
	}
	if len(got) != 1 || got[0].Name != EventTimerFired {
		t.Fatalf("events = %+v, want one timer.fired", got)
	}
}

func TestTimerArmIsIdempotentWhileArmed(t *testing.T) {
	sched := &fakeScheduler{}
	tm := NewTimer("t", "Timer", time.Second, sched)
	tm.Arm()
	tm.Arm()
	if sched.calls != 1 {
		t.Fatalf("scheduled %d times, want 1 (second Arm is a no-op)", sched.calls)
	}
	sched.fire(t)
	if !tm.Fired() {
		t.Fatal("timer should have fired once")
	}
}

func TestTimerDisarmCancels(t *testing.T) {
	sched := &fakeScheduler{}
	tm := NewTimer("t", "Timer", time.Second, sched)
	tm.Arm()
	tm.Disarm()
	if !sched.cancelled {
		t.Fatal("disarm should cancel the scheduled work")
	}
	if tm.Armed() {
		t.Fatal("timer should not report armed after disarm")
	}
}
