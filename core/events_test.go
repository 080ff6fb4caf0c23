package core

import "testing"

func TestPublishDeliversInAttachmentOrderExactlyOnce(t *testing.T) {
	ch := NewChannel[string]()
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		ch.Subscribe(func(string) { order = append(order, i) })
	}

	ch.Publish("ping")

	if len(order) != 5 {
		t.Fatalf("delivered to %d subscribers, want 5", len(order))
	}
	for i, got := range order {
		if got != i {
			t.Fatalf("delivery order = %v, want attachment order", order)
		}
	}
}

func TestLateSubscriberSeesNoReplay(t *testing.T) {
	ch := NewChannel[string]()
	ch.Publish("before")

	got := 0
	ch.Subscribe(func(string) { got++ })
	if got != 0 {
		t.Fatalf("late subscriber received %d events, want 0", got)
	}

	ch.Publish("after")
	if got != 1 {
		t.Fatalf("received %d events, want 1", got)
	}
}

// A subscriber cancelled during delivery still receives the in-flight
// emission: Publish iterates a snapshot taken before the first delivery.
func TestCancelDuringDeliveryKeepsSnapshot(t *testing.T) {
	ch := NewChannel[string]()
	var log []string

	var second *Subscription[string]
	ch.Subscribe(func(string) {
		log = append(log, "first")
		second.Cancel()
	})
	second = ch.Subscribe(func(string) { log = append(log, "second") })

	ch.Publish("x")
	if len(log) != 2 || log[1] != "second" {
		t.Fatalf("delivery log = %v, want [first second]", log)
	}

	ch.Publish("y")
	if len(log) != 3 {
		t.Fatalf("delivery log after second publish = %v, want first only", log)
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	ch := NewChannel[int]()
	sub := ch.Subscribe(func(int) {})
	sub.Cancel()
	sub.Cancel()
	if ch.Len() != 0 {
		t.Fatalf("Len = %d, want 0", ch.Len())
	}
}

func TestCloseStopsDeliveryAndAttachment(t *testing.T) {
	ch := NewChannel[int]()
	got := 0
	ch.Subscribe(func(int) { got++ })

	ch.Close()
	ch.Publish(1)
	if got != 0 {
		t.Fatalf("received %d events after close, want 0", got)
	}

	sub := ch.Subscribe(func(int) { got++ })
	ch.Publish(2)
	if got != 0 {
		t.Fatalf("closed channel delivered %d events, want 0", got)
	}
	sub.Cancel() // must not panic on an already-detached handle
}
