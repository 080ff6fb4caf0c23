package core

// Channel is a single-emitter, many-observer conduit. Events are delivered
// synchronously in attachment order; late subscribers never see earlier
// emissions.
type Channel[T any] struct {
	subs   []*Subscription[T]
	closed bool
}

func NewChannel[T any]() *Channel[T] { return &Channel[T]{} }

// Subscription is the handle returned by Subscribe. Holders detach on their
// own teardown by calling Cancel; the channel never forces detachment except
// through Close.
type Subscription[T any] struct {
	ch *Channel[T]
	fn func(T)
}

// Cancel detaches the subscription. Safe to call more than once and from
// within a subscriber callback. An emission already in flight still reaches
// this subscriber: Publish iterates a snapshot taken before the first
// delivery.
func (s *Subscription[T]) Cancel() {
	if s.ch == nil {
		return
	}
	subs := s.ch.subs
	for i, sub := range subs {
		if sub == s {
			// full-slice expression forces a copy so in-flight snapshots
			// keep their original backing array
			s.ch.subs = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	s.ch = nil
}

// Subscribe attaches fn and returns its handle. On a closed channel the
// returned subscription is already detached.
func (c *Channel[T]) Subscribe(fn func(T)) *Subscription[T] {
	sub := &Subscription[T]{ch: c, fn: fn}
	if c.closed || fn == nil {
		sub.ch = nil
		return sub
	}
	c.subs = append(c.subs, sub)
	return sub
}

// Publish delivers v to every attached subscriber and returns once all have
// run. After Close it is a no-op.
func (c *Channel[T]) Publish(v T) {
	if c.closed {
		return
	}
	subs := c.subs
	for _, sub := range subs {
		sub.fn(v)
	}
}

// Close drops every subscriber and makes further publishes no-ops. The
// registry closes a widget's channel on removal so no later emission reaches
// subscribers of a removed widget.
func (c *Channel[T]) Close() {
	c.closed = true
	c.subs = nil
}

// Len reports the number of attached subscribers.
func (c *Channel[T]) Len() int { return len(c.subs) }

// Subscriber is an observer capability: handed a widget, it attaches itself
// to that widget's event channel. The registry orchestrates attachment at
// subscription time but does not own or track subscribers afterwards.
type Subscriber interface {
	Subscribe(w Widget)
}

// SubscriberFunc adapts a function to the Subscriber interface.
type SubscriberFunc func(w Widget)

func (f SubscriberFunc) Subscribe(w Widget) { f(w) }
