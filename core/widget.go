package core

import "github.com/google/uuid"

// ID identifies a widget within one registry. Uniqueness is a caller
// convention, not enforced: duplicate ids shadow each other in state lookups
// (see Registry).
type ID string

// NewID returns a fresh random widget id.
func NewID() ID { return ID(uuid.NewString()) }

// Event is what widgets push through their channel. Payload shape is
// widget-defined; Source lets a shared subscriber tell emitters apart.
type Event struct {
	Source  ID
	Name    string
	Payload any
}

// Widget is the capability set every concrete widget variant implements.
// State is owned by the widget itself and mutated only through SetState;
// external code never writes it directly.
type Widget interface {
	ID() ID
	State() State
	SetState(State)
	Emit(Event)
	Events() *Channel[Event]
	Render(width int) string
}

// Base carries the identity, state, and event plumbing shared by concrete
// widgets. Embed a *Base and supply Render.
type Base struct {
	id      ID
	state   State
	events  *Channel[Event]
	onState []func(State)
}

// NewBase builds the shared widget guts. An empty id gets a generated one.
// New widgets start Visible.
func NewBase(id ID) *Base {
	if id == "" {
		id = NewID()
	}
	return &Base{id: id, state: StateVisible, events: NewChannel[Event]()}
}

func (b *Base) ID() ID       { return b.id }
func (b *Base) State() State { return b.state }

// SetState overwrites the state unconditionally — no validation, no rejected
// transitions — then notifies widget-local state observers so hosts can
// re-render reactively.
func (b *Base) SetState(s State) {
	b.state = s
	for _, fn := range b.onState {
		fn(s)
	}
}

// OnState registers a widget-local state observer. Observers run
// synchronously inside SetState, in registration order.
func (b *Base) OnState(fn func(State)) {
	if fn == nil {
		return
	}
	b.onState = append(b.onState, fn)
}

// Emit publishes ev to every currently attached subscriber, synchronously,
// in attachment order. Fire and forget: no buffering, no replay, no error.
// An empty Source is filled in with the widget's own id.
func (b *Base) Emit(ev Event) {
	if ev.Source == "" {
		ev.Source = b.id
	}
	b.events.Publish(ev)
}

// Events exposes the widget's channel so subscribers can attach themselves.
func (b *Base) Events() *Channel[Event] { return b.events }
