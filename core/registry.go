package core

// Registry owns the ordered widget collection and mediates every state
// transition. Insertion order is rendering order and is preserved by all
// operations; Remove only deletes matched entries, the rest keep their
// relative order.
//
// The registry keeps a state map mirroring each widget's own state. The
// invariant states[id] == widget(id).State() holds after every
// registry-mediated mutation; mutating a widget's state behind the
// registry's back breaks it, which is why hosts route all transitions
// through Show/Hide/Disable/Enable.
type Registry struct {
	widgets  []Widget
	states   map[ID]State
	onChange []func()
}

func NewRegistry() *Registry {
	return &Registry{states: make(map[ID]State)}
}

// OnChange registers a host observer notified after every mutation that
// changes the collection or a widget's state. This is the bridge a reactive
// rendering layer hangs re-render triggers on.
func (r *Registry) OnChange(fn func()) {
	if fn == nil {
		return
	}
	r.onChange = append(r.onChange, fn)
}

func (r *Registry) notify() {
	for _, fn := range r.onChange {
		fn()
	}
}

// Add appends w to the end of the collection. Duplicate ids are allowed and
// shadow each other in state lookups; the mirror entry is overwritten with
// the newcomer's state.
func (r *Registry) Add(w Widget) {
	if w == nil {
		return
	}
	r.widgets = append(r.widgets, w)
	r.states[w.ID()] = w.State()
	r.notify()
}

// Absorb adds every widget the factory builds, preserving the factory's
// order.
func (r *Registry) Absorb(f Factory) {
	if f == nil {
		return
	}
	for _, w := range f.Build() {
		r.Add(w)
	}
}

// Remove deletes every widget whose id equals id and closes each removed
// widget's event channel, so no later emission reaches its subscribers.
// Unknown ids are a silent no-op.
func (r *Registry) Remove(id ID) {
	kept := r.widgets[:0]
	removed := 0
	for _, w := range r.widgets {
		if w.ID() == id {
			w.Events().Close()
			removed++
			continue
		}
		kept = append(kept, w)
	}
	if removed == 0 {
		return
	}
	for i := len(kept); i < len(r.widgets); i++ {
		r.widgets[i] = nil
	}
	r.widgets = kept
	delete(r.states, id)
	r.notify()
}

// setFirst applies s to the first widget with a matching id, in insertion
// order. Unlike Remove this touches one widget only — the asymmetry comes
// from the original design and is pinned by tests. The mirror entry is
// written before the widget's own state so both agree by the time state
// observers fire. Unknown ids are a silent no-op.
func (r *Registry) setFirst(id ID, s State) {
	for _, w := range r.widgets {
		if w.ID() != id {
			continue
		}
		r.states[id] = s
		w.SetState(s)
		r.notify()
		return
	}
}

func (r *Registry) Show(id ID)    { r.setFirst(id, StateVisible) }
func (r *Registry) Hide(id ID)    { r.setFirst(id, StateHidden) }
func (r *Registry) Disable(id ID) { r.setFirst(id, StateDisabled) }

// Enable resolves to Visible, same as Show.
func (r *Registry) Enable(id ID) { r.setFirst(id, StateVisible) }

// StateOf reports the mirrored state for id, defaulting to Visible when no
// widget matches. "Unknown id" and "known id currently visible" are
// indistinguishable here on purpose, so call sites stay optional-free; use
// Lookup when the difference matters.
func (r *Registry) StateOf(id ID) State {
	if s, ok := r.states[id]; ok {
		return s
	}
	return StateVisible
}

// Lookup is the strict variant of StateOf: the second result reports
// whether any widget with this id is registered.
func (r *Registry) Lookup(id ID) (State, bool) {
	s, ok := r.states[id]
	return s, ok
}

// Get returns the first widget with a matching id, or nil.
func (r *Registry) Get(id ID) Widget {
	for _, w := range r.widgets {
		if w.ID() == id {
			return w
		}
	}
	return nil
}

// Widgets returns the collection in insertion order. The slice is a copy;
// mutate through registry operations only.
func (r *Registry) Widgets() []Widget {
	out := make([]Widget, len(r.widgets))
	copy(out, r.widgets)
	return out
}

func (r *Registry) Len() int { return len(r.widgets) }

// SubscribeAll attaches sub to the channel of every widget currently in the
// collection. One-shot snapshot: widgets added afterwards are not
// auto-attached, the host re-invokes subscription after adding.
func (r *Registry) SubscribeAll(sub Subscriber) {
	if sub == nil {
		return
	}
	for _, w := range r.widgets {
		sub.Subscribe(w)
	}
}
