package widgets

import (
	"fmt"

	"github.com/dimzfresh/widgetkit/core"
)

// Event names emitted by the widgets in this package.
const (
	EventCount      = "count"
	EventTimerFired = "timer.fired"
)

// Counter keeps a tally and emits a count event on every increment.
type Counter struct {
	*core.Base
	Title string
	n     int
}

func NewCounter(id core.ID, title string) *Counter {
	return &Counter{Base: core.NewBase(id), Title: title}
}

// Increment bumps the tally and emits the new value. Disabled counters
// ignore the call, matching non-interactive rendering.
func (c *Counter) Increment() {
	if c.State() == core.StateDisabled {
		return
	}
	c.n++
	c.Emit(core.Event{Name: EventCount, Payload: c.n})
}

func (c *Counter) Count() int { return c.n }

func (c *Counter) Render(width int) string {
	return Chrome{
		Title:    c.Title,
		Content:  fmt.Sprintf("count: %d\n[enter] increment", c.n),
		Disabled: c.State() == core.StateDisabled,
	}.Render(width)
}
