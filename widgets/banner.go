package widgets

import "github.com/dimzfresh/widgetkit/core"

// Banner is a static text widget. It never emits events on its own; hosts
// may still Emit through it.
type Banner struct {
	*core.Base
	Title string
	Text  string
}

func NewBanner(id core.ID, title, text string) *Banner {
	return &Banner{Base: core.NewBase(id), Title: title, Text: text}
}

func (b *Banner) Render(width int) string {
	return Chrome{
		Title:    b.Title,
		Content:  b.Text,
		Disabled: b.State() == core.StateDisabled,
	}.Render(width)
}
