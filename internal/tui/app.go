package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dimzfresh/widgetkit/core"
	"github.com/dimzfresh/widgetkit/internal/config"
	"github.com/dimzfresh/widgetkit/widgets"
)

// App is the presentation collaborator: it reads registry state to decide
// what to draw and routes key presses into registry mutators. All widget
// state transitions go through the registry, never through widgets directly.
type App struct {
	cfg      config.Config
	registry *core.Registry
	sched    *teaScheduler

	cursor   int
	events   []core.Event
	status   string
	width    int
	picking  bool
	query    string
	quitting bool
}

func New(cfg config.Config) *App {
	sched := newTeaScheduler()
	reg := core.NewRegistry()
	reg.Absorb(FactoryFromConfig(cfg, sched))

	a := &App{
		cfg:      cfg,
		registry: reg,
		sched:    sched,
		width:    100,
	}
	// one-shot subscription snapshot: widgets added later are attached
	// individually in addBanner
	reg.SubscribeAll(core.SubscriberFunc(a.watch))
	return a
}

// watch attaches the app's event log to one widget's channel.
func (a *App) watch(w core.Widget) {
	w.Events().Subscribe(func(ev core.Event) {
		a.events = append(a.events, ev)
		if limit := a.eventLimit(); len(a.events) > limit {
			a.events = a.events[len(a.events)-limit:]
		}
	})
}

func (a *App) eventLimit() int {
	if a.cfg.UI.EventLog > 0 {
		return a.cfg.UI.EventLog
	}
	return 5
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
	case statusMsg:
		a.status = string(m)
	case deferredMsg:
		a.sched.dispatch(m.id)
	case tea.KeyMsg:
		if a.picking {
			return a.handlePickerKey(m)
		}
		return a.handleKey(m)
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	ws := a.registry.Widgets()
	switch m.String() {
	case "q", "ctrl+c":
		a.quitting = true
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(ws)-1 {
			a.cursor++
		}
	case "h":
		if w := a.current(ws); w != nil {
			a.registry.Hide(w.ID())
		}
	case "v":
		if w := a.current(ws); w != nil {
			a.registry.Show(w.ID())
		}
	case "x":
		if w := a.current(ws); w != nil {
			a.registry.Disable(w.ID())
		}
	case "e":
		if w := a.current(ws); w != nil {
			a.registry.Enable(w.ID())
		}
	case "backspace", "delete":
		if w := a.current(ws); w != nil {
			a.registry.Remove(w.ID())
			if a.cursor >= a.registry.Len() && a.cursor > 0 {
				a.cursor--
			}
			return a, statusCmd("removed " + string(w.ID()))
		}
	case "enter":
		return a, a.interact(a.current(ws))
	case "a":
		return a, a.addBanner()
	case "/":
		a.picking = true
		a.query = ""
	}
	return a, nil
}

func (a *App) handlePickerKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEsc:
		a.picking = false
		a.query = ""
	case tea.KeyEnter:
		a.picking = false
		if idx := bestMatch(a.registry.Widgets(), a.query); idx >= 0 {
			a.cursor = idx
		} else if a.query != "" {
			a.status = "no widget matches " + a.query
		}
		a.query = ""
	case tea.KeyBackspace, tea.KeyCtrlH:
		if len(a.query) > 0 {
			a.query = a.query[:len(a.query)-1]
		}
	case tea.KeySpace:
		a.query += " "
	case tea.KeyRunes:
		a.query += string(m.Runes)
	}
	return a, nil
}

func (a *App) current(ws []core.Widget) core.Widget {
	if a.cursor < 0 || a.cursor >= len(ws) {
		return nil
	}
	return ws[a.cursor]
}

// interact drives widget-specific behavior for the selected widget. Emission
// happens synchronously inside the widget, so the event log is current by
// the time View runs.
func (a *App) interact(w core.Widget) tea.Cmd {
	switch t := w.(type) {
	case *widgets.Counter:
		t.Increment()
	case *widgets.Timer:
		t.Arm()
		return a.sched.drain()
	}
	return nil
}

func (a *App) addBanner() tea.Cmd {
	w := widgets.NewBanner("", "Note", "added at runtime")
	a.registry.Add(w)
	// SubscribeAll snapshots, so the newcomer is attached by hand
	a.watch(w)
	return statusCmd("added " + string(w.ID()))
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (a *App) View() string {
	if a.quitting {
		return ""
	}
	accent := lipgloss.Color(a.cfg.UI.Accent)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("widgetkit") + "\n\n")

	ws := a.registry.Widgets()
	if len(ws) == 0 {
		b.WriteString(dimStyle.Render("(no widgets — press a to add one)") + "\n")
	}
	for i, w := range ws {
		marker := "  "
		if i == a.cursor {
			marker = "▶ "
		}
		b.WriteString(fmt.Sprintf("%s%-14s %s\n", marker, w.ID(), a.registry.StateOf(w.ID())))
	}
	b.WriteString("\n")

	paneWidth := a.paneWidth()
	for _, w := range ws {
		if w.State() == core.StateHidden {
			continue
		}
		b.WriteString(w.Render(paneWidth) + "\n")
	}

	b.WriteString("\n" + titleStyle.Render("events") + "\n")
	if len(a.events) == 0 {
		b.WriteString(dimStyle.Render("(none yet)") + "\n")
	}
	for _, ev := range a.events {
		b.WriteString(fmt.Sprintf("  %s: %s %v\n", ev.Source, ev.Name, ev.Payload))
	}

	if a.picking {
		b.WriteString("\njump to: " + a.query + "▌\n")
	}

	b.WriteString("\n" + dimStyle.Render("[j/k] move  [enter] interact  [h]ide [v]show [x]disable [e]nable  [del] remove  [a]dd  [/] jump  [q]uit"))
	if a.status != "" {
		b.WriteString("\n" + a.status)
	}
	return b.String()
}

func (a *App) paneWidth() int {
	w := a.cfg.UI.PaneWidth
	if w <= 0 {
		w = 48
	}
	if a.width > 2 && w > a.width-2 {
		w = a.width - 2
	}
	return w
}

// Registry exposes the coordinator for tests and embedding hosts.
func (a *App) Registry() *core.Registry { return a.registry }
