package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// teaScheduler defers widget work through the bubbletea runtime so callbacks
// run on the update loop, keeping the single-threaded model intact. After
// queues a tick command; the app returns drain() from Update and runs the
// callback when the matching deferredMsg arrives.
type teaScheduler struct {
	seq     int
	pending map[int]func()
	cmds    []tea.Cmd
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{pending: map[int]func(){}}
}

func (s *teaScheduler) After(d time.Duration, fn func()) func() {
	s.seq++
	id := s.seq
	s.pending[id] = fn
	s.cmds = append(s.cmds, tea.Tick(d, func(time.Time) tea.Msg { return deferredMsg{id: id} }))
	return func() { delete(s.pending, id) }
}

// drain hands the queued tick commands to the runtime.
func (s *teaScheduler) drain() tea.Cmd {
	if len(s.cmds) == 0 {
		return nil
	}
	cmds := s.cmds
	s.cmds = nil
	return tea.Batch(cmds...)
}

// dispatch runs the callback for a tick token. Cancelled tokens tick anyway
// and land here with nothing pending.
func (s *teaScheduler) dispatch(id int) {
	fn := s.pending[id]
	if fn == nil {
		return
	}
	delete(s.pending, id)
	fn()
}
