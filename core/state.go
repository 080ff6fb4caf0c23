package core

// State controls whether the host renders a widget's content, renders
// nothing, or renders content non-interactively. Every transition is legal
// from every state; no state is terminal.
type State int

const (
	StateVisible State = iota
	StateHidden
	StateDisabled
)

func (s State) String() string {
	switch s {
	case StateHidden:
		return "hidden"
	case StateDisabled:
		return "disabled"
	default:
		return "visible"
	}
}
