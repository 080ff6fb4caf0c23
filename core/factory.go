package core

// Factory is the construction boundary: something that produces a finite,
// ordered sequence of widgets. The registry consumes the output and places
// no constraint on how the widgets were built or configured.
type Factory interface {
	Build() []Widget
}

// FactoryFunc adapts a function to the Factory interface.
type FactoryFunc func() []Widget

func (f FactoryFunc) Build() []Widget { return f() }

// StaticFactory returns a factory producing a fixed widget sequence, handy
// in tests and small hosts.
func StaticFactory(ws ...Widget) Factory {
	return FactoryFunc(func() []Widget { return ws })
}
