package core

// Layer is a slice of game logic stacked inside an App. Events propagate
// top-down (last pushed first) until a layer reports them handled.
type Layer interface {
	OnAttach(e *Engine)
	OnDetach(e *Engine)
	OnUpdate(e *Engine, dt float64) error
	OnRender(e *Engine, alpha float64) error
	OnEvent(e *Engine, ev Event) (handled bool, err error)
}

type LayerStack struct{ list []Layer }

func (ls *LayerStack) Push(l Layer) { ls.list = append(ls.list, l) }
func (ls *LayerStack) Pop() (Layer, bool) {
	if len(ls.list) == 0 {
		return nil, false
	}
	i := len(ls.list) - 1
	l := ls.list[i]
	ls.list = ls.list[:i]
	return l, true
}

// Update ticks every layer bottom-up.
func (ls *LayerStack) Update(e *Engine, dt float64) error {
	for _, l := range ls.list {
		if err := l.OnUpdate(e, dt); err != nil {
			return err
		}
	}
	return nil
}

// Render draws every layer bottom-up.
func (ls *LayerStack) Render(e *Engine, alpha float64) error {
	for _, l := range ls.list {
		if err := l.OnRender(e, alpha); err != nil {
			return err
		}
	}
	return nil
}

// Dispatch offers an event to layers top-down; propagation stops at the
// first layer that handles it.
func (ls *LayerStack) Dispatch(e *Engine, ev Event) error {
	for i := len(ls.list) - 1; i >= 0; i-- {
		handled, err := ls.list[i].OnEvent(e, ev)
		if err != nil {
			return err
		}
		if handled {
			break
		}
	}
	return nil
}
