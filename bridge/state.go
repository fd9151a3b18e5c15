package bridge

import (
	"github.com/briarhart/trellis/engine/core"
	"github.com/briarhart/trellis/gui"
)

// State is the application-facing callback set: core.App plus a UI hook and
// the live GUI context in every callback. Implement it instead of core.App
// and wrap with NewStateWrapper; existing run-loop driver code needs no
// changes.
type State interface {
	// UI is called when it is time to construct the GUI for this tick.
	UI(e *core.Engine, ctx gui.Context) error

	// Update is called once per fixed tick, after UI and after deferred
	// event dispatch.
	Update(e *core.Engine, ctx gui.Context, dt float64) error

	// Draw renders game content. The GUI is blitted on top afterward.
	Draw(e *core.Engine, ctx gui.Context, alpha float64) error

	// Event receives host events the GUI did not consume. Keyboard events
	// are withheld while the GUI wants keyboard focus, pointer events while
	// it is using the pointer.
	Event(e *core.Engine, ctx gui.Context, ev core.Event) error
}

// Starter is an optional State extension called once before the loop runs.
type Starter interface {
	Start(e *core.Engine) error
}

// Shutdowner is an optional State extension called before exit.
type Shutdowner interface {
	Shutdown(e *core.Engine)
}

// StateWrapper adapts a State to core.App, supplying the glue between the
// host loop and the GUI frame lifecycle.
//
// Ordering: host events cannot be handed to game logic the moment they
// arrive, because the GUI only knows what it consumed after its layout pass.
// So OnEvent feeds each event to the GUI's input accumulator AND defers it;
// OnUpdate runs the GUI frame first (Begin, UI callback, End) and only then
// drains the deferred queue through the consumption filter before updating
// the game. Game-visible events therefore lag GUI-visible ones by up to one
// tick boundary, by design.
type StateWrapper struct {
	state   State
	wrapper *Wrapper
	pending []core.Event
}

// NewStateWrapper wraps state so it can drive core.Run, building the GUI
// frames with ctx. The wrapper takes exclusive ownership of both.
func NewStateWrapper(state State, ctx gui.Context) *StateWrapper {
	return &StateWrapper{state: state, wrapper: NewWrapper(ctx)}
}

// Ctx returns the wrapped GUI context.
func (s *StateWrapper) Ctx() gui.Context { return s.wrapper.Ctx() }

// Stats returns the latest frame's mesh batch statistics.
func (s *StateWrapper) Stats() Statistics { return s.wrapper.Stats() }

func (s *StateWrapper) OnStart(e *core.Engine) error {
	if st, ok := s.state.(Starter); ok {
		return st.Start(e)
	}
	return nil
}

func (s *StateWrapper) OnEvent(e *core.Engine, ev core.Event) error {
	if err := s.wrapper.Event(e, ev); err != nil {
		return err
	}
	s.pending = append(s.pending, ev)
	return nil
}

func (s *StateWrapper) OnUpdate(e *core.Engine, dt float64) error {
	if err := s.wrapper.BeginFrame(e); err != nil {
		return err
	}
	if err := s.state.UI(e, s.wrapper.Ctx()); err != nil {
		return err
	}
	if err := s.wrapper.EndFrame(e); err != nil {
		return err
	}

	// Drain the deferred queue exactly once per tick, in arrival order,
	// now that the GUI can say what it consumed.
	drained := s.pending
	s.pending = nil
	for _, ev := range drained {
		if ShouldSuppress(s.wrapper.Ctx(), ev) {
			continue
		}
		if err := s.state.Event(e, s.wrapper.Ctx(), ev); err != nil {
			return err
		}
	}

	return s.state.Update(e, s.wrapper.Ctx(), dt)
}

func (s *StateWrapper) OnRender(e *core.Engine, alpha float64) error {
	if err := s.state.Draw(e, s.wrapper.Ctx(), alpha); err != nil {
		return err
	}
	s.wrapper.DrawFrame(e)
	return nil
}

func (s *StateWrapper) OnShutdown(e *core.Engine) {
	if st, ok := s.state.(Shutdowner); ok {
		st.Shutdown(e)
	}
	s.wrapper.Release()
}
