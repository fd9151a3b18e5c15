package core

// Input tracks the live keyboard/mouse state from the event stream, so code
// that needs "is this key down right now" or "where is the cursor" does not
// have to watch events itself.
type Input struct {
	keys           map[Key]bool
	mouseX, mouseY float64
}

func NewInput() *Input { return &Input{keys: map[Key]bool{}} }

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKeyPressed:
		in.keys[e.Key] = true
	case EventKeyReleased:
		in.keys[e.Key] = false
	case EventMouseMoved:
		in.mouseX, in.mouseY = e.X, e.Y
	case EventFocusLost:
		// keys released while unfocused never produce release events
		clear(in.keys)
	}
}

func (in *Input) IsKeyDown(k Key) bool      { return in.keys[k] }
func (in *Input) Mouse() (float64, float64) { return in.mouseX, in.mouseY }
