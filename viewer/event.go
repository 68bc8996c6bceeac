package viewer

// Event is a single input or window notification delivered to a Viewer.
type Event interface {
	event()
}

type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	Key1
	Key2
	Key3
)

type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonOther
)

type Wheel int

const (
	WheelVertical Wheel = iota
	WheelHorizontal
)

// CloseEvent is sent when the user asks to close the window.
type CloseEvent struct{}

// ResizeEvent carries the new drawable size in pixels.
type ResizeEvent struct {
	Width, Height int
}

type KeyEvent struct {
	Key Key
}

type ButtonPressEvent struct {
	Button MouseButton
	X, Y   float64
}

type ButtonReleaseEvent struct {
	Button MouseButton
	X, Y   float64
}

type MouseMoveEvent struct {
	X, Y float64
}

// ScrollEvent carries wheel notches; positive Delta on the vertical wheel
// is away from the user.
type ScrollEvent struct {
	Wheel Wheel
	Delta float64
}

func (CloseEvent) event()         {}
func (ResizeEvent) event()        {}
func (KeyEvent) event()           {}
func (ButtonPressEvent) event()   {}
func (ButtonReleaseEvent) event() {}
func (MouseMoveEvent) event()     {}
func (ScrollEvent) event()        {}
