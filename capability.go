package trimview

// Drawable is implemented by state holders exposing geometry to a rendering surface.
// The surface reports its measured size through Resize and reads the rectangles back.
type Drawable interface {
	Resize(width, height float32)
	Geometry() Geometry
}

// PointerTarget is implemented by state holders consuming pointer input.
type PointerTarget interface {
	Dispatch(e PointerEvent) error
}

// Phase is the stage of a pointer event within a gesture.
type Phase uint8

const (
	PhaseDown Phase = iota
	PhaseMove
	PhaseUp
	// PhaseCancel is sent by hosts whose input stream was interrupted.
	PhaseCancel
)

func (p Phase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseMove:
		return "move"
	case PhaseUp:
		return "up"
	case PhaseCancel:
		return "cancel"
	}
	return "unknown"
}

// PointerEvent is a single pointer event in the widget's local pixel space.
type PointerEvent struct {
	X, Y  float32
	Phase Phase
}

var (
	_ Drawable      = (*Controller)(nil)
	_ PointerTarget = (*Controller)(nil)
)
