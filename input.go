package cubeview

// DefaultSensitivity is the drag gain: dragging across the full surface
// height turns the cube by this many radians.
const DefaultSensitivity float32 = 4

// PointerEventKind identifies a pointer event.
type PointerEventKind int

const (
	PointerDownEvent PointerEventKind = iota
	PointerMoveEvent
	PointerUpEvent
)

// PointerEvent is a pointer event as delivered by the host surface.
type PointerEvent struct {
	Kind   PointerEventKind
	Pos    Vec2 // Client coordinates
	Bounds Rect // Bounding rectangle of the event target
}

// InputController turns drag gestures into rotation angles.
//
// It is the only writer of the AngleState it was given; the render loop
// reads that state between events.
type InputController struct {
	angles      *AngleState
	pointer     PointerState
	height      float32
	sensitivity float32
}

// NewInputController creates a controller that updates angles.
// height is the surface height in pixels and scales the drag gain.
func NewInputController(angles *AngleState, height int, sensitivity float32) *InputController {
	return &InputController{
		angles:      angles,
		height:      float32(height),
		sensitivity: sensitivity,
	}
}

// SetHeight updates the surface height after a resize.
func (c *InputController) SetHeight(height int) {
	c.height = float32(height)
}

// Scale returns the radians-per-pixel factor for the current height.
// It is zero while the surface has no height.
func (c *InputController) Scale() float32 {
	if c.height <= 0 {
		return 0
	}
	return c.sensitivity / c.height
}

// HandleEvent dispatches ev to the matching handler.
func (c *InputController) HandleEvent(ev PointerEvent) {
	switch ev.Kind {
	case PointerDownEvent:
		c.PointerDown(ev)
	case PointerMoveEvent:
		c.PointerMove(ev)
	case PointerUpEvent:
		c.PointerUp(ev)
	}
}

// PointerDown starts a drag if the event lies within its target bounds.
func (c *InputController) PointerDown(ev PointerEvent) {
	if !ev.Bounds.Contains(ev.Pos) {
		return
	}
	c.pointer.Last = ev.Pos
	c.pointer.Dragging = true
}

// PointerMove rotates by the distance moved since the last event while
// dragging. Screen Y grows downward, so the vertical delta is negated to make
// an upward drag increase angle Y. The last position is tracked even when
// idle so the next drag starts from a fresh baseline.
func (c *InputController) PointerMove(ev PointerEvent) {
	if c.pointer.Dragging {
		d := ev.Pos.Sub(c.pointer.Last).Mul(c.Scale())
		c.angles.X += d.X
		c.angles.Y += -d.Y
	}
	c.pointer.Last = ev.Pos
}

// PointerUp ends any drag, wherever the pointer is.
func (c *InputController) PointerUp(PointerEvent) {
	c.pointer.Dragging = false
}

// Dragging reports whether a drag is in progress.
func (c *InputController) Dragging() bool {
	return c.pointer.Dragging
}

// Pointer returns a copy of the pointer state.
func (c *InputController) Pointer() PointerState {
	return c.pointer
}
