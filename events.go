package colorwidgets

import "image/color"

// MouseButton identifies pointer buttons. Values form a bitmask so move
// events can carry the full set of held buttons.
type MouseButton uint8

const (
	ButtonLeft MouseButton = 1 << iota
	ButtonRight
	ButtonMiddle
)

// Key is a logical keyboard key the widget reacts to. Hosts translate their
// own key codes to these before calling [Swatch.KeyPress].
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
	KeyBackspace
)

// Modifiers is a bitmask of held modifier keys.
type Modifiers uint8

const (
	ModCtrl Modifiers = 1 << iota
	ModShift
	ModAlt
)

// DropAction is the action a drag declares. Values combine into a bitmask
// when used as the set of actions allowed for an outgoing drag.
type DropAction uint8

const (
	ActionNone DropAction = 0
	ActionCopy DropAction = 1 << 0
	ActionMove DropAction = 1 << 1
)

// DragData is the transferable payload of a color drag: a native color, a
// text form that may encode one, or both.
type DragData struct {
	Color    color.RGBA
	HasColor bool
	Text     string
}

// ColorValue resolves the payload color: the native color when present,
// otherwise whatever parses out of the text form.
func (d DragData) ColorValue() (color.RGBA, bool) {
	if d.HasColor {
		return d.Color, true
	}
	return ParseColor(d.Text)
}

// DragEvent describes one step of an incoming drag gesture.
type DragEvent struct {
	// Pos is the pointer position in widget pixel coordinates.
	Pos Point

	// Data is the drag payload.
	Data DragData

	// Source identifies the widget the drag started from when the gesture is
	// local to the application, nil otherwise.
	Source any

	// Action is the single action the drag currently declares.
	Action DropAction
}
