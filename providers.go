package colorwidgets

// RepaintProvider receives a request whenever the widget's visual state
// changes. Typically wired to the host toolkit's invalidate/update call.
type RepaintProvider interface {
	// Repaint is called when the widget needs to be redrawn.
	Repaint()
}

// NoopRepaint ignores all repaint requests (useful for headless use, where
// the host renders on its own schedule).
type NoopRepaint struct{}

func (NoopRepaint) Repaint() {}

// --- Tooltip Provider ---

// TooltipProvider shows and hides the hover tooltip. The cell rectangle the
// tooltip describes is passed so hosts can anchor the popup next to it.
type TooltipProvider interface {
	// Show is called with the tooltip text for the hovered cell.
	Show(text string, cell Rect)
	// Hide is called when the pointer leaves every cell.
	Hide()
}

// NoopTooltip ignores all tooltip operations.
type NoopTooltip struct{}

func (NoopTooltip) Show(text string, cell Rect) {}
func (NoopTooltip) Hide()                       {}

// --- Drag Provider ---

// DragProvider starts an outgoing drag on behalf of the widget. allowed is
// the bitmask of drop actions the widget permits for the gesture; hosts that
// honor ActionMove should deliver the final drop back through [Swatch.Drop]
// so the moved entry is removed from its old position.
type DragProvider interface {
	// StartDrag is called when a pressed cell travels far enough to become a drag.
	StartDrag(data DragData, allowed DropAction)
}

// NoopDrag ignores outgoing drags.
type NoopDrag struct{}

func (NoopDrag) StartDrag(data DragData, allowed DropAction) {}

// --- Size Enforcer ---

// SizeEnforcer applies the minimum/fixed size constraints the widget derives
// from its size policy whenever the palette or the policy changes.
type SizeEnforcer interface {
	// EnforceMinimumSize is called with the size hint under [PolicyMinimum].
	EnforceMinimumSize(w, h int)
	// EnforceFixedSize is called with the size hint under [PolicyFixed].
	EnforceFixedSize(w, h int)
	// ClearSizeConstraints is called before a policy switch takes effect.
	ClearSizeConstraints()
}

// NoopSizeEnforcer ignores all size constraints.
type NoopSizeEnforcer struct{}

func (NoopSizeEnforcer) EnforceMinimumSize(w, h int) {}
func (NoopSizeEnforcer) EnforceFixedSize(w, h int)   {}
func (NoopSizeEnforcer) ClearSizeConstraints()       {}
