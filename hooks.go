package colorwidgets

import "image/color"

// Hooks are the widget's consumer-facing callbacks. Every field is optional;
// nil fields are skipped. All hooks fire synchronously on the goroutine
// delivering the event that caused them.
type Hooks struct {
	// SelectionChanged fires whenever the selected index changes.
	// -1 means the selection was cleared.
	SelectionChanged func(index int)

	// ColorSelected fires when an entry becomes selected, and again when the
	// selected entry's color is replaced in place.
	ColorSelected func(c color.RGBA)

	// PaletteChanged fires when the whole palette is swapped out.
	PaletteChanged func(p *Palette)

	// RightClicked fires on a right press over a valid cell.
	RightClicked func(index int)

	// ColorSizeChanged fires when the nominal cell size changes.
	ColorSizeChanged func(w, h int)

	// SizePolicyChanged fires when the size policy changes.
	SizePolicyChanged func(policy SizePolicy)

	// ForcedRowsChanged fires when the forced row count changes, including
	// the reset to 0 caused by setting forced columns.
	ForcedRowsChanged func(rows int)

	// ForcedColumnsChanged fires when the forced column count changes,
	// including the reset to 0 caused by setting forced rows.
	ForcedColumnsChanged func(columns int)

	// BorderChanged fires when the cell border pen changes.
	BorderChanged func(pen Pen)

	// SelectionPenChanged fires when the selection outline pen changes.
	SelectionPenChanged func(pen Pen)

	// MarginChanged fires when the cell margin changes.
	MarginChanged func(margin int)

	// EmptyColorChanged fires when the blank-slot sentinel color changes.
	EmptyColorChanged func(c color.RGBA)

	// ReadOnlyChanged fires when the read-only flag changes.
	ReadOnlyChanged func(readOnly bool)

	// ShowNamesChanged fires when name-label rendering is toggled.
	ShowNamesChanged func(show bool)
}

// Merge overlays the non-nil fields of other onto h.
func (h *Hooks) Merge(other *Hooks) {
	if other == nil {
		return
	}
	if other.SelectionChanged != nil {
		h.SelectionChanged = other.SelectionChanged
	}
	if other.ColorSelected != nil {
		h.ColorSelected = other.ColorSelected
	}
	if other.PaletteChanged != nil {
		h.PaletteChanged = other.PaletteChanged
	}
	if other.RightClicked != nil {
		h.RightClicked = other.RightClicked
	}
	if other.ColorSizeChanged != nil {
		h.ColorSizeChanged = other.ColorSizeChanged
	}
	if other.SizePolicyChanged != nil {
		h.SizePolicyChanged = other.SizePolicyChanged
	}
	if other.ForcedRowsChanged != nil {
		h.ForcedRowsChanged = other.ForcedRowsChanged
	}
	if other.ForcedColumnsChanged != nil {
		h.ForcedColumnsChanged = other.ForcedColumnsChanged
	}
	if other.BorderChanged != nil {
		h.BorderChanged = other.BorderChanged
	}
	if other.SelectionPenChanged != nil {
		h.SelectionPenChanged = other.SelectionPenChanged
	}
	if other.MarginChanged != nil {
		h.MarginChanged = other.MarginChanged
	}
	if other.EmptyColorChanged != nil {
		h.EmptyColorChanged = other.EmptyColorChanged
	}
	if other.ReadOnlyChanged != nil {
		h.ReadOnlyChanged = other.ReadOnlyChanged
	}
	if other.ShowNamesChanged != nil {
		h.ShowNamesChanged = other.ShowNamesChanged
	}
}
