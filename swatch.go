package colorwidgets

import (
	"fmt"
	"image/color"
	"math"
)

// SizePolicy controls how the widget's preferred size is enforced.
type SizePolicy int

const (
	// PolicyHint treats the size hint as advisory: the widget may be resized
	// freely and recomputes automatic columns from the available width.
	PolicyHint SizePolicy = iota
	// PolicyMinimum never lets the widget shrink below the size hint.
	PolicyMinimum
	// PolicyFixed keeps the widget exactly at the size hint.
	PolicyFixed
)

// PenStyle selects how a pen strokes an outline.
type PenStyle int

const (
	PenSolid PenStyle = iota
	PenDotted
)

// Pen describes how cell borders and the selection outline are stroked.
type Pen struct {
	Color color.RGBA
	Width int
	Style PenStyle
}

const (
	// DefaultCellWidth and DefaultCellHeight are the nominal cell size.
	DefaultCellWidth  = 16
	DefaultCellHeight = 16

	// dragStartDistance is the manhattan pointer travel that turns a pressed
	// cell into an outgoing drag.
	dragStartDistance = 10
)

// Swatch is a headless interactive color-swatch grid: a rectangular grid of
// color cells backed by an ordered [Palette], with selection, keyboard
// navigation, drag-and-drop reorder/insert, tooltips, and configurable
// layout. Hosts feed it pointer/key/drag events in pixel coordinates and
// read its state back, or call [Swatch.Render] for a ready-made image.
//
// All methods must be called from the single goroutine that processes the
// host's events; the widget performs no locking of its own.
type Swatch struct {
	palette    *Palette
	paletteSub int

	width, height int

	selected int

	cellW, cellH  int
	sizePolicy    SizePolicy
	border        Pen
	selectionPen  Pen
	margin        int
	emptyColor    color.RGBA
	forcedRows    int
	forcedColumns int
	readOnly      bool
	showNames     bool

	// outgoing drag tracking
	dragPos   Point
	dragIndex int

	// pending incoming drop
	dropIndex     int
	dropColor     color.RGBA
	dropHasColor  bool
	dropOverwrite bool

	hooks   Hooks
	repaint RepaintProvider
	tooltip TooltipProvider
	drag    DragProvider
	sizer   SizeEnforcer
}

// Option configures a Swatch during construction.
type Option func(*Swatch)

// WithPalette sets the palette the widget displays.
func WithPalette(p *Palette) Option {
	return func(s *Swatch) {
		s.palette = p
	}
}

// WithSize sets the widget's pixel dimensions.
func WithSize(w, h int) Option {
	return func(s *Swatch) {
		s.width, s.height = w, h
	}
}

// WithColorSize sets the nominal pixel size of one color cell.
func WithColorSize(w, h int) Option {
	return func(s *Swatch) {
		s.cellW, s.cellH = w, h
	}
}

// WithSizePolicy sets how the preferred size is enforced.
func WithSizePolicy(policy SizePolicy) Option {
	return func(s *Swatch) {
		s.sizePolicy = policy
	}
}

// WithMargin insets every cell by the given number of pixels on all sides.
func WithMargin(margin int) Option {
	return func(s *Swatch) {
		s.margin = margin
	}
}

// WithBorder sets the pen used for cell borders.
func WithBorder(pen Pen) Option {
	return func(s *Swatch) {
		s.border = pen
	}
}

// WithSelectionPen sets the pen used for the selection outline.
func WithSelectionPen(pen Pen) Option {
	return func(s *Swatch) {
		s.selectionPen = pen
	}
}

// WithEmptyColor sets the sentinel color that marks a slot as visually blank.
func WithEmptyColor(c color.RGBA) Option {
	return func(s *Swatch) {
		s.emptyColor = c
	}
}

// WithForcedRows forces the grid to the given row count (clears any forced
// columns).
func WithForcedRows(rows int) Option {
	return func(s *Swatch) {
		if rows < 0 {
			rows = 0
		}
		s.forcedRows = rows
		s.forcedColumns = 0
	}
}

// WithForcedColumns forces the grid to the given column count (clears any
// forced rows).
func WithForcedColumns(columns int) Option {
	return func(s *Swatch) {
		if columns < 0 {
			columns = 0
		}
		s.forcedColumns = columns
		s.forcedRows = 0
	}
}

// WithReadOnly disables mutating keyboard shortcuts and incoming drops.
func WithReadOnly(readOnly bool) Option {
	return func(s *Swatch) {
		s.readOnly = readOnly
	}
}

// WithShowNames enables entry name labels in rendered output.
func WithShowNames(show bool) Option {
	return func(s *Swatch) {
		s.showNames = show
	}
}

// WithRepaint sets the repaint sink. Defaults to a no-op if not set.
func WithRepaint(p RepaintProvider) Option {
	return func(s *Swatch) {
		s.repaint = p
	}
}

// WithTooltip sets the tooltip sink. Defaults to a no-op if not set.
func WithTooltip(p TooltipProvider) Option {
	return func(s *Swatch) {
		s.tooltip = p
	}
}

// WithDrag sets the outgoing-drag starter. Defaults to a no-op if not set.
func WithDrag(p DragProvider) Option {
	return func(s *Swatch) {
		s.drag = p
	}
}

// WithSizeEnforcer sets the size-constraint sink. Defaults to a no-op.
func WithSizeEnforcer(p SizeEnforcer) Option {
	return func(s *Swatch) {
		s.sizer = p
	}
}

// WithHooks merges consumer callbacks into the widget.
func WithHooks(h *Hooks) Option {
	return func(s *Swatch) {
		s.hooks.Merge(h)
	}
}

// New creates a swatch widget. Defaults: empty palette, 16x16 cells, hint
// size policy, 1px black borders, 2px dotted gray selection outline, no
// margin, fully transparent empty sentinel, writable.
func New(opts ...Option) *Swatch {
	s := &Swatch{
		selected:     -1,
		cellW:        DefaultCellWidth,
		cellH:        DefaultCellHeight,
		border:       Pen{Color: color.RGBA{0, 0, 0, 255}, Width: 1},
		selectionPen: Pen{Color: color.RGBA{128, 128, 128, 255}, Width: 2, Style: PenDotted},
		dragIndex:    -1,
		dropIndex:    -1,
		repaint:      NoopRepaint{},
		tooltip:      NoopTooltip{},
		drag:         NoopDrag{},
		sizer:        NoopSizeEnforcer{},
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.palette == nil {
		s.palette = NewPalette()
	}
	s.paletteSub = s.subscribe(s.palette)
	return s
}

// subscribe wires the widget's reactions to palette notifications.
func (s *Swatch) subscribe(p *Palette) int {
	return p.Subscribe(&PaletteObserver{
		ColorsChanged: s.paletteModified,
		ColumnsChanged: func(int) {
			s.repaint.Repaint()
		},
		ColorsUpdated: func() {
			s.repaint.Repaint()
		},
		ColorChanged: func(index int) {
			if index == s.selected && s.hooks.ColorSelected != nil {
				s.hooks.ColorSelected(s.palette.ColorAt(index))
			}
		},
		ColorRemoved: func(index int) {
			if index == s.selected {
				s.ClearSelection()
			}
		},
	})
}

// Close detaches the widget from its palette's notifications.
func (s *Swatch) Close() {
	s.palette.Unsubscribe(s.paletteSub)
}

// paletteModified re-synchronizes after a bulk palette change: a stale
// selection is dropped and size constraints are reapplied.
func (s *Swatch) paletteModified() {
	if s.selected >= s.palette.Count() {
		s.ClearSelection()
	}
	s.applySizePolicy()
	s.repaint.Repaint()
}

func (s *Swatch) applySizePolicy() {
	w, h := s.SizeHint()
	switch s.sizePolicy {
	case PolicyMinimum:
		s.sizer.EnforceMinimumSize(w, h)
	case PolicyFixed:
		s.sizer.EnforceFixedSize(w, h)
	}
}

// Resize tells the widget its current pixel size.
func (s *Swatch) Resize(w, h int) {
	if w == s.width && h == s.height {
		return
	}
	s.width, s.height = w, h
	s.repaint.Repaint()
}

// Size returns the widget's current pixel size.
func (s *Swatch) Size() (w, h int) { return s.width, s.height }

// Layout resolves the grid geometry for the current widget state.
func (s *Swatch) Layout() Layout {
	return LayoutSpec{
		Count:         s.palette.Count(),
		Width:         s.width,
		Height:        s.height,
		Margin:        s.margin,
		CellWidth:     s.cellW,
		ForcedRows:    s.forcedRows,
		ForcedColumns: s.forcedColumns,
		ColumnsHint:   s.palette.Columns(),
	}.Resolve()
}

// Shape returns the current grid shape.
func (s *Swatch) Shape() GridShape { return s.Layout().Shape }

// SizeHint is the preferred pixel size: one nominal cell plus margins per
// grid position. Zero when the palette is empty.
func (s *Swatch) SizeHint() (w, h int) {
	shape := s.Shape()
	if !shape.IsValid() || s.cellW <= 0 || s.cellH <= 0 {
		return 0, 0
	}
	return (s.cellW + 2*s.margin) * shape.Columns, (s.cellH + 2*s.margin) * shape.Rows
}

// MinimumSizeHint is the size hint when the policy enforces one, zero under
// [PolicyHint].
func (s *Swatch) MinimumSizeHint() (w, h int) {
	if s.sizePolicy != PolicyHint {
		return s.SizeHint()
	}
	return 0, 0
}

// IndexAt maps a pixel position to the palette index under it, or -1.
func (s *Swatch) IndexAt(p Point) int { return s.Layout().IndexAt(p) }

// IndexRect returns the cell rectangle for the given palette index.
func (s *Swatch) IndexRect(index int) Rect { return s.Layout().CellRect(index) }

// ColorAt returns the palette color under a pixel position.
func (s *Swatch) ColorAt(p Point) color.RGBA { return s.palette.ColorAt(s.IndexAt(p)) }

// Palette returns the palette the widget displays.
func (s *Swatch) Palette() *Palette { return s.palette }

// SetPalette swaps the displayed palette, clearing the selection and moving
// the notification subscription over. A nil palette is replaced by an empty
// one.
func (s *Swatch) SetPalette(p *Palette) {
	if p == nil {
		p = NewPalette()
	}
	s.ClearSelection()
	s.palette.Unsubscribe(s.paletteSub)
	s.palette = p
	s.paletteSub = s.subscribe(p)
	s.repaint.Repaint()
	if s.hooks.PaletteChanged != nil {
		s.hooks.PaletteChanged(p)
	}
}

// --- Configuration properties ---

// ColorSize returns the nominal pixel size of one cell.
func (s *Swatch) ColorSize() (w, h int) { return s.cellW, s.cellH }

// SetColorSize sets the nominal pixel size of one cell.
func (s *Swatch) SetColorSize(w, h int) {
	if w == s.cellW && h == s.cellH {
		return
	}
	s.cellW, s.cellH = w, h
	if s.hooks.ColorSizeChanged != nil {
		s.hooks.ColorSizeChanged(w, h)
	}
}

// SizePolicy returns the current size policy.
func (s *Swatch) SizePolicy() SizePolicy { return s.sizePolicy }

// SetSizePolicy switches the size policy, clearing the previous constraint
// and applying the new one immediately.
func (s *Swatch) SetSizePolicy(policy SizePolicy) {
	if policy == s.sizePolicy {
		return
	}
	s.sizePolicy = policy
	s.sizer.ClearSizeConstraints()
	s.paletteModified()
	if s.hooks.SizePolicyChanged != nil {
		s.hooks.SizePolicyChanged(policy)
	}
}

// ForcedRows returns the forced row count, 0 when rows are not forced.
func (s *Swatch) ForcedRows() int { return s.forcedRows }

// ForcedColumns returns the forced column count, 0 when columns are not forced.
func (s *Swatch) ForcedColumns() int { return s.forcedColumns }

// SetForcedRows forces the grid to the given row count. Setting it always
// resets forced columns to 0; the two overrides are mutually exclusive.
func (s *Swatch) SetForcedRows(rows int) {
	if rows <= 0 {
		rows = 0
	}
	if rows == s.forcedRows {
		return
	}
	s.forcedColumns = 0
	if s.hooks.ForcedColumnsChanged != nil {
		s.hooks.ForcedColumnsChanged(0)
	}
	s.forcedRows = rows
	if s.hooks.ForcedRowsChanged != nil {
		s.hooks.ForcedRowsChanged(rows)
	}
	s.repaint.Repaint()
}

// SetForcedColumns forces the grid to the given column count. Setting it
// always resets forced rows to 0; the two overrides are mutually exclusive.
func (s *Swatch) SetForcedColumns(columns int) {
	if columns <= 0 {
		columns = 0
	}
	if columns == s.forcedColumns {
		return
	}
	s.forcedColumns = columns
	if s.hooks.ForcedColumnsChanged != nil {
		s.hooks.ForcedColumnsChanged(columns)
	}
	s.forcedRows = 0
	if s.hooks.ForcedRowsChanged != nil {
		s.hooks.ForcedRowsChanged(0)
	}
	s.repaint.Repaint()
}

// Border returns the cell border pen.
func (s *Swatch) Border() Pen { return s.border }

// SetBorder sets the cell border pen.
func (s *Swatch) SetBorder(pen Pen) {
	if pen == s.border {
		return
	}
	s.border = pen
	if s.hooks.BorderChanged != nil {
		s.hooks.BorderChanged(pen)
	}
	s.repaint.Repaint()
}

// SelectionPen returns the selection outline pen.
func (s *Swatch) SelectionPen() Pen { return s.selectionPen }

// SetSelectionPen sets the selection outline pen.
func (s *Swatch) SetSelectionPen(pen Pen) {
	if pen == s.selectionPen {
		return
	}
	s.selectionPen = pen
	if s.hooks.SelectionPenChanged != nil {
		s.hooks.SelectionPenChanged(pen)
	}
	s.repaint.Repaint()
}

// Margin returns the per-cell inset.
func (s *Swatch) Margin() int { return s.margin }

// SetMargin sets the per-cell inset.
func (s *Swatch) SetMargin(margin int) {
	if margin == s.margin {
		return
	}
	s.margin = margin
	if s.hooks.MarginChanged != nil {
		s.hooks.MarginChanged(margin)
	}
	s.repaint.Repaint()
}

// EmptyColor returns the sentinel color marking a blank slot.
func (s *Swatch) EmptyColor() color.RGBA { return s.emptyColor }

// SetEmptyColor sets the sentinel color marking a blank slot.
func (s *Swatch) SetEmptyColor(c color.RGBA) {
	if c == s.emptyColor {
		return
	}
	s.emptyColor = c
	if s.hooks.EmptyColorChanged != nil {
		s.hooks.EmptyColorChanged(c)
	}
	s.repaint.Repaint()
}

// ReadOnly reports whether user interaction may mutate the palette.
func (s *Swatch) ReadOnly() bool { return s.readOnly }

// SetReadOnly toggles the read-only flag. Read-only widgets suppress the
// Delete/Backspace shortcuts and reject incoming drops.
func (s *Swatch) SetReadOnly(readOnly bool) {
	if readOnly == s.readOnly {
		return
	}
	s.readOnly = readOnly
	if s.hooks.ReadOnlyChanged != nil {
		s.hooks.ReadOnlyChanged(readOnly)
	}
}

// ShowNames reports whether rendered output labels cells with entry names.
func (s *Swatch) ShowNames() bool { return s.showNames }

// SetShowNames toggles name labels in rendered output.
func (s *Swatch) SetShowNames(show bool) {
	if show == s.showNames {
		return
	}
	s.showNames = show
	if s.hooks.ShowNamesChanged != nil {
		s.hooks.ShowNamesChanged(show)
	}
	s.repaint.Repaint()
}

// --- Selection ---

// Selected returns the selected palette index, -1 for no selection.
func (s *Swatch) Selected() int { return s.selected }

// SelectedColor returns the color of the selected entry, or the zero color
// when nothing is selected.
func (s *Swatch) SelectedColor() color.RGBA { return s.palette.ColorAt(s.selected) }

// SetSelected selects the entry at the given index. Indexes outside
// [0, Count-1] resolve to -1 (no selection). A change fires
// Hooks.SelectionChanged, then Hooks.ColorSelected when an entry is selected.
func (s *Swatch) SetSelected(selected int) {
	if selected < 0 || selected >= s.palette.Count() {
		selected = -1
	}
	if selected == s.selected {
		return
	}
	s.selected = selected
	if s.hooks.SelectionChanged != nil {
		s.hooks.SelectionChanged(selected)
	}
	if selected != -1 && s.hooks.ColorSelected != nil {
		s.hooks.ColorSelected(s.palette.ColorAt(selected))
	}
	s.repaint.Repaint()
}

// ClearSelection deselects any selected entry.
func (s *Swatch) ClearSelection() { s.SetSelected(-1) }

// RemoveSelected erases the selected entry unless the widget is read-only.
// The selection then moves to the previous entry, or clears when the palette
// became empty.
func (s *Swatch) RemoveSelected() {
	if s.selected == -1 || s.readOnly {
		return
	}
	selected := s.selected
	s.palette.EraseColor(selected)
	if s.palette.Count() == 0 {
		s.SetSelected(-1)
	} else {
		s.SetSelected(max(selected-1, 0))
	}
}

// KeyPress handles a logical key and reports whether it was consumed.
// Arrows move the selection within the grid without wrapping; Home/End jump
// within the current row, or to the palette ends with Ctrl; PageUp/PageDown
// jump to the first/last row keeping the column; Delete and Backspace erase
// the selected entry when the widget is writable.
func (s *Swatch) KeyPress(key Key, mods Modifiers) bool {
	count := s.palette.Count()
	if count == 0 {
		return false
	}

	selected := s.selected
	shape := s.Shape()
	columns := shape.Columns
	rows := shape.Rows

	switch key {
	default:
		return false

	case KeyLeft:
		if selected == -1 {
			selected = count - 1
		} else if selected > 0 {
			selected--
		}

	case KeyRight:
		if selected == -1 {
			selected = 0
		} else if selected < count-1 {
			selected++
		}

	case KeyUp:
		if selected == -1 {
			selected = count - 1
		} else if selected >= columns {
			selected -= columns
		}

	case KeyDown:
		if selected == -1 {
			selected = 0
		} else if selected < count-columns {
			selected += columns
		}

	case KeyHome:
		if mods&ModCtrl != 0 {
			selected = 0
		} else {
			selected -= selected % columns
		}

	case KeyEnd:
		if mods&ModCtrl != 0 {
			selected = count - 1
		} else {
			selected += columns - (selected % columns) - 1
		}

	case KeyPageUp:
		if selected == -1 {
			selected = 0
		} else {
			selected = selected % columns
		}

	case KeyPageDown:
		if selected == -1 {
			selected = count - 1
		} else {
			selected = columns*(rows-1) + selected%columns
			if selected >= count {
				selected -= columns
			}
		}

	case KeyDelete:
		s.RemoveSelected()
		return true

	case KeyBackspace:
		if selected != -1 && !s.readOnly {
			s.palette.EraseColor(selected)
			if s.palette.Count() == 0 {
				selected = -1
			} else {
				selected = max(selected-1, 0)
			}
		}
	}

	s.SetSelected(selected)
	return true
}

// --- Mouse ---

// MousePress handles a pointer press. A left press selects the cell under
// the pointer and arms drag tracking; a right press over a valid cell fires
// Hooks.RightClicked.
func (s *Swatch) MousePress(button MouseButton, p Point) {
	switch button {
	case ButtonLeft:
		s.dragPos = p
		s.dragIndex = s.IndexAt(p)
		s.SetSelected(s.dragIndex)
	case ButtonRight:
		if index := s.IndexAt(p); index != -1 && s.hooks.RightClicked != nil {
			s.hooks.RightClicked(index)
		}
	}
}

// MouseRelease handles a pointer release, disarming drag tracking.
func (s *Swatch) MouseRelease(button MouseButton, p Point) {
	if button == ButtonLeft {
		s.dragIndex = -1
	}
}

// MouseMove starts an outgoing drag once a left-pressed pointer travels far
// enough from the pressed cell. held is the set of buttons still down.
func (s *Swatch) MouseMove(p Point, held MouseButton) {
	if s.dragIndex == -1 || held&ButtonLeft == 0 {
		return
	}
	if manhattan(s.dragPos, p) < dragStartDistance {
		return
	}
	c := s.palette.ColorAt(s.dragIndex)
	allowed := ActionCopy
	if !s.readOnly {
		allowed |= ActionMove
	}
	s.drag.StartDrag(DragData{Color: c, HasColor: true, Text: HexColor(c)}, allowed)
}

// Hover implements the tooltip contract: over a valid cell the tooltip shows
// the entry's name (when set) and its encoded color value; anywhere else any
// visible tooltip is hidden.
func (s *Swatch) Hover(p Point) {
	index := s.IndexAt(p)
	if index == -1 {
		s.tooltip.Hide()
		return
	}
	message := HexColor(s.palette.ColorAt(index))
	if name := s.palette.NameAt(index); name != "" {
		message = fmt.Sprintf("%s (%s)", name, message)
	}
	s.tooltip.Show(message, s.IndexRect(index))
}

func manhattan(a, b Point) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}
