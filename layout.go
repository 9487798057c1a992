package colorwidgets

import "math"

// Point is a position in widget pixel coordinates.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in widget pixel coordinates.
type Rect struct {
	X, Y, W, H float64
}

// IsValid reports whether the rectangle has a positive area.
func (r Rect) IsValid() bool {
	return r.W > 0 && r.H > 0
}

// Center returns the middle point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p falls inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// GridShape is the number of columns and rows the palette entries are laid
// out in. The zero value is the invalid shape used for an empty palette.
type GridShape struct {
	Columns, Rows int
}

// IsValid reports whether the shape describes at least one cell.
func (g GridShape) IsValid() bool {
	return g.Columns > 0 && g.Rows > 0
}

// LayoutSpec is the input to the grid layout computation: how many entries
// there are, the pixel area available, and the shape overrides in effect.
type LayoutSpec struct {
	// Count is the number of palette entries.
	Count int

	// Width and Height are the widget's pixel dimensions.
	Width, Height int

	// Margin insets each cell on all four sides.
	Margin int

	// CellWidth is the nominal cell width used to derive automatic columns
	// when no override or hint applies.
	CellWidth int

	// ForcedRows and ForcedColumns override the computed shape. They are
	// mutually exclusive; ForcedRows wins when both are set.
	ForcedRows    int
	ForcedColumns int

	// ColumnsHint is the palette's own preferred column count, 0 for none.
	ColumnsHint int
}

// Resolve computes the grid geometry from the inputs.
//
// With forced rows the column count is whatever fits the entries into that
// many rows. Otherwise forced columns win over the palette hint, and with
// neither the column count follows from the available width and the nominal
// cell width, never below one so a non-empty palette always lays out.
func (s LayoutSpec) Resolve() Layout {
	l := Layout{Count: s.Count, Width: s.Width, Height: s.Height, Margin: s.Margin}
	if s.Count == 0 {
		return l
	}

	if s.ForcedRows > 0 {
		l.Shape = GridShape{Columns: ceilDiv(s.Count, s.ForcedRows), Rows: s.ForcedRows}
		return l
	}

	columns := s.ColumnsHint
	if s.ForcedColumns > 0 {
		columns = s.ForcedColumns
	}
	if columns <= 0 {
		if s.CellWidth > 0 {
			columns = min(s.Count, s.Width/s.CellWidth)
		}
		if columns < 1 {
			columns = 1
		}
	}

	l.Shape = GridShape{Columns: columns, Rows: ceilDiv(s.Count, columns)}
	return l
}

// Layout is the resolved grid geometry for one widget state. It maps between
// 1-D palette indexes and 2-D pixel rectangles.
type Layout struct {
	Count         int
	Shape         GridShape
	Width, Height int
	Margin        int
}

// CellSize is the exact pixel size of one cell. The division is kept
// fractional so the cells tile the widget area with no remainder.
func (l Layout) CellSize() (w, h float64) {
	if !l.Shape.IsValid() {
		return 0, 0
	}
	return float64(l.Width) / float64(l.Shape.Columns), float64(l.Height) / float64(l.Shape.Rows)
}

// CellRect is the rectangle of the cell at index, inset by the margin on all
// sides. Returns the zero Rect for a negative index or an invalid shape.
// Indexes at or past Count still resolve to the grid position they would
// occupy, which is what the insertion marker past the last entry needs.
func (l Layout) CellRect(index int) Rect {
	if index < 0 || !l.Shape.IsValid() {
		return Rect{}
	}
	w, h := l.CellSize()
	m := float64(l.Margin)
	return Rect{
		X: float64(index%l.Shape.Columns)*w + m,
		Y: float64(index/l.Shape.Columns)*h + m,
		W: math.Max(w-2*m, 0),
		H: math.Max(h-2*m, 0),
	}
}

// IndexAt maps a pixel position to the palette index under it. Positions
// outside the grid clamp to the nearest cell; positions over the unused tail
// of a partial last row, or an invalid shape, yield -1.
func (l Layout) IndexAt(p Point) int {
	if !l.Shape.IsValid() {
		return -1
	}
	w, h := l.CellSize()
	if w <= 0 || h <= 0 {
		return -1
	}
	col := clampInt(int(p.X/w), 0, l.Shape.Columns-1)
	row := clampInt(int(p.Y/h), 0, l.Shape.Rows-1)
	index := row*l.Shape.Columns + col
	if index >= l.Count {
		return -1
	}
	return index
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
