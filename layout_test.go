package colorwidgets

import (
	"math"
	"testing"
)

func resolve(count, width int, fr, fc, hint int) Layout {
	return LayoutSpec{
		Count:     count,
		Width:     width,
		Height:    100,
		CellWidth: 16,

		ForcedRows:    fr,
		ForcedColumns: fc,
		ColumnsHint:   hint,
	}.Resolve()
}

func TestResolveEmptyPalette(t *testing.T) {
	l := resolve(0, 100, 0, 0, 0)

	if l.Shape.IsValid() {
		t.Errorf("expected invalid shape for empty palette, got %+v", l.Shape)
	}
	if idx := l.IndexAt(Point{X: 10, Y: 10}); idx != -1 {
		t.Errorf("expected -1 from hit test on empty grid, got %d", idx)
	}
	if r := l.CellRect(0); r.IsValid() {
		t.Errorf("expected empty rect on empty grid, got %+v", r)
	}
}

func TestResolveShapeInvariants(t *testing.T) {
	for _, width := range []int{1, 15, 50, 100, 333} {
		for count := 0; count <= 40; count++ {
			l := resolve(count, width, 0, 0, 0)
			if count == 0 {
				if l.Shape.IsValid() {
					t.Fatalf("count=0 width=%d: expected invalid shape", width)
				}
				continue
			}
			if l.Shape.Columns < 1 {
				t.Fatalf("count=%d width=%d: columns=%d, want >= 1", count, width, l.Shape.Columns)
			}
			if l.Shape.Columns*l.Shape.Rows < count {
				t.Fatalf("count=%d width=%d: %dx%d grid holds fewer than count cells",
					count, width, l.Shape.Columns, l.Shape.Rows)
			}
		}
	}
}

func TestResolveForcedRows(t *testing.T) {
	l := resolve(10, 100, 3, 0, 0)

	if l.Shape.Columns != 4 || l.Shape.Rows != 3 {
		t.Errorf("expected 4x3, got %dx%d", l.Shape.Columns, l.Shape.Rows)
	}
}

func TestResolveForcedRowsWinOverHint(t *testing.T) {
	l := resolve(10, 100, 2, 0, 7)

	if l.Shape.Columns != 5 || l.Shape.Rows != 2 {
		t.Errorf("expected 5x2, got %dx%d", l.Shape.Columns, l.Shape.Rows)
	}
}

func TestResolveForcedColumns(t *testing.T) {
	l := resolve(10, 100, 0, 4, 0)

	if l.Shape.Columns != 4 || l.Shape.Rows != 3 {
		t.Errorf("expected 4x3, got %dx%d", l.Shape.Columns, l.Shape.Rows)
	}
}

func TestResolveColumnsHint(t *testing.T) {
	l := resolve(10, 100, 0, 0, 2)

	if l.Shape.Columns != 2 || l.Shape.Rows != 5 {
		t.Errorf("expected 2x5, got %dx%d", l.Shape.Columns, l.Shape.Rows)
	}
}

func TestResolveAutoColumnsFromWidth(t *testing.T) {
	l := resolve(10, 100, 0, 0, 0)

	// 100px / 16px nominal cells = 6 columns
	if l.Shape.Columns != 6 || l.Shape.Rows != 2 {
		t.Errorf("expected 6x2, got %dx%d", l.Shape.Columns, l.Shape.Rows)
	}
}

func TestResolveAutoColumnsFewEntries(t *testing.T) {
	l := resolve(3, 100, 0, 0, 0)

	if l.Shape.Columns != 3 || l.Shape.Rows != 1 {
		t.Errorf("expected 3x1, got %dx%d", l.Shape.Columns, l.Shape.Rows)
	}
}

func TestResolveAutoColumnsNarrowWidget(t *testing.T) {
	// Narrower than one nominal cell still lays out a single column.
	l := resolve(5, 10, 0, 0, 0)

	if l.Shape.Columns != 1 || l.Shape.Rows != 5 {
		t.Errorf("expected 1x5, got %dx%d", l.Shape.Columns, l.Shape.Rows)
	}
}

func TestCellSizeFractional(t *testing.T) {
	l := Layout{Count: 3, Shape: GridShape{Columns: 3, Rows: 1}, Width: 100, Height: 20}

	w, _ := l.CellSize()
	if math.Abs(w-100.0/3) > 1e-9 {
		t.Errorf("expected fractional cell width 100/3, got %v", w)
	}

	// The last cell must close the widget area exactly.
	last := l.CellRect(2)
	if math.Abs(last.X+last.W-100) > 1e-9 {
		t.Errorf("cells do not tile the width: last edge at %v", last.X+last.W)
	}
}

func TestCellRectTiling(t *testing.T) {
	l := Layout{Count: 10, Shape: GridShape{Columns: 5, Rows: 2}, Width: 100, Height: 40}

	w, h := l.CellSize()
	for i := 0; i < l.Count; i++ {
		r := l.CellRect(i)
		wantX := float64(i%5) * w
		wantY := float64(i/5) * h
		if r.X != wantX || r.Y != wantY || r.W != w || r.H != h {
			t.Errorf("cell %d: got %+v, want origin (%v,%v) size (%v,%v)", i, r, wantX, wantY, w, h)
		}
	}
}

func TestCellRectMarginInsets(t *testing.T) {
	l := Layout{Count: 5, Shape: GridShape{Columns: 5, Rows: 1}, Width: 100, Height: 20, Margin: 2}

	r := l.CellRect(1)
	if r.X != 22 || r.Y != 2 || r.W != 16 || r.H != 16 {
		t.Errorf("expected (22,2,16,16), got %+v", r)
	}
}

func TestCellRectMarginClampsNonNegative(t *testing.T) {
	l := Layout{Count: 1, Shape: GridShape{Columns: 1, Rows: 1}, Width: 4, Height: 4, Margin: 10}

	r := l.CellRect(0)
	if r.W != 0 || r.H != 0 {
		t.Errorf("expected degenerate cell, got %+v", r)
	}
}

func TestIndexAtRoundTripsCellCenters(t *testing.T) {
	layouts := []Layout{
		{Count: 10, Shape: GridShape{Columns: 5, Rows: 2}, Width: 100, Height: 40},
		{Count: 7, Shape: GridShape{Columns: 3, Rows: 3}, Width: 91, Height: 77},
		{Count: 4, Shape: GridShape{Columns: 1, Rows: 4}, Width: 20, Height: 80},
	}
	for _, l := range layouts {
		for i := 0; i < l.Count; i++ {
			if got := l.IndexAt(l.CellRect(i).Center()); got != i {
				t.Errorf("%dx%d grid: center of cell %d hit-tests to %d",
					l.Shape.Columns, l.Shape.Rows, i, got)
			}
		}
	}
}

func TestIndexAtClampsOutsidePositions(t *testing.T) {
	l := Layout{Count: 10, Shape: GridShape{Columns: 5, Rows: 2}, Width: 100, Height: 40}

	if got := l.IndexAt(Point{X: -50, Y: -50}); got != 0 {
		t.Errorf("expected top-left cell for negative position, got %d", got)
	}
	if got := l.IndexAt(Point{X: 1000, Y: 1000}); got != 9 {
		t.Errorf("expected bottom-right cell for far position, got %d", got)
	}
}

func TestIndexAtPartialLastRow(t *testing.T) {
	// 7 entries in a 3-wide grid leave two unused slots on the last row.
	l := Layout{Count: 7, Shape: GridShape{Columns: 3, Rows: 3}, Width: 90, Height: 90}

	if got := l.IndexAt(Point{X: 45, Y: 75}); got != -1 {
		t.Errorf("expected -1 over unused tail slot, got %d", got)
	}
	if got := l.IndexAt(Point{X: 15, Y: 75}); got != 6 {
		t.Errorf("expected 6 over last real entry, got %d", got)
	}
}

func TestSwatchSizeHint(t *testing.T) {
	pal := NewPalette()
	for i := 0; i < 10; i++ {
		pal.AppendColor(testColor(i), "")
	}
	sw := New(
		WithPalette(pal),
		WithColorSize(16, 16),
		WithMargin(2),
		WithForcedColumns(5),
	)

	w, h := sw.SizeHint()
	if w != 100 || h != 40 {
		t.Errorf("expected hint 100x40, got %dx%d", w, h)
	}
}

func TestSwatchSizeHintEmptyPalette(t *testing.T) {
	sw := New()

	if w, h := sw.SizeHint(); w != 0 || h != 0 {
		t.Errorf("expected zero hint, got %dx%d", w, h)
	}
}

func TestSwatchMinimumSizeHint(t *testing.T) {
	pal := NewPalette()
	pal.AppendColor(testColor(0), "")
	sw := New(WithPalette(pal), WithSize(100, 100))

	if w, h := sw.MinimumSizeHint(); w != 0 || h != 0 {
		t.Errorf("hint policy: expected no minimum, got %dx%d", w, h)
	}

	sw.SetSizePolicy(PolicyMinimum)
	hw, hh := sw.SizeHint()
	if w, h := sw.MinimumSizeHint(); w != hw || h != hh {
		t.Errorf("minimum policy: expected %dx%d, got %dx%d", hw, hh, w, h)
	}
}
