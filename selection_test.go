package colorwidgets

import (
	"image/color"
	"testing"
)

// gridSwatch builds a writable n-entry swatch laid out 5 columns wide over a
// 100x100 pixel area.
func gridSwatch(t *testing.T, n int, opts ...Option) *Swatch {
	t.Helper()
	pal := NewPalette()
	for i := 0; i < n; i++ {
		pal.AppendColor(testColor(i), "")
	}
	all := append([]Option{
		WithPalette(pal),
		WithSize(100, 100),
		WithForcedColumns(5),
	}, opts...)
	return New(all...)
}

func TestSetSelectedClampsOutOfRange(t *testing.T) {
	sw := gridSwatch(t, 3)

	for _, bad := range []int{-5, 3, 100} {
		sw.SetSelected(1)
		sw.SetSelected(bad)
		if sw.Selected() != -1 {
			t.Errorf("SetSelected(%d) on 3 entries: selection %d, want -1", bad, sw.Selected())
		}
	}
}

func TestSetSelectedFiresHooks(t *testing.T) {
	var gotIndex = -2
	var gotColor color.RGBA
	sw := gridSwatch(t, 5, WithHooks(&Hooks{
		SelectionChanged: func(index int) { gotIndex = index },
		ColorSelected:    func(c color.RGBA) { gotColor = c },
	}))

	sw.SetSelected(2)

	if gotIndex != 2 {
		t.Errorf("expected SelectionChanged(2), got %d", gotIndex)
	}
	if gotColor != testColor(2) {
		t.Errorf("expected ColorSelected with entry 2's color, got %v", gotColor)
	}
}

func TestSetSelectedSameValueIsSilent(t *testing.T) {
	calls := 0
	sw := gridSwatch(t, 5, WithHooks(&Hooks{
		SelectionChanged: func(int) { calls++ },
	}))

	sw.SetSelected(2)
	sw.SetSelected(2)

	if calls != 1 {
		t.Errorf("expected 1 SelectionChanged call, got %d", calls)
	}
}

func TestSelectedColor(t *testing.T) {
	sw := gridSwatch(t, 5)

	sw.SetSelected(3)
	if sw.SelectedColor() != testColor(3) {
		t.Errorf("expected entry 3's color, got %v", sw.SelectedColor())
	}

	sw.ClearSelection()
	if sw.SelectedColor() != (color.RGBA{}) {
		t.Errorf("expected zero color with no selection, got %v", sw.SelectedColor())
	}
}

func TestKeyLeftRight(t *testing.T) {
	sw := gridSwatch(t, 10)

	// No selection: Left jumps to the last entry, Right to the first.
	sw.KeyPress(KeyLeft, 0)
	if sw.Selected() != 9 {
		t.Fatalf("Left from none: got %d, want 9", sw.Selected())
	}
	sw.ClearSelection()
	sw.KeyPress(KeyRight, 0)
	if sw.Selected() != 0 {
		t.Fatalf("Right from none: got %d, want 0", sw.Selected())
	}

	// No wraparound at either end.
	sw.KeyPress(KeyLeft, 0)
	if sw.Selected() != 0 {
		t.Errorf("Left at 0: got %d, want 0", sw.Selected())
	}
	sw.SetSelected(9)
	sw.KeyPress(KeyRight, 0)
	if sw.Selected() != 9 {
		t.Errorf("Right at last: got %d, want 9", sw.Selected())
	}

	sw.SetSelected(4)
	sw.KeyPress(KeyLeft, 0)
	if sw.Selected() != 3 {
		t.Errorf("Left at 4: got %d, want 3", sw.Selected())
	}
	sw.KeyPress(KeyRight, 0)
	if sw.Selected() != 4 {
		t.Errorf("Right back: got %d, want 4", sw.Selected())
	}
}

func TestKeyUpDown(t *testing.T) {
	sw := gridSwatch(t, 10) // 5x2 grid

	sw.SetSelected(7)
	sw.KeyPress(KeyUp, 0)
	if sw.Selected() != 2 {
		t.Errorf("Up from 7: got %d, want 2", sw.Selected())
	}

	// Already on the first row: Up stays put.
	sw.KeyPress(KeyUp, 0)
	if sw.Selected() != 2 {
		t.Errorf("Up on first row: got %d, want 2", sw.Selected())
	}

	sw.KeyPress(KeyDown, 0)
	if sw.Selected() != 7 {
		t.Errorf("Down from 2: got %d, want 7", sw.Selected())
	}

	// Down past the last row stays put.
	sw.KeyPress(KeyDown, 0)
	if sw.Selected() != 7 {
		t.Errorf("Down on last row: got %d, want 7", sw.Selected())
	}
}

func TestKeyHomeEnd(t *testing.T) {
	sw := gridSwatch(t, 10) // 5x2 grid

	sw.SetSelected(7)
	sw.KeyPress(KeyHome, 0)
	if sw.Selected() != 5 {
		t.Errorf("Home: got %d, want row start 5", sw.Selected())
	}

	sw.KeyPress(KeyEnd, 0)
	if sw.Selected() != 9 {
		t.Errorf("End: got %d, want row end 9", sw.Selected())
	}

	sw.KeyPress(KeyHome, ModCtrl)
	if sw.Selected() != 0 {
		t.Errorf("Ctrl+Home: got %d, want 0", sw.Selected())
	}

	sw.KeyPress(KeyEnd, ModCtrl)
	if sw.Selected() != 9 {
		t.Errorf("Ctrl+End: got %d, want 9", sw.Selected())
	}
}

func TestKeyPageUpDown(t *testing.T) {
	sw := gridSwatch(t, 13) // 5-wide, 3 rows, partial last row

	sw.SetSelected(7)
	sw.KeyPress(KeyPageUp, 0)
	if sw.Selected() != 2 {
		t.Errorf("PageUp from 7: got %d, want 2", sw.Selected())
	}

	sw.KeyPress(KeyPageDown, 0)
	if sw.Selected() != 12 {
		t.Errorf("PageDown from 2: got %d, want 12", sw.Selected())
	}

	// A column whose last-row slot is unused lands on the previous row.
	sw.SetSelected(4)
	sw.KeyPress(KeyPageDown, 0)
	if sw.Selected() != 9 {
		t.Errorf("PageDown from 4: got %d, want 9", sw.Selected())
	}
}

func TestKeyPressOnEmptyPalette(t *testing.T) {
	sw := gridSwatch(t, 0)

	if sw.KeyPress(KeyLeft, 0) {
		t.Error("expected keys to be ignored with an empty palette")
	}
}

func TestKeyPressUnknownKey(t *testing.T) {
	sw := gridSwatch(t, 5)

	if sw.KeyPress(KeyNone, 0) {
		t.Error("expected unknown key to be ignored")
	}
}

func TestKeyBackspace(t *testing.T) {
	sw := gridSwatch(t, 5)

	sw.SetSelected(2)
	sw.KeyPress(KeyBackspace, 0)

	if sw.Palette().Count() != 4 {
		t.Fatalf("expected 4 entries after backspace, got %d", sw.Palette().Count())
	}
	if sw.Selected() != 1 {
		t.Errorf("expected selection 1 after backspace at 2, got %d", sw.Selected())
	}
}

func TestKeyBackspaceAtZero(t *testing.T) {
	sw := gridSwatch(t, 3)

	sw.SetSelected(0)
	sw.KeyPress(KeyBackspace, 0)

	if sw.Selected() != 0 {
		t.Errorf("expected selection to stay at 0, got %d", sw.Selected())
	}
}

func TestKeyBackspaceLastEntry(t *testing.T) {
	sw := gridSwatch(t, 1)

	sw.SetSelected(0)
	sw.KeyPress(KeyBackspace, 0)

	if sw.Palette().Count() != 0 {
		t.Fatalf("expected empty palette, got %d entries", sw.Palette().Count())
	}
	if sw.Selected() != -1 {
		t.Errorf("expected cleared selection, got %d", sw.Selected())
	}
}

func TestRemoveSelected(t *testing.T) {
	sw := gridSwatch(t, 5)

	sw.SetSelected(2)
	sw.RemoveSelected()

	if sw.Palette().Count() != 4 {
		t.Fatalf("expected 4 entries, got %d", sw.Palette().Count())
	}
	if sw.Selected() != 1 {
		t.Errorf("expected selection 1, got %d", sw.Selected())
	}
}

func TestRemoveSelectedNoSelection(t *testing.T) {
	sw := gridSwatch(t, 5)

	sw.RemoveSelected()

	if sw.Palette().Count() != 5 {
		t.Errorf("expected palette untouched, got %d entries", sw.Palette().Count())
	}
}

func TestReadOnlySuppressesMutatingKeys(t *testing.T) {
	sw := gridSwatch(t, 5, WithReadOnly(true))

	sw.SetSelected(2)
	sw.KeyPress(KeyBackspace, 0)
	sw.KeyPress(KeyDelete, 0)

	if sw.Palette().Count() != 5 {
		t.Errorf("expected palette untouched in read-only mode, got %d entries", sw.Palette().Count())
	}
	if sw.Selected() != 2 {
		t.Errorf("expected selection unchanged, got %d", sw.Selected())
	}
}

func TestColorRemovedAtSelectionClears(t *testing.T) {
	sw := gridSwatch(t, 5)

	sw.SetSelected(3)
	sw.Palette().EraseColor(3)

	if sw.Selected() != -1 {
		t.Errorf("expected cleared selection after removing selected entry, got %d", sw.Selected())
	}
}

func TestColorRemovedElsewhereKeepsSelection(t *testing.T) {
	sw := gridSwatch(t, 5)

	sw.SetSelected(1)
	sw.Palette().EraseColor(3)

	if sw.Selected() != 1 {
		t.Errorf("expected selection kept, got %d", sw.Selected())
	}
}

func TestBulkShrinkClampsSelection(t *testing.T) {
	sw := gridSwatch(t, 5)

	sw.SetSelected(4)
	sw.Palette().SetEntries([]Entry{{Color: testColor(0)}, {Color: testColor(1)}})

	if sw.Selected() != -1 {
		t.Errorf("expected cleared selection after shrink below index, got %d", sw.Selected())
	}
}

func TestColorChangedAtSelectionReemits(t *testing.T) {
	var selections, colors int
	var last color.RGBA
	sw := gridSwatch(t, 5, WithHooks(&Hooks{
		SelectionChanged: func(int) { selections++ },
		ColorSelected:    func(c color.RGBA) { colors++; last = c },
	}))

	sw.SetSelected(2)
	replacement := color.RGBA{1, 2, 3, 255}
	sw.Palette().SetColorAt(2, replacement)

	if selections != 1 {
		t.Errorf("expected no extra SelectionChanged, got %d calls", selections)
	}
	if colors != 2 || last != replacement {
		t.Errorf("expected ColorSelected re-emitted with new color, got %d calls, last %v", colors, last)
	}
}
