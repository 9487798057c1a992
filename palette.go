package colorwidgets

import "image/color"

// Entry is one palette slot: a color and an optional display name.
type Entry struct {
	Color color.RGBA
	Name  string
}

// PaletteObserver receives palette change notifications. Every field is
// optional; nil fields are skipped. Notifications are delivered
// synchronously on the goroutine performing the mutation, in the order the
// observers were registered.
type PaletteObserver struct {
	// ColorsChanged fires after any change to the number or order of entries.
	ColorsChanged func()

	// ColumnsChanged fires when the palette's columns hint changes.
	ColumnsChanged func(columns int)

	// ColorsUpdated fires when entry appearance changed without a change to
	// the entry count (color or name replaced in place).
	ColorsUpdated func()

	// ColorChanged fires when the color at one index is replaced.
	ColorChanged func(index int)

	// ColorRemoved fires for the erased index, before the ColorsChanged that
	// follows every erase.
	ColorRemoved func(index int)
}

// Palette is an ordered collection of named color entries with a layout
// columns hint and observer-based change notifications. It is the data
// source behind [Swatch] and must only be mutated from the goroutine that
// drives the widget's events.
type Palette struct {
	name    string
	entries []Entry
	columns int

	observers []paletteSubscription
	nextToken int
}

type paletteSubscription struct {
	token    int
	observer *PaletteObserver
}

// NewPalette creates an empty palette.
func NewPalette() *Palette {
	return &Palette{}
}

// NewPaletteWith creates a named palette holding the given entries.
func NewPaletteWith(name string, entries ...Entry) *Palette {
	p := NewPalette()
	p.name = name
	p.entries = append(p.entries, entries...)
	return p
}

// Subscribe registers an observer and returns a token for [Unsubscribe].
func (p *Palette) Subscribe(o *PaletteObserver) int {
	p.nextToken++
	p.observers = append(p.observers, paletteSubscription{token: p.nextToken, observer: o})
	return p.nextToken
}

// Unsubscribe detaches a previously registered observer. Unknown tokens are
// ignored, so detaching twice is harmless.
func (p *Palette) Unsubscribe(token int) {
	for i, sub := range p.observers {
		if sub.token == token {
			p.observers = append(p.observers[:i], p.observers[i+1:]...)
			return
		}
	}
}

// Name returns the palette's display name.
func (p *Palette) Name() string { return p.name }

// SetName sets the palette's display name.
func (p *Palette) SetName(name string) { p.name = name }

// Count returns the number of entries.
func (p *Palette) Count() int { return len(p.entries) }

// Columns is the palette's own layout hint; 0 means no preference.
func (p *Palette) Columns() int { return p.columns }

// SetColumns sets the layout hint. Values below zero are treated as zero.
func (p *Palette) SetColumns(columns int) {
	if columns < 0 {
		columns = 0
	}
	if columns == p.columns {
		return
	}
	p.columns = columns
	for _, sub := range p.observers {
		if sub.observer.ColumnsChanged != nil {
			sub.observer.ColumnsChanged(columns)
		}
	}
}

// ColorAt returns the color at index, or the zero color out of range.
func (p *Palette) ColorAt(index int) color.RGBA {
	if index < 0 || index >= len(p.entries) {
		return color.RGBA{}
	}
	return p.entries[index].Color
}

// NameAt returns the display name at index, or "" when unnamed or out of range.
func (p *Palette) NameAt(index int) string {
	if index < 0 || index >= len(p.entries) {
		return ""
	}
	return p.entries[index].Name
}

// SetColorAt replaces the color at index, keeping the name. Reports whether
// the index was valid.
func (p *Palette) SetColorAt(index int, c color.RGBA) bool {
	if index < 0 || index >= len(p.entries) {
		return false
	}
	p.entries[index].Color = c
	for _, sub := range p.observers {
		if sub.observer.ColorChanged != nil {
			sub.observer.ColorChanged(index)
		}
	}
	p.notifyColorsUpdated()
	return true
}

// SetNameAt replaces the display name at index. Reports whether the index
// was valid.
func (p *Palette) SetNameAt(index int, name string) bool {
	if index < 0 || index >= len(p.entries) {
		return false
	}
	p.entries[index].Name = name
	p.notifyColorsUpdated()
	return true
}

// InsertColor inserts an entry before index, shifting later entries right.
// The index is clamped to [0, Count].
func (p *Palette) InsertColor(index int, c color.RGBA, name string) {
	if index < 0 {
		index = 0
	}
	if index > len(p.entries) {
		index = len(p.entries)
	}
	p.entries = append(p.entries, Entry{})
	copy(p.entries[index+1:], p.entries[index:])
	p.entries[index] = Entry{Color: c, Name: name}
	p.notifyColorsChanged()
}

// AppendColor adds an entry at the end.
func (p *Palette) AppendColor(c color.RGBA, name string) {
	p.InsertColor(len(p.entries), c, name)
}

// EraseColor removes the entry at index. Reports whether the index was valid.
func (p *Palette) EraseColor(index int) bool {
	if index < 0 || index >= len(p.entries) {
		return false
	}
	p.entries = append(p.entries[:index], p.entries[index+1:]...)
	for _, sub := range p.observers {
		if sub.observer.ColorRemoved != nil {
			sub.observer.ColorRemoved(index)
		}
	}
	p.notifyColorsChanged()
	return true
}

// SetEntries replaces the whole entry list in one bulk update.
func (p *Palette) SetEntries(entries []Entry) {
	p.entries = append(p.entries[:0:0], entries...)
	p.notifyColorsChanged()
}

// Entries returns a copy of the entry list.
func (p *Palette) Entries() []Entry {
	return append([]Entry(nil), p.entries...)
}

// ReplaceFrom copies the contents of other into p as one bulk update, so
// observers of p stay attached across a reload.
func (p *Palette) ReplaceFrom(other *Palette) {
	p.name = other.name
	p.entries = append(p.entries[:0:0], other.entries...)
	if p.columns != other.columns {
		p.columns = other.columns
		for _, sub := range p.observers {
			if sub.observer.ColumnsChanged != nil {
				sub.observer.ColumnsChanged(p.columns)
			}
		}
	}
	p.notifyColorsChanged()
}

func (p *Palette) notifyColorsChanged() {
	for _, sub := range p.observers {
		if sub.observer.ColorsChanged != nil {
			sub.observer.ColorsChanged()
		}
	}
}

func (p *Palette) notifyColorsUpdated() {
	for _, sub := range p.observers {
		if sub.observer.ColorsUpdated != nil {
			sub.observer.ColorsUpdated()
		}
	}
}
