// Package colorwidgets provides a headless interactive color-swatch grid:
// an ordered palette of colors laid out as a rectangular grid of cells, with
// selection, keyboard navigation, drag-and-drop reordering, tooltips, and
// configurable layout.
//
// The widget has no rendering or windowing dependencies of its own, making
// it ideal for:
//   - Embedding in any Go GUI toolkit (the examples ship an ebiten host)
//   - Testing palette interaction logic without a display
//   - Server-side rendering of palette previews
//
// # Quick Start
//
// Create a palette and a widget, feed it events, and read the state back:
//
//	pal := colorwidgets.NewPaletteWith("Basics",
//	    colorwidgets.Entry{Color: color.RGBA{255, 0, 0, 255}, Name: "Red"},
//	    colorwidgets.Entry{Color: color.RGBA{0, 255, 0, 255}, Name: "Green"},
//	)
//	sw := colorwidgets.New(
//	    colorwidgets.WithPalette(pal),
//	    colorwidgets.WithSize(200, 100),
//	)
//	sw.MousePress(colorwidgets.ButtonLeft, colorwidgets.Point{X: 10, Y: 10})
//	fmt.Println(sw.Selected()) // 0
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [Swatch]: the widget; composes everything below
//   - [Palette]: the ordered color collection with change notifications
//   - [Layout]: the grid geometry engine mapping indexes to pixel rectangles
//   - [Hooks]: consumer callbacks for selection and property changes
//
// Host services are abstracted as small provider interfaces with no-op
// defaults ([RepaintProvider], [TooltipProvider], [DragProvider],
// [SizeEnforcer]), so the widget runs unchanged from a unit test to a GUI.
//
// # Layout
//
// The grid shape derives from the palette size, the widget's pixel
// dimensions, and the overrides in effect: forced rows win over forced
// columns, which win over the palette's own columns hint, which wins over
// automatic columns computed from the available width. Cell sizes stay
// fractional so the cells always tile the widget exactly.
//
// # Drag and drop
//
// An incoming drag resolves to an insertion index plus an overwrite flag:
// dropping on the last quarter of a cell inserts after it, dropping on the
// middle overwrites it - except that moving a color within the same widget
// keeps insert semantics so reordering never destroys an entry. [Swatch.Drop]
// applies the resolution; [Swatch.Render] previews it.
//
// # Rendering
//
// [Swatch.Render] paints the complete widget state to an *image.RGBA:
// checkerboard backdrops under translucent colors, pens for borders and the
// selection, drop previews and insertion markers, and optional name labels.
//
// # Concurrency
//
// The widget and palette are single-threaded by contract: drive them from
// the one goroutine that processes host events. Only [PaletteWatcher]
// involves another goroutine, and it hands results back through a callback.
package colorwidgets
