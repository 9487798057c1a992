package colorwidgets

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Checkerboard squares drawn under translucent colors so transparency reads
// as transparency instead of as a darker shade.
var (
	checkerLight = color.RGBA{255, 255, 255, 255}
	checkerDark  = color.RGBA{192, 192, 192, 255}
)

const checkerSquare = 4

// emptyBorderAlpha fades the outline of blank slots.
const emptyBorderAlpha = 56

// Render paints the widget state into a fresh RGBA image of the widget's
// current pixel size: every cell with its border (blank slots as a faded
// outline only), the pending drop feedback, and the selection outline on
// top. With [Swatch.SetShowNames] enabled, named cells get a small label.
// An empty palette or zero-sized widget yields a blank image.
func (s *Swatch) Render() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, max(s.width, 0), max(s.height, 0)))
	l := s.Layout()
	if !l.Shape.IsValid() {
		return img
	}

	emptyBorder := s.border
	emptyBorder.Color.A = emptyBorderAlpha

	count := s.palette.Count()
	for i := 0; i < count; i++ {
		cell := l.CellRect(i)
		c := s.palette.ColorAt(i)
		if c == s.emptyColor {
			strokeRect(img, cell, emptyBorder)
			continue
		}
		if c.A < 255 {
			drawCheckerboard(img, cell)
		}
		fillRect(img, cell, c)
		strokeRect(img, cell, s.border)
		if s.showNames {
			if name := s.palette.NameAt(i); name != "" {
				drawLabel(img, cell, name, labelColor(c))
			}
		}
	}

	s.renderDrop(img, l)

	if s.selected != -1 {
		cell := l.CellRect(s.selected)
		strokeRect(img, cell, Pen{Color: color.RGBA{64, 64, 64, 255}, Width: 2})
		strokeRect(img, cell, s.selectionPen)
	}

	return img
}

// renderDrop draws the pending drop feedback: a filled preview of the
// dropped color when overwriting, an insertion line at the target boundary
// otherwise.
func (s *Swatch) renderDrop(img *image.RGBA, l Layout) {
	if s.dropIndex == -1 {
		return
	}

	cell := l.CellRect(s.dropIndex)
	if s.dropOverwrite {
		fillRect(img, cell, s.dropColor)
		strokeRect(img, cell, Pen{Color: color.RGBA{128, 128, 128, 255}, Width: 1})
		return
	}

	marker := Pen{Color: s.dropColor, Width: 2}
	if l.Shape.Columns == 1 {
		// Vertical list: the insertion line runs along the cell's top edge.
		drawHLine(img, cell.X, cell.Y, cell.W, marker)
		return
	}

	drawVLine(img, cell.X, cell.Y, cell.H, marker)
	// Inserting at the start of a row repeats the marker at the trailing
	// edge of the previous row, so the boundary is visible on both lines.
	if s.dropIndex%l.Shape.Columns == 0 && s.dropIndex != 0 {
		prev := l.CellRect(s.dropIndex - 1)
		w, _ := l.CellSize()
		drawVLine(img, prev.X+w, prev.Y, prev.H, marker)
	}
}

func rectToImage(r Rect) image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X+r.W), int(r.Y+r.H))
}

func fillRect(img *image.RGBA, r Rect, c color.RGBA) {
	draw.Draw(img, rectToImage(r), image.NewUniform(c), image.Point{}, draw.Over)
}

func drawCheckerboard(img *image.RGBA, r Rect) {
	b := rectToImage(r)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := checkerLight
			if ((x-b.Min.X)/checkerSquare+(y-b.Min.Y)/checkerSquare)%2 == 1 {
				c = checkerDark
			}
			img.SetRGBA(x, y, c)
		}
	}
}

func strokeRect(img *image.RGBA, r Rect, pen Pen) {
	if pen.Width <= 0 || !r.IsValid() {
		return
	}
	b := rectToImage(r)
	w := pen.Width
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			onEdge := x < b.Min.X+w || x >= b.Max.X-w || y < b.Min.Y+w || y >= b.Max.Y-w
			if !onEdge {
				continue
			}
			if pen.Style == PenDotted && ((x+y)/2)%2 == 1 {
				continue
			}
			img.SetRGBA(x, y, pen.Color)
		}
	}
}

func drawHLine(img *image.RGBA, x, y, w float64, pen Pen) {
	fillRect(img, Rect{X: x, Y: y - float64(pen.Width)/2, W: w, H: float64(pen.Width)}, pen.Color)
}

func drawVLine(img *image.RGBA, x, y, h float64, pen Pen) {
	fillRect(img, Rect{X: x - float64(pen.Width)/2, Y: y, W: float64(pen.Width), H: h}, pen.Color)
}

// drawLabel writes the entry name into the bottom of its cell, truncated to
// what fits the basicfont glyph width.
func drawLabel(img *image.RGBA, cell Rect, text string, c color.RGBA) {
	const glyphWidth = 7 // basicfont.Face7x13 advance
	maxChars := (int(cell.W) - 4) / glyphWidth
	if maxChars <= 0 {
		return
	}
	if len(text) > maxChars {
		text = text[:maxChars]
	}
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(cell.X)+2, int(cell.Y+cell.H)-3),
	}
	d.DrawString(text)
}
