package colorwidgets

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// HexColor encodes a color the way tooltips and drag text payloads carry it:
// "#rrggbb", or "#aarrggbb" when the alpha channel is not fully opaque.
func HexColor(c color.RGBA) string {
	if c.A != 255 {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.A, c.R, c.G, c.B)
	}
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// ParseColor reads a color from its text form: "#rgb", "#rrggbb",
// "#aarrggbb", or an SVG 1.1 color name such as "cornflowerblue".
func ParseColor(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.RGBA{}, false
	}

	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[strings.ToLower(s)]
		return c, ok
	}

	switch len(s) {
	case 4, 7: // #rgb, #rrggbb
		c, err := colorful.Hex(s)
		if err != nil {
			return color.RGBA{}, false
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 255}, true

	case 9: // #aarrggbb
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return color.RGBA{}, false
		}
		return color.RGBA{
			A: uint8(v >> 24),
			R: uint8(v >> 16),
			G: uint8(v >> 8),
			B: uint8(v),
		}, true
	}

	return color.RGBA{}, false
}

// labelColor picks black or white text for readability over c.
func labelColor(c color.RGBA) color.RGBA {
	black := color.RGBA{0, 0, 0, 255}
	if c.A == 0 {
		return black
	}
	cc, ok := colorful.MakeColor(color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
	if !ok {
		return black
	}
	l, _, _ := cc.Lab()
	if l > 0.55 {
		return black
	}
	return color.RGBA{255, 255, 255, 255}
}
