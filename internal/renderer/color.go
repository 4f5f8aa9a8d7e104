package renderer

import (
	"hash/fnv"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB true-color value a terminal backend can draw.
type Color struct {
	R, G, B uint8
}

// ColorDefault is the terminal's own foreground/background color.
var ColorDefault = Color{}

// AuthorColor deterministically derives a perceptually distinct color
// for username: its FNV hash seeds a hue on the HSLuv color wheel, so
// two different usernames land on visibly different colors while the
// same username always renders identically across a session (and
// across a reconnect, since the color is never stored anywhere).
func AuthorColor(username string) Color {
	h := fnv.New32a()
	_, _ = h.Write([]byte(username))
	hue := float64(h.Sum32()%360)
	c := colorful.Hsluv(hue, 0.75, 0.60)
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}
