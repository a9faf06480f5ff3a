package render

import (
	"fmt"
	"image/color"
	"math/rand"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

var named = map[string]color.NRGBA{
	"red":         {R: 255, A: 255},
	"green":       {G: 128, A: 255},
	"blue":        {B: 255, A: 255},
	"black":       {A: 255},
	"white":       {R: 255, G: 255, B: 255, A: 255},
	"gray":        {R: 128, G: 128, B: 128, A: 255},
	"yellow":      {R: 255, G: 255, A: 255},
	"transparent": {},
}

// ParseColor accepts a palette name, "#rgb"/"#rrggbb" hex, or CSS-style
// "hsl(h, s%, l%)". ok is false for anything else.
func ParseColor(s string) (c color.Color, ok bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil, false
	}
	if n, found := named[s]; found {
		return n, true
	}
	if strings.HasPrefix(s, "#") {
		if len(s) == 4 {
			s = "#" + string([]byte{s[1], s[1], s[2], s[2], s[3], s[3]})
		}
		hc, err := colorful.Hex(s)
		if err != nil {
			return nil, false
		}
		return toNRGBA(hc), true
	}
	if strings.HasPrefix(s, "hsl(") {
		var h, sat, l float64
		body := strings.NewReplacer("%", "", " ", "").Replace(s)
		if _, err := fmt.Sscanf(body, "hsl(%g,%g,%g)", &h, &sat, &l); err != nil {
			return nil, false
		}
		return toNRGBA(colorful.Hsl(h, sat/100, l/100)), true
	}
	return nil, false
}

func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func colorOr(s string, fallback color.Color) color.Color {
	if c, ok := ParseColor(s); ok {
		return c
	}
	return fallback
}

// ColorFunc yields the fill color string for a newly committed shape.
type ColorFunc func() string

// DefaultLightness is the HSL lightness, in percent, of random fills.
const DefaultLightness = 60

// RandomFill returns a ColorFunc producing "hsl(h, s%, l%)" with hue in
// [0, 360), saturation in [0, 100] and the given lightness. A nil rng is
// seeded from the clock.
func RandomFill(rng *rand.Rand, lightness float64) ColorFunc {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return func() string {
		return fmt.Sprintf("hsl(%d, %d%%, %g%%)", rng.Intn(360), rng.Intn(101), lightness)
	}
}

// Fixed returns a ColorFunc that always yields c.
func Fixed(c string) ColorFunc {
	return func() string { return c }
}
