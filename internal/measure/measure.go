// Package measure sizes text labels without a window, using the Go regular
// font through freetype.
package measure

import (
	"fmt"
	"strings"
	"sync"

	"InfiniteBoard/internal/geom"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Font measures text with a parsed TrueType font. Faces are cached per size.
type Font struct {
	font *truetype.Font

	mu    sync.Mutex
	faces map[float64]font.Face
}

// New returns a measurer for the Go regular font.
func New() (*Font, error) {
	return Parse(goregular.TTF)
}

// Parse returns a measurer for the given TrueType data.
func Parse(ttf []byte) (*Font, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &Font{font: f, faces: make(map[float64]font.Face)}, nil
}

// Must is New for callers that cannot handle the error. The embedded font
// always parses.
func Must() *Font {
	f, err := New()
	if err != nil {
		panic(err)
	}
	return f
}

// Measure returns the size of text at fontSize plus padding on every side:
// the widest line across, one fontSize per line down.
func (f *Font) Measure(text string, fontSize, padding float64) geom.Size {
	if fontSize <= 0 {
		return geom.Size{W: 2 * padding, H: 2 * padding}
	}
	lines := strings.Split(text, "\n")

	f.mu.Lock()
	face := f.face(fontSize)
	var widest float64
	for _, l := range lines {
		w := float64(font.MeasureString(face, l)) / 64
		if w > widest {
			widest = w
		}
	}
	f.mu.Unlock()

	return geom.Size{
		W: widest + 2*padding,
		H: float64(len(lines))*fontSize + 2*padding,
	}
}

func (f *Font) face(size float64) font.Face {
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := truetype.NewFace(f.font, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	f.faces[size] = face
	return face
}
