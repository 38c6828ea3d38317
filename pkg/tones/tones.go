// Package tones derives the five-tone palette that every frame style
// paints with from a single accent color.
//
// All derivation happens in HSL: the accent's hue is kept, and the four
// variants only shift saturation and lightness. Hue is quantized to
// whole degrees and saturation/lightness to whole percent before
// re-encoding, so repeated calls produce stable hex values instead of
// accumulating float drift.
package tones

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor reports an accent that is not a 6-digit RGB hex string.
var ErrInvalidColor = errors.New("invalid accent color")

// Palette is the derived tone set. All values are lowercase "#rrggbb"
// strings sharing the accent's hue. Lightness is ordered
// Shine ≥ Light ≥ Base ≥ Dark ≥ VDark (after clamping).
type Palette struct {
	Base  string
	Light string
	Dark  string
	VDark string
	Shine string
}

// Saturation/lightness offsets and clamp bounds for each variant.
const (
	lightSatOff, lightLitOff, lightLitMax = -5, 22, 92
	darkSatOff, darkLitOff, darkLitMin    = 5, -22, 8
	vdarkSatOff, vdarkLitOff, vdarkLitMin = 10, -38, 4
	shineSatOff, shineLitOff, shineLitMax = -15, 38, 96
)

// Derive expands one accent color into a Palette. The base tone is the
// accent passed through the same HSL round-trip as the variants, so all
// five values share one rounding behavior. Derive is pure: identical
// input yields an identical Palette.
func Derive(accent string) (Palette, error) {
	h, s, l, err := HSL(accent)
	if err != nil {
		return Palette{}, err
	}
	return Palette{
		Base:  encode(h, s, l),
		Light: encode(h, clamp(s+lightSatOff, 0, 100), clamp(l+lightLitOff, 0, lightLitMax)),
		Dark:  encode(h, clamp(s+darkSatOff, 0, 100), clamp(l+darkLitOff, darkLitMin, 100)),
		VDark: encode(h, clamp(s+vdarkSatOff, 0, 100), clamp(l+vdarkLitOff, vdarkLitMin, 100)),
		Shine: encode(h, clamp(s+shineSatOff, 0, 100), clamp(l+shineLitOff, 0, shineLitMax)),
	}, nil
}

// HSL parses an accent color and returns its hue in whole degrees
// [0,360) and saturation/lightness in whole percent [0,100].
// Achromatic colors report hue 0.
func HSL(accent string) (h, s, l int, err error) {
	c, err := parse(accent)
	if err != nil {
		return 0, 0, 0, err
	}
	fh, fs, fl := c.Hsl()
	return int(math.Round(fh)) % 360,
		int(math.Round(fs * 100)),
		int(math.Round(fl * 100)),
		nil
}

// parse validates and decodes a "#rrggbb" accent. The leading "#" is
// optional on input; everything else is strict.
func parse(accent string) (colorful.Color, error) {
	hex := strings.TrimSpace(accent)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) != 7 {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, accent)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, accent)
	}
	return c, nil
}

// encode converts quantized HSL back to a lowercase hex string.
func encode(h, s, l int) string {
	return colorful.Hsl(float64(h), float64(s)/100, float64(l)/100).Hex()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
