package frames

import (
	"math"
	"strings"

	"github.com/Bollo2014/MapToken/pkg/svgdoc"
	"github.com/Bollo2014/MapToken/pkg/tones"
)

const (
	rivetCount  = 24
	rivetRadius = 242
	rivetSize   = 5
	// The highlight sits up-left of the rivet center, as if lit from
	// the top-left corner of the canvas.
	rivetShineSize = 2.8
	rivetShineOff  = 1.2

	textureStrokeWidth = 1
)

// textureRadii are the faint brushed-texture circles; opacity grows
// outward as 0.12 + 0.04×index.
var textureRadii = [5]float64{234, 237, 240, 243, 246}

// rivetedMetal draws a plate band with a brushed-circle texture and 24
// evenly spaced two-tone rivets on top.
func rivetedMetal(p tones.Palette) (string, []string) {
	var b strings.Builder
	b.WriteString(disc(250, p.VDark))
	b.WriteString(disc(247, p.Base))

	for i, r := range textureRadii {
		opacity := 0.12 + 0.04*float64(i)
		b.WriteString(svgdoc.StrokedCircle(center, center, r, p.Light, textureStrokeWidth, opacity))
	}

	step := 2 * math.Pi / rivetCount
	for i := 0; i < rivetCount; i++ {
		c := polar(rivetRadius, top+float64(i)*step)
		b.WriteString(svgdoc.Circle(c.X, c.Y, rivetSize, p.VDark))
		b.WriteString(svgdoc.Circle(c.X-rivetShineOff, c.Y-rivetShineOff, rivetShineSize, p.Shine))
	}
	return b.String(), nil
}
