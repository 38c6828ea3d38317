package frames

import (
	"math"
	"strings"

	"github.com/Bollo2014/MapToken/pkg/svgdoc"
	"github.com/Bollo2014/MapToken/pkg/tones"
)

const (
	gemCount  = 8
	gemRadius = 242
	gemSize   = 13

	gemShineID      = "gem-shine"
	gemShineOpacity = 0.4
	gemDotSize      = 1.6
	gemDotOff       = 2.5

	beadSize      = 3
	beadShineSize = 1.4
	beadShineOff  = 0.8
)

// Gem facet layout: four vertices at fixed angular offsets from the
// cardinal angle, at varying fractions of the gem size. The asymmetry
// (0.4 outward vs 0.35 inward, ±1.2 rad shoulders) reads as a cut stone
// rather than a diamond.
var (
	gemVertexOffsets   = [4]float64{0, 1.2, math.Pi, -1.2}
	gemVertexFractions = [4]float64{0.4, 0.55, 0.35, 0.55}
)

// gemBorder draws 8 faceted gems at the cardinal angles over a dark
// field with a light rim, each overlaid with a radial highlight and a
// shine dot, plus a small bead midway between each gem pair.
func gemBorder(p tones.Palette) (string, []string) {
	var b strings.Builder
	b.WriteString(disc(250, p.VDark))
	b.WriteString(disc(248, p.Light))
	b.WriteString(disc(246, p.Dark))
	b.WriteString(disc(234, p.VDark))

	step := 2 * math.Pi / gemCount
	for i := 0; i < gemCount; i++ {
		a := top + float64(i)*step
		c := polar(gemRadius, a)

		pts := make([]svgdoc.Pt, len(gemVertexOffsets))
		for j, off := range gemVertexOffsets {
			pts[j] = offset(c, gemSize*gemVertexFractions[j], a+off)
		}
		b.WriteString(svgdoc.Polygon(pts, p.Base))
		b.WriteString(svgdoc.TranslucentPolygon(pts, svgdoc.URL(gemShineID), gemShineOpacity))
		b.WriteString(svgdoc.Circle(c.X-gemDotOff, c.Y-gemDotOff, gemDotSize, p.Shine))

		// Bead midway to the next gem.
		bc := polar(gemRadius, a+step/2)
		b.WriteString(svgdoc.Circle(bc.X, bc.Y, beadSize, p.Light))
		b.WriteString(svgdoc.Circle(bc.X-beadShineOff, bc.Y-beadShineOff, beadShineSize, p.Shine))
	}
	return b.String(), []string{svgdoc.RadialFade(gemShineID)}
}
