package frames

import (
	"math"
	"strings"

	"github.com/Bollo2014/MapToken/pkg/svgdoc"
	"github.com/Bollo2014/MapToken/pkg/tones"
)

const (
	ornatePoints = 8
	// Petal feet sit ±0.18 rad around the cardinal angle at radius 238;
	// the tip reaches radius 248 on the exact angle.
	petalSpread     = 0.18
	petalFootRadius = 238
	petalTipRadius  = 248
	petalTipDot     = 3

	// Connecting vines span the 22°–44° offset sub-range of each 45°
	// sector at radius 241, bulging 4 units outward at the midpoint.
	vineStartOff = 22 * math.Pi / 180
	vineEndOff   = 44 * math.Pi / 180
	vineRadius   = 241
	vineBulge    = 4
	vineWidth    = 1.5
	petalWidth   = 2.5
)

// ornateFantasy draws an 8-fold symmetric filigree: a petal at each
// cardinal point with a filled tip dot, and a thin vine arc bridging
// consecutive petals. Layered over a base band with dark edges.
func ornateFantasy(p tones.Palette) (string, []string) {
	var b strings.Builder
	b.WriteString(disc(250, p.VDark))
	b.WriteString(disc(244, p.Base))
	b.WriteString(disc(237, p.Dark))
	b.WriteString(disc(233, p.VDark))

	step := 2 * math.Pi / ornatePoints
	for i := 0; i < ornatePoints; i++ {
		a := top + float64(i)*step

		// Petal: curve from one foot through the tip to the mirrored
		// foot, solved so the stroke passes exactly through the tip.
		foot0 := polar(petalFootRadius, a-petalSpread)
		foot1 := polar(petalFootRadius, a+petalSpread)
		tip := polar(petalTipRadius, a)
		ctrl := throughControl(foot0, foot1, tip)
		b.WriteString(svgdoc.QuadStroke(foot0, ctrl, foot1, p.Light, petalWidth))
		b.WriteString(svgdoc.Circle(tip.X, tip.Y, petalTipDot, p.Shine))

		// Vine between this petal and the next.
		v0 := polar(vineRadius, a+vineStartOff)
		v1 := polar(vineRadius, a+vineEndOff)
		mid := polar(vineRadius+vineBulge, a+(vineStartOff+vineEndOff)/2)
		b.WriteString(svgdoc.QuadStroke(v0, throughControl(v0, v1, mid), v1, p.Light, vineWidth))
	}
	return b.String(), nil
}
