package frames

import (
	"math"

	"github.com/Bollo2014/MapToken/pkg/svgdoc"
)

// Angular convention: angle 0 points along +x and angles increase
// clockwise because canvas y grows downward. Every style anchors its
// first motif at the canvas top (−π/2) so frames stay visually aligned
// when swapped.
const (
	center = float64(svgdoc.Center)
	top    = -math.Pi / 2
)

// polar returns the canvas point at radius r and angle a from center.
func polar(r, a float64) svgdoc.Pt {
	return svgdoc.Pt{
		X: center + r*math.Cos(a),
		Y: center + r*math.Sin(a),
	}
}

// offset returns the point shifted from p by r at angle a.
func offset(p svgdoc.Pt, r, a float64) svgdoc.Pt {
	return svgdoc.Pt{
		X: p.X + r*math.Cos(a),
		Y: p.Y + r*math.Sin(a),
	}
}

// throughControl returns the quadratic Bézier control point that makes
// the curve from p0 to p1 pass exactly through t at its midpoint:
// B(0.5) = (p0 + p1)/4 + c/2, so c = 2t − (p0 + p1)/2.
func throughControl(p0, p1, t svgdoc.Pt) svgdoc.Pt {
	return svgdoc.Pt{
		X: 2*t.X - (p0.X+p1.X)/2,
		Y: 2*t.Y - (p0.Y+p1.Y)/2,
	}
}

// disc is shorthand for a centered filled circle. Ring bands are built
// by overdrawing discs outer-to-inner: each smaller disc overpaints the
// previous one, leaving the difference visible as an annulus.
func disc(r float64, fill string) string {
	return svgdoc.Circle(center, center, r, fill)
}
