package frames

import (
	"math"
	"strings"

	"github.com/Bollo2014/MapToken/pkg/svgdoc"
	"github.com/Bollo2014/MapToken/pkg/tones"
)

const (
	ropeSegments = 36
	// Each strand stroke covers 55% of its angular segment; the gap to
	// the next strand reads as the rope's groove.
	ropeSweep = 0.55
	// Strand control points twist alternately ±0.08 rad to interleave.
	ropeTwistRad = 0.08

	ropeRadius    = 242
	ropeBowRadius = 234
	ropeWidth     = 7
)

// ropeTwist lays 36 curved strand strokes around the ring, alternating
// base/dark by index, each bowed inward through a twisted control
// point. Strands sit on a dark backing band so the grooves between them
// stay opaque.
func ropeTwist(p tones.Palette) (string, []string) {
	var b strings.Builder
	b.WriteString(disc(248, p.Dark))
	b.WriteString(disc(236, p.VDark))

	step := 2 * math.Pi / ropeSegments
	for i := 0; i < ropeSegments; i++ {
		a0 := top + float64(i)*step
		a1 := a0 + ropeSweep*step

		twist := ropeTwistRad
		color := p.Base
		if i%2 == 1 {
			twist = -ropeTwistRad
			color = p.Dark
		}

		start := polar(ropeRadius, a0)
		end := polar(ropeRadius, a1)
		ctrl := polar(ropeBowRadius, a0+ropeSweep*step/2+twist)
		b.WriteString(svgdoc.QuadStroke(start, ctrl, end, color, ropeWidth))
	}
	return b.String(), nil
}
