package frames

import (
	"strings"

	"github.com/Bollo2014/MapToken/pkg/tones"
)

// simpleRing is the plainest style: a single base-colored band with a
// dark edge on both sides. Three overdrawn discs; the cutout exposes
// everything inside radius 232.
func simpleRing(p tones.Palette) (string, []string) {
	var b strings.Builder
	b.WriteString(disc(248, p.Dark))
	b.WriteString(disc(240, p.Base))
	b.WriteString(disc(234, p.Dark))
	return b.String(), nil
}

// doubleRing draws two nested base/light ring pairs separated by a
// visible vdark gap band. Seven discs from 252 down to 232; the
// innermost disc only guarantees coverage to the cutout edge.
func doubleRing(p tones.Palette) (string, []string) {
	layers := []struct {
		r    float64
		fill string
	}{
		{252, p.VDark},
		{249, p.Base},
		{246, p.Light},
		{243, p.VDark}, // gap band between the pairs
		{240, p.Base},
		{236, p.Light},
		{232, p.VDark},
	}
	var b strings.Builder
	for _, l := range layers {
		b.WriteString(disc(l.r, l.fill))
	}
	return b.String(), nil
}
