package swatch

import "math"

// DrawRing fills the annulus between rInner and rOuter (in cell units,
// centered at cx, cy) with the given key. A cell belongs to the annulus
// when its center distance d satisfies rInner ≤ d ≤ rOuter.
func (g *Grid) DrawRing(cx, cy, rOuter, rInner float64, k Key) {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			d := math.Sqrt(dx*dx + dy*dy)
			if d >= rInner && d <= rOuter {
				g.Cells[y][x] = k
			}
		}
	}
}

// DrawDots paints n markers evenly spaced around the circle of radius r,
// starting at the top (−90°) and proceeding clockwise — the same
// anchoring every frame style uses, so the sketch mirrors the artwork.
func (g *Grid) DrawDots(cx, cy, r float64, n int, k Key) {
	if n <= 0 {
		return
	}
	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		a := -math.Pi/2 + float64(i)*step
		x := int(math.Round(cx + r*math.Cos(a)))
		y := int(math.Round(cy + r*math.Sin(a)))
		g.Set(x, y, k)
	}
}
