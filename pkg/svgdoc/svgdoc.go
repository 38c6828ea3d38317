// Package svgdoc assembles the self-contained SVG documents the frame
// composers emit: a fixed 512×512 canvas whose inner circle is cut out
// by a luminance mask so a photo layered beneath shows through.
//
// Elements are serialized directly as text. Coordinates are formatted
// to a fixed precision so that identical scenes produce byte-identical
// documents.
package svgdoc

import (
	"strconv"
	"strings"
)

// Logical canvas geometry. Every frame draws on a 512-unit square
// centered at (256,256); the cutout exposes everything inside radius
// 232, leaving the 24-unit ring out to radius 256 for artwork.
const (
	Size       = 512
	Center     = 256
	HoleRadius = 232
)

// maskID names the shared cutout mask inside each document.
const maskID = "ring-hole"

// Pt is a point on the logical canvas. Y grows downward.
type Pt struct {
	X, Y float64
}

// Num formats a canvas coordinate with at most two decimals, trimming
// trailing zeros. The fixed precision keeps output deterministic.
func Num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// Circle emits a filled circle.
func Circle(cx, cy, r float64, fill string) string {
	var b strings.Builder
	b.WriteString(`<circle cx="`)
	b.WriteString(Num(cx))
	b.WriteString(`" cy="`)
	b.WriteString(Num(cy))
	b.WriteString(`" r="`)
	b.WriteString(Num(r))
	b.WriteString(`" fill="`)
	b.WriteString(fill)
	b.WriteString(`"/>`)
	return b.String()
}

// StrokedCircle emits an unfilled circle outline with the given stroke
// width and opacity.
func StrokedCircle(cx, cy, r float64, stroke string, width, opacity float64) string {
	var b strings.Builder
	b.WriteString(`<circle cx="`)
	b.WriteString(Num(cx))
	b.WriteString(`" cy="`)
	b.WriteString(Num(cy))
	b.WriteString(`" r="`)
	b.WriteString(Num(r))
	b.WriteString(`" fill="none" stroke="`)
	b.WriteString(stroke)
	b.WriteString(`" stroke-width="`)
	b.WriteString(Num(width))
	b.WriteString(`" stroke-opacity="`)
	b.WriteString(Num(opacity))
	b.WriteString(`"/>`)
	return b.String()
}

// QuadStroke emits an open quadratic Bézier stroke from p0 through
// control point c to p1, with round caps.
func QuadStroke(p0, c, p1 Pt, stroke string, width float64) string {
	var b strings.Builder
	b.WriteString(`<path d="M`)
	b.WriteString(Num(p0.X))
	b.WriteString(" ")
	b.WriteString(Num(p0.Y))
	b.WriteString(" Q")
	b.WriteString(Num(c.X))
	b.WriteString(" ")
	b.WriteString(Num(c.Y))
	b.WriteString(" ")
	b.WriteString(Num(p1.X))
	b.WriteString(" ")
	b.WriteString(Num(p1.Y))
	b.WriteString(`" fill="none" stroke="`)
	b.WriteString(stroke)
	b.WriteString(`" stroke-width="`)
	b.WriteString(Num(width))
	b.WriteString(`" stroke-linecap="round"/>`)
	return b.String()
}

// Polygon emits a filled closed polygon.
func Polygon(pts []Pt, fill string) string {
	return polygon(pts, fill, 0)
}

// TranslucentPolygon emits a filled polygon with an opacity attribute.
// Used for gradient overlays on top of an opaque base shape.
func TranslucentPolygon(pts []Pt, fill string, opacity float64) string {
	return polygon(pts, fill, opacity)
}

func polygon(pts []Pt, fill string, opacity float64) string {
	var b strings.Builder
	b.WriteString(`<polygon points="`)
	for i, p := range pts {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(Num(p.X))
		b.WriteString(",")
		b.WriteString(Num(p.Y))
	}
	b.WriteString(`" fill="`)
	b.WriteString(fill)
	b.WriteString(`"`)
	if opacity > 0 {
		b.WriteString(` opacity="`)
		b.WriteString(Num(opacity))
		b.WriteString(`"`)
	}
	b.WriteString("/>")
	return b.String()
}

// RadialFade emits a radial gradient definition fading white to fully
// transparent, centered at 35%/35% of the target's bounding box with
// 65% extent. Referenced as fill="url(#id)".
func RadialFade(id string) string {
	var b strings.Builder
	b.WriteString(`<radialGradient id="`)
	b.WriteString(id)
	b.WriteString(`" cx="35%" cy="35%" r="65%">`)
	b.WriteString(`<stop offset="0%" stop-color="#ffffff" stop-opacity="1"/>`)
	b.WriteString(`<stop offset="100%" stop-color="#ffffff" stop-opacity="0"/>`)
	b.WriteString(`</radialGradient>`)
	return b.String()
}

// URL returns the fill reference for a definition id.
func URL(id string) string {
	return "url(#" + id + ")"
}

// WrapWithHole wraps scene content in the fixed 512×512 document with
// the circular cutout applied. The hole is a real luminance mask (white
// canvas rect minus a black circle), not a transparent-colored shape:
// source-over compositing never erases, so only a mask guarantees the
// center stays see-through whatever the scene painted there.
//
// Extra defs (gradients) are placed next to the mask so the document
// stays free of external references.
func WrapWithHole(scene string, defs ...string) string {
	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" width="512" height="512" viewBox="0 0 512 512">`)
	b.WriteString("<defs>")
	b.WriteString(`<mask id="` + maskID + `">`)
	b.WriteString(`<rect width="512" height="512" fill="#ffffff"/>`)
	b.WriteString(`<circle cx="256" cy="256" r="232" fill="#000000"/>`)
	b.WriteString(`</mask>`)
	for _, d := range defs {
		b.WriteString(d)
	}
	b.WriteString("</defs>")
	b.WriteString(`<g mask="` + URL(maskID) + `">`)
	b.WriteString(scene)
	b.WriteString("</g></svg>")
	return b.String()
}
