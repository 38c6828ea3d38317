// Package frames generates the decorative circular token-frame artwork.
//
// Each style is a pure composer: it derives a tone palette from the
// accent color, lays repeated motifs out around the ring with
// closed-form trigonometry, and wraps the layered scene in the shared
// circular cutout so a photo beneath shows through. Rendering the same
// id and accent twice yields byte-identical SVG.
package frames

import (
	"errors"
	"fmt"

	"github.com/Bollo2014/MapToken/pkg/svgdoc"
	"github.com/Bollo2014/MapToken/pkg/tones"
)

// ErrFrameNotFound reports a frame id that is not in the catalog.
var ErrFrameNotFound = errors.New("frame not found")

// Descriptor identifies one frame style for listing and selection.
// IDs are stable kebab-case strings; Label is the display name.
type Descriptor struct {
	ID    string
	Label string
}

// frame couples a descriptor with its composer. A composer returns the
// scene content (inside the cutout group) plus any gradient defs it
// needs, and the number of repeated motifs it places around the ring.
type frame struct {
	desc    Descriptor
	motifs  int
	compose func(p tones.Palette) (scene string, defs []string)
}

// catalog is the fixed, ordered frame set. Order is display order;
// new styles are appended, existing entries never move.
var catalog = []frame{
	{Descriptor{"simple-ring", "Simple Ring"}, 0, simpleRing},
	{Descriptor{"double-ring", "Double Ring"}, 0, doubleRing},
	{Descriptor{"rope-twist", "Rope Twist"}, ropeSegments, ropeTwist},
	{Descriptor{"ornate-fantasy", "Ornate Fantasy"}, ornatePoints, ornateFantasy},
	{Descriptor{"riveted-metal", "Riveted Metal"}, rivetCount, rivetedMetal},
	{Descriptor{"gem-border", "Gem Border"}, gemCount, gemBorder},
}

// List returns the frame descriptors in display order.
func List() []Descriptor {
	out := make([]Descriptor, len(catalog))
	for i, f := range catalog {
		out[i] = f.desc
	}
	return out
}

// MotifCount reports how many repeated motifs a style places around the
// ring (0 for plain band styles and for unknown ids). Used by preview
// surfaces to sketch motif placement without parsing the SVG.
func MotifCount(id string) int {
	for _, f := range catalog {
		if f.desc.ID == id {
			return f.motifs
		}
	}
	return 0
}

// Render generates the frame with the given id for the accent color and
// returns it as a self-contained SVG document. It fails with
// ErrFrameNotFound for unknown ids and tones.ErrInvalidColor for
// malformed accents; no fallback frame or partial output is produced.
func Render(id, accent string) (string, error) {
	for _, f := range catalog {
		if f.desc.ID != id {
			continue
		}
		p, err := tones.Derive(accent)
		if err != nil {
			return "", err
		}
		scene, defs := f.compose(p)
		return svgdoc.WrapWithHole(scene, defs...), nil
	}
	return "", fmt.Errorf("%w: %q", ErrFrameNotFound, id)
}
