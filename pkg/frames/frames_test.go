package frames

import (
	"encoding/xml"
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Bollo2014/MapToken/pkg/tones"
)

// element is a flattened scene element for structural assertions.
type element struct {
	name  string
	attrs map[string]string
}

func (e element) attr(key string) string { return e.attrs[key] }

func (e element) floatAttr(t *testing.T, key string) float64 {
	t.Helper()
	v, err := strconv.ParseFloat(e.attrs[key], 64)
	if err != nil {
		t.Fatalf("<%s %s=%q>: not a number: %v", e.name, key, e.attrs[key], err)
	}
	return v
}

// sceneElements renders a frame and returns the drawable elements
// inside the masked scene group, in paint order. Elements under <defs>
// are excluded. Fails the test if anything paintable sits outside the
// masked group — that would leak into the cutout.
func sceneElements(t *testing.T, id, accent string) []element {
	t.Helper()
	doc, err := Render(id, accent)
	if err != nil {
		t.Fatalf("Render(%q, %q): %v", id, accent, err)
	}

	dec := xml.NewDecoder(strings.NewReader(doc))
	var out []element
	inDefs := false
	inScene := false
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch el := tok.(type) {
		case xml.StartElement:
			attrs := make(map[string]string, len(el.Attr))
			for _, a := range el.Attr {
				attrs[a.Name.Local] = a.Value
			}
			switch el.Name.Local {
			case "defs":
				inDefs = true
			case "g":
				if attrs["mask"] == "url(#ring-hole)" {
					inScene = true
				}
			case "circle", "path", "polygon", "rect":
				if inDefs {
					continue
				}
				if !inScene {
					t.Fatalf("<%s> painted outside the masked group", el.Name.Local)
				}
				out = append(out, element{name: el.Name.Local, attrs: attrs})
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "defs":
				inDefs = false
			case "g":
				inScene = false
			}
		}
	}
	return out
}

func palette(t *testing.T, accent string) tones.Palette {
	t.Helper()
	p, err := tones.Derive(accent)
	if err != nil {
		t.Fatalf("Derive(%q): %v", accent, err)
	}
	return p
}

func lightnessOf(t *testing.T, hex string) int {
	t.Helper()
	_, _, l, err := tones.HSL(hex)
	if err != nil {
		t.Fatalf("HSL(%q): %v", hex, err)
	}
	return l
}

func TestListStableIdentifiers(t *testing.T) {
	want := []Descriptor{
		{"simple-ring", "Simple Ring"},
		{"double-ring", "Double Ring"},
		{"rope-twist", "Rope Twist"},
		{"ornate-fantasy", "Ornate Fantasy"},
		{"riveted-metal", "Riveted Metal"},
		{"gem-border", "Gem Border"},
	}
	if diff := cmp.Diff(want, List()); diff != "" {
		t.Fatalf("catalog mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderAllCatalogEntries(t *testing.T) {
	for _, d := range List() {
		doc, err := Render(d.ID, "#C0922A")
		if err != nil {
			t.Errorf("Render(%q): %v", d.ID, err)
			continue
		}
		if !strings.Contains(doc, `mask="url(#ring-hole)"`) {
			t.Errorf("%s: scene not wrapped in the cutout mask", d.ID)
		}
		if !strings.Contains(doc, `viewBox="0 0 512 512"`) {
			t.Errorf("%s: not the fixed 512×512 canvas", d.ID)
		}
	}
}

func TestRenderUnknownFrame(t *testing.T) {
	doc, err := Render("octagon-ring", "#C0922A")
	if !errors.Is(err, ErrFrameNotFound) {
		t.Fatalf("err = %v, want ErrFrameNotFound", err)
	}
	if doc != "" {
		t.Fatal("unknown frame must not produce partial output")
	}
}

func TestRenderInvalidColor(t *testing.T) {
	doc, err := Render("simple-ring", "#12345")
	if !errors.Is(err, tones.ErrInvalidColor) {
		t.Fatalf("err = %v, want tones.ErrInvalidColor", err)
	}
	if doc != "" {
		t.Fatal("invalid color must not produce partial output")
	}
}

func TestRenderDeterministic(t *testing.T) {
	for _, d := range List() {
		a, err := Render(d.ID, "#2A6FC0")
		if err != nil {
			t.Fatalf("Render(%q): %v", d.ID, err)
		}
		b, err := Render(d.ID, "#2A6FC0")
		if err != nil {
			t.Fatalf("Render(%q): %v", d.ID, err)
		}
		if a != b {
			t.Errorf("%s: repeated render is not byte-identical", d.ID)
		}
	}
}

func TestMotifCount(t *testing.T) {
	tests := []struct {
		id   string
		want int
	}{
		{"simple-ring", 0},
		{"double-ring", 0},
		{"rope-twist", 36},
		{"ornate-fantasy", 8},
		{"riveted-metal", 24},
		{"gem-border", 8},
		{"no-such-frame", 0},
	}
	for _, tc := range tests {
		if got := MotifCount(tc.id); got != tc.want {
			t.Errorf("MotifCount(%q) = %d, want %d", tc.id, got, tc.want)
		}
	}
}

func TestSimpleRingLayering(t *testing.T) {
	p := palette(t, "#FF0000")
	els := sceneElements(t, "simple-ring", "#FF0000")
	if len(els) != 3 {
		t.Fatalf("want 3 discs, got %d elements", len(els))
	}

	wantRadii := []float64{248, 240, 234}
	wantFills := []string{p.Dark, p.Base, p.Dark}
	for i, el := range els {
		if el.name != "circle" {
			t.Fatalf("element %d is <%s>, want circle", i, el.name)
		}
		if r := el.floatAttr(t, "r"); r != wantRadii[i] {
			t.Errorf("disc %d radius = %v, want %v", i, r, wantRadii[i])
		}
		if el.attr("fill") != wantFills[i] {
			t.Errorf("disc %d fill = %s, want %s", i, el.attr("fill"), wantFills[i])
		}
	}

	// The outer band must paint darker than the band at radius 240.
	if lightnessOf(t, p.Dark) >= lightnessOf(t, p.Base) {
		t.Errorf("outer ring %s is not darker than inner band %s", p.Dark, p.Base)
	}
}

func TestDoubleRingDescendingDiscs(t *testing.T) {
	els := sceneElements(t, "double-ring", "#C0922A")
	if len(els) != 7 {
		t.Fatalf("want 7 discs, got %d elements", len(els))
	}
	prev := 253.0
	for i, el := range els {
		r := el.floatAttr(t, "r")
		if r >= prev {
			t.Fatalf("disc %d radius %v does not descend from %v", i, r, prev)
		}
		prev = r
	}
	if first, last := els[0].floatAttr(t, "r"), els[6].floatAttr(t, "r"); first != 252 || last != 232 {
		t.Errorf("discs span %v..%v, want 252..232", first, last)
	}
}

func TestRopeTwistStrands(t *testing.T) {
	p := palette(t, "#C0922A")
	els := sceneElements(t, "rope-twist", "#C0922A")

	var strands []element
	for _, el := range els {
		if el.name == "path" {
			strands = append(strands, el)
		}
	}
	if len(strands) != 36 {
		t.Fatalf("want 36 strand strokes, got %d", len(strands))
	}

	// First strand starts at the canvas top (angle −90°, radius 242).
	if d := strands[0].attr("d"); !strings.HasPrefix(d, "M256 14 ") {
		t.Errorf("first strand starts at %q, want the top anchor M256 14", d)
	}

	// Colors alternate base/dark by index.
	for i, s := range strands {
		want := p.Base
		if i%2 == 1 {
			want = p.Dark
		}
		if s.attr("stroke") != want {
			t.Errorf("strand %d stroke = %s, want %s", i, s.attr("stroke"), want)
		}
	}
}

func TestOrnateFantasyStructure(t *testing.T) {
	p := palette(t, "#3CB371")
	els := sceneElements(t, "ornate-fantasy", "#3CB371")

	var petalsAndVines, tipDots int
	for _, el := range els {
		switch el.name {
		case "path":
			petalsAndVines++
		case "circle":
			if el.attr("fill") == p.Shine && el.floatAttr(t, "r") == 3 {
				tipDots++
			}
		}
	}
	if petalsAndVines != 16 {
		t.Errorf("want 8 petals + 8 vines = 16 strokes, got %d", petalsAndVines)
	}
	if tipDots != 8 {
		t.Errorf("want 8 petal tip dots, got %d", tipDots)
	}
}

func TestRivetedMetalStructure(t *testing.T) {
	p := palette(t, "#7B2D8E")
	els := sceneElements(t, "riveted-metal", "#7B2D8E")

	var texture []element
	var rivets, highlights int
	for _, el := range els {
		if el.name != "circle" {
			t.Fatalf("unexpected <%s> in riveted-metal", el.name)
		}
		switch {
		case el.attr("fill") == "none":
			texture = append(texture, el)
		case el.attr("fill") == p.VDark && el.floatAttr(t, "r") == 5:
			rivets++
		case el.attr("fill") == p.Shine:
			highlights++
		}
	}
	if rivets != 24 || highlights != 24 {
		t.Errorf("want 24 rivets + 24 highlights, got %d/%d", rivets, highlights)
	}
	if len(texture) != 5 {
		t.Fatalf("want 5 brushed-texture circles, got %d", len(texture))
	}
	wantOpacity := []string{"0.12", "0.16", "0.2", "0.24", "0.28"}
	for i, el := range texture {
		if got := el.attr("stroke-opacity"); got != wantOpacity[i] {
			t.Errorf("texture circle %d opacity = %s, want %s", i, got, wantOpacity[i])
		}
	}
}

func TestGemBorderStructure(t *testing.T) {
	p := palette(t, "#2A6FC0")
	els := sceneElements(t, "gem-border", "#2A6FC0")

	var gems, overlays, beads int
	var firstGem *element
	for i := range els {
		el := els[i]
		switch el.name {
		case "polygon":
			switch el.attr("fill") {
			case p.Base:
				if firstGem == nil {
					firstGem = &els[i]
				}
				gems++
			case "url(#gem-shine)":
				overlays++
				if el.attr("opacity") != "0.4" {
					t.Errorf("gem overlay opacity = %s, want 0.4", el.attr("opacity"))
				}
			}
		case "circle":
			if el.attr("fill") == p.Light && el.floatAttr(t, "r") == 3 {
				beads++
			}
		}
	}
	if gems != 8 {
		t.Errorf("want exactly 8 gem facets, got %d", gems)
	}
	if overlays != 8 {
		t.Errorf("want 8 highlight overlays, got %d", overlays)
	}
	if beads != 8 {
		t.Errorf("want 8 beads between the gems, got %d", beads)
	}

	// First gem is centered at the canvas top: its outward vertex sits
	// at (256, 242+0.4·13 above center) = (256, 8.8).
	if firstGem == nil {
		t.Fatal("no gem facets found")
	}
	if pts := firstGem.attr("points"); !strings.HasPrefix(pts, "256,8.8 ") {
		t.Errorf("first gem points = %q, want leading vertex 256,8.8 (top anchor)", pts)
	}

	// The highlight gradient must be defined in-document.
	doc, err := Render("gem-border", "#2A6FC0")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(doc, `<radialGradient id="gem-shine"`) {
		t.Error("gem highlight gradient def missing")
	}
}

// TestHoleStaysClear verifies no motif geometry intrudes into the
// cutout: every non-centered painted circle keeps its whole area
// outside radius 232, and centered discs always reach past it (they
// exist only to build bands and are erased inside by the mask).
func TestHoleStaysClear(t *testing.T) {
	for _, d := range List() {
		for _, el := range sceneElements(t, d.ID, "#C0922A") {
			if el.name != "circle" {
				continue
			}
			cx := el.floatAttr(t, "cx")
			cy := el.floatAttr(t, "cy")
			r := el.floatAttr(t, "r")
			dx, dy := cx-256, cy-256
			dist := dx*dx + dy*dy
			if dist == 0 {
				if r < 232 {
					t.Errorf("%s: centered disc r=%v stops short of the cutout edge", d.ID, r)
				}
				continue
			}
			// Nearest approach of the motif circle to canvas center.
			if nearest := math.Sqrt(dist) - r; nearest < 232 {
				t.Errorf("%s: motif circle at (%v,%v) r=%v reaches inside the cutout", d.ID, cx, cy, r)
			}
		}
	}
}

func BenchmarkRenderGemBorder(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Render("gem-border", "#2A6FC0"); err != nil {
			b.Fatal(err)
		}
	}
}
