// Package tokenui is a terminal browser for the frame catalog: pick a
// style, type an accent color, see the derived palette and a sketch of
// the ring, and save the rendered SVG. It owns no engine logic — every
// pixel of real artwork comes from pkg/frames.
package tokenui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"

	"github.com/Bollo2014/MapToken/pkg/frames"
	"github.com/Bollo2014/MapToken/pkg/tones"
)

// Model is the browser state.
type Model struct {
	Width, Height int

	Frames  []frames.Descriptor
	Cursor  int
	Accent  string
	Palette tones.Palette
	OutDir  string

	// Color entry state
	InputMode  bool
	ColorInput textinput.Model

	Status string
	Err    string
}

// NewModel creates the browser with an initial accent color. The accent
// is validated up front so the program never starts with an unusable
// palette, and normalized to lowercase "#rrggbb" so saved filenames
// match the render command's naming.
func NewModel(accent, outDir string) (Model, error) {
	p, err := tones.Derive(accent)
	if err != nil {
		return Model{}, err
	}
	accent = "#" + strings.ToLower(strings.TrimPrefix(strings.TrimSpace(accent), "#"))
	return Model{
		Frames:  frames.List(),
		Accent:  accent,
		Palette: p,
		OutDir:  outDir,
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}
