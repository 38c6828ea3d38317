package tokenui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Bollo2014/MapToken/pkg/frames"
	"github.com/Bollo2014/MapToken/pkg/swatch"
)

// Ring sketch geometry, in grid cells. The sketch is schematic: band
// placement and motif count, not the actual vector artwork.
const (
	sketchSize   = 15
	sketchOuter  = 7.0
	sketchBase   = 6.2
	sketchInner  = 4.9
	sketchHole   = 4.2
	sketchMotifR = 5.5
)

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.Width == 0 || m.Height == 0 {
		return tea.NewView("")
	}

	header := headerStyle.Width(m.Width).Render(" MapToken — frame browser ")

	list := m.viewList()
	preview := m.viewPreview()
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		paneStyle.Render(list),
		paneStyle.Render(preview),
	)

	footer := m.viewFooter()

	v := tea.NewView(lipgloss.JoinVertical(lipgloss.Left, header, body, footer))
	v.AltScreen = true
	return v
}

// viewList renders the frame catalog with the cursor row highlighted.
func (m Model) viewList() string {
	var lines []string
	lines = append(lines, dimStyle.Render("FRAMES"))
	for i, d := range m.Frames {
		if i == m.Cursor {
			lines = append(lines, listSelStyle.Render("▸ "+d.Label))
		} else {
			lines = append(lines, listItemStyle.Render("  "+d.Label))
		}
	}
	return strings.Join(lines, "\n")
}

// viewPreview renders the palette swatches and the ring sketch for the
// selected frame.
func (m Model) viewPreview() string {
	styles := swatchStyles(m.Palette)

	var lines []string
	lines = append(lines, dimStyle.Render("ACCENT ")+listSelStyle.Render(m.Accent))

	// One swatch block per tone, in lightness order.
	var bar strings.Builder
	for _, k := range []swatch.Key{toneShine, toneLight, toneBase, toneDark, toneVDark} {
		bar.WriteString(styles[k].Render("    "))
	}
	lines = append(lines, bar.String())
	lines = append(lines, "")

	d := m.Frames[m.Cursor]
	g := swatch.New(sketchSize, sketchSize)
	mid := float64(sketchSize-1) / 2
	g.DrawRing(mid, mid, sketchOuter, sketchBase, toneDark)
	g.DrawRing(mid, mid, sketchBase, sketchInner, toneBase)
	g.DrawRing(mid, mid, sketchInner, sketchHole, toneDark)
	g.DrawDots(mid, mid, sketchMotifR, frames.MotifCount(d.ID), toneShine)
	lines = append(lines, g.Render(styles))

	if m.InputMode {
		lines = append(lines, "", dimStyle.Render("new accent: ")+m.ColorInput.View())
	}

	return strings.Join(lines, "\n")
}

// viewFooter renders the status/help line.
func (m Model) viewFooter() string {
	if m.Err != "" {
		return errStyle.Render(" " + m.Err)
	}
	if m.Status != "" {
		return footerStyle.Render(" " + m.Status)
	}
	sel := m.Frames[m.Cursor]
	return footerStyle.Render(fmt.Sprintf(
		" %s  │  ↑↓ select  [c]olor  [enter] save svg  [q]uit", sel.ID))
}
