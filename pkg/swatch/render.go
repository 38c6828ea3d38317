package swatch

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// cellText is what one cell renders as: two spaces, so a styled
// background reads as a roughly square block.
const cellText = "  "

// Render converts the grid into a styled string. The caller provides
// the mapping from Key to lipgloss.Style (typically background colors).
//
// Consecutive cells with the same Key are merged into runs and rendered
// with a single Style.Render() call per run, which keeps the ANSI
// output small. Rows are joined with "\n"; an empty grid returns "".
func (g *Grid) Render(styles map[Key]lipgloss.Style) string {
	if g.W == 0 || g.H == 0 {
		return ""
	}

	lines := make([]string, g.H)

	for y := 0; y < g.H; y++ {
		var sb strings.Builder
		row := g.Cells[y]

		runStart := 0
		runKey := row[0]

		for x := 1; x <= g.W; x++ {
			// Sentinel key at end flushes the last run.
			cur := Key(-2)
			if x < g.W {
				cur = row[x]
			}

			if cur != runKey {
				chunk := strings.Repeat(cellText, x-runStart)
				if s, ok := styles[runKey]; ok {
					sb.WriteString(s.Render(chunk))
				} else {
					sb.WriteString(chunk)
				}
				runStart = x
				runKey = cur
			}
		}

		lines[y] = sb.String()
	}

	return strings.Join(lines, "\n")
}
