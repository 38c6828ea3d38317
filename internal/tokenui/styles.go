package tokenui

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/Bollo2014/MapToken/pkg/swatch"
	"github.com/Bollo2014/MapToken/pkg/tones"
)

// c is shorthand for lipgloss.Color.
func c(hex string) color.Color { return lipgloss.Color(hex) }

// Chrome palette — neutral charcoal so the accent tones stand out.
var (
	colorBG     = c("#14120e")
	headerColor = c("#e8d5a8")
	footerColor = c("#666666")
	dimColor    = c("#55503f")
	errColor    = c("#ff6655")

	headerStyle = lipgloss.NewStyle().
			Background(c("#221e14")).
			Foreground(headerColor).
			Bold(true)

	footerStyle = lipgloss.NewStyle().Foreground(footerColor)
	dimStyle    = lipgloss.NewStyle().Foreground(dimColor)
	errStyle    = lipgloss.NewStyle().Foreground(errColor)

	listItemStyle = lipgloss.NewStyle().Foreground(c("#b8ae94"))
	listSelStyle  = lipgloss.NewStyle().Foreground(c("#ffe9b0")).Bold(true)

	paneStyle = lipgloss.NewStyle().
			Background(colorBG).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c("#3a3527")).
			Padding(0, 1)
)

// Swatch grid keys, one per palette tone.
const (
	toneBase swatch.Key = iota
	toneLight
	toneDark
	toneVDark
	toneShine
)

// swatchStyles maps tone keys to background styles for the ring sketch.
func swatchStyles(p tones.Palette) map[swatch.Key]lipgloss.Style {
	return map[swatch.Key]lipgloss.Style{
		toneBase:  lipgloss.NewStyle().Background(c(p.Base)),
		toneLight: lipgloss.NewStyle().Background(c(p.Light)),
		toneDark:  lipgloss.NewStyle().Background(c(p.Dark)),
		toneVDark: lipgloss.NewStyle().Background(c(p.VDark)),
		toneShine: lipgloss.NewStyle().Background(c(p.Shine)),
	}
}
