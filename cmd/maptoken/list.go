package main

import (
	"fmt"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/Bollo2014/MapToken/internal/config"
	"github.com/Bollo2014/MapToken/pkg/frames"
	"github.com/Bollo2014/MapToken/pkg/tones"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available frame styles",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		accent := cfg.Accent
		if listColor != "" {
			accent = listColor
		}

		p, err := tones.Derive(accent)
		if err != nil {
			return err
		}

		bar := swatchBar(p)
		idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe9b0")).Bold(true)

		fmt.Fprintf(os.Stdout, "palette for %s  %s\n\n", strings.ToLower(accent), bar)
		for _, d := range frames.List() {
			fmt.Fprintf(os.Stdout, "  %s  %s\n", idStyle.Render(fmt.Sprintf("%-15s", d.ID)), d.Label)
		}
		return nil
	},
}

var listColor string

func init() {
	listCmd.Flags().StringVar(&listColor, "color", "", "accent color (#rrggbb), overrides config")
	rootCmd.AddCommand(listCmd)
}

// swatchBar renders the five derived tones as colored blocks.
func swatchBar(p tones.Palette) string {
	var b strings.Builder
	for _, hex := range []string{p.Shine, p.Light, p.Base, p.Dark, p.VDark} {
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("   "))
	}
	return b.String()
}
