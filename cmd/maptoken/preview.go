package main

import (
	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/Bollo2014/MapToken/internal/config"
	"github.com/Bollo2014/MapToken/internal/tokenui"
)

var previewColor string

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Browse frames interactively in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		accent := cfg.Accent
		if previewColor != "" {
			accent = previewColor
		}

		m, err := tokenui.NewModel(accent, cfg.OutDir)
		if err != nil {
			return err
		}
		p := tea.NewProgram(m)
		_, err = p.Run()
		return err
	},
}

func init() {
	previewCmd.Flags().StringVar(&previewColor, "color", "", "accent color (#rrggbb), overrides config")
	rootCmd.AddCommand(previewCmd)
}
