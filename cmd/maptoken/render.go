package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Bollo2014/MapToken/internal/config"
	"github.com/Bollo2014/MapToken/pkg/frames"
)

var (
	renderColor string
	renderOut   string
	renderAll   bool
)

var renderCmd = &cobra.Command{
	Use:   "render [frame-id...]",
	Short: "Render frame styles to SVG files",
	Long: `Render writes one SVG file per requested frame id, named
<frame-id>-<rrggbb>.svg. With --all, every catalog entry is rendered.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		accent := cfg.Accent
		if renderColor != "" {
			accent = renderColor
		}
		outDir := cfg.OutDir
		if renderOut != "" {
			outDir = renderOut
		}

		ids := args
		if renderAll {
			for _, d := range frames.List() {
				ids = append(ids, d.ID)
			}
		}
		if len(ids) == 0 {
			return fmt.Errorf("no frame ids given (try --all or `maptoken list`)")
		}

		for _, id := range ids {
			doc, err := frames.Render(id, accent)
			if err != nil {
				return err
			}
			name := fmt.Sprintf("%s-%s.svg", id, strings.ToLower(strings.TrimPrefix(accent, "#")))
			path := filepath.Join(outDir, name)
			if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderColor, "color", "", "accent color (#rrggbb), overrides config")
	renderCmd.Flags().StringVar(&renderOut, "out", "", "output directory, overrides config")
	renderCmd.Flags().BoolVar(&renderAll, "all", false, "render every frame style")
	rootCmd.AddCommand(renderCmd)
}
