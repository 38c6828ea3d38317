// MapToken — generates decorative circular frame artwork for token
// avatars as self-contained SVG.
//
// Run: go run ./cmd/maptoken/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "maptoken",
	Short: "MapToken - decorative token frame generator",
	Long: `MapToken renders decorative circular frame borders (simple bands,
twisted rope, ornate filigree, riveted metal, faceted gems) as
self-contained SVG, ready to composite over a photo clipped to the
same circle.

All artwork is derived from a single accent color.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
