package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/talgya/hexmap/internal/render"
	"github.com/talgya/hexmap/internal/world"
)

var flagSculpt bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a preview of a freshly built grid",
	Long: `Build a grid from the configuration and print it as text, one line per
row with the northernmost row first.

Examples:
  hexmap show
  hexmap show --sculpt --config hexmap.yaml`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&flagSculpt, "sculpt", false, "Sculpt terrain from noise before printing")
}

func runShow(cmd *cobra.Command, args []string) error {
	g, err := buildGrid(flagSculpt)
	if err != nil {
		return err
	}
	if err := g.Validate(); err != nil {
		return fmt.Errorf("grid invariants violated: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, render.Preview(g))
	fmt.Fprintln(out)
	printStats(cmd, g)
	return nil
}

func printStats(cmd *cobra.Command, g *world.Grid) {
	s := render.Collect(g)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Grid:       %d x %d (%s cells, %d chunks)\n",
		g.Width(), g.Height(), humanize.Comma(int64(s.Cells)), len(g.Chunks()))
	fmt.Fprintf(out, "Elevation:  %d .. %d\n", s.MinElevation, s.MaxElevation)
	fmt.Fprintf(out, "Underwater: %s\n", humanize.Comma(int64(s.Underwater)))
	fmt.Fprintf(out, "Rivers:     %s cells\n", humanize.Comma(int64(s.RiverCells)))
	fmt.Fprintf(out, "Roads:      %s cells\n", humanize.Comma(int64(s.RoadCells)))
	fmt.Fprintf(out, "Walled:     %s cells\n", humanize.Comma(int64(s.Walled)))
}
