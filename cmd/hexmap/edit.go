package main

import (
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/talgya/hexmap/internal/editor"
	"github.com/talgya/hexmap/internal/persistence"
	"github.com/talgya/hexmap/internal/render"
	"github.com/talgya/hexmap/internal/world"
)

var (
	flagEditSculpt  bool
	flagEditPreview bool
)

var editCmd = &cobra.Command{
	Use:   "edit <script.yaml>",
	Short: "Play an edit script against a fresh grid",
	Long: `Build a grid, play every stroke of the script through the editor, then
rebuild the dirty chunks and check the grid invariants. When a journal is
configured each stroke is recorded under a new session.

Examples:
  hexmap edit examples/ridge.yaml
  hexmap edit examples/ridge.yaml --sculpt --preview --journal edits.db`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().BoolVar(&flagEditSculpt, "sculpt", false, "Sculpt terrain from noise before editing")
	editCmd.Flags().BoolVar(&flagEditPreview, "preview", false, "Print the edited grid")
}

func runEdit(cmd *cobra.Command, args []string) error {
	scriptPath := args[0]
	script, err := editor.LoadScript(scriptPath)
	if err != nil {
		return err
	}

	g, err := buildGrid(flagEditSculpt)
	if err != nil {
		return err
	}

	results, err := script.Run(editor.New(g))
	if err != nil {
		return err
	}

	cells := 0
	rebuilt := g.FlushDirty(func(c *world.Chunk) {
		cells += len(c.Cells())
		slog.Debug("chunk rebuilt", "chunk", c.Index(), "cells", len(c.Cells()))
	})

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-3s  %-16s  %-9s  %-5s  %-7s  %s\n", "#", "Stroke", "Start", "Brush", "Changed", "Chunks")
	fmt.Fprintf(out, "  %-3s  %-16s  %-9s  %-5s  %-7s  %s\n", "-", "------", "-----", "-----", "-------", "------")
	for _, r := range results {
		fmt.Fprintf(out, "  %-3d  %-16s  %-9s  %-5d  %-7t  %d\n",
			r.Index, r.Name, fmt.Sprintf("%d,%d", r.Start.Col, r.Start.Row), r.Brush, r.Changed, r.Regions)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Rebuilt %s chunks (%s cells) after %s strokes\n",
		humanize.Comma(int64(rebuilt)), humanize.Comma(int64(cells)), humanize.Comma(int64(len(results))))

	if cfg.Journal.Path != "" {
		if err := journalResults(scriptPath, g, results); err != nil {
			return err
		}
	}

	if err := g.Validate(); err != nil {
		return fmt.Errorf("grid invariants violated: %w", err)
	}

	if flagEditPreview {
		fmt.Fprintln(out)
		fmt.Fprintln(out, render.Preview(g))
	}
	return nil
}

func journalResults(scriptPath string, g *world.Grid, results []editor.StrokeResult) error {
	j, err := persistence.Open(cfg.Journal.Path)
	if err != nil {
		return err
	}
	defer j.Close()

	session, err := j.BeginSession(scriptPath, g, cfg.Grid.Seed)
	if err != nil {
		return err
	}
	records := make([]persistence.StrokeRecord, len(results))
	for i, r := range results {
		records[i] = persistence.StrokeRecord{
			Index:   r.Index,
			Name:    r.Name,
			Col:     r.Start.Col,
			Row:     r.Start.Row,
			Brush:   r.Brush,
			Cells:   r.Cells,
			Changed: r.Changed,
			Regions: r.Regions,
		}
	}
	if err := j.RecordStrokes(session, records); err != nil {
		return fmt.Errorf("record strokes: %w", err)
	}
	slog.Info("strokes journaled", "session", session, "strokes", len(results), "path", cfg.Journal.Path)
	return nil
}
