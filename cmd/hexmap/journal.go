package main

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/talgya/hexmap/internal/persistence"
)

var journalCmd = &cobra.Command{
	Use:   "journal [session]",
	Short: "List journaled edit sessions",
	Long: `Without arguments, list every journaled session, newest first.
With a session id, list the strokes recorded for it.

Examples:
  hexmap journal --journal edits.db
  hexmap journal 6f1c0e9a-3b1d-4c55-a0f8-2f4f3e7f8b21`,
	Args: cobra.MaximumNArgs(1),
	RunE: runJournal,
}

func runJournal(cmd *cobra.Command, args []string) error {
	if cfg.Journal.Path == "" {
		return errors.New("no journal configured: set journal.path or pass --journal")
	}
	j, err := persistence.Open(cfg.Journal.Path)
	if err != nil {
		return err
	}
	defer j.Close()

	if len(args) == 1 {
		return printStrokes(cmd, j, args[0])
	}

	sessions, err := j.Sessions()
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}
	out := cmd.OutOrStdout()
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-36s  %-14s  %-9s  %-7s  %s\n", "Session", "When", "Grid", "Strokes", "Script")
	fmt.Fprintf(out, "  %-36s  %-14s  %-9s  %-7s  %s\n", "-------", "----", "----", "-------", "------")
	for _, s := range sessions {
		fmt.Fprintf(out, "  %-36s  %-14s  %-9s  %-7s  %s\n",
			s.ID, humanize.Time(s.Created()), fmt.Sprintf("%dx%d", s.Width, s.Height),
			humanize.Comma(int64(s.Strokes)), s.Script)
	}
	return nil
}

func printStrokes(cmd *cobra.Command, j *persistence.Journal, id string) error {
	s, err := j.Session(id)
	if err != nil {
		return err
	}
	strokes, err := j.Strokes(id)
	if err != nil {
		return fmt.Errorf("list strokes: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Session %s - %s (%dx%d, seed %d, %s)\n\n",
		s.ID, s.Script, s.Width, s.Height, s.Seed, humanize.Time(s.Created()))
	fmt.Fprintf(out, "  %-3s  %-16s  %-9s  %-5s  %-5s  %-7s  %s\n", "#", "Stroke", "Start", "Brush", "Cells", "Changed", "Chunks")
	fmt.Fprintf(out, "  %-3s  %-16s  %-9s  %-5s  %-5s  %-7s  %s\n", "-", "------", "-----", "-----", "-----", "-------", "------")
	for _, r := range strokes {
		fmt.Fprintf(out, "  %-3d  %-16s  %-9s  %-5d  %-5d  %-7t  %d\n",
			r.Index, r.Name, fmt.Sprintf("%d,%d", r.Col, r.Row), r.Brush, r.Cells, r.Changed, r.Regions)
	}
	return nil
}
