// hexmap builds and edits hexagonal terrain grids from the command line.
//
// Usage:
//
//	hexmap show                  - Build a grid from config and print a preview
//	hexmap edit <script.yaml>    - Play an edit script against a fresh grid
//	hexmap journal [session]     - List journaled sessions or one session's strokes
//
// Global flags:
//
//	--config <path>   - YAML config file (default: $HEXMAP_CONFIG)
//	--log-level <lvl> - Override the configured log level
//	--journal <path>  - Override the configured journal database
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/talgya/hexmap/internal/config"
	"github.com/talgya/hexmap/internal/logging"
	"github.com/talgya/hexmap/internal/world"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagJournal  string

	// Loaded in PersistentPreRunE.
	cfg *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hexmap",
	Short: "Build and edit hexagonal terrain grids",
	Long: `hexmap builds chunked hexagonal terrain grids and edits them with
brush strokes recorded in YAML scripts.

Examples:
  hexmap show --sculpt
  hexmap edit examples/ridge.yaml --preview
  hexmap journal`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", envOrDefault("HEXMAP_CONFIG", ""), "Path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagJournal, "journal", "", "Path to the edit journal database")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(journalCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	if flagConfig == "" {
		c := config.Default()
		cfg = &c
	} else {
		c, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		cfg = c
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagJournal != "" {
		cfg.Journal.Path = flagJournal
	}

	if err := logging.Setup(cfg.Log.Level, cfg.Log.Format); err != nil {
		return err
	}
	if flagConfig != "" {
		slog.Debug("config loaded", "path", flagConfig)
	}
	return nil
}

// buildGrid creates a grid from the loaded config, sculpting it when asked.
// Dirty regions left by sculpting are flushed before returning.
func buildGrid(sculpt bool) (*world.Grid, error) {
	wc, err := cfg.WorldConfig()
	if err != nil {
		return nil, err
	}
	g, err := world.NewGrid(wc)
	if err != nil {
		return nil, err
	}
	if sculpt || cfg.Terrain.Sculpt {
		edit := world.Sculpt(g, cfg.SculptConfig())
		n := g.FlushDirty(nil)
		slog.Info("terrain sculpted", "changed", edit.Changed, "chunks", n)
	}
	return g, nil
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
