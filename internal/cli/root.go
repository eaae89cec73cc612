// Package cli implements the command-line interface for nxcube.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nxcube/nxcube/internal/config"
	"github.com/nxcube/nxcube/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	flagSize    int
	flagDBPath  string
	flagConfig  string
	flagVerbose bool

	logger = log.New(os.Stderr)
)

var rootCmd = &cobra.Command{
	Use:   "nxcube",
	Short: "NxNxN twisty cube toolbox",
	Long: `nxcube models twisty cube puzzles of any size from 2x2x2 up.

Build a cube, scramble it, apply move sequences in layer notation
(outer, inner and wide moves plus whole-cube rotations), inspect the
face layouts, and record or replay move sessions.`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagSize, "size", "n", 0, "Cube size (default from config, 3)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Session database path (default: ~/.nxcube/nxcube.db)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose output")
}

// loadConfig loads the YAML config and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagSize != 0 {
		cfg.Size = flagSize
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	logger.Debug("config loaded", "size", cfg.Size, "db", cfg.DBPath)
	return cfg, nil
}

// openStore opens the session database from config or the default path.
func openStore(cfg config.Config) (*storage.Store, error) {
	path := cfg.DBPath
	if path == "" {
		var err error
		path, err = storage.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	logger.Debug("opening session store", "path", path)
	return storage.Open(path)
}
