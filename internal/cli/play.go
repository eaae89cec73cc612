package cli

import (
	"github.com/spf13/cobra"

	"github.com/nxcube/nxcube/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Manipulate a cube interactively in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return tui.Run(cfg.Size)
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
}
