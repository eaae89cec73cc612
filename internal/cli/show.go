package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nxcube/nxcube"
)

var showCmd = &cobra.Command{
	Use:   "show [moves...]",
	Short: "Show the cube after applying a move sequence",
	Long: `Build a solved cube, apply the given notation tokens in order, and
print the resulting face layout.

Examples:
  nxcube show R T R' T'
  nxcube --size 4 show rw f2 x'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cube, err := nxcube.New(cfg.Size)
		if err != nil {
			return err
		}
		if len(args) > 0 {
			if err := cube.Apply(strings.Join(args, " ")); err != nil {
				return err
			}
		}
		fmt.Println(cube.Render())
		logger.Debug("state", "solved", cube.IsSolved())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
