package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nxcube/nxcube"
)

var algsCmd = &cobra.Command{
	Use:   "algs [name]",
	Short: "List the algorithm catalogue or show one applied to a cube",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			for _, name := range nxcube.Algorithms() {
				seq, _ := nxcube.Algorithm(name)
				fmt.Printf("%-14s %s\n", name, seq)
			}
			return nil
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cube, err := nxcube.New(cfg.Size)
		if err != nil {
			return err
		}
		if err := cube.ApplyAlgorithm(args[0]); err != nil {
			return err
		}
		seq, _ := nxcube.Algorithm(args[0])
		fmt.Printf("%s: %s\n", args[0], seq)
		fmt.Println(cube.Render())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(algsCmd)
}
