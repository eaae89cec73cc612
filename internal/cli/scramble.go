package cli

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nxcube/nxcube"
)

var (
	flagScrambleMoves int
	flagScrambleSeed  int64
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Scramble a cube and print the sequence",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cube, err := nxcube.New(cfg.Size)
		if err != nil {
			return err
		}

		n := flagScrambleMoves
		if n == 0 {
			n = cfg.ScrambleMoves
		}
		var rng *rand.Rand
		if flagScrambleSeed != 0 {
			rng = rand.New(rand.NewSource(flagScrambleSeed))
		}

		tokens, err := cube.Scramble(n, rng)
		if err != nil {
			return err
		}
		fmt.Println("scramble:", strings.Join(tokens, " "))
		fmt.Println(cube.Render())
		return nil
	},
}

func init() {
	scrambleCmd.Flags().IntVar(&flagScrambleMoves, "moves", 0, "Scramble length (default from config, 20)")
	scrambleCmd.Flags().Int64Var(&flagScrambleSeed, "seed", 0, "RNG seed for a reproducible scramble")
	rootCmd.AddCommand(scrambleCmd)
}
