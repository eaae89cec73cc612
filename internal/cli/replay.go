package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nxcube/nxcube"
)

var replayCmd = &cobra.Command{
	Use:   "replay <session-id>",
	Short: "Replay a recorded session and show the final state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		sess, err := store.Session(args[0])
		if err != nil {
			return err
		}
		moves, err := store.Moves(sess.ID)
		if err != nil {
			return err
		}

		cube, err := nxcube.New(sess.CubeSize)
		if err != nil {
			return err
		}
		if sess.Scramble != "" {
			if err := cube.Apply(sess.Scramble); err != nil {
				return err
			}
		}
		if len(moves) > 0 {
			if err := cube.Apply(strings.Join(moves, " ")); err != nil {
				return err
			}
		}

		fmt.Printf("session %s: size %d, %d moves\n", sess.ID, sess.CubeSize, len(moves))
		fmt.Println(cube.Render())
		fmt.Println("solved:", cube.IsSolved())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
}
