package cli

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nxcube/nxcube"
)

var flagRecordScramble int

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a move session from stdin",
	Long: `Start a new session, optionally scrambled, and read notation tokens
from stdin. Every applied move is stored; invalid tokens are reported
and skipped. End the session with "done" or EOF.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cube, err := nxcube.New(cfg.Size)
		if err != nil {
			return err
		}

		var scramble string
		if flagRecordScramble > 0 {
			tokens, err := cube.Scramble(flagRecordScramble, rand.New(rand.NewSource(rand.Int63())))
			if err != nil {
				return err
			}
			scramble = strings.Join(tokens, " ")
			fmt.Println("scramble:", scramble)
		}

		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		sessionID, err := store.CreateSession(cfg.Size, scramble)
		if err != nil {
			return err
		}
		fmt.Println("session:", sessionID)
		fmt.Println(cube.Render())

		seq := 0
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if line == "done" {
				break
			}
			for _, token := range strings.Fields(line) {
				if err := cube.Rotate(token); err != nil {
					logger.Warn("move rejected", "token", token, "err", err)
					continue
				}
				if err := store.AppendMove(sessionID, seq, token); err != nil {
					return err
				}
				seq++
			}
			fmt.Println(cube.Render())
		}
		if err := scanner.Err(); err != nil {
			return err
		}

		fmt.Printf("recorded %d moves in session %s\n", seq, sessionID)
		return nil
	},
}

func init() {
	recordCmd.Flags().IntVar(&flagRecordScramble, "scramble", 0, "Scramble the cube with this many moves before recording")
	rootCmd.AddCommand(recordCmd)
}
