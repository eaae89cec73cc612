package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recorded sessions",
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

		sessions, err := store.Sessions()
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			fmt.Println("no sessions recorded")
			return nil
		}

		fmt.Printf("%-36s  %-5s  %-20s  %s\n", "SESSION", "SIZE", "CREATED", "SCRAMBLE")
		for _, sess := range sessions {
			fmt.Printf("%-36s  %-5d  %-20s  %s\n",
				sess.ID, sess.CubeSize, sess.CreatedAt.Format(time.DateTime), sess.Scramble)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
}
