package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anubhav/gitaguide/internal/progress"
	"github.com/anubhav/gitaguide/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset [name]",
	Short: "Delete a seeker's journey (or all journeys with --all)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		if !all && len(args) == 0 {
			return fmt.Errorf("give a seeker name or pass --all")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := context.Background()

		if all {
			keys, err := st.Keys(ctx, progress.KeyPrefix)
			if err != nil {
				return fmt.Errorf("list records: %w", err)
			}
			for _, key := range keys {
				if _, err := st.Delete(ctx, key); err != nil {
					return fmt.Errorf("delete %s: %w", key, err)
				}
			}
			fmt.Printf("Deleted %d journey(s).\n", len(keys))
			return nil
		}

		name := strings.TrimSpace(args[0])
		deleted, err := st.Delete(ctx, progress.Key(name))
		if err != nil {
			return fmt.Errorf("delete record: %w", err)
		}
		if !deleted {
			fmt.Printf("No journey recorded for %q.\n", name)
			return nil
		}
		fmt.Printf("Journey for %q deleted.\n", name)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("all", false, "Delete every recorded journey")
}
