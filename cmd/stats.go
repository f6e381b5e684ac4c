package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anubhav/gitaguide/internal/chapters"
	"github.com/anubhav/gitaguide/internal/progress"
	"github.com/anubhav/gitaguide/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats [name]",
	Short: "Show a seeker's journey without opening the app",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		if len(args) == 0 {
			return listSeekers(ctx, st)
		}
		return showSeeker(ctx, st, args[0])
	},
}

// listSeekers prints every recorded journey.
func listSeekers(ctx context.Context, st *store.Store) error {
	keys, err := st.Keys(ctx, progress.KeyPrefix)
	if err != nil {
		return fmt.Errorf("list records: %w", err)
	}
	if len(keys) == 0 {
		fmt.Println("No journeys recorded yet.")
		return nil
	}

	fmt.Printf("%-24s  %-6s  %-10s  %-8s  %-10s  %s\n",
		"Seeker", "Days", "Questions", "Verses", "Chapters", "Last Active")
	fmt.Println(strings.Repeat("─", 78))

	for _, key := range keys {
		name := strings.TrimPrefix(key, progress.KeyPrefix)
		p, err := loadRaw(ctx, st, key)
		if err != nil {
			fmt.Printf("%-24s  (unreadable: %v)\n", name, err)
			continue
		}
		fmt.Printf("%-24s  %-6d  %-10d  %-8d  %-10s  %s\n",
			name, p.DaysActive, p.QuestionsAsked, p.VersesSaved,
			fmt.Sprintf("%d/18", len(p.ExploredChapters)), p.LastActiveDate)
	}
	return nil
}

// showSeeker prints one journey in detail.
func showSeeker(ctx context.Context, st *store.Store, name string) error {
	p, err := loadRaw(ctx, st, progress.Key(name))
	if err != nil {
		return err
	}

	fmt.Printf("Seeker:            %s\n", name)
	fmt.Printf("Days active:       %d\n", p.DaysActive)
	fmt.Printf("Questions asked:   %d\n", p.QuestionsAsked)
	fmt.Printf("Verses saved:      %d\n", p.VersesSaved)
	fmt.Printf("Last active:       %s\n", p.LastActiveDate)

	fmt.Printf("Chapters explored: %d of %d\n", len(p.ExploredChapters), chapters.MaxChapter)
	if len(p.ExploredChapters) > 0 {
		parts := make([]string, len(p.ExploredChapters))
		for i, ch := range p.ExploredChapters {
			parts[i] = fmt.Sprintf("%d", ch)
		}
		fmt.Printf("                   %s\n", strings.Join(parts, ", "))
	}
	return nil
}

// loadRaw reads a record as stored, without touching the activity day.
func loadRaw(ctx context.Context, st *store.Store, key string) (progress.Progress, error) {
	var p progress.Progress
	raw, ok, err := st.Get(ctx, key)
	if err != nil {
		return p, fmt.Errorf("read record: %w", err)
	}
	if !ok {
		return p, fmt.Errorf("no journey recorded for %q", strings.TrimPrefix(key, progress.KeyPrefix))
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("decode record: %w", err)
	}
	return p, nil
}
