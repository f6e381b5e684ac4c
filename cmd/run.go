package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anubhav/gitaguide/internal/app"
	"github.com/anubhav/gitaguide/internal/llm"
	"github.com/anubhav/gitaguide/internal/progress"
	"github.com/anubhav/gitaguide/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	// Logging goes to a file next to the database so it never draws
	// over the TUI.
	log, closeLog := openLogger(dbPath)
	defer closeLog()

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Guidance provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Set GEMINI_API_KEY (or another provider key) and try again.")
		return err
	}

	return app.Run(app.Options{
		Provider:      provider,
		ProgressStore: progress.NewStore(st, log),
		Log:           log,
	})
}

func openLogger(dbPath string) (*slog.Logger, func()) {
	logPath := strings.TrimSuffix(dbPath, filepath.Ext(dbPath)) + ".log"
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return slog.New(slog.DiscardHandler), func() {}
	}
	return slog.New(slog.NewTextHandler(f, nil)), func() { _ = f.Close() }
}
