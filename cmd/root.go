package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minhvu/atelier/internal/app"
	"github.com/minhvu/atelier/internal/generate"
	"github.com/minhvu/atelier/internal/llm"
	"github.com/minhvu/atelier/internal/screens/library"
	"github.com/minhvu/atelier/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "atelier",
	Short: "AI authoring studio for art exercises",
	Long:  "Atelier — generate and play interactive art-education exercises in your terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ATELIER_DB env var)")
	rootCmd.PersistentFlags().String("api-key", "", "Provider API key (overrides environment)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then ATELIER_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the SQLite store for a command invocation.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// buildGenerator constructs the content generator from environment
// configuration, honoring the --api-key override.
func buildGenerator(ctx context.Context, cmd *cobra.Command, eventRepo store.EventRepo) (*generate.Generator, error) {
	cfg := llm.ConfigFromEnv()
	if key, _ := cmd.Flags().GetString("api-key"); key != "" {
		cfg = cfg.WithCredential(key)
	}

	provider, err := llm.NewProvider(ctx, cfg, eventRepo)
	if err != nil {
		return nil, err
	}
	return generate.New(provider, generate.DefaultConfig()), nil
}

// runApp opens the store, builds dependencies, and launches the TUI at
// the library.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	generator, err := buildGenerator(cmd.Context(), cmd, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Generation will be unavailable; saved exercises still play.")
		generator = nil
	}

	return app.Run(library.New(st.LessonRepo(), generator))
}
