package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smehra/sayright/internal/config"
	"github.com/smehra/sayright/internal/engine"
	"github.com/smehra/sayright/internal/logger"
	"github.com/smehra/sayright/internal/scorer"
	"github.com/smehra/sayright/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "sayright",
	Short: "Pronunciation mastery and confidence engine",
	Long:  "Sayright — records scored pronunciation attempts and tracks per-unit progress, per-word mastery, and learner confidence.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SAYRIGHT_DB env var)")

	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(masteryCmd)
	rootCmd.AddCommand(confidenceCmd)
	rootCmd.AddCommand(weakCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads .env (when present) and the engine configuration.
func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()
	return config.Load()
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the configured path, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// scorerFactory builds the scorer a command needs, given the loaded
// configuration. Commands that never score pass nil.
type scorerFactory func(cfg *config.Config, log *zap.Logger) (scorer.Scorer, error)

// openEngine wires an engine over the store.
func openEngine(cmd *cobra.Command, newScorer scorerFactory) (*engine.Engine, *store.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}

	var sc scorer.Scorer
	if newScorer != nil {
		if sc, err = newScorer(cfg, log); err != nil {
			return nil, nil, err
		}
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	eng := engine.New(s, sc, store.NewProgressAssignments(s),
		engine.WithThreshold(cfg.Threshold),
		engine.WithLogger(log))
	return eng, s, nil
}

// vendorScorer builds the configured vendor client with retry and
// request logging.
func vendorScorer(cfg *config.Config, log *zap.Logger) (scorer.Scorer, error) {
	if cfg.Scorer.BaseURL == "" {
		return nil, fmt.Errorf("no scoring vendor configured; set SAYRIGHT_SCORER_BASE_URL or pass --score")
	}
	if cfg.Scorer.APIKey == "" {
		return nil, config.ErrMissingScorerKey
	}

	client := scorer.NewClient(scorer.Config{
		BaseURL: cfg.Scorer.BaseURL,
		APIKey:  cfg.Scorer.APIKey,
		Vendor:  cfg.Scorer.Vendor,
		Timeout: cfg.Scorer.Timeout,
	})
	return scorer.WithLogging(scorer.WithRetry(client, scorer.DefaultRetryConfig()), log), nil
}
