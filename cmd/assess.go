package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/pathwise/internal/analysis"
	"github.com/abhisek/pathwise/internal/app"
	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/config"
	"github.com/abhisek/pathwise/internal/llm"
	"github.com/abhisek/pathwise/internal/questiongen"
	"github.com/abhisek/pathwise/internal/screens/assessment"
	"github.com/abhisek/pathwise/internal/session"
	"github.com/abhisek/pathwise/internal/store"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Take a career readiness assessment",
	Long: `Start the interactive assessment. Without --career the career picker
opens first. Adaptive mode asks the configured LLM for each question.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		career, _ := cmd.Flags().GetString("career")
		mode, _ := cmd.Flags().GetString("mode")
		return runAssessment(cmd, career, mode)
	},
}

func init() {
	assessCmd.Flags().StringP("career", "c", "", "Career ID to assess (see 'pathwise careers list')")
	assessCmd.Flags().StringP("mode", "m", "", "Assessment mode: fixed or adaptive (default from config)")
}

// runAssessment opens the store, builds the AI services when a provider is
// configured, and launches the TUI.
func runAssessment(cmd *cobra.Command, careerID, modeName string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if modeName == "" {
		modeName = cfg.Assessment.Mode
	}
	mode, err := session.ParseMode(modeName)
	if err != nil {
		return err
	}
	if careerID != "" {
		if _, err := catalog.GetProfile(careerID); err != nil {
			return fmt.Errorf("%w (see 'pathwise careers list')", err)
		}
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	logger, err := newLogger(cfg, dbPath, true)
	if err != nil {
		return err
	}
	defer logger.Sync()

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	// AI features are optional; the assessment works without them.
	var (
		gen      questiongen.Generator
		analyzer analysis.Analyzer
	)
	provider, err := llm.NewProvider(ctx, cfg.LLMConfig(), st.EventRepo(), logger)
	switch {
	case err != nil:
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
	case provider != nil:
		logger.Info("llm provider ready", zap.String("model", provider.ModelID()))
		gen = questiongen.New(provider, questiongen.DefaultConfig())
		analyzer = analysis.NewLLMAnalyzer(provider, analysis.DefaultAnalyzerConfig())
	}

	cache, closeCache := buildCache(ctx, cfg, logger)
	defer closeCache()

	agg := analysis.NewAggregator(analyzer, analysis.Config{
		Timeout: cfg.Assessment.AnalysisTimeout,
		Cache:   cache,
		Logger:  logger,
	})
	engine := session.NewEngine(gen, agg, cfg.SessionConfig(logger))

	return app.Run(app.Options{
		Deps: assessment.Deps{
			Engine: engine,
			Repo:   st.AssessmentRepo(),
			Logger: logger,
		},
		Mode:     mode,
		CareerID: careerID,
	})
}

// buildCache returns the configured analysis cache and a func releasing
// it. An unreachable Redis falls back to the in-memory cache.
func buildCache(ctx context.Context, cfg *config.Config, logger *zap.Logger) (analysis.Cache, func()) {
	noop := func() {}
	switch cfg.Cache.Backend {
	case config.CacheNone:
		return nil, noop
	case config.CacheRedis:
		rc, err := analysis.OpenRedisCache(ctx, analysis.RedisOptions{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
			TTL:      cfg.Cache.Redis.TTL,
		})
		if err != nil {
			logger.Warn("redis cache unavailable, using memory cache",
				zap.String("addr", cfg.Cache.Redis.Addr), zap.Error(err))
			return analysis.NewMemoryCache(), noop
		}
		return rc, func() { rc.Close() }
	}
	return analysis.NewMemoryCache(), noop
}
