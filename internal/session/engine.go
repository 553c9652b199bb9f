package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/pathwise/internal/analysis"
	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/questiongen"
)

const (
	// DefaultMaxAdaptiveQuestions caps the questions of an adaptive session.
	DefaultMaxAdaptiveQuestions = 5

	// DefaultFocusSkills is how many focus skills are sent to the generator.
	DefaultFocusSkills = 3

	// DefaultQuestionTimeout bounds a single question generation call.
	DefaultQuestionTimeout = 20 * time.Second
)

// Config controls session behavior.
type Config struct {
	MaxAdaptiveQuestions int
	FocusSkills          int
	QuestionTimeout      time.Duration
	Logger               *zap.Logger
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxAdaptiveQuestions: DefaultMaxAdaptiveQuestions,
		FocusSkills:          DefaultFocusSkills,
		QuestionTimeout:      DefaultQuestionTimeout,
	}
}

// Engine creates sessions wired to the question generator and the
// analysis aggregator.
type Engine struct {
	generator  questiongen.Generator
	aggregator *analysis.Aggregator
	cfg        Config
	logger     *zap.Logger
	now        func() time.Time
}

// NewEngine creates an engine. A nil generator disables adaptive question
// generation; adaptive sessions then fall back to the motivational
// question. A nil aggregator computes every result locally.
func NewEngine(gen questiongen.Generator, agg *analysis.Aggregator, cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.MaxAdaptiveQuestions <= 0 {
		cfg.MaxAdaptiveQuestions = def.MaxAdaptiveQuestions
	}
	if cfg.FocusSkills <= 0 {
		cfg.FocusSkills = def.FocusSkills
	}
	if cfg.QuestionTimeout <= 0 {
		cfg.QuestionTimeout = def.QuestionTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if agg == nil {
		agg = analysis.NewAggregator(nil, analysis.Config{Logger: cfg.Logger})
	}
	return &Engine{
		generator:  gen,
		aggregator: agg,
		cfg:        cfg,
		logger:     cfg.Logger,
		now:        time.Now,
	}
}

// AdaptiveAvailable reports whether a question generator is configured.
func (e *Engine) AdaptiveAvailable() bool {
	return e.generator != nil
}

// AnalysisAvailable reports whether external analysis is configured.
func (e *Engine) AnalysisAvailable() bool {
	return e.aggregator.Configured()
}

// NewSession creates a session in StateNotStarted.
func (e *Engine) NewSession(careerID string, mode Mode) (*Session, error) {
	profile, err := catalog.GetProfile(careerID)
	if err != nil {
		return nil, err
	}
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, err
	}
	if mode == "" {
		mode = ModeFixed
	}
	id := uuid.New().String()
	return &Session{
		engine: e,
		id:     id,
		career: profile,
		mode:   mode,
		state:  StateNotStarted,
		log: e.logger.With(
			zap.String("session_id", id),
			zap.String("career", profile.ID),
			zap.String("mode", string(mode)),
		),
	}, nil
}

// StartSession creates and starts a session.
func (e *Engine) StartSession(ctx context.Context, careerID string, mode Mode) (*Session, error) {
	s, err := e.NewSession(careerID, mode)
	if err != nil {
		return nil, err
	}
	if err := s.Start(ctx); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	return s, nil
}
