package analysis

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/pathwise/internal/gap"
	"github.com/abhisek/pathwise/internal/question"
)

// DefaultTimeout bounds a single external analysis call.
const DefaultTimeout = 30 * time.Second

// Config controls the behavior of an Aggregator.
type Config struct {
	// Timeout bounds the Analyze call. Zero means DefaultTimeout.
	Timeout time.Duration

	// Cache stores external results. Nil disables caching.
	Cache Cache

	Logger *zap.Logger
}

// Aggregator merges the external analysis with the deterministic local
// computation so a complete result is always produced.
type Aggregator struct {
	analyzer Analyzer
	timeout  time.Duration
	cache    Cache
	logger   *zap.Logger
}

// NewAggregator creates an aggregator. A nil analyzer means the external
// service is not configured and every result is computed locally.
func NewAggregator(analyzer Analyzer, cfg Config) *Aggregator {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Aggregator{
		analyzer: analyzer,
		timeout:  cfg.Timeout,
		cache:    cfg.Cache,
		logger:   cfg.Logger,
	}
}

// Configured reports whether an external analyzer is available.
func (a *Aggregator) Configured() bool {
	return a.analyzer != nil
}

// Finalize produces the result for a completed session. It never fails:
// any problem with the external analysis resolves to the local fallback.
func (a *Aggregator) Finalize(ctx context.Context, in Input) *Result {
	log := a.logger.With(zap.String("session_id", in.SessionID), zap.String("career", in.Career.ID))

	if a.analyzer == nil {
		return fallback(in, log)
	}

	key := Fingerprint(in)
	if a.cache != nil {
		cached, ok, err := a.cache.Get(ctx, key)
		if err != nil {
			log.Warn("analysis cache read failed", zap.Error(err))
		} else if ok {
			log.Debug("analysis cache hit")
			return cached
		}
	}

	payload, err := a.analyze(ctx, in)
	if err != nil {
		log.Warn("external analysis failed, using standard assessment", zap.Error(err))
		return fallback(in, log)
	}
	if reason := malformed(payload); reason != "" {
		log.Warn("external analysis malformed, using standard assessment", zap.String("reason", reason))
		return fallback(in, log)
	}

	res := fromPayload(payload, in)
	if a.cache != nil {
		if err := a.cache.Set(ctx, key, res); err != nil {
			log.Warn("analysis cache write failed", zap.Error(err))
		}
	}
	return res
}

// analyze calls the analyzer with a deadline and converts panics into
// errors.
func (a *Aggregator) analyze(ctx context.Context, in Input) (p *Payload, err error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			p, err = nil, fmt.Errorf("analyzer panicked: %v", r)
		}
	}()
	return a.analyzer.Analyze(ctx, in)
}

// malformed returns why a payload cannot be mapped, or "" if it is well
// formed.
func malformed(p *Payload) string {
	switch {
	case p == nil:
		return "empty payload"
	case p.OverallScore == nil:
		return "missing overall score"
	case math.IsNaN(*p.OverallScore) || *p.OverallScore < 0 || *p.OverallScore > 100:
		return fmt.Sprintf("overall score %v outside [0,100]", *p.OverallScore)
	case len(p.SkillGaps) == 0:
		return "no skill gaps"
	}
	for i, g := range p.SkillGaps {
		if strings.TrimSpace(g.Skill) == "" {
			return fmt.Sprintf("skill gap %d has no skill", i)
		}
	}
	return ""
}

// fromPayload maps a well-formed payload into a Result. Levels are
// clamped, gap and priority are recomputed and readiness is derived from
// the score rather than trusted.
func fromPayload(p *Payload, in Input) *Result {
	entries := make([]gap.Entry, 0, len(p.SkillGaps))
	seen := make(map[string]bool, len(p.SkillGaps))
	var perGap []string
	for _, g := range p.SkillGaps {
		skill := strings.TrimSpace(g.Skill)
		if seen[skill] {
			continue
		}
		seen[skill] = true

		target := g.TargetLevel
		if target == 0 {
			target = in.Career.TargetLevel
		}
		entries = append(entries, gap.NewEntry(skill, g.CurrentLevel, target))
		perGap = append(perGap, g.Recommendations...)
	}
	gap.Sort(entries)

	score := int(math.Round(*p.OverallScore))

	recs := nonEmpty(p.Recommendations)
	if len(recs) == 0 {
		recs = dedupe(nonEmpty(perGap))
	}
	if len(recs) == 0 {
		recs = templateRecommendations(entries)
	}

	return &Result{
		OverallScore:     score,
		SkillGaps:        entries,
		Recommendations:  recs,
		ReadinessLevel:   gap.Readiness(score),
		Strengths:        nonEmpty(p.Strengths),
		ImprovementAreas: nonEmpty(p.ImprovementAreas),
		NextSteps:        nonEmpty(p.NextSteps),
		Summary:          strings.TrimSpace(p.OverallSummary),
		ConfidenceScore:  clampPercent(p.ConfidenceScore),
		LearningPath:     p.LearningPath,
		Source:           SourceAI,
	}
}

// fallback computes the result from the normalized answer levels alone.
func fallback(in Input, log *zap.Logger) *Result {
	entries, err := gap.ComputeForProfile(in.Career, Levels(in.Answers))
	if err != nil {
		// Only reachable with a hand-built profile.
		log.Error("compute skill gaps", zap.Error(err))
	}

	score := gap.OverallScore(entries)
	return &Result{
		OverallScore:    score,
		SkillGaps:       entries,
		Recommendations: templateRecommendations(entries),
		ReadinessLevel:  gap.Readiness(score),
		Source:          SourceStandard,
		Notice:          FallbackNotice,
	}
}

// Levels averages the scored answer levels per skill. Unscored answers
// are ignored. Means are rounded half away from zero.
func Levels(answers []question.Answer) map[string]question.Level {
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, a := range answers {
		if !a.Level.Scored() {
			continue
		}
		sums[a.Question.Skill] += int(a.Level)
		counts[a.Question.Skill]++
	}

	levels := make(map[string]question.Level, len(sums))
	for skill, sum := range sums {
		mean := float64(sum) / float64(counts[skill])
		levels[skill] = question.Clamp(question.Level(math.Round(mean)))
	}
	return levels
}

// templateRecommendations names the two skills with the largest gaps.
// Entries must already be sorted.
func templateRecommendations(entries []gap.Entry) []string {
	top := gap.SkillsWithGap(entries)
	switch {
	case len(top) == 0:
		return []string{
			"You meet the target level for every assessed skill; keep them current with advanced projects",
			"Build a portfolio showcasing your projects",
		}
	case len(top) == 1:
		return []string{
			fmt.Sprintf("Focus on strengthening %s skills", top[0]),
			"Build a portfolio showcasing your projects",
		}
	default:
		return []string{
			fmt.Sprintf("Focus on strengthening %s skills", top[0]),
			fmt.Sprintf("Consider taking advanced courses in %s", top[1]),
			"Build a portfolio showcasing your projects",
		}
	}
}

func nonEmpty(items []string) []string {
	var out []string
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, s := range items {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

func clampPercent(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Round(math.Max(0, math.Min(100, v))))
}
