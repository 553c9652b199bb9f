// Package config loads pathwise settings from a config file, a .env file
// and PATHWISE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/abhisek/pathwise/internal/analysis"
	"github.com/abhisek/pathwise/internal/llm"
	"github.com/abhisek/pathwise/internal/logging"
	"github.com/abhisek/pathwise/internal/session"
)

// EnvPrefix prefixes every environment override, e.g. PATHWISE_LOG_LEVEL.
const EnvPrefix = "PATHWISE"

// Cache backends.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// ProviderNone disables AI features even when vendor keys are set.
const ProviderNone = "none"

// Config is the complete application configuration.
type Config struct {
	// DB is the SQLite database path. Empty means store.DefaultDBPath.
	DB string `mapstructure:"db"`

	Log        logging.Config   `mapstructure:"log"`
	LLM        LLMConfig        `mapstructure:"llm"`
	Assessment AssessmentConfig `mapstructure:"assessment"`
	Cache      CacheConfig      `mapstructure:"cache"`
}

// LLMConfig selects the provider used for question generation and
// analysis.
type LLMConfig struct {
	// Provider is anthropic, openai, gemini, openrouter, mock or none.
	// Empty auto-discovers a provider from vendor API key variables.
	Provider    string         `mapstructure:"provider"`
	Timeout     time.Duration  `mapstructure:"timeout"`
	MaxAttempts int            `mapstructure:"max_attempts"`
	Anthropic   ProviderConfig `mapstructure:"anthropic"`
	OpenAI      ProviderConfig `mapstructure:"openai"`
	Gemini      ProviderConfig `mapstructure:"gemini"`
	OpenRouter  ProviderConfig `mapstructure:"openrouter"`
}

type ProviderConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// AssessmentConfig controls sessions.
type AssessmentConfig struct {
	Mode                 string        `mapstructure:"mode"`
	MaxAdaptiveQuestions int           `mapstructure:"max_adaptive_questions"`
	FocusSkills          int           `mapstructure:"focus_skills"`
	QuestionTimeout      time.Duration `mapstructure:"question_timeout"`
	AnalysisTimeout      time.Duration `mapstructure:"analysis_timeout"`
}

// CacheConfig selects the analysis result cache.
type CacheConfig struct {
	Backend string      `mapstructure:"backend"`
	Redis   RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

func setDefaults(v *viper.Viper) {
	llmDef := llm.DefaultConfig()

	v.SetDefault("db", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)

	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.timeout", llmDef.Timeout)
	v.SetDefault("llm.max_attempts", llmDef.Retry.MaxAttempts)
	for name, model := range map[string]string{
		"anthropic":  llmDef.Anthropic.Model,
		"openai":     llmDef.OpenAI.Model,
		"gemini":     llmDef.Gemini.Model,
		"openrouter": llmDef.OpenRouter.Model,
	} {
		v.SetDefault("llm."+name+".api_key", "")
		v.SetDefault("llm."+name+".model", model)
		v.SetDefault("llm."+name+".base_url", "")
	}

	v.SetDefault("assessment.mode", string(session.ModeFixed))
	v.SetDefault("assessment.max_adaptive_questions", session.DefaultMaxAdaptiveQuestions)
	v.SetDefault("assessment.focus_skills", session.DefaultFocusSkills)
	v.SetDefault("assessment.question_timeout", session.DefaultQuestionTimeout)
	v.SetDefault("assessment.analysis_timeout", analysis.DefaultTimeout)

	v.SetDefault("cache.backend", CacheMemory)
	v.SetDefault("cache.redis.addr", "localhost:6379")
	v.SetDefault("cache.redis.password", "")
	v.SetDefault("cache.redis.db", 0)
	v.SetDefault("cache.redis.ttl", 24*time.Hour)
}

// Load reads the configuration. A .env file in the working directory is
// loaded first without overriding variables already set. An explicit path
// must exist; otherwise pathwise.yaml is looked up in the working
// directory and the user config directory, and its absence is not an
// error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("pathwise")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir := userConfigDir(); dir != "" {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if _, err := session.ParseMode(c.Assessment.Mode); err != nil {
		return fmt.Errorf("assessment.mode: %w", err)
	}
	switch c.Cache.Backend {
	case "", CacheNone, CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("cache.backend: unknown backend %q", c.Cache.Backend)
	}
	if c.Cache.Backend == CacheRedis && c.Cache.Redis.Addr == "" {
		return errors.New("cache.redis.addr is required for the redis backend")
	}
	return nil
}

// LLMConfig converts the settings into an llm.Config. With no provider
// set, a provider is discovered from vendor API key variables. The
// returned config is disabled (empty Provider) when nothing is available
// or the provider is "none".
func (c *Config) LLMConfig() llm.Config {
	switch c.LLM.Provider {
	case ProviderNone:
		return llm.Config{}
	case "":
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return llm.Config{}
		}
		discovered.Timeout = c.LLM.Timeout
		discovered.Retry.MaxAttempts = c.LLM.MaxAttempts
		return discovered
	}

	out := llm.DefaultConfig()
	out.Provider = c.LLM.Provider
	out.Timeout = c.LLM.Timeout
	out.Retry.MaxAttempts = c.LLM.MaxAttempts
	out.Anthropic = llm.AnthropicConfig(c.LLM.Anthropic)
	out.OpenAI = llm.OpenAIConfig(c.LLM.OpenAI)
	out.Gemini = llm.GeminiConfig{APIKey: c.LLM.Gemini.APIKey, Model: c.LLM.Gemini.Model}
	out.OpenRouter = llm.OpenRouterConfig(c.LLM.OpenRouter)
	return out
}

// SessionConfig converts the assessment settings into a session.Config.
func (c *Config) SessionConfig(logger *zap.Logger) session.Config {
	return session.Config{
		MaxAdaptiveQuestions: c.Assessment.MaxAdaptiveQuestions,
		FocusSkills:          c.Assessment.FocusSkills,
		QuestionTimeout:      c.Assessment.QuestionTimeout,
		Logger:               logger,
	}
}

func userConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "pathwise")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "pathwise")
}
