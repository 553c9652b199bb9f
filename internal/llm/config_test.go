package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"anthropic without key", Config{Provider: ProviderAnthropic}, "PATHWISE_LLM_ANTHROPIC_API_KEY"},
		{"anthropic with key", Config{Provider: ProviderAnthropic, Anthropic: AnthropicConfig{APIKey: "sk"}}, ""},
		{"openai without key", Config{Provider: ProviderOpenAI}, "PATHWISE_LLM_OPENAI_API_KEY"},
		{"gemini without key", Config{Provider: ProviderGemini}, "PATHWISE_LLM_GEMINI_API_KEY"},
		{"openrouter with key", Config{Provider: ProviderOpenRouter, OpenRouter: OpenRouterConfig{APIKey: "sk"}}, ""},
		{"mock needs no key", Config{Provider: ProviderMock}, ""},
		{"unknown provider", Config{Provider: "watson"}, "unknown LLM provider"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestDiscoverConfig(t *testing.T) {
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no provider without keys")
	}

	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("OPENROUTER_API_KEY", "sk-or")
	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != ProviderAnthropic || cfg.Anthropic.APIKey != "sk-ant" {
		t.Fatalf("got %+v, %v", cfg, ok)
	}

	t.Setenv("GEMINI_API_KEY", "g-key")
	cfg, _ = DiscoverConfig()
	if cfg.Provider != ProviderGemini {
		t.Errorf("gemini should win, got %q", cfg.Provider)
	}
}

func TestPurposeAndSessionContext(t *testing.T) {
	ctx := context.Background()
	if PurposeFrom(ctx) != "unknown" {
		t.Errorf("default purpose = %q", PurposeFrom(ctx))
	}
	if SessionIDFrom(ctx) != "" {
		t.Errorf("default session = %q", SessionIDFrom(ctx))
	}

	ctx = WithSessionID(WithPurpose(ctx, "question-gen"), "abc")
	if PurposeFrom(ctx) != "question-gen" || SessionIDFrom(ctx) != "abc" {
		t.Errorf("got purpose %q session %q", PurposeFrom(ctx), SessionIDFrom(ctx))
	}
}

func TestMockProvider(t *testing.T) {
	mock := NewMockProvider(
		MockJSON(map[string]int{"a": 1}),
		MockResponse{Err: &ErrRateLimit{}},
	)

	resp, err := mock.Generate(context.Background(), Request{System: "sys"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"a":1}` || resp.Model != "mock" {
		t.Errorf("resp = %+v", resp)
	}

	_, err = mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %T", err)
	}

	_, err = mock.Generate(context.Background(), Request{})
	var u *ErrProviderUnavailable
	if !errors.As(err, &u) {
		t.Fatalf("expected ErrProviderUnavailable from empty queue, got %T", err)
	}

	mock.AddResponse(MockResponse{Content: json.RawMessage(`{}`)})
	if _, err := mock.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("queued response not served: %v", err)
	}
	if mock.CallCount() != 4 || mock.Calls[0].System != "sys" {
		t.Errorf("calls = %d, first system %q", mock.CallCount(), mock.Calls[0].System)
	}
}

func TestModelCost(t *testing.T) {
	c := LookupCost("gpt-4o-mini")
	if c == nil {
		t.Fatal("gpt-4o-mini should be priced")
	}
	got := c.Cost(1_000_000, 1_000_000)
	if got < 0.749 || got > 0.751 {
		t.Errorf("cost = %f, want 0.75", got)
	}
	if LookupCost("no-such-model") != nil {
		t.Error("unknown model should have no price")
	}
}
