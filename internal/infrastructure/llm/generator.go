// Package llm produces free text from prompts. A stub generator stands in when
// no provider key is configured so every caller keeps working offline.
package llm

import (
	"context"
	"fmt"

	"sitebuilder/internal/config"

	"github.com/rs/zerolog"
)

type Options struct {
	MaxTokens   int
	Temperature float32
}

type Generator interface {
	Generate(ctx context.Context, prompt string, opts Options) (string, error)
	// Enabled reports whether a real provider is behind the generator.
	Enabled() bool
}

const stubPromptHead = 200

// StubGenerator echoes the head of the prompt.
type StubGenerator struct{}

func (StubGenerator) Generate(_ context.Context, prompt string, _ Options) (string, error) {
	return StubResponse(prompt), nil
}

func (StubGenerator) Enabled() bool { return false }

// StubResponse is the offline completion text for prompt.
func StubResponse(prompt string) string {
	head := []rune(prompt)
	if len(head) > stubPromptHead {
		head = head[:stubPromptHead]
	}
	return "LLM key not set — stub response. Prompt head: " + string(head) + "..."
}

// New picks Gemini when an API key is configured and the stub otherwise.
// A non-nil cache wraps the result with response caching.
func New(ctx context.Context, cfg config.LLMConfig, cache Cache, logger zerolog.Logger) (Generator, func() error, error) {
	noop := func() error { return nil }
	if cfg.APIKey == "" {
		logger.Info().Msg("llm key not set, using stub generator")
		return StubGenerator{}, noop, nil
	}

	g, err := NewGemini(ctx, cfg)
	if err != nil {
		return nil, noop, fmt.Errorf("llm: %w", err)
	}
	logger.Info().Str("model", cfg.Model).Msg("gemini generator ready")

	var out Generator = g
	if cache != nil {
		out = NewCached(g, cache, 0)
	}
	return out, g.Close, nil
}
