package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

const CacheKeyPrefix = "llm:completion:"

// CachedGenerator memoizes completions of its inner generator. Cache errors
// never fail a generation.
type CachedGenerator struct {
	inner Generator
	cache Cache
	ttl   time.Duration
}

func NewCached(inner Generator, cache Cache, ttl time.Duration) *CachedGenerator {
	return &CachedGenerator{inner: inner, cache: cache, ttl: ttl}
}

func (c *CachedGenerator) Enabled() bool { return c.inner.Enabled() }

type cachedCompletion struct {
	Text string `json:"text"`
}

func (c *CachedGenerator) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	key := CompletionCacheKey(prompt, opts)

	var hit cachedCompletion
	if ok, err := c.cache.GetJSON(ctx, key, &hit); err == nil && ok {
		return hit.Text, nil
	}

	text, err := c.inner.Generate(ctx, prompt, opts)
	if err != nil {
		return "", err
	}
	_ = c.cache.SetJSON(ctx, key, cachedCompletion{Text: text}, c.ttl)
	return text, nil
}

type completionKeyInput struct {
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float32 `json:"temperature"`
}

func CompletionCacheKey(prompt string, opts Options) string {
	b, _ := json.Marshal(completionKeyInput{
		Prompt:      prompt,
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
	})
	sum := sha256.Sum256(b)
	return CacheKeyPrefix + hex.EncodeToString(sum[:])
}
