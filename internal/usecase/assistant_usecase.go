package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"sitebuilder/internal/domain/content"
	"sitebuilder/internal/infrastructure/llm"
	"sitebuilder/internal/repository"

	"github.com/rs/zerolog"
)

const (
	DefaultTone      = "professional"
	chatFAQWindow    = 10
	seoKeywordCount  = 5
	seoMinWordRunes  = 5
	seoMetaRunes     = 120
	seoFallbackCap   = 85
	seoFallbackBase  = 50
	seoPerKeyword    = 5
	autoBuildTokens  = 350
	voiceTokens      = 120
	assistantTokens  = 200
	summaryKeysShown = 3
)

var (
	wordPattern       = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]+`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// DefaultPalette is served when no model is configured.
func DefaultPalette() map[string]any {
	return map[string]any{
		"primary":   "#0b72ff",
		"secondary": "#0b9eff",
		"accent":    "#ffb400",
		"bg":        "#ffffff",
		"text":      "#111827",
		"button":    "#0b72ff",
	}
}

// SEOReport carries either the model's free text analysis or the offline
// keyword report.
type SEOReport struct {
	FromModel bool
	Analysis  string
	Keywords  []string
	Score     int
	Meta      string
}

// ThemeResult holds a stored theme, or a raw suggestion when the model
// returned text that could not be decoded.
type ThemeResult struct {
	Theme      map[string]any
	Suggestion string
}

type AssistantUsecase interface {
	Chat(ctx context.Context, question string) (string, error)
	SEOAnalyze(ctx context.Context, text string) (SEOReport, error)
	Theme(ctx context.Context, tone string) (ThemeResult, error)
	AutoBuild(ctx context.Context, brief string) (map[string]any, error)
	VoiceText(ctx context.Context, text string) (string, error)
	GeneratorEnabled() bool
}

type Assistant struct {
	store  *repository.Store
	gen    llm.Generator
	logger zerolog.Logger
}

func NewAssistantUsecase(store *repository.Store, gen llm.Generator, logger zerolog.Logger) *Assistant {
	if gen == nil {
		gen = llm.StubGenerator{}
	}
	return &Assistant{store: store, gen: gen, logger: logger}
}

func (u *Assistant) GeneratorEnabled() bool { return u.gen.Enabled() }

// Chat answers from the site pages and the latest FAQ entries.
func (u *Assistant) Chat(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", ErrInvalidInput
	}

	pages, err := u.store.Pages.ListPages(ctx)
	if err != nil {
		u.logger.Error().Err(err).Msg("list pages failed")
		return "", ErrInternal
	}

	if !u.gen.Enabled() {
		parts := make([]string, 0, len(pages))
		for _, p := range pages {
			parts = append(parts, p.Name+":"+keyList(p.Content, summaryKeysShown))
		}
		return "Demo-mode answer. Pages summary: " + strings.Join(parts, "; "), nil
	}

	faq, err := u.store.FAQ.RecentFAQ(ctx, chatFAQWindow)
	if err != nil {
		u.logger.Error().Err(err).Msg("recent faq failed")
		return "", ErrInternal
	}

	prompt := "Use the following context to answer concisely to the question.\n\nCONTEXT:\n" +
		chatContext(pages, faq) + "\n\nQUESTION: " + question + "\n\nAnswer:"
	return complete(ctx, u.gen, u.logger, prompt, llm.Options{MaxTokens: assistantTokens}), nil
}

func chatContext(pages []content.Page, faq []content.FAQEntry) string {
	lines := make([]string, 0, len(pages)+len(faq))
	for _, p := range pages {
		raw, _ := json.Marshal(p.Content)
		lines = append(lines, fmt.Sprintf("Page %s: %s", p.Name, raw))
	}
	for _, f := range faq {
		lines = append(lines, fmt.Sprintf("FAQ: Q:%s A:%s", f.Q, f.A))
	}
	return strings.Join(lines, "\n\n")
}

// keyList renders up to n sorted keys as ['a', 'b'].
func keyList(m map[string]any, n int) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > n {
		keys = keys[:n]
	}
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = "'" + k + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func (u *Assistant) SEOAnalyze(ctx context.Context, text string) (SEOReport, error) {
	if text == "" {
		return SEOReport{}, ErrInvalidInput
	}
	if u.gen.Enabled() {
		prompt := "Analyze this blog content for SEO. Provide 5 keyword suggestions, a short SEO score (0-100), and a one-line meta description. Content:\n\n" + text
		return SEOReport{FromModel: true, Analysis: complete(ctx, u.gen, u.logger, prompt, llm.Options{MaxTokens: assistantTokens})}, nil
	}
	return AnalyzeSEO(text), nil
}

// AnalyzeSEO ranks words longer than four characters by frequency. Ties
// keep first occurrence order.
func AnalyzeSEO(text string) SEOReport {
	counts := map[string]int{}
	order := make([]string, 0)
	for _, w := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if utf8.RuneCountInString(w) < seoMinWordRunes {
			continue
		}
		if _, ok := counts[w]; !ok {
			order = append(order, w)
		}
		counts[w]++
	}

	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })
	if len(order) > seoKeywordCount {
		order = order[:seoKeywordCount]
	}

	meta := text
	if utf8.RuneCountInString(text) > seoMetaRunes {
		meta = truncateRunes(text, seoMetaRunes) + "..."
	}

	return SEOReport{
		Keywords: order,
		Score:    min(seoFallbackCap, seoFallbackBase+seoPerKeyword*len(order)),
		Meta:     meta,
	}
}

func (u *Assistant) Theme(ctx context.Context, tone string) (ThemeResult, error) {
	tone = strings.TrimSpace(tone)
	if tone == "" {
		tone = DefaultTone
	}

	palette := DefaultPalette()
	if u.gen.Enabled() {
		prompt := fmt.Sprintf("Suggest CSS variables for a %s website (JSON: primary, secondary, accent, bg, text, button) and 3 Tailwind class groups for hero, button, card.", tone)
		out := complete(ctx, u.gen, u.logger, prompt, llm.Options{MaxTokens: assistantTokens})
		if !strings.Contains(out, "{") {
			palette = map[string]any{"suggestion": out}
		} else {
			parsed, err := llm.ExtractJSONObject(out)
			if err != nil {
				return ThemeResult{Suggestion: out}, nil
			}
			palette = parsed
		}
	}

	if err := u.store.Themes.PutTheme(ctx, content.Theme{Tone: tone, Palette: palette}); err != nil {
		u.logger.Error().Err(err).Str("tone", tone).Msg("put theme failed")
		return ThemeResult{}, ErrInternal
	}
	return ThemeResult{Theme: palette}, nil
}

// AutoBuild drafts a site from a company brief and writes the home, about
// and projects pages. Undecodable model output falls back to a stock site.
func (u *Assistant) AutoBuild(ctx context.Context, brief string) (map[string]any, error) {
	if brief == "" {
		return nil, ErrInvalidInput
	}

	prompt := "Given this company description: " + brief + "\n\n" +
		"Generate a JSON object with keys: name, tagline, about, services (list of 3), " +
		"sample_projects (list of 2 with short desc). Return only valid JSON."
	out := complete(ctx, u.gen, u.logger, prompt, llm.Options{MaxTokens: autoBuildTokens})

	site, err := llm.ExtractJSONObject(out)
	if err != nil {
		site = fallbackSite(brief)
	}

	pages := []content.Page{
		{Name: "home", Content: map[string]any{"title": site["name"], "hero": site["tagline"]}},
		{Name: "about", Content: map[string]any{"about": site["about"], "services": site["services"]}},
		{Name: "projects", Content: map[string]any{"projects": site["sample_projects"]}},
	}
	for _, p := range pages {
		if err := u.store.Pages.PutPage(ctx, p); err != nil {
			u.logger.Error().Err(err).Str("page", p.Name).Msg("put page failed")
			return nil, ErrInternal
		}
	}
	return site, nil
}

func fallbackSite(brief string) map[string]any {
	return map[string]any{
		"name":     "Mastersolis Infotech",
		"tagline":  "AI-driven digital presence",
		"about":    brief,
		"services": []any{"Custom AI Solutions", "Web Development", "Data Analytics"},
		"sample_projects": []any{
			map[string]any{"title": "Project A", "desc": "AI automation for retail"},
			map[string]any{"title": "Project B", "desc": "Analytics dashboard deployment"},
		},
	}
}

func (u *Assistant) VoiceText(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", ErrInvalidInput
	}
	if u.gen.Enabled() {
		prompt := "Rewrite the following text as a short friendly spoken introduction (40-70 words):\n\n" + text
		return complete(ctx, u.gen, u.logger, prompt, llm.Options{MaxTokens: voiceTokens}), nil
	}
	return CollapseWhitespace(text), nil
}

func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}

// complete never fails; provider errors become the answer text.
func complete(ctx context.Context, gen llm.Generator, logger zerolog.Logger, prompt string, opts llm.Options) string {
	out, err := gen.Generate(ctx, prompt, opts)
	if err != nil {
		logger.Warn().Err(err).Msg("text generation failed")
		return "LLM error: " + err.Error()
	}
	return out
}
