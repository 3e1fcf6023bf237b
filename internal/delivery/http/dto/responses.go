package dto

import "sitebuilder/internal/domain/content"

type RootResponse struct {
	Message string `json:"message"`
	// OpenAI keeps its historical name; it reports whether a text model is
	// configured.
	OpenAI bool `json:"openai"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
	Cache  string `json:"cache"`
}

type PageSavedResponse struct {
	Status string         `json:"status"`
	Page   map[string]any `json:"page"`
}

type JobAddedResponse struct {
	Status string      `json:"status"`
	Job    content.Job `json:"job"`
}

type ApplicationReceivedResponse struct {
	Status      string              `json:"status"`
	Application content.Application `json:"application"`
}

type AnswerResponse struct {
	Answer string `json:"answer"`
}

type SEOAnalysisResponse struct {
	Analysis string `json:"analysis"`
}

type SEOReportResponse struct {
	Keywords []string `json:"keywords"`
	Score    int      `json:"score"`
	Meta     string   `json:"meta"`
}

type ThemeResponse struct {
	Theme map[string]any `json:"theme"`
}

type ThemeSuggestionResponse struct {
	ThemeSuggestion string `json:"theme_suggestion"`
}

type GeneratedSiteResponse struct {
	Generated map[string]any `json:"generated"`
}

type SpeechTextResponse struct {
	SpeechText string `json:"speech_text"`
}

type SeedResponse struct {
	Status  string `json:"status"`
	Summary any    `json:"summary"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type MessageReceivedResponse struct {
	Status    string `json:"status"`
	MessageID string `json:"message_id"`
}
