package resume

import (
	"math"
	"sort"
	"strings"
)

// Weights are the scoring constants. The defaults reproduce the historical
// 70/30 split with experience saturating at five years.
type Weights struct {
	Skill               float64
	Experience          float64
	FullExperienceYears float64
}

func DefaultWeights() Weights {
	return Weights{Skill: 0.7, Experience: 0.3, FullExperienceYears: 5}
}

type ScoreResult struct {
	MatchPercent  float64  `json:"match_percent"`
	MatchedSkills []string `json:"matched_skills"`
}

type Scorer struct {
	weights Weights
}

func NewScorer(w Weights) *Scorer {
	if w.FullExperienceYears <= 0 {
		w.FullExperienceYears = DefaultWeights().FullExperienceYears
	}
	return &Scorer{weights: w}
}

var defaultScorer = NewScorer(DefaultWeights())

// Score runs the default-weight scorer.
func Score(parsed ParsedResume, desired []string) ScoreResult {
	return defaultScorer.Score(parsed, desired)
}

func (s *Scorer) Score(parsed ParsedResume, desired []string) ScoreResult {
	want := NormalizeSkills(desired)

	have := make(map[string]struct{}, len(parsed.Skills))
	for _, sk := range parsed.Skills {
		have[strings.ToLower(sk)] = struct{}{}
	}

	matched := make([]string, 0)
	for _, d := range want {
		if _, ok := have[d]; ok {
			matched = append(matched, d)
		}
	}
	sort.Strings(matched)

	skillScore := 0.0
	if len(want) > 0 {
		skillScore = float64(len(matched)) / float64(max(1, len(want)))
	}

	years := max(parsed.ExperienceYears, 0)
	expScore := math.Min(float64(years)/s.weights.FullExperienceYears, 1.0)

	overall := (skillScore*s.weights.Skill + expScore*s.weights.Experience) * 100
	overall = math.Max(0, math.Min(100, overall))

	return ScoreResult{MatchPercent: roundTenth(overall), MatchedSkills: matched}
}

// NormalizeSkills trims, lowercases and de-duplicates skills, dropping blanks.
// The order of first appearance is kept.
func NormalizeSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, sk := range skills {
		sk = strings.ToLower(strings.TrimSpace(sk))
		if sk == "" {
			continue
		}
		if _, ok := seen[sk]; ok {
			continue
		}
		seen[sk] = struct{}{}
		out = append(out, sk)
	}
	return out
}

// SplitDesiredSkills splits a comma-separated desired-skills form field.
func SplitDesiredSkills(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	return strings.Split(csv, ",")
}

func roundTenth(v float64) float64 {
	return math.RoundToEven(v*10) / 10
}
