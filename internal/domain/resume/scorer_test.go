package resume

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_Example(t *testing.T) {
	parsed := Parse("Jane Doe\njane@example.com\n5 years of experience in Python and React")

	got := Score(parsed, SplitDesiredSkills("python,django"))

	assert.Equal(t, 65.0, got.MatchPercent)
	assert.Equal(t, []string{"python"}, got.MatchedSkills)
}

func TestScore_EmptyDesiredUsesExperienceOnly(t *testing.T) {
	for years := 0; years <= 8; years++ {
		parsed := ParsedResume{Skills: []string{"python"}, ExperienceYears: years}

		got := Score(parsed, nil)

		want := math.Round(math.Min(float64(years)/5.0, 1.0)*30*10) / 10
		assert.InDelta(t, want, got.MatchPercent, 1e-9, "years=%d", years)
		assert.Empty(t, got.MatchedSkills)
	}
}

func TestScore_BlankDesiredEntriesAreDropped(t *testing.T) {
	parsed := ParsedResume{Skills: []string{"python"}, ExperienceYears: 0}

	got := Score(parsed, []string{" ", "", " , "})

	assert.Equal(t, 0.0, got.MatchPercent)
	assert.Empty(t, got.MatchedSkills)
}

func TestScore_InvariantUnderOrderAndDuplicates(t *testing.T) {
	parsed := ParsedResume{Skills: []string{"python", "react", "sql"}, ExperienceYears: 2}

	a := Score(parsed, []string{"python", "django", "sql"})
	b := Score(parsed, []string{" SQL", "Django", "python", "python ", "sql"})

	assert.Equal(t, a, b)
	assert.Equal(t, []string{"python", "sql"}, a.MatchedSkills)
}

func TestScore_ZeroInputs(t *testing.T) {
	got := Score(ParsedResume{}, nil)

	assert.Equal(t, 0.0, got.MatchPercent)
	assert.NotNil(t, got.MatchedSkills)
	assert.Empty(t, got.MatchedSkills)
}

func TestScore_FullMatchCapsAtHundred(t *testing.T) {
	parsed := ParsedResume{Skills: []string{"aws", "docker"}, ExperienceYears: 40}

	got := Score(parsed, []string{"AWS", "Docker"})

	assert.Equal(t, 100.0, got.MatchPercent)
}

func TestScorer_CustomWeights(t *testing.T) {
	s := NewScorer(Weights{Skill: 0.5, Experience: 0.5, FullExperienceYears: 10})
	parsed := ParsedResume{Skills: []string{"java"}, ExperienceYears: 5}

	got := s.Score(parsed, []string{"java", "css"})

	assert.Equal(t, 50.0, got.MatchPercent)
}

func TestScore_RangeAndRounding(t *testing.T) {
	parsed := ParsedResume{Skills: []string{"html"}, ExperienceYears: 1}

	got := Score(parsed, []string{"html", "css", "java"})

	assert.GreaterOrEqual(t, got.MatchPercent, 0.0)
	assert.LessOrEqual(t, got.MatchPercent, 100.0)
	assert.Equal(t, got.MatchPercent, math.Round(got.MatchPercent*10)/10)
	assert.Equal(t, 29.3, got.MatchPercent)
}

func TestSplitDesiredSkills(t *testing.T) {
	assert.Nil(t, SplitDesiredSkills(""))
	assert.Nil(t, SplitDesiredSkills("   "))
	assert.Equal(t, []string{"python", " react"}, SplitDesiredSkills("python, react"))
}
