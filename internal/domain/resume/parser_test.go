package resume

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Example(t *testing.T) {
	text := "Jane Doe\njane@example.com\n5 years of experience in Python and React"

	got := Parse(text)

	assert.Equal(t, "Jane Doe", got.Name)
	require.NotNil(t, got.Email)
	assert.Equal(t, "jane@example.com", *got.Email)
	assert.Equal(t, []string{"python", "react"}, got.Skills)
	assert.Equal(t, 5, got.ExperienceYears)
}

func TestParse_Empty(t *testing.T) {
	got := Parse("")

	assert.Equal(t, UnknownName, got.Name)
	assert.Nil(t, got.Email)
	assert.Empty(t, got.Skills)
	assert.NotNil(t, got.Skills)
	assert.Equal(t, 0, got.ExperienceYears)
}

func TestParse_SkillsAreWholeWordsAndDeduplicated(t *testing.T) {
	text := "JavaScript, PYTHON, python, MySQL, Node.js, C++ and docker"

	got := Parse(text)

	assert.Equal(t, []string{"c++", "docker", "javascript", "node", "python"}, got.Skills)
}

func TestParse_SkillsSubsetOfVocabulary(t *testing.T) {
	inputs := []string{
		"Go, Rust, Kubernetes",
		"\x00\xff\xfe binary \x89PNG Java",
		"tensorflow/AWS|css;html",
	}
	vocab := DefaultVocabulary()
	for _, in := range inputs {
		for _, sk := range Parse(in).Skills {
			assert.True(t, vocab.Contains(sk), "unexpected skill %q", sk)
			assert.Equal(t, strings.ToLower(sk), sk)
		}
	}
}

func TestParse_ExperienceUsesFirstMatch(t *testing.T) {
	assert.Equal(t, 3, Parse("3 Years at Acme, then 10 years elsewhere").ExperienceYears)
	assert.Equal(t, 1, Parse("1 year").ExperienceYears)
	assert.Equal(t, 0, Parse("several years").ExperienceYears)
	assert.Equal(t, 0, Parse("99999999999999999999999 years").ExperienceYears)
}

func TestParse_ExperienceAcceptsAnyDecimalDigits(t *testing.T) {
	assert.Equal(t, 5, Parse("٥ years in finance").ExperienceYears)
	assert.Equal(t, 12, Parse("١٢ years").ExperienceYears)
	assert.Equal(t, 7, Parse("७ years").ExperienceYears)
	assert.Equal(t, 3, Parse("３ years").ExperienceYears)
	assert.Equal(t, 5, Parse("\U0001D7D3 years").ExperienceYears)
	assert.Equal(t, 0, Parse("٩٩٩٩٩٩٩٩٩٩٩٩٩٩٩٩٩٩٩٩٩ years").ExperienceYears)
}

func TestDigitValue(t *testing.T) {
	assert.Equal(t, 0, digitValue('0'))
	assert.Equal(t, 9, digitValue('٩'))
	// Mathematical digits are five sets laid end to end.
	assert.Equal(t, 0, digitValue('\U0001D7CE'))
	assert.Equal(t, 0, digitValue('\U0001D7D8'))
	assert.Equal(t, 9, digitValue('\U0001D7FF'))
	assert.Equal(t, -1, digitValue('x'))
	assert.Equal(t, -1, digitValue('½'))
}

func TestParse_SkillBoundariesAroundSymbols(t *testing.T) {
	assert.Equal(t, []string{"c++", "java"}, Parse("C++ and Java").Skills)
	assert.Equal(t, []string{"c++"}, Parse("(C++)").Skills)
	assert.Empty(t, Parse("C++11").Skills)
	assert.Empty(t, Parse("pythonista").Skills)
	// A combining mark glued to a term extends the word.
	assert.Empty(t, Parse("Java\u0301").Skills)
}

func TestParse_NameHeuristic(t *testing.T) {
	text := "\n\n  \nSenior Software Engineer At Big Company\nbob@example.com\nPhone 555 0100\n  Bob Smith  \n"

	got := Parse(text)

	assert.Equal(t, "Bob Smith", got.Name)
}

func TestParse_NameFallsBackToUnknown(t *testing.T) {
	got := Parse("a b c d e\nx@y.z\nroom 101")
	assert.Equal(t, UnknownName, got.Name)
}

func TestParse_Idempotent(t *testing.T) {
	text := "Ann Lee\nann@lee.io\n7 years Django, Flask, SQL"
	assert.Equal(t, Parse(text), Parse(text))
}

func TestParser_CustomVocabulary(t *testing.T) {
	p := NewParser(ParseVocabulary("Go, Kubernetes, go"))

	got := p.Parse("Built Go services on Kubernetes with Python")

	assert.Equal(t, []string{"go", "kubernetes"}, got.Skills)
}

func TestParseVocabulary_EmptyFallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultVocabulary(), ParseVocabulary(" , ,"))
}
