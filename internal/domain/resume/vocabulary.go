// Package resume extracts candidate attributes from free-form resume text and
// scores them against a list of desired skills.
//
// Both the parser and the scorer are pure: they hold only immutable
// configuration, perform no I/O and are safe for concurrent use.
package resume

import (
	"strings"
)

// Vocabulary is the closed list of skill terms the parser recognises.
// Terms are matched case-insensitively as whole words and reported lowercased.
type Vocabulary []string

var defaultTerms = []string{
	"Python", "JavaScript", "React", "Django", "Flask", "SQL", "Node",
	"HTML", "CSS", "Java", "C++", "AWS", "Docker", "TensorFlow",
}

func DefaultVocabulary() Vocabulary {
	out := make(Vocabulary, len(defaultTerms))
	copy(out, defaultTerms)
	return out
}

// ParseVocabulary builds a vocabulary from a comma-separated list. Blank and
// duplicate (case-insensitive) entries are dropped. An empty result falls back
// to the default vocabulary.
func ParseVocabulary(csv string) Vocabulary {
	seen := map[string]struct{}{}
	out := make(Vocabulary, 0)
	for _, raw := range strings.Split(csv, ",") {
		term := strings.TrimSpace(raw)
		if term == "" {
			continue
		}
		key := strings.ToLower(term)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, term)
	}
	if len(out) == 0 {
		return DefaultVocabulary()
	}
	return out
}

func (v Vocabulary) Contains(skill string) bool {
	skill = strings.ToLower(strings.TrimSpace(skill))
	for _, t := range v {
		if strings.ToLower(t) == skill {
			return true
		}
	}
	return false
}
