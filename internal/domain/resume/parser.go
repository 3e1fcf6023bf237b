package resume

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

const UnknownName = "Unknown"

const maxNameTokens = 4

type ParsedResume struct {
	Name            string   `json:"name"`
	Email           *string  `json:"email"`
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experience_years"`
}

type skillTerm struct {
	name string
	re   *regexp.Regexp
}

// Parser holds the compiled patterns for one vocabulary.
type Parser struct {
	terms   []skillTerm
	yearsRe *regexp.Regexp
	emailRe *regexp.Regexp
}

func NewParser(vocab Vocabulary) *Parser {
	if len(vocab) == 0 {
		vocab = DefaultVocabulary()
	}

	p := &Parser{
		yearsRe: regexp.MustCompile(`(?i)(\p{Nd}+)\s+years?`),
		emailRe: regexp.MustCompile(`[\p{L}\p{N}_.-]+@[\p{L}\p{N}_.-]+\.[\p{L}\p{N}_]+`),
	}
	for _, t := range vocab {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		p.terms = append(p.terms, skillTerm{
			name: strings.ToLower(t),
			re:   regexp.MustCompile(`(?i)` + regexp.QuoteMeta(t)),
		})
	}
	return p
}

var defaultParser = NewParser(DefaultVocabulary())

// Parse runs the default-vocabulary parser.
func Parse(text string) ParsedResume {
	return defaultParser.Parse(text)
}

// Parse never fails; each field falls back to its default independently.
func (p *Parser) Parse(text string) ParsedResume {
	return ParsedResume{
		Name:            p.name(text),
		Email:           p.email(text),
		Skills:          p.skills(text),
		ExperienceYears: p.experienceYears(text),
	}
}

func (p *Parser) skills(text string) []string {
	set := map[string]struct{}{}
	for _, t := range p.terms {
		if _, ok := set[t.name]; ok {
			continue
		}
		if containsWord(text, t.re) {
			set[t.name] = struct{}{}
		}
	}

	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// containsWord reports whether re matches somewhere in text without a word
// character directly before or after the match.
func containsWord(text string, re *regexp.Regexp) bool {
	for _, loc := range re.FindAllStringIndex(text, -1) {
		if isWordBoundary(text, loc[0], loc[1]) {
			return true
		}
	}
	return false
}

func isWordBoundary(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

func (p *Parser) experienceYears(text string) int {
	m := p.yearsRe.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, ok := decimalValue(m[1])
	if !ok {
		return 0
	}
	return n
}

// decimalValue reads a run of decimal digits from any script. It reports
// false on overflow.
func decimalValue(s string) (int, bool) {
	n := 0
	for _, r := range s {
		d := digitValue(r)
		if d < 0 || n > (math.MaxInt-d)/10 {
			return 0, false
		}
		n = n*10 + d
	}
	return n, true
}

// digitValue maps a decimal digit rune to 0-9, or -1. Unicode encodes every
// decimal digit set as a contiguous 0..9 run, and some sets sit back to back.
func digitValue(r rune) int {
	if r >= '0' && r <= '9' {
		return int(r - '0')
	}
	if !unicode.IsDigit(r) {
		return -1
	}
	start := r
	for unicode.IsDigit(start - 1) {
		start--
	}
	return int(r-start) % 10
}

func (p *Parser) email(text string) *string {
	m := p.emailRe.FindString(text)
	if m == "" {
		return nil
	}
	return &m
}

func (p *Parser) name(text string) string {
	for _, line := range splitLines(text) {
		s := strings.TrimSpace(line)
		if s == "" {
			continue
		}
		if len(strings.Fields(s)) > maxNameTokens {
			continue
		}
		if strings.Contains(s, "@") {
			continue
		}
		if strings.IndexFunc(s, unicode.IsDigit) >= 0 {
			continue
		}
		return s
	}
	return UnknownName
}

func splitLines(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		switch r {
		case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
			return true
		}
		return false
	})
}
