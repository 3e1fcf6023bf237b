package llm

import (
	"encoding/json"
	"errors"
	"strings"
)

var ErrNoJSONObject = errors.New("no json object in text")

// ExtractJSONObject decodes the first JSON object in text, starting at the
// first '{'. Markdown fences and trailing prose are tolerated.
func ExtractJSONObject(text string) (map[string]any, error) {
	text = cleanJSONBlock(text)
	start := strings.Index(text, "{")
	if start == -1 {
		return nil, ErrNoJSONObject
	}

	dec := json.NewDecoder(strings.NewReader(text[start:]))
	dec.UseNumber()
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, ErrNoJSONObject
	}
	return out, nil
}

func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
