package wordlist

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var alphabeticLine = regexp.MustCompile(`^[a-zA-Z]+$`)

// Parse turns a list body into lowercase terms.
//
// JSON may be an array of strings, an array of objects carrying a "word", "term" or "text" key,
// or an object with a "words" array of either kind. Text is read one term per line and only
// purely alphabetic lines are kept.
func Parse(body []byte, format Format) ([]string, error) {
	if format == FormatAuto || format == "" {
		format = sniff(body)
	}

	switch format {
	case FormatJSON:
		return parseJSON(body)
	case FormatText:
		return parseText(body), nil
	default:
		return nil, fmt.Errorf("unknown word list format: %s", format)
	}
}

func sniff(body []byte) Format {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && (trimmed[0] == '[' || trimmed[0] == '{') {
		return FormatJSON
	}
	return FormatText
}

func parseJSON(body []byte) ([]string, error) {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode word list: %w", err)
	}

	var items []any
	switch v := raw.(type) {
	case []any:
		items = v
	case map[string]any:
		words, ok := v["words"].([]any)
		if !ok {
			return nil, fmt.Errorf("word list object has no words array")
		}
		items = words
	default:
		return nil, fmt.Errorf("unsupported word list shape %T", raw)
	}

	terms := make([]string, 0, len(items))
	for _, item := range items {
		term := normalize(termOf(item))
		if term != "" {
			terms = append(terms, term)
		}
	}
	return terms, nil
}

// termOf extracts the term of one JSON list item
func termOf(item any) string {
	switch v := item.(type) {
	case string:
		return v
	case map[string]any:
		for _, key := range []string{"word", "term", "text"} {
			if s, ok := v[key].(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

func parseText(body []byte) []string {
	lines := strings.Split(string(body), "\n")
	terms := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || !alphabeticLine.MatchString(line) {
			continue
		}
		terms = append(terms, strings.ToLower(line))
	}
	return terms
}

func normalize(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// Truncate returns at most limit terms
func Truncate(terms []string, limit int) []string {
	if limit >= 0 && len(terms) > limit {
		return terms[:limit]
	}
	return terms
}
