package outline

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Parse turns raw model output into an Outline. Code fences around the
// JSON (with or without a language tag) are tolerated; anything that
// still fails to parse is a hard error carrying the offending text so
// the failure is diagnosable.
func Parse(raw string) (*Outline, error) {
	text := stripCodeFences(raw)

	var out Outline
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		if s := findFirstJSON(text); s != "" {
			if err2 := json.Unmarshal([]byte(s), &out); err2 == nil {
				return &out, nil
			}
		}
		return nil, fmt.Errorf("model did not return valid JSON: %w; response was: %s", err, raw)
	}
	return &out, nil
}

// stripCodeFences removes a surrounding markdown code fence like
// ```json ... ``` and trims whitespace.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if i := strings.Index(s, "\n"); i != -1 {
			s = s[i+1:]
		}
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}

// findFirstJSON scans for the first balanced {...} object in s.
func findFirstJSON(s string) string {
	start := -1
	depth := 0
	for i, r := range s {
		if r == '{' {
			if start == -1 {
				start = i
			}
			depth++
		} else if r == '}' {
			if start != -1 {
				depth--
				if depth == 0 {
					return s[start : i+1]
				}
			}
		}
	}
	return ""
}
