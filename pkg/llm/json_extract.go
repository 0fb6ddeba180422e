package llm

import (
	"strings"
)

// ExtractJSONObject strips markdown fences and surrounding prose, returning the
// first balanced JSON object in the completion, or the trimmed input if none.
func ExtractJSONObject(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	if start == -1 {
		return response
	}
	if end := findMatchingBrace(response, start); end != -1 {
		return response[start : end+1]
	}
	return response
}

// findMatchingBrace returns the index of the brace closing s[start], ignoring braces inside strings.
func findMatchingBrace(s string, start int) int {
	if start >= len(s) || s[start] != '{' {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
