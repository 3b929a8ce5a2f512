package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ExtractJSON unwraps a JSON payload from a model completion: fenced
// ` ```json ` blocks first, then bare fences, then validation of the
// remainder. When the text still does not parse, the first {...} span is
// taken as a last resort. The result is best effort and may be invalid; the
// caller decides how to degrade.
func ExtractJSON(text string) string {
	result := text

	if strings.Contains(result, "```json") {
		parts := strings.SplitN(result, "```json", 2)
		result = strings.TrimSpace(strings.SplitN(parts[1], "```", 2)[0])
	} else if strings.Contains(result, "```") {
		parts := strings.SplitN(result, "```", 3)
		if len(parts) >= 2 {
			result = strings.TrimSpace(parts[1])
		}
	}

	if json.Valid([]byte(result)) {
		return result
	}

	if match := jsonObjectPattern.FindString(result); match != "" {
		return match
	}
	return result
}
