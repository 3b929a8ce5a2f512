package analyzer

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	fencePattern       = regexp.MustCompile("```[a-z]*\n")
	answerLabelPattern = regexp.MustCompile(`(?i)^(Answer:|Result:|The answer is:?|Final answer:?|ANSWER:)\s*`)
	numberStripper     = strings.NewReplacer(",", "", " ", "")
)

// CleanAnswer reduces a raw model completion to the bare answer: fences and
// leading labels are stripped, then lines are scanned from the end — the
// first one that is numeric once commas and spaces are removed wins, then the
// last non-empty line, then the whole cleaned string.
func CleanAnswer(raw string) string {
	response := strings.TrimSpace(raw)
	response = fencePattern.ReplaceAllString(response, "")
	response = strings.ReplaceAll(response, "```", "")
	response = answerLabelPattern.ReplaceAllString(response, "")

	lines := strings.Split(response, "\n")

	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		numeric := numberStripper.Replace(line)
		if _, err := strconv.ParseFloat(numeric, 64); err == nil {
			return numeric
		}
	}

	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}

	return strings.TrimSpace(response)
}
