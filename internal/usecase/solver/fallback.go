package solver

import (
	"regexp"
	"strings"

	"quiz-solver/internal/domain/entity"
)

var urlPattern = regexp.MustCompile("https?://[^\\s<>\"{}|\\\\^`\\[\\]]+")

var dataExtensions = []string{".pdf", ".csv", ".json", ".xlsx", ".xls"}

const fallbackTask = "Analyze the data and provide the answer as requested in the question"

// fallbackParse classifies every well-formed URL in the question text:
// submit/answer substrings mark the submission target, recognized data
// extensions mark the data source. With no classified submission URL the last
// URL in the text is used.
func fallbackParse(questionText string) *entity.ParsedQuestion {
	urls := urlPattern.FindAllString(questionText, -1)

	var dataURL, submitURL string
	for _, u := range urls {
		lower := strings.ToLower(u)
		switch {
		case strings.Contains(lower, "submit") || strings.Contains(lower, "answer"):
			submitURL = u
		case hasDataExtension(lower):
			dataURL = u
		}
	}

	if submitURL == "" && len(urls) > 0 {
		submitURL = urls[len(urls)-1]
	}

	return &entity.ParsedQuestion{
		DataURL:      dataURL,
		Task:         fallbackTask,
		SubmitURL:    submitURL,
		AnswerFormat: entity.FormatString,
	}
}

func hasDataExtension(lowerURL string) bool {
	for _, ext := range dataExtensions {
		if strings.Contains(lowerURL, ext) {
			return true
		}
	}
	return false
}
