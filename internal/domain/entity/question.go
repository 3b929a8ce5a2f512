package entity

type AnswerFormat string

const (
	FormatNumber  AnswerFormat = "number"
	FormatString  AnswerFormat = "string"
	FormatBoolean AnswerFormat = "boolean"
	FormatObject  AnswerFormat = "object"
)

// ParsedQuestion is the actionable interpretation of a rendered quiz page.
// DataURL is empty when the question references no external data file.
type ParsedQuestion struct {
	DataURL      string       `json:"data_url"`
	Task         string       `json:"task"`
	SubmitURL    string       `json:"submit_url"`
	AnswerFormat AnswerFormat `json:"answer_format"`
}

func (q *ParsedQuestion) Format() AnswerFormat {
	switch q.AnswerFormat {
	case FormatNumber, FormatBoolean, FormatObject:
		return q.AnswerFormat
	default:
		return FormatString
	}
}
