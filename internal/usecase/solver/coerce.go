package solver

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"quiz-solver/internal/domain/entity"
)

var numberStripper = strings.NewReplacer(",", "", " ", "")

var truthyAnswers = map[string]bool{
	"true":    true,
	"1":       true,
	"yes":     true,
	"correct": true,
	"y":       true,
}

// coerceAnswer shapes the cleaned answer to the declared format. Coercion is
// best effort: a number that will not parse goes out unchanged rather than
// being dropped.
func coerceAnswer(answer any, format entity.AnswerFormat) any {
	switch format {
	case entity.FormatNumber:
		clean := strings.TrimSpace(numberStripper.Replace(stringify(answer)))
		f, err := strconv.ParseFloat(clean, 64)
		if err != nil {
			return answer
		}
		if strings.Contains(clean, ".") {
			return f
		}
		return int64(f)

	case entity.FormatBoolean:
		return truthyAnswers[strings.ToLower(strings.TrimSpace(stringify(answer)))]

	case entity.FormatObject:
		s, ok := answer.(string)
		if !ok {
			return answer
		}
		var decoded any
		if err := json.Unmarshal([]byte(s), &decoded); err != nil {
			return map[string]any{"value": s}
		}
		return decoded

	default:
		return strings.TrimSpace(stringify(answer))
	}
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
