package entity

import "encoding/json"

// SubmissionResult is the grading endpoint's verdict. URL, when present,
// points at the next question in the chain. Extra preserves any response
// fields the contract does not name.
type SubmissionResult struct {
	Correct *bool
	URL     string
	Error   string
	Details string
	Extra   map[string]any
}

func (r *SubmissionResult) IsCorrect() bool {
	return r.Correct != nil && *r.Correct
}

func (r *SubmissionResult) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = SubmissionResult{}
	for key, val := range raw {
		switch key {
		case "correct":
			if b, ok := val.(bool); ok {
				r.Correct = &b
			}
		case "url":
			if s, ok := val.(string); ok {
				r.URL = s
			}
		case "error":
			if s, ok := val.(string); ok {
				r.Error = s
			}
		case "details":
			if s, ok := val.(string); ok {
				r.Details = s
			}
		default:
			if r.Extra == nil {
				r.Extra = make(map[string]any)
			}
			r.Extra[key] = val
		}
	}
	return nil
}

func (r *SubmissionResult) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Extra)+4)
	for k, v := range r.Extra {
		out[k] = v
	}
	if r.Correct != nil {
		out["correct"] = *r.Correct
	}
	if r.URL != "" {
		out["url"] = r.URL
	}
	if r.Error != "" {
		out["error"] = r.Error
	}
	if r.Details != "" {
		out["details"] = r.Details
	}
	return json.Marshal(out)
}

// ChainResult is the run summary for one chain. LastError carries the reason
// a run stopped early; the count of attempted questions is reported either way.
type ChainResult struct {
	QuestionsSolved int    `json:"questions_solved"`
	LastError       string `json:"error,omitempty"`
}
