package prompts

import "fmt"

// ParseQuestion instructs the model to reduce a rendered quiz page to the
// four fields the solver acts on. The worked example keeps weaker models on
// the strict-JSON rails.
func ParseQuestion(questionText string) string {
	return fmt.Sprintf(`Analyze this quiz question and extract key information.

QUESTION TEXT:
%s

Extract and return a JSON object with these fields:
1. "data_url": URL where data needs to be downloaded (or null if no download)
2. "task": Clear description of the calculation/analysis needed
3. "submit_url": URL where the answer should be POSTed
4. "answer_format": "number", "string", "boolean", or "object"

Return ONLY valid JSON, no other text.

Example:
{
    "data_url": "https://example.com/data.pdf",
    "task": "Calculate the sum of the 'amount' column on page 2",
    "submit_url": "https://example.com/submit",
    "answer_format": "number"
}

JSON:`, questionText)
}

// DirectAnswer is used when the question carries no data file: the model
// answers from the task and a leading excerpt of the page itself.
func DirectAnswer(task, excerpt, answerFormat string) string {
	return fmt.Sprintf(`Answer this question directly.

QUESTION: %s

CONTEXT:
%s

Provide ONLY the answer. Format: %s
No explanation, just the answer.

ANSWER:`, task, excerpt, answerFormat)
}

// Analysis embeds a bounded rendering of the downloaded data and demands a
// bare final answer.
func Analysis(task, dataBlock string) string {
	return fmt.Sprintf(`You are a data analyst. Analyze the data and answer the question precisely.

TASK: %s

DATA:
%s

INSTRUCTIONS:
1. Read the task carefully
2. Analyze the provided data
3. Calculate or extract the required information
4. Provide ONLY the final answer
5. If it's a number, provide just the number (no commas, no units unless specified)
6. If it's text, provide just the text
7. Do NOT include explanations or reasoning

ANSWER:`, task, dataBlock)
}

// TranscribePage is the vision fallback for pages that render no extractable
// text.
const TranscribePage = `This is a screenshot of a quiz question page. Transcribe every piece of visible text exactly as shown, including any URLs. Return only the transcription.`
