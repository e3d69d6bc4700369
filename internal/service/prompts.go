package service

import (
	"fmt"
	"strings"

	"github.com/nkuroda/purposesurvey/internal/model"
)

// Sampling parameters shared by question generation and summary calls.
const (
	llmTemperature = 0.7
	llmMaxTokens   = 4096
)

// stripCodeFences removes an optional markdown fence wrapper from an LLM
// reply before JSON parsing.
func stripCodeFences(raw string) string {
	text := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(text, "```json"):
		text = strings.TrimPrefix(text, "```json")
	case strings.HasPrefix(text, "```"):
		text = strings.TrimPrefix(text, "```")
	default:
		return text
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

func buildGenerationPrompt(title, description string) string {
	return fmt.Sprintf(`You are an expert survey designer. Based on the goal below, generate survey questions that collect the information needed to achieve it.

Goal: %s
Details: %s

Generate between 3 and 10 questions that satisfy all of the following:
1. Each question collects information needed to achieve the goal.
2. Each question is easy for respondents to answer.
3. Each question uses the most suitable format (single choice, multiple choice, free text, number, date, ...).

Question formats:
- single_choice: pick one option (options required)
- multi_choice: pick several options (options required)
- text: free text
- number: numeric input
- date: date picker
- scale: scale such as 1-5 (options required)
- rating: rating such as 1-5 stars (options required)
- range: range selection
- tags: tag selection (options required)

Constraints that keep the answers aggregatable:
1. Avoid text questions where possible; prefer single_choice / multi_choice / range / number / scale. For amounts or budgets, offer explicit numeric brackets (e.g. 1000-1500, 1500-2000) to choose from.
2. Options must be mutually exclusive, with no overlapping boundaries, and quantitative; vague wording such as "cheap" or "expensive" is forbidden.
3. Keep option lists appropriately sized for the goal, typically 3 to 6 per question.
4. Every option list must end with an opt-out choice such as "Other", "None in particular", or "No preference", worded to fit the question.
5. Keep yes/no questions an unambiguous Yes/No; if a middle option is added, name it so its meaning is clear.
6. Conform exactly to the JSON shape below: no type drift (numbers returned as strings, missing ids), and every id a unique string (q1, q2, q3...).
7. Do not produce questions that are hard to aggregate: vague free-text prompts, options with ambiguous or overlapping meaning, or unclear intent (e.g. "What do you think?").
8. When a text question is unavoidable, treat it as excluded from aggregation and keep such questions rare.
9. Never insert a specific place name into a question unless the goal text itself mentions it.
10. For location or area questions, use free text or broad categories plus free text; do not fix concrete place names as options.

Respond in this JSON format:
[
  {
    "id": "q1",
    "label": "Question text",
    "type": "question format",
    "options": ["Option 1", "Option 2"],
    "required": true
  }
]

Output nothing but JSON.`, title, description)
}

func buildSummaryPrompt(title, description string, questions []model.Question, answerSets [][]model.Answer) string {
	labels := make(map[string]string, len(questions))
	var questionList strings.Builder
	for i, q := range questions {
		labels[q.ID] = q.Label
		fmt.Fprintf(&questionList, "Question %d: %s (format: %s)\n", i+1, q.Label, q.Type)
	}

	var transcript strings.Builder
	for i, answers := range answerSets {
		if i > 0 {
			transcript.WriteString("\n")
		}
		fmt.Fprintf(&transcript, "Respondent %d:\n", i+1)
		for _, a := range answers {
			value := "unanswered"
			if !a.Value.IsNull() {
				value = a.Value.String()
			}
			fmt.Fprintf(&transcript, "  %s: %s\n", labels[a.QuestionID], value)
		}
	}

	var b strings.Builder
	b.WriteString("You are an expert data analyst. Analyze the survey results below and produce a summary and recommended actions.\n\n")
	fmt.Fprintf(&b, "Goal: %s\nDetails: %s\n\n", title, description)
	fmt.Fprintf(&b, "Questions:\n%s\n", questionList.String())
	fmt.Fprintf(&b, "Response data (%d total):\n%s\n", len(answerSets), transcript.String())
	b.WriteString(`Produce the following two items:
1. insights: a 5-10 line summary of the trends, conditions, and constraints visible in the responses
2. recommendations: 3-5 concrete actions that help achieve the goal

Respond in this JSON format:
{
  "insights": "summary...",
  "recommendations": "recommended actions..."
}

Output nothing but JSON.`)
	return b.String()
}
