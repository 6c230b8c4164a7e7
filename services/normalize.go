package services

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"mathtutor/models"
)

// ErrNoJSON is returned when the model output contains no JSON object at all.
var ErrNoJSON = errors.New("no valid JSON found in response")

var fenceRe = regexp.MustCompile("```[a-zA-Z]*")

// ExtractJSON coerces raw model output into a parseable JSON string. The
// model is instructed to return bare JSON, but that is not enforceable: it
// regularly wraps the object in markdown fences or pads it with prose. All
// fence variants are stripped anywhere in the text, then the slice from the
// first '{' to the last '}' is taken.
func ExtractJSON(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "{}", nil
	}

	text := fenceRe.ReplaceAllString(raw, "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", ErrNoJSON
	}
	return strings.TrimSpace(text[start : end+1]), nil
}

// NormalizeSolution parses raw model output into a SolutionResult. It never
// fails: when the output is not JSON the raw text is wrapped into a single
// explanatory step and an answer is salvaged from the text if one can be
// found, because free text from the model must not abort the user-facing
// flow.
func NormalizeSolution(raw, source string) models.SolutionResult {
	cleaned, err := ExtractJSON(raw)
	if err == nil {
		var sol models.SolutionResult
		if jsonErr := json.Unmarshal([]byte(cleaned), &sol); jsonErr == nil {
			return sol
		}
	}
	return fallbackSolution(raw, source)
}

// fallbackSolution builds a best-effort result from non-JSON model output.
func fallbackSolution(raw, source string) models.SolutionResult {
	return models.SolutionResult{
		ProblemType: "Math Problem",
		Concepts:    []string{},
		Steps: []models.Step{
			{
				StepNumber:  1,
				Action:      "Solution",
				Explanation: "The tutor's response, shown as given:",
				Result:      strings.TrimSpace(raw),
			},
		},
		FinalAnswer:  salvageAnswer(raw),
		Verification: "Review the explanation above and verify the result against the original problem.",
		SourceFile:   source,
	}
}

// salvageAnswer scans free text for a line that looks like it states the
// answer. This is a last-resort heuristic, not a parser: any line containing
// the word "answer" together with ':' or '=' qualifies, and the portion after
// the separator is taken. ':' is tried first so "The answer is: x = 4" keeps
// the whole equation instead of truncating at the '='. Returns "" when
// nothing qualifies; the validator backfills from the steps.
func salvageAnswer(raw string) string {
	for _, line := range strings.Split(raw, "\n") {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "answer") {
			continue
		}
		for _, sep := range []string{":", "="} {
			if i := strings.LastIndex(line, sep); i != -1 && i+1 < len(line) {
				if candidate := strings.TrimSpace(line[i+1:]); candidate != "" {
					return candidate
				}
			}
		}
	}
	return ""
}
