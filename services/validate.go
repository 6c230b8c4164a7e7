package services

import (
	"fmt"
	"strings"

	"mathtutor/models"
)

// nonAnswerSentinels are placeholder strings the model emits when it has no
// real answer. Matching is by substring, case-insensitive.
var nonAnswerSentinels = []string{
	"n/a",
	"unable to determine",
	"see steps above",
	"no math problem found",
	"could not identify",
	"unable to solve",
}

const noAnswerMessage = "The final answer could not be determined from this response. Please try rephrasing the problem or entering it as text."

// IsNonAnswer reports whether a candidate answer is effectively absent.
func IsNonAnswer(s string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	if trimmed == "" || trimmed == "null" || trimmed == "none" {
		return true
	}
	for _, sentinel := range nonAnswerSentinels {
		if strings.Contains(trimmed, sentinel) {
			return true
		}
	}
	return false
}

// ValidateSolution post-processes a normalized solution so the client never
// receives a structurally incomplete object. It is total: whatever comes in,
// a complete SolutionResult comes out. source describes where the problem
// came from ("text input", a filename) and is used in placeholder text.
func ValidateSolution(sol models.SolutionResult, source string) models.SolutionResult {
	if strings.TrimSpace(sol.ProblemDetected) == "" {
		sol.ProblemDetected = fmt.Sprintf("Math problem from %s", source)
	}
	if strings.TrimSpace(sol.ProblemType) == "" {
		sol.ProblemType = "Math Problem"
	}
	if sol.Concepts == nil {
		sol.Concepts = []string{}
	}

	if hasUsableStep(sol.Steps) {
		for i := range sol.Steps {
			if sol.Steps[i].StepNumber == 0 {
				sol.Steps[i].StepNumber = i + 1
			}
			if strings.TrimSpace(sol.Steps[i].Action) == "" {
				sol.Steps[i].Action = fmt.Sprintf("Step %d", i+1)
			}
			if strings.TrimSpace(sol.Steps[i].Explanation) == "" {
				sol.Steps[i].Explanation = "See the result for this step."
			}
			if IsNonAnswer(sol.Steps[i].Result) {
				sol.Steps[i].Result = ""
			}
		}
	} else {
		sol.Steps = []models.Step{syntheticStep(sol.FinalAnswer)}
	}

	if IsNonAnswer(sol.FinalAnswer) {
		if last := lastUsableResult(sol.Steps); last != "" {
			sol.FinalAnswer = last
		} else {
			sol.FinalAnswer = noAnswerMessage
		}
	}

	if IsNonAnswer(sol.Verification) {
		sol.Verification = "Substitute the answer back into the original problem to verify it."
	}

	return sol
}

// hasUsableStep reports whether at least one step carries a real result. A
// list of steps that are all placeholders is no better than no steps.
func hasUsableStep(steps []models.Step) bool {
	for _, s := range steps {
		if !IsNonAnswer(s.Result) {
			return true
		}
	}
	return false
}

func lastUsableResult(steps []models.Step) string {
	for i := len(steps) - 1; i >= 0; i-- {
		if !IsNonAnswer(steps[i].Result) {
			return strings.TrimSpace(steps[i].Result)
		}
	}
	return ""
}

// syntheticStep replaces an unusable step list with a single step, echoing
// the final answer when there is one and a retry hint when there is not.
func syntheticStep(finalAnswer string) models.Step {
	if !IsNonAnswer(finalAnswer) {
		return models.Step{
			StepNumber:  1,
			Action:      "Solution",
			Explanation: "The answer was determined directly.",
			Result:      strings.TrimSpace(finalAnswer),
		}
	}
	return models.Step{
		StepNumber:  1,
		Action:      "Processing issue",
		Explanation: "The solution could not be read from the tutor's response. Please try again, or type the problem as text.",
		Result:      "",
	}
}
