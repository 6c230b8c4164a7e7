package services

import (
	"encoding/json"
	"testing"
)

func TestExtractJSONStripsFencesAndProse(t *testing.T) {
	want := `{"final_answer": "x = 4"}`

	variants := []string{
		want,
		"```json\n" + want + "\n```",
		"```JSON\n" + want + "\n```",
		"```\n" + want + "\n```",
		"Here is the solution you asked for:\n```json\n" + want + "\n```\nLet me know if you need more help!",
		"Sure! " + want + " Hope that helps.",
	}

	for _, raw := range variants {
		got, err := ExtractJSON(raw)
		if err != nil {
			t.Errorf("ExtractJSON(%q) returned error: %v", raw, err)
			continue
		}
		var parsed map[string]string
		if err := json.Unmarshal([]byte(got), &parsed); err != nil {
			t.Errorf("ExtractJSON(%q) produced unparseable JSON %q: %v", raw, got, err)
			continue
		}
		if parsed["final_answer"] != "x = 4" {
			t.Errorf("ExtractJSON(%q) lost content, got %q", raw, got)
		}
	}
}

func TestExtractJSONEmptyInput(t *testing.T) {
	got, err := ExtractJSON("")
	if err != nil {
		t.Fatalf("ExtractJSON(\"\") returned error: %v", err)
	}
	if got != "{}" {
		t.Errorf("ExtractJSON(\"\") = %q, want {}", got)
	}
}

func TestExtractJSONNoBraces(t *testing.T) {
	if _, err := ExtractJSON("I am sorry, I cannot help with that."); err == nil {
		t.Error("expected an error for output without JSON")
	}
}

func TestNormalizeSolutionMalformedNeverEmpty(t *testing.T) {
	raws := []string{
		"The solution is simple.\nThe answer is: 42",
		"{broken json",
		"no braces at all",
		"```json\n{\"steps\": [}\n```",
	}

	for _, raw := range raws {
		sol := NormalizeSolution(raw, "text input")
		if len(sol.Steps) < 1 {
			t.Errorf("NormalizeSolution(%q) returned no steps", raw)
		}
	}
}

func TestNormalizeSolutionFallbackSalvagesAnswer(t *testing.T) {
	raw := "Let me work through this.\nFirst we subtract 5 from both sides.\nThe answer is: x = 4"
	sol := NormalizeSolution(raw, "text input")

	if sol.FinalAnswer != "x = 4" {
		t.Errorf("salvaged answer = %q, want %q", sol.FinalAnswer, "x = 4")
	}
	if len(sol.Steps) != 1 {
		t.Fatalf("fallback should wrap raw text into one step, got %d", len(sol.Steps))
	}
	if sol.Steps[0].Result == "" {
		t.Error("fallback step carries no content")
	}
}

func TestSalvageAnswerColonBeforeEquals(t *testing.T) {
	// A colon introducing the answer must win over any '=' inside it.
	cases := map[string]string{
		"The answer is: x = 4":         "x = 4",
		"Answer: y = 2x + 1":           "y = 2x + 1",
		"So the final answer is: 0.75": "0.75",
	}
	for line, want := range cases {
		if got := salvageAnswer(line); got != want {
			t.Errorf("salvageAnswer(%q) = %q, want %q", line, got, want)
		}
	}
}

func TestSalvageAnswerEqualsSign(t *testing.T) {
	got := salvageAnswer("so the final answer = 7")
	if got != "7" {
		t.Errorf("salvageAnswer = %q, want 7", got)
	}
}

func TestSalvageAnswerNothingFound(t *testing.T) {
	if got := salvageAnswer("no conclusion here"); got != "" {
		t.Errorf("salvageAnswer = %q, want empty", got)
	}
}

func TestNormalizeSolutionValidJSON(t *testing.T) {
	raw := "```json\n" + `{
		"problem_type": "Linear Equation",
		"concepts": ["algebra"],
		"steps": [{"step_number": 1, "action": "Subtract 5", "explanation": "Isolate the term", "result": "2x = 8"}],
		"final_answer": "x = 4",
		"verification": "Substitute x = 4"
	}` + "\n```"

	sol := NormalizeSolution(raw, "text input")
	if sol.ProblemType != "Linear Equation" {
		t.Errorf("problem_type = %q", sol.ProblemType)
	}
	if sol.FinalAnswer != "x = 4" {
		t.Errorf("final_answer = %q", sol.FinalAnswer)
	}
	if len(sol.Steps) != 1 || sol.Steps[0].Result != "2x = 8" {
		t.Errorf("steps not preserved: %+v", sol.Steps)
	}
}
