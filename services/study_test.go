package services

import (
	"context"
	"strings"
	"testing"

	"mathtutor/models"
)

const planJSON = `{
	"problem": "Solve for x: 2x + 5 = 13",
	"problem_type": "Linear Equation",
	"concepts_needed": ["inverse operations"],
	"total_steps": 7,
	"steps": [
		{"step_number": 1, "objective": "Isolate the x term", "instruction": "Undo the +5", "skill_required": "subtraction", "expected_format": "an equation"},
		{"objective": "Solve for x", "instruction": "Undo the coefficient", "skill_required": "division", "expected_format": "a number"}
	],
	"encouragement": "You can do this!"
}`

func TestStartStudyEnforcesTotalSteps(t *testing.T) {
	svc := NewTutorService(&fakeGateway{response: planJSON})

	plan, err := svc.StartStudy(context.Background(), "key", "Solve for x: 2x + 5 = 13")
	if err != nil {
		t.Fatalf("StartStudy error: %v", err)
	}
	// The model claimed 7 steps but delivered 2; len(steps) wins.
	if plan.TotalSteps != len(plan.Steps) {
		t.Errorf("total_steps = %d with %d steps", plan.TotalSteps, len(plan.Steps))
	}
	if plan.Steps[1].StepNumber != 2 {
		t.Errorf("missing step numbers should be backfilled, got %d", plan.Steps[1].StepNumber)
	}
}

func TestStartStudyRejectsEmptyPlan(t *testing.T) {
	svc := NewTutorService(&fakeGateway{response: `{"steps": []}`})
	if _, err := svc.StartStudy(context.Background(), "key", "problem"); err == nil {
		t.Error("expected an error for a plan without steps")
	}
}

func TestStudyHintLevelsAndAvailability(t *testing.T) {
	hintJSON := `{"hint": "Think about inverse operations", "concept_reminder": "Addition undoes subtraction", "encouragement": "Keep going"}`

	cases := []struct {
		level         int
		wantLevel     int
		wantAvailable bool
	}{
		{1, 1, true},
		{2, 2, true},
		{3, 3, false},
		{0, 1, true},  // clamped up
		{9, 3, false}, // clamped down
	}

	for _, tc := range cases {
		gw := &fakeGateway{response: hintJSON}
		svc := NewTutorService(gw)
		hint, err := svc.StudyHint(context.Background(), "key", models.StudyHintRequest{
			Problem:       "Solve for x: 2x + 5 = 13",
			StepNumber:    1,
			StepObjective: "Isolate the x term",
			HintLevel:     tc.level,
		})
		if err != nil {
			t.Fatalf("StudyHint(level %d) error: %v", tc.level, err)
		}
		if hint.HintLevel != tc.wantLevel {
			t.Errorf("level %d: hint_level = %d, want %d", tc.level, hint.HintLevel, tc.wantLevel)
		}
		if hint.NextHintAvailable != tc.wantAvailable {
			t.Errorf("level %d: next_hint_available = %v, want %v", tc.level, hint.NextHintAvailable, tc.wantAvailable)
		}
	}
}

func TestStudyHintDirectiveGrowsWithLevel(t *testing.T) {
	prompts := make([]string, 0, 3)
	for level := 1; level <= 3; level++ {
		gw := &fakeGateway{response: `{"hint": "h"}`}
		svc := NewTutorService(gw)
		if _, err := svc.StudyHint(context.Background(), "key", models.StudyHintRequest{
			Problem: "p", StepNumber: 1, StepObjective: "o", HintLevel: level,
		}); err != nil {
			t.Fatalf("StudyHint error: %v", err)
		}
		prompts = append(prompts, gw.lastPrompt)
	}

	if !strings.Contains(prompts[0], "LEVEL 1") || strings.Contains(prompts[0], "LEVEL 3") {
		t.Error("level 1 prompt carries the wrong directive")
	}
	if !strings.Contains(prompts[2], "withholding only the final arithmetic") {
		t.Error("level 3 prompt should demand a near-complete walk-through")
	}
}

func TestStudyHintNonJSONStillShowsSomething(t *testing.T) {
	svc := NewTutorService(&fakeGateway{response: "Try subtracting 5 from both sides first."})
	hint, err := svc.StudyHint(context.Background(), "key", models.StudyHintRequest{
		Problem: "p", StepNumber: 1, StepObjective: "o", HintLevel: 1,
	})
	if err != nil {
		t.Fatalf("StudyHint error: %v", err)
	}
	if hint.Hint == "" {
		t.Error("non-JSON model output should be surfaced as the hint")
	}
}

func TestStudyCheckClearsFieldsWhenCorrect(t *testing.T) {
	svc := NewTutorService(&fakeGateway{
		response: `{"is_correct": true, "feedback": "Right!", "correct_answer": "2x = 8", "error_type": "none", "encouragement": "Great"}`,
	})
	result, err := svc.StudyCheck(context.Background(), "key", models.StudyCheckRequest{
		Problem: "p", StepNumber: 1, StepObjective: "o", StudentAnswer: "2x = 8",
	})
	if err != nil {
		t.Fatalf("StudyCheck error: %v", err)
	}
	if !result.IsCorrect {
		t.Fatal("expected a correct verdict")
	}
	if result.CorrectAnswer != "" || result.ErrorType != "" {
		t.Errorf("correct_answer/error_type must be empty on a correct answer: %+v", result)
	}
}

func TestStudyCheckKeepsDiagnosisWhenWrong(t *testing.T) {
	svc := NewTutorService(&fakeGateway{
		response: `{"is_correct": false, "feedback": "Sign slipped", "correct_answer": "2x = 8", "error_type": "sign error"}`,
	})
	result, err := svc.StudyCheck(context.Background(), "key", models.StudyCheckRequest{
		Problem: "p", StepNumber: 1, StepObjective: "o", StudentAnswer: "2x = -8",
	})
	if err != nil {
		t.Fatalf("StudyCheck error: %v", err)
	}
	if result.CorrectAnswer != "2x = 8" || result.ErrorType != "sign error" {
		t.Errorf("diagnosis lost: %+v", result)
	}
	if result.Encouragement == "" {
		t.Error("encouragement should be defaulted")
	}
}

func TestStudyStepSolutionUnconditional(t *testing.T) {
	svc := NewTutorService(&fakeGateway{
		response: `{"step_solution": "2x = 8", "explanation": "Subtract 5 from both sides", "key_concept": "inverse operations"}`,
	})
	solution, err := svc.StudyStepSolution(context.Background(), "key", models.StudySolutionRequest{
		Problem: "p", StepNumber: 1, StepObjective: "o",
	})
	if err != nil {
		t.Fatalf("StudyStepSolution error: %v", err)
	}
	if solution.StepSolution != "2x = 8" {
		t.Errorf("step_solution = %q", solution.StepSolution)
	}
}
