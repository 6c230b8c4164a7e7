package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"mathtutor/models"
)

// The study session is stateless on the server: the plan produced by
// StartStudy lives with the client, which echoes problem, step_number and
// step_objective on every hint/check/reveal call. The server does not check
// the echoed step against the plan it originally produced.

const maxHintLevel = 3

// StartStudy breaks a problem into guided steps. The returned plan's
// total_steps always equals len(steps), whatever the model claimed.
func (s *TutorService) StartStudy(ctx context.Context, apiKey, problem string) (models.StudyPlan, error) {
	raw, err := s.LLM.Generate(ctx, apiKey, buildStudyStartPrompt(problem), nil)
	if err != nil {
		return models.StudyPlan{}, err
	}

	cleaned, err := ExtractJSON(raw)
	if err != nil {
		return models.StudyPlan{}, fmt.Errorf("study plan response: %w", err)
	}
	var plan models.StudyPlan
	if err := json.Unmarshal([]byte(cleaned), &plan); err != nil {
		return models.StudyPlan{}, fmt.Errorf("parse study plan: %v", err)
	}
	if len(plan.Steps) == 0 {
		return models.StudyPlan{}, fmt.Errorf("study plan contained no steps")
	}

	if strings.TrimSpace(plan.Problem) == "" {
		plan.Problem = problem
	}
	if plan.ConceptsNeeded == nil {
		plan.ConceptsNeeded = []string{}
	}
	for i := range plan.Steps {
		if plan.Steps[i].StepNumber == 0 {
			plan.Steps[i].StepNumber = i + 1
		}
	}
	plan.TotalSteps = len(plan.Steps)
	if strings.TrimSpace(plan.Encouragement) == "" {
		plan.Encouragement = "Let's work through this together, one step at a time."
	}
	return plan, nil
}

// StudyHint produces a hint for the current step. Specificity grows with the
// level: 1 is a concept reminder, 2 points at the setup, 3 walks through
// everything but the final arithmetic. next_hint_available is a pure function
// of the level, never taken from the model.
func (s *TutorService) StudyHint(ctx context.Context, apiKey string, req models.StudyHintRequest) (models.HintResponse, error) {
	level := clampHintLevel(req.HintLevel)

	raw, err := s.LLM.Generate(ctx, apiKey,
		buildStudyHintPrompt(req.Problem, req.StepNumber, req.StepObjective, level, req.StudentAttempt), nil)
	if err != nil {
		return models.HintResponse{}, err
	}

	var hint models.HintResponse
	if cleaned, jsonErr := ExtractJSON(raw); jsonErr == nil {
		if err := json.Unmarshal([]byte(cleaned), &hint); err != nil {
			hint = models.HintResponse{}
		}
	}
	if strings.TrimSpace(hint.Hint) == "" {
		// Whatever the model said, show it rather than nothing.
		hint.Hint = strings.TrimSpace(raw)
	}
	if strings.TrimSpace(hint.Encouragement) == "" {
		hint.Encouragement = "You're closer than you think."
	}
	return finalizeHint(hint, level), nil
}

// StudyCheck judges the student's answer for one step.
func (s *TutorService) StudyCheck(ctx context.Context, apiKey string, req models.StudyCheckRequest) (models.StepCheckResult, error) {
	raw, err := s.LLM.Generate(ctx, apiKey,
		buildStudyCheckPrompt(req.Problem, req.StepNumber, req.StepObjective, req.StudentAnswer, req.ExpectedFormat), nil)
	if err != nil {
		return models.StepCheckResult{}, err
	}

	cleaned, err := ExtractJSON(raw)
	if err != nil {
		return models.StepCheckResult{}, fmt.Errorf("step check response: %w", err)
	}
	var result models.StepCheckResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return models.StepCheckResult{}, fmt.Errorf("parse step check: %v", err)
	}

	if result.IsCorrect {
		// These fields only mean something for a wrong answer.
		result.CorrectAnswer = ""
		result.ErrorType = ""
	}
	if strings.TrimSpace(result.Encouragement) == "" {
		if result.IsCorrect {
			result.Encouragement = "Nice work, keep going!"
		} else {
			result.Encouragement = "Mistakes are part of learning. Try again!"
		}
	}
	return result, nil
}

// StudyStepSolution reveals the answer for one step, with no correctness
// gate. Used when the student gives up on a step.
func (s *TutorService) StudyStepSolution(ctx context.Context, apiKey string, req models.StudySolutionRequest) (models.StepSolution, error) {
	raw, err := s.LLM.Generate(ctx, apiKey,
		buildStudySolutionPrompt(req.Problem, req.StepNumber, req.StepObjective), nil)
	if err != nil {
		return models.StepSolution{}, err
	}

	var solution models.StepSolution
	if cleaned, jsonErr := ExtractJSON(raw); jsonErr == nil {
		if err := json.Unmarshal([]byte(cleaned), &solution); err != nil {
			solution = models.StepSolution{}
		}
	}
	if strings.TrimSpace(solution.StepSolution) == "" {
		solution.StepSolution = strings.TrimSpace(raw)
	}
	if strings.TrimSpace(solution.Explanation) == "" {
		solution.Explanation = "Follow the working above to see how this step is done."
	}
	return solution, nil
}

func clampHintLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > maxHintLevel {
		return maxHintLevel
	}
	return level
}

// finalizeHint pins the level-derived fields regardless of model output.
func finalizeHint(hint models.HintResponse, level int) models.HintResponse {
	hint.HintLevel = level
	hint.NextHintAvailable = level < maxHintLevel
	return hint
}
