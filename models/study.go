package models

// StudyStep is one guided step of a study plan. The instruction tells the
// student what to do without revealing the step's answer.
type StudyStep struct {
	StepNumber     int    `json:"step_number"`
	Objective      string `json:"objective"`
	Instruction    string `json:"instruction"`
	SkillRequired  string `json:"skill_required"`
	ExpectedFormat string `json:"expected_format"`
}

// StudyPlan is the response from /api/study/start. The server keeps no copy
// of it; the client echoes problem, step_number and step_objective on every
// follow-up call.
type StudyPlan struct {
	Problem        string      `json:"problem"`
	ProblemType    string      `json:"problem_type"`
	ConceptsNeeded []string    `json:"concepts_needed"`
	TotalSteps     int         `json:"total_steps"`
	Steps          []StudyStep `json:"steps"`
	Encouragement  string      `json:"encouragement"`
}

// HintResponse is a progressively more specific hint for the current step.
// NextHintAvailable is computed from the level, never taken from the model.
type HintResponse struct {
	Hint              string `json:"hint"`
	HintLevel         int    `json:"hint_level"`
	ConceptReminder   string `json:"concept_reminder"`
	Encouragement     string `json:"encouragement"`
	NextHintAvailable bool   `json:"next_hint_available"`
}

// StepCheckResult is the verdict on a student's answer for one step.
// CorrectAnswer and ErrorType are only meaningful when IsCorrect is false.
type StepCheckResult struct {
	IsCorrect     bool   `json:"is_correct"`
	Feedback      string `json:"feedback"`
	CorrectAnswer string `json:"correct_answer,omitempty"`
	ErrorType     string `json:"error_type,omitempty"`
	Encouragement string `json:"encouragement"`
	Tip           string `json:"tip,omitempty"`
}

// StepSolution is the unconditional reveal of a step's answer.
type StepSolution struct {
	StepSolution string `json:"step_solution"`
	Explanation  string `json:"explanation"`
	KeyConcept   string `json:"key_concept,omitempty"`
	Tip          string `json:"tip,omitempty"`
}

// StudyStartRequest is the payload for /api/study/start.
type StudyStartRequest struct {
	Problem string `json:"problem"`
}

// StudyHintRequest is the payload for /api/study/hint.
type StudyHintRequest struct {
	Problem        string `json:"problem"`
	StepNumber     int    `json:"step_number"`
	StepObjective  string `json:"step_objective"`
	HintLevel      int    `json:"hint_level"`
	StudentAttempt string `json:"student_attempt"`
}

// StudyCheckRequest is the payload for /api/study/check.
type StudyCheckRequest struct {
	Problem        string `json:"problem"`
	StepNumber     int    `json:"step_number"`
	StepObjective  string `json:"step_objective"`
	StudentAnswer  string `json:"student_answer"`
	ExpectedFormat string `json:"expected_format"`
}

// StudySolutionRequest is the payload for /api/study/solution.
type StudySolutionRequest struct {
	Problem       string `json:"problem"`
	StepNumber    int    `json:"step_number"`
	StepObjective string `json:"step_objective"`
}
