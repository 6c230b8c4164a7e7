package models

// Step is one step of a worked solution.
type Step struct {
	StepNumber  int    `json:"step_number"`
	Action      string `json:"action"`
	Explanation string `json:"explanation"`
	Result      string `json:"result"`
}

// SolutionResult is the step-by-step solution returned to the frontend.
// After validation every step carries all four fields and FinalAnswer is
// never a placeholder.
type SolutionResult struct {
	ProblemDetected string   `json:"problem_detected,omitempty"`
	ProblemType     string   `json:"problem_type"`
	Concepts        []string `json:"concepts"`
	Steps           []Step   `json:"steps"`
	FinalAnswer     string   `json:"final_answer"`
	Verification    string   `json:"verification"`
	SourceFile      string   `json:"source_file,omitempty"`
}

// SolveRequest is the payload for /api/solve.
type SolveRequest struct {
	Problem string `json:"problem"`
}
