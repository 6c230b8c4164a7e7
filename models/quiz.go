package models

// QuizQuestion is a single generated practice problem.
type QuizQuestion struct {
	QuestionNumber int      `json:"question_number"`
	Question       string   `json:"question"`
	Difficulty     string   `json:"difficulty"`
	Hint           string   `json:"hint"`
	CorrectAnswer  string   `json:"correct_answer"`
	SolutionSteps  []string `json:"solution_steps"`
}

// QuizSet is the response from /api/quiz/generate.
type QuizSet struct {
	QuizTopic string         `json:"quiz_topic"`
	Questions []QuizQuestion `json:"questions"`
}

// QuizGenerateRequest is the payload for /api/quiz/generate. NumQuestions is
// a pointer so an explicit 0 (clamped to 1) can be told apart from an absent
// field (defaults to 3).
type QuizGenerateRequest struct {
	Topic        string `json:"topic"`
	NumQuestions *int   `json:"num_questions"`
	Difficulty   string `json:"difficulty"`
}

// QuizEvaluateRequest is the payload for /api/quiz/evaluate.
type QuizEvaluateRequest struct {
	Question      string `json:"question"`
	CorrectAnswer string `json:"correct_answer"`
	StudentAnswer string `json:"student_answer"`
}

// Evaluation is the verdict on a student's quiz answer.
type Evaluation struct {
	IsCorrect   bool   `json:"is_correct"`
	Feedback    string `json:"feedback"`
	Explanation string `json:"explanation"`
}
