package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"mathtutor/extract"
	"mathtutor/models"
)

// minUsableTextLen is the threshold below which extracted document text is
// considered too thin to solve from, forcing the vision path.
const minUsableTextLen = 20

// TutorService orchestrates prompt composition, the gateway call and response
// normalization for every capability.
type TutorService struct {
	LLM Gateway
}

func NewTutorService(llm Gateway) *TutorService {
	return &TutorService{LLM: llm}
}

// SolveText solves a typed-in problem. Gateway failures propagate; anything
// the model actually said is normalized and validated into a complete result.
func (s *TutorService) SolveText(ctx context.Context, apiKey, problem string) (models.SolutionResult, error) {
	raw, err := s.LLM.Generate(ctx, apiKey, buildSolvePrompt(problem), nil)
	if err != nil {
		return models.SolutionResult{}, err
	}
	sol := NormalizeSolution(raw, "text input")
	return ValidateSolution(sol, "text input"), nil
}

// SolveContent solves a problem extracted from an uploaded file. Text-based
// solving is preferred when the extraction produced enough text and yields an
// acceptable answer; otherwise the attachment goes to the model directly,
// with any partial text as auxiliary context. Content with no attachment is
// solved from whatever text was extracted, however short: the length gate
// only arbitrates the text-vs-vision choice.
func (s *TutorService) SolveContent(ctx context.Context, apiKey string, content extract.Content, sourceName, additionalContext string) (models.SolutionResult, error) {
	text := strings.TrimSpace(content.Text)

	tryText := text != "" && (len(content.Images) == 0 || len(text) > minUsableTextLen)
	if tryText {
		raw, err := s.LLM.Generate(ctx, apiKey, buildDocumentSolvePrompt(text, additionalContext), nil)
		if err != nil {
			return models.SolutionResult{}, err
		}
		sol := NormalizeSolution(raw, sourceName)
		answered := !IsNonAnswer(sol.FinalAnswer) || hasUsableStep(sol.Steps)
		if answered || len(content.Images) == 0 {
			validated := ValidateSolution(sol, sourceName)
			validated.ProblemDetected = truncateProblem(text)
			validated.SourceFile = sourceName
			return validated, nil
		}
		// Text solving came up empty; fall through to the vision path.
	}

	if len(content.Images) == 0 {
		return models.SolutionResult{}, fmt.Errorf("no usable content extracted from %s", sourceName)
	}

	images := make([]Image, 0, len(content.Images))
	for _, img := range content.Images {
		images = append(images, Image{MIME: img.MIME, Data: img.Data})
	}

	raw, err := s.LLM.Generate(ctx, apiKey, buildVisionPrompt(text, additionalContext), images)
	if err != nil {
		return models.SolutionResult{}, err
	}
	sol := ValidateSolution(NormalizeSolution(raw, sourceName), sourceName)
	sol.SourceFile = sourceName
	return sol, nil
}

// GenerateQuiz creates practice questions for a topic. numQuestions is
// clamped to 1..10; difficulty defaults to mixed.
func (s *TutorService) GenerateQuiz(ctx context.Context, apiKey, topic string, numQuestions int, difficulty string) (models.QuizSet, error) {
	numQuestions = clampQuestionCount(numQuestions)
	if strings.TrimSpace(difficulty) == "" {
		difficulty = "mixed"
	}

	raw, err := s.LLM.Generate(ctx, apiKey, buildQuizPrompt(topic, numQuestions, difficulty), nil)
	if err != nil {
		return models.QuizSet{}, err
	}

	cleaned, err := ExtractJSON(raw)
	if err != nil {
		return models.QuizSet{}, fmt.Errorf("quiz response: %w", err)
	}
	var quiz models.QuizSet
	if err := json.Unmarshal([]byte(cleaned), &quiz); err != nil {
		return models.QuizSet{}, fmt.Errorf("parse quiz response: %v", err)
	}
	if len(quiz.Questions) == 0 {
		return models.QuizSet{}, fmt.Errorf("quiz response contained no questions")
	}
	if len(quiz.Questions) > 10 {
		quiz.Questions = quiz.Questions[:10]
	}
	for i := range quiz.Questions {
		if quiz.Questions[i].QuestionNumber == 0 {
			quiz.Questions[i].QuestionNumber = i + 1
		}
	}
	if strings.TrimSpace(quiz.QuizTopic) == "" {
		quiz.QuizTopic = topic
	}
	return quiz, nil
}

// EvaluateAnswer grades a quiz answer. When the model's output cannot be
// parsed, the evaluation degrades to a literal case-insensitive comparison
// instead of surfacing an error.
func (s *TutorService) EvaluateAnswer(ctx context.Context, apiKey, question, correctAnswer, studentAnswer string) (models.Evaluation, error) {
	raw, err := s.LLM.Generate(ctx, apiKey, buildEvaluatePrompt(question, correctAnswer, studentAnswer), nil)
	if err != nil {
		return models.Evaluation{}, err
	}

	if cleaned, jsonErr := ExtractJSON(raw); jsonErr == nil {
		var eval models.Evaluation
		if err := json.Unmarshal([]byte(cleaned), &eval); err == nil && strings.TrimSpace(eval.Feedback) != "" {
			return eval, nil
		}
	}
	return literalEvaluation(correctAnswer, studentAnswer), nil
}

// literalEvaluation is the deterministic fallback comparison.
func literalEvaluation(correctAnswer, studentAnswer string) models.Evaluation {
	isCorrect := strings.EqualFold(strings.TrimSpace(studentAnswer), strings.TrimSpace(correctAnswer))
	eval := models.Evaluation{IsCorrect: isCorrect}
	if isCorrect {
		eval.Feedback = "Correct! Great job!"
	} else {
		eval.Feedback = "Not quite right. Keep practicing!"
		eval.Explanation = fmt.Sprintf("The correct answer was: %s", correctAnswer)
	}
	return eval
}

func clampQuestionCount(n int) int {
	if n < 1 {
		return 1
	}
	if n > 10 {
		return 10
	}
	return n
}

func truncateProblem(text string) string {
	if len(text) > 500 {
		return text[:500] + "..."
	}
	return text
}
