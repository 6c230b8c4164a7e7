package routes

import (
	"net/http"
	"strings"

	"mathtutor/middlewares"
	"mathtutor/models"

	"github.com/gin-gonic/gin"
)

// GenerateQuiz creates practice questions for a topic.
func (h *Handler) GenerateQuiz(c *gin.Context) {
	var req models.QuizGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Topic) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Missing 'topic' in request body",
			"example": gin.H{"topic": "algebra", "num_questions": 3, "difficulty": "medium"},
		})
		return
	}

	numQuestions := 3
	if req.NumQuestions != nil {
		numQuestions = *req.NumQuestions
	}

	quiz, err := h.Tutor.GenerateQuiz(c.Request.Context(), middlewares.APIKey(c), req.Topic, numQuestions, req.Difficulty)
	if err != nil {
		respondGatewayError(c, err)
		return
	}
	c.JSON(http.StatusOK, quiz)
}

// EvaluateAnswer grades a student's answer to a quiz question.
func (h *Handler) EvaluateAnswer(c *gin.Context) {
	var req models.QuizEvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":           "Invalid request payload",
			"required_fields": []string{"question", "correct_answer", "student_answer"},
		})
		return
	}
	for field, value := range map[string]string{
		"question":       req.Question,
		"correct_answer": req.CorrectAnswer,
		"student_answer": req.StudentAnswer,
	} {
		if strings.TrimSpace(value) == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":           "Missing '" + field + "' in request body",
				"required_fields": []string{"question", "correct_answer", "student_answer"},
			})
			return
		}
	}

	evaluation, err := h.Tutor.EvaluateAnswer(c.Request.Context(), middlewares.APIKey(c),
		req.Question, req.CorrectAnswer, req.StudentAnswer)
	if err != nil {
		respondGatewayError(c, err)
		return
	}
	c.JSON(http.StatusOK, evaluation)
}
