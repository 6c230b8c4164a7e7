package routes

import (
	"net/http"
	"strings"

	"mathtutor/middlewares"
	"mathtutor/models"

	"github.com/gin-gonic/gin"
)

// The server holds no study-session state. Every follow-up call re-supplies
// problem, step_number and step_objective; nothing is checked against the
// plan handed out by StudyStart.

// StudyStart breaks a problem into guided steps the student works through.
func (h *Handler) StudyStart(c *gin.Context) {
	var req models.StudyStartRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Problem) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Missing 'problem' in request body",
			"example": gin.H{"problem": "Solve for x: 2x + 5 = 13"},
		})
		return
	}

	plan, err := h.Tutor.StartStudy(c.Request.Context(), middlewares.APIKey(c), req.Problem)
	if err != nil {
		respondGatewayError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// StudyHint returns a hint for the current step at the requested level.
func (h *Handler) StudyHint(c *gin.Context) {
	var req models.StudyHintRequest
	if err := c.ShouldBindJSON(&req); err != nil || !validStepRef(req.Problem, req.StepNumber, req.StepObjective) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":           "Missing study step fields",
			"required_fields": []string{"problem", "step_number", "step_objective"},
		})
		return
	}

	hint, err := h.Tutor.StudyHint(c.Request.Context(), middlewares.APIKey(c), req)
	if err != nil {
		respondGatewayError(c, err)
		return
	}
	c.JSON(http.StatusOK, hint)
}

// StudyCheck judges the student's answer for the current step.
func (h *Handler) StudyCheck(c *gin.Context) {
	var req models.StudyCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil || !validStepRef(req.Problem, req.StepNumber, req.StepObjective) ||
		strings.TrimSpace(req.StudentAnswer) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":           "Missing study step fields",
			"required_fields": []string{"problem", "step_number", "step_objective", "student_answer"},
		})
		return
	}

	result, err := h.Tutor.StudyCheck(c.Request.Context(), middlewares.APIKey(c), req)
	if err != nil {
		respondGatewayError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// StudySolution reveals the current step's answer unconditionally, for when
// the student gives up on a step.
func (h *Handler) StudySolution(c *gin.Context) {
	var req models.StudySolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil || !validStepRef(req.Problem, req.StepNumber, req.StepObjective) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":           "Missing study step fields",
			"required_fields": []string{"problem", "step_number", "step_objective"},
		})
		return
	}

	solution, err := h.Tutor.StudyStepSolution(c.Request.Context(), middlewares.APIKey(c), req)
	if err != nil {
		respondGatewayError(c, err)
		return
	}
	c.JSON(http.StatusOK, solution)
}

func validStepRef(problem string, stepNumber int, stepObjective string) bool {
	return strings.TrimSpace(problem) != "" && stepNumber >= 1 && strings.TrimSpace(stepObjective) != ""
}
