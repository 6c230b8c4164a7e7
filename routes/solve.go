package routes

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"mathtutor/extract"
	"mathtutor/middlewares"
	"mathtutor/models"

	"github.com/gin-gonic/gin"
)

// Solve solves a typed-in math problem step by step.
func (h *Handler) Solve(c *gin.Context) {
	var req models.SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Problem) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Missing 'problem' in request body",
			"example": gin.H{"problem": "Solve for x: 2x + 5 = 13"},
		})
		return
	}

	solution, err := h.Tutor.SolveText(c.Request.Context(), middlewares.APIKey(c), req.Problem)
	if err != nil {
		respondGatewayError(c, err)
		return
	}
	c.JSON(http.StatusOK, solution)
}

// SolveFile solves a math problem from an uploaded image, PDF or Word
// document. The size ceiling is enforced before the multipart body is
// parsed.
func (h *Handler) SolveFile(c *gin.Context) {
	maxBytes := h.Cfg.MaxUploadBytes()
	if c.Request.ContentLength > maxBytes {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "The uploaded file is too large",
			"help":  "Uploads are limited to 16 MB",
		})
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No file uploaded",
			"help":  "Please upload an image (PNG, JPG), PDF, or DOCX file",
		})
		return
	}
	if fileHeader.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file selected"})
		return
	}

	ext := extract.Ext(fileHeader.Filename)
	if !extract.Supported(ext) {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{
			"error":     "Unsupported file type: ." + ext,
			"supported": extract.SupportedList(),
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read the uploaded file"})
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read the uploaded file"})
		return
	}

	content, err := h.Files.FromUpload(fileHeader.Filename, data)
	if err != nil {
		var exErr *extract.Error
		if errors.As(err, &exErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": exErr.Message, "help": exErr.Hint})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Could not extract content from the file",
			"help":  "Try uploading a clearer image, or type the problem as text",
		})
		return
	}

	solution, err := h.Tutor.SolveContent(
		c.Request.Context(),
		middlewares.APIKey(c),
		content,
		fileHeader.Filename,
		c.PostForm("additional_context"),
	)
	if err != nil {
		respondGatewayError(c, err)
		return
	}
	c.JSON(http.StatusOK, solution)
}
