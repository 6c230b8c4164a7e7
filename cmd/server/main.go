package main

import (
	"log"
	"strconv"

	"mathtutor/config"
	"mathtutor/extract"
	"mathtutor/middlewares"
	"mathtutor/routes"
	"mathtutor/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig("./config/config.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	gateway := services.NewGeminiGateway(cfg.Gemini.Model)
	tutor := services.NewTutorService(gateway)
	files := extract.New(extract.DefaultCapabilities())

	router := setupRouter(cfg, routes.NewHandler(cfg, tutor, files))
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("AI Math Tutor server starting on port %s (model %s)", port, cfg.Gemini.Model)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(cfg *config.Config, h *routes.Handler) *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})
	router.MaxMultipartMemory = cfg.MaxUploadBytes()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Cors.Origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middlewares.KeyHeader, "X-Request-Id"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-Id"},
		AllowCredentials: true,
	}))
	router.OPTIONS("/*path", func(c *gin.Context) { c.Status(204) })

	router.Use(middlewares.RequestIDMiddleware())

	api := router.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/config", h.PublicConfig)

		keyed := api.Group("/")
		keyed.Use(middlewares.APIKeyMiddleware())
		{
			keyed.POST("/verify-key", h.VerifyKey)
			keyed.POST("/solve", h.Solve)
			keyed.POST("/solve/file", h.SolveFile)
			keyed.POST("/quiz/generate", h.GenerateQuiz)
			keyed.POST("/quiz/evaluate", h.EvaluateAnswer)
			keyed.POST("/study/start", h.StudyStart)
			keyed.POST("/study/hint", h.StudyHint)
			keyed.POST("/study/check", h.StudyCheck)
			keyed.POST("/study/solution", h.StudySolution)
		}
	}

	return router
}
