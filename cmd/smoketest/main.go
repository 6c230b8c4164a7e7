package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"mathtutor/config"
	"mathtutor/services"
)

// Manual smoke check against the live Gemini API. Needs a real key in
// GEMINI_API_KEY; not run in CI.
func main() {
	configPath := flag.String("config", "./config/config.yml", "path to config file")
	problem := flag.String("problem", "Solve for x: 2x + 5 = 13", "math problem to solve")
	flag.Parse()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "set GEMINI_API_KEY to run the smoke check")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	tutor := services.NewTutorService(services.NewGeminiGateway(cfg.Gemini.Model))
	solution, err := tutor.SolveText(context.Background(), apiKey, *problem)
	if err != nil {
		fmt.Fprintln(os.Stderr, "solve failed:", err)
		os.Exit(1)
	}

	out, _ := json.MarshalIndent(solution, "", "  ")
	fmt.Println(string(out))
}
