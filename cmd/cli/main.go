package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"fortitwin/internal/config"
	"fortitwin/internal/model"
	"fortitwin/internal/service"
)

func main() {
	jobTitle := flag.String("job", "Software Engineer", "job title to interview for")
	company := flag.String("company", "Acme", "company name")
	persona := flag.String("persona", service.DefaultPersonaName, "interviewer persona (Default Manager / Startup CTO / FAANG Manager / Finance Recruiter)")
	flag.Parse()

	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env")
	}

	aiConfig := config.DefaultAIConfig()
	var generator service.Generator
	if aiConfig.IsEnabled() {
		generator = service.NewGeminiClient(aiConfig)
	}

	personas := service.NewPersonaRegistry(service.DefaultPresets(), service.DefaultPersonaName)
	svc := service.NewInterviewService(personas, generator, nil, nil, nil, service.NormalizeEvent)

	ctx := context.Background()
	fmt.Printf("FortiTwin CLI — interactive interview in %s mode (type 'quit' to exit)\n\n", svc.Mode())

	question, _ := svc.FirstQuestion(ctx, *jobTitle, *company, *persona, "")
	transcript := []model.TranscriptEntry{{Role: model.RoleInterviewer, Text: question}}
	fmt.Printf("Interviewer: %s\n", question)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nYou: ")
		if !scanner.Scan() {
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			continue
		}
		if answer == "quit" || answer == "exit" {
			break
		}

		transcript = append(transcript, model.TranscriptEntry{Role: model.RoleCandidate, Text: answer})
		question, _ = svc.NextQuestion(ctx, *jobTitle, *company, *persona, "", answer, nil, "")
		transcript = append(transcript, model.TranscriptEntry{Role: model.RoleInterviewer, Text: question})
		fmt.Printf("\nInterviewer: %s\n", question)
	}

	scores := svc.Score(ctx, transcript, *jobTitle, *company)
	fmt.Printf("\nFinal Scores: RoleFit=%.1f CultureFit=%.1f Honesty=%.1f Communication=%.1f\nNotes: %s\n",
		scores.RoleFit, scores.CultureFit, scores.Honesty, scores.Communication, scores.Notes)
}
