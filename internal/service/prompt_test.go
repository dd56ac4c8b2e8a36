package service

import (
	"strings"
	"testing"

	"fortitwin/internal/model"
)

func basePromptInput() PromptInput {
	return PromptInput{
		JobTitle: "Backend Engineer",
		Company:  "Acme",
		Persona:  model.PersonaPreset{Tone: "professional", Difficulty: model.DifficultyMedium},
	}
}

func TestBuildQuestionPrompt_RequiredLines(t *testing.T) {
	system, user := BuildQuestionPrompt(basePromptInput())

	if system != questionSystemPrompt {
		t.Fatalf("unexpected system text: %q", system)
	}
	if !strings.HasPrefix(user, "Job Title: Backend Engineer at Acme.") {
		t.Fatalf("missing job line: %q", user)
	}
	if !strings.Contains(user, "Personality: tone=professional, difficulty=medium.") {
		t.Fatalf("missing persona line: %q", user)
	}
	if !strings.HasSuffix(user, "Now produce ONE next interview question, natural and specific.") {
		t.Fatalf("missing closing instruction: %q", user)
	}
}

func TestBuildQuestionPrompt_OmitsAbsentFields(t *testing.T) {
	_, user := BuildQuestionPrompt(basePromptInput())

	for _, forbidden := range []string{
		"Company/Role Context:",
		"Candidate previous answer:",
		"Emotion signals:",
		"Security hint:",
	} {
		if strings.Contains(user, forbidden) {
			t.Fatalf("absent field leaked into prompt: %q", forbidden)
		}
	}
}

func TestBuildQuestionPrompt_TruncatesRAGContext(t *testing.T) {
	in := basePromptInput()
	in.RAGContext = strings.Repeat("a", 2500)
	_, user := BuildQuestionPrompt(in)

	if !strings.Contains(user, "Company/Role Context:\n"+strings.Repeat("a", 2000)) {
		t.Fatal("context not included at 2000 chars")
	}
	if strings.Contains(user, strings.Repeat("a", 2001)) {
		t.Fatal("context not truncated to 2000 chars")
	}
}

func TestBuildQuestionPrompt_FieldOrder(t *testing.T) {
	in := basePromptInput()
	in.RAGContext = "We build rockets."
	in.PrevAnswer = "I led a migration."
	in.EmotionCtx = map[string]float64{"nervous": 0.3}
	in.SecurityHint = "tab_switch (high impact)"
	_, user := BuildQuestionPrompt(in)

	order := []string{
		"Job Title:",
		"Personality:",
		"Company/Role Context:",
		"Candidate previous answer:",
		"Emotion signals:",
		"Security hint:",
		"Now produce ONE next interview question",
	}
	last := -1
	for _, marker := range order {
		idx := strings.Index(user, marker)
		if idx < 0 {
			t.Fatalf("marker %q missing from prompt", marker)
		}
		if idx < last {
			t.Fatalf("marker %q out of order", marker)
		}
		last = idx
	}
}

func TestBuildQuestionPrompt_EmotionDeterministic(t *testing.T) {
	in := basePromptInput()
	in.EmotionCtx = map[string]float64{
		"nervous":         0.3,
		"confident":       0.5,
		"empathetic_need": 0.2,
	}

	_, first := BuildQuestionPrompt(in)
	for i := 0; i < 20; i++ {
		_, again := BuildQuestionPrompt(in)
		if again != first {
			t.Fatal("prompt differs across identical inputs")
		}
	}
	if !strings.Contains(first, "Emotion signals: confident=0.50, empathetic_need=0.20, nervous=0.30") {
		t.Fatalf("emotion line not rendered with sorted labels: %q", first)
	}
}
