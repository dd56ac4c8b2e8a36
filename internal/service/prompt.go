package service

import (
	"fmt"
	"sort"
	"strings"

	"fortitwin/internal/model"
)

// How much retrieval context makes it into a prompt
const ragContextLimit = 2000

const questionSystemPrompt = "You are an empathetic, professional AI interviewer. " +
	"Ask one concise question at a time. Adjust tone/difficulty based on signals. " +
	"If 'security_hint' is present, remind the candidate to focus in a respectful way."

// PromptInput carries everything the question prompt can mention. Optional
// fields contribute nothing when empty.
type PromptInput struct {
	JobTitle     string
	Company      string
	Persona      model.PersonaPreset
	RAGContext   string
	PrevAnswer   string
	EmotionCtx   map[string]float64
	SecurityHint string
}

// BuildQuestionPrompt assembles the system and user texts for one question
// generation. Present-only fields, fixed order.
func BuildQuestionPrompt(in PromptInput) (system, user string) {
	parts := []string{
		fmt.Sprintf("Job Title: %s at %s.", in.JobTitle, in.Company),
		fmt.Sprintf("Personality: tone=%s, difficulty=%s.", in.Persona.Tone, in.Persona.Difficulty),
	}
	if in.RAGContext != "" {
		ctx := in.RAGContext
		if len(ctx) > ragContextLimit {
			ctx = ctx[:ragContextLimit]
		}
		parts = append(parts, "Company/Role Context:\n"+ctx)
	}
	if in.PrevAnswer != "" {
		parts = append(parts, "Candidate previous answer:\n"+in.PrevAnswer)
	}
	if len(in.EmotionCtx) > 0 {
		parts = append(parts, "Emotion signals: "+formatEmotionCtx(in.EmotionCtx))
	}
	if in.SecurityHint != "" {
		parts = append(parts, "Security hint: "+in.SecurityHint)
	}
	parts = append(parts, "Now produce ONE next interview question, natural and specific.")

	return questionSystemPrompt, strings.Join(parts, "\n\n")
}

// formatEmotionCtx renders signals with sorted labels so the prompt is
// stable across calls (map iteration order is not).
func formatEmotionCtx(ctx map[string]float64) string {
	labels := make([]string, 0, len(ctx))
	for label := range ctx {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	pairs := make([]string, 0, len(labels))
	for _, label := range labels {
		pairs = append(pairs, fmt.Sprintf("%s=%.2f", label, ctx[label]))
	}
	return strings.Join(pairs, ", ")
}
