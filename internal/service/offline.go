package service

import (
	"fmt"

	"fortitwin/internal/model"
)

// SynthesizeQuestion is the deterministic offline question generator, used
// whenever the remote path yields no usable text. Same inputs always produce
// the same output; the result is never empty.
func SynthesizeQuestion(jobTitle string, persona model.PersonaPreset, ragContext, prevAnswer string, emotionCtx map[string]float64, securityHint string) string {
	base := fmt.Sprintf("As a %s interviewer for a %s, ", persona.Tone, jobTitle)
	if securityHint != "" {
		base += fmt.Sprintf("I noticed a potential distraction (%s). Please stay focused. ", securityHint)
	}
	if emotionCtx["nervous"] > 0.5 {
		base += "I'll keep it supportive. "
	}
	if prevAnswer != "" {
		return base + "Can you dive deeper into your last answer and describe a concrete example with outcomes?"
	}
	if ragContext != "" {
		return base + "What experience do you have that directly matches this role? Refer to relevant projects."
	}
	return base + "Tell me about a challenging project you led end-to-end."
}
