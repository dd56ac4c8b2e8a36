package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"fortitwin/internal/model"
)

const scoreSystemPrompt = "You are a fair, unbiased evaluator. Return strict JSON only."

// BaselineScoreNotes is the Notes value of the offline fallback score
const BaselineScoreNotes = "Baseline offline scoring. Configure a generation API key for smarter evaluation."

// seedSessionID keys the emotion lookup for a first question, before the
// caller has any per-session signals to hand over.
const seedSessionID = "seed"

// InterviewService drives question generation and transcript scoring. It
// holds no mutable state after construction, so concurrent calls for
// independent sessions are safe.
type InterviewService struct {
	personas        *PersonaRegistry
	classifier      *SecurityClassifier
	generator       Generator // nil when no remote capability was configured
	scorer          Generator
	emotion         EmotionProvider
	fallbackEmotion EmotionProvider
	mode            model.Mode
}

// NewInterviewService wires the orchestrator from its collaborators. A nil
// generator means no remote capability: the service operates offline
// permanently. A nil scorer reuses the question generator. Nil emotion
// providers default to Hume-without-key and the deterministic mock.
func NewInterviewService(personas *PersonaRegistry, generator, scorer Generator, emotion, fallback EmotionProvider, normalize EventNormalizer) *InterviewService {
	if personas == nil {
		personas = NewPersonaRegistry(DefaultPresets(), DefaultPersonaName)
	}
	if scorer == nil {
		scorer = generator
	}
	if emotion == nil {
		emotion = NewHumeEmotionProvider("")
	}
	if fallback == nil {
		fallback = MockEmotionProvider{}
	}

	mode := model.ModeOffline
	if generator != nil {
		mode = model.ModeRemote
	}
	log.Printf("InterviewService initialized in %s mode", mode)

	return &InterviewService{
		personas:        personas,
		classifier:      NewSecurityClassifier(normalize),
		generator:       generator,
		scorer:          scorer,
		emotion:         emotion,
		fallbackEmotion: fallback,
		mode:            mode,
	}
}

// Mode reports the operating mode decided at construction. It is a hint for
// callers; individual remote calls can still fail and fall back offline.
func (s *InterviewService) Mode() model.Mode {
	return s.mode
}

// FirstQuestion opens an interview. Emotion context comes from the provider
// pair; there is no prior answer or security hint yet.
func (s *InterviewService) FirstQuestion(ctx context.Context, jobTitle, company, personaName, ragContext string) (string, model.Mode) {
	return s.generateQuestion(ctx, jobTitle, company, personaName, ragContext, "", s.emotionCtx(seedSessionID), "")
}

// NextQuestion continues an interview with caller-supplied signals
func (s *InterviewService) NextQuestion(ctx context.Context, jobTitle, company, personaName, ragContext, prevAnswer string, emotionCtx map[string]float64, securityHint string) (string, model.Mode) {
	return s.generateQuestion(ctx, jobTitle, company, personaName, ragContext, prevAnswer, emotionCtx, securityHint)
}

// SecurityHintFromEvent turns a proctoring event into a severity-tagged hint
func (s *InterviewService) SecurityHintFromEvent(eventType string, metadata map[string]interface{}) string {
	return s.classifier.Classify(eventType, metadata)
}

func (s *InterviewService) emotionCtx(sessionID string) map[string]float64 {
	sig := s.emotion.GetSignals(sessionID)
	if len(sig) == 0 {
		sig = s.fallbackEmotion.GetSignals(sessionID)
	}
	return sig
}

// generateQuestion is the shared question path: resolve persona, build the
// prompt, try the remote capability, synthesize offline when it yields
// nothing.
func (s *InterviewService) generateQuestion(ctx context.Context, jobTitle, company, personaName, ragContext, prevAnswer string, emotionCtx map[string]float64, securityHint string) (string, model.Mode) {
	persona := s.personas.Resolve(personaName)

	system, user := BuildQuestionPrompt(PromptInput{
		JobTitle:     jobTitle,
		Company:      company,
		Persona:      persona,
		RAGContext:   ragContext,
		PrevAnswer:   prevAnswer,
		EmotionCtx:   emotionCtx,
		SecurityHint: securityHint,
	})

	if out := s.callRemote(ctx, s.generator, system, user); out != "" {
		return out, model.ModeRemote
	}

	return SynthesizeQuestion(jobTitle, persona, ragContext, prevAnswer, emotionCtx, securityHint), model.ModeOffline
}

// Score evaluates a finished transcript. Any remote failure, including an
// unparseable response, yields the fixed baseline score.
func (s *InterviewService) Score(ctx context.Context, transcript []model.TranscriptEntry, jobTitle, company string) *model.ScoreResult {
	user := buildScorePrompt(transcript, jobTitle, company)

	if raw := s.callRemote(ctx, s.scorer, scoreSystemPrompt, user); raw != "" {
		var result model.ScoreResult
		if err := json.Unmarshal([]byte(raw), &result); err == nil {
			return &result
		}
		log.Printf("score JSON parse failed, using baseline")
	}

	return &model.ScoreResult{
		RoleFit:       7,
		CultureFit:    7,
		Honesty:       7,
		Communication: 7,
		Notes:         BaselineScoreNotes,
	}
}

// callRemote collapses every failure to empty text. The failure kind is
// logged; callers only branch on whether text came back.
func (s *InterviewService) callRemote(ctx context.Context, gen Generator, system, user string) string {
	if gen == nil {
		return ""
	}
	out, err := gen.Generate(ctx, system, user)
	if err != nil {
		log.Printf("remote generation failed (%s): %v", failureKind(err), err)
		return ""
	}
	return strings.TrimSpace(out)
}

func buildScorePrompt(transcript []model.TranscriptEntry, jobTitle, company string) string {
	var sb strings.Builder
	for _, entry := range transcript {
		fmt.Fprintf(&sb, "%s: %s\n", entry.Role, entry.Text)
	}

	return fmt.Sprintf(`Evaluate this interview for a %s at %s.
Transcript:
%s
Return JSON with fields: Role Fit (0-10), Culture Fit (0-10), Honesty (0-10), Communication (0-10), Notes (string).`,
		jobTitle, company, sb.String())
}
