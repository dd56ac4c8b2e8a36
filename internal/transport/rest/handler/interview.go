package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"fortitwin/internal/model"
	"fortitwin/internal/repository"
	"fortitwin/internal/service"
	"fortitwin/internal/store"
)

// Broadcaster publishes interview events to session monitors. A nil
// broadcaster disables the feed.
type Broadcaster interface {
	Broadcast(sessionID, msgType string, payload interface{})
}

// InterviewHandler handles interview endpoints
type InterviewHandler struct {
	svc       *service.InterviewService
	sessions  store.SessionStore
	retriever service.Retriever
	reports   repository.ReportRepo // nil when Mongo is not configured
	feed      Broadcaster
}

// NewInterviewHandler creates a new interview handler
func NewInterviewHandler(svc *service.InterviewService, sessions store.SessionStore, retriever service.Retriever, reports repository.ReportRepo) *InterviewHandler {
	if retriever == nil {
		retriever = service.NoopRetriever{}
	}
	return &InterviewHandler{
		svc:       svc,
		sessions:  sessions,
		retriever: retriever,
		reports:   reports,
	}
}

// SetBroadcaster injects the monitor feed
func (h *InterviewHandler) SetBroadcaster(feed Broadcaster) {
	h.feed = feed
}

// StartRequest is the request body for starting an interview
type StartRequest struct {
	CandidateID string `json:"candidateId"`
	JobTitle    string `json:"jobTitle"`
	Company     string `json:"company"`
	Persona     string `json:"persona"`
	RAGQuery    string `json:"ragQuery,omitempty"`
}

// Start handles POST /v1/interviews
func (h *InterviewHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.CandidateID == "" || req.JobTitle == "" || req.Company == "" {
		writeError(w, http.StatusBadRequest, "candidateId, jobTitle and company are required")
		return
	}
	if req.Persona == "" {
		req.Persona = service.DefaultPersonaName
	}

	ragCtx := ""
	if req.RAGQuery != "" {
		ctx, err := h.retriever.Retrieve(r.Context(), req.RAGQuery)
		if err != nil {
			log.Printf("retrieval lookup failed: %v", err)
		} else {
			ragCtx = ctx
		}
	}

	session := &model.Session{
		CandidateID: req.CandidateID,
		JobTitle:    req.JobTitle,
		Company:     req.Company,
		Persona:     req.Persona,
		RAGContext:  ragCtx,
		Mode:        h.svc.Mode(),
		StartedAt:   time.Now().UTC(),
	}
	if err := h.sessions.Create(r.Context(), session); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	question, _ := h.svc.FirstQuestion(r.Context(), req.JobTitle, req.Company, req.Persona, ragCtx)
	session.Transcript = append(session.Transcript, model.TranscriptEntry{Role: model.RoleInterviewer, Text: question})
	if err := h.sessions.Update(r.Context(), session); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.publish(session.ID, "interview_started", map[string]string{"question": question})

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"sessionId":     session.ID,
		"firstQuestion": question,
		"mode":          session.Mode,
	})
}

// AnswerRequest is the request body for submitting an answer
type AnswerRequest struct {
	Answer string `json:"answer"`
}

// Answer handles POST /v1/interviews/{id}/answers
func (h *InterviewHandler) Answer(w http.ResponseWriter, r *http.Request) {
	session, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Answer == "" {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session.Transcript = append(session.Transcript, model.TranscriptEntry{Role: model.RoleCandidate, Text: req.Answer})

	// Latest security event drives the hint for this turn
	securityHint := ""
	if n := len(session.SecurityEvents); n > 0 {
		last := session.SecurityEvents[n-1]
		securityHint = h.svc.SecurityHintFromEvent(last.EventType, last.Metadata)
	}

	emotionCtx := session.EmotionContext
	if len(emotionCtx) == 0 {
		emotionCtx = map[string]float64{
			"nervous":         0.3,
			"confident":       0.5,
			"empathetic_need": 0.2,
		}
	}

	question, _ := h.svc.NextQuestion(
		r.Context(),
		session.JobTitle,
		session.Company,
		session.Persona,
		session.RAGContext,
		req.Answer,
		emotionCtx,
		securityHint,
	)

	session.Transcript = append(session.Transcript, model.TranscriptEntry{Role: model.RoleInterviewer, Text: question})
	if err := h.sessions.Update(r.Context(), session); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.publish(session.ID, "question", map[string]string{"question": question})

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sessionId": session.ID,
		"question":  question,
		"hints": map[string]interface{}{
			"security_hint": securityHint,
			"emotion_ctx":   emotionCtx,
		},
	})
}

// EventRequest is the request body for reporting a security event
type EventRequest struct {
	EventType string                 `json:"eventType"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// Event handles POST /v1/interviews/{id}/events
func (h *InterviewHandler) Event(w http.ResponseWriter, r *http.Request) {
	session, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	var req EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.EventType == "" {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session.SecurityEvents = append(session.SecurityEvents, model.SecurityEvent{
		EventType: req.EventType,
		Metadata:  req.Metadata,
		At:        time.Now().UTC(),
	})
	if err := h.sessions.Update(r.Context(), session); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Printf("Session %s: security event logged -> %s", session.ID, req.EventType)
	h.publish(session.ID, "security_event", map[string]string{"eventType": req.EventType})

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// EmotionRequest is the request body for updating emotion signals
type EmotionRequest struct {
	Signals map[string]float64 `json:"signals"`
}

// Emotion handles POST /v1/interviews/{id}/emotion
func (h *InterviewHandler) Emotion(w http.ResponseWriter, r *http.Request) {
	session, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	var req EmotionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Signals) == 0 {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session.EmotionContext = req.Signals
	if err := h.sessions.Update(r.Context(), session); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.publish(session.ID, "emotion_update", req.Signals)

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Score handles POST /v1/interviews/{id}/score
func (h *InterviewHandler) Score(w http.ResponseWriter, r *http.Request) {
	session, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	scores := h.svc.Score(r.Context(), session.Transcript, session.JobTitle, session.Company)

	if h.reports != nil {
		report := &model.InterviewReport{
			SessionID:   session.ID,
			CandidateID: session.CandidateID,
			JobTitle:    session.JobTitle,
			Company:     session.Company,
			Mode:        session.Mode,
			Scores:      *scores,
			CreatedAt:   time.Now().UTC(),
		}
		if err := h.reports.Save(r.Context(), report); err != nil {
			log.Printf("Session %s: report save failed: %v", session.ID, err)
		}
	}

	h.publish(session.ID, "score_ready", scores)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sessionId": session.ID,
		"scores":    scores,
	})
}

// Get handles GET /v1/interviews/{id}
func (h *InterviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, ok := h.loadSession(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *InterviewHandler) loadSession(w http.ResponseWriter, r *http.Request) (*model.Session, bool) {
	id := mux.Vars(r)["id"]
	session, err := h.sessions.Get(r.Context(), id)
	if err == store.ErrSessionNotFound {
		writeError(w, http.StatusNotFound, "session not found")
		return nil, false
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	return session, true
}

func (h *InterviewHandler) publish(sessionID, msgType string, payload interface{}) {
	if h.feed != nil {
		h.feed.Broadcast(sessionID, msgType, payload)
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
