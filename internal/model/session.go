package model

import "time"

// Transcript roles
const (
	RoleInterviewer = "interviewer"
	RoleCandidate   = "candidate"
)

// TranscriptEntry is one turn of the interview
type TranscriptEntry struct {
	Role string `json:"role" bson:"role"`
	Text string `json:"text" bson:"text"`
}

// SecurityEvent is a distraction/security signal reported by a proctoring client
type SecurityEvent struct {
	EventType string                 `json:"eventType" bson:"eventType"`
	Metadata  map[string]interface{} `json:"metadata,omitempty" bson:"metadata,omitempty"`
	At        time.Time              `json:"at" bson:"at"`
}

// Session holds one interview's state. The session layer owns the transcript
// and signal history; the engine only reads snapshots of them.
type Session struct {
	ID             string             `json:"id" bson:"_id,omitempty"`
	CandidateID    string             `json:"candidateId" bson:"candidateId"`
	JobTitle       string             `json:"jobTitle" bson:"jobTitle"`
	Company        string             `json:"company" bson:"company"`
	Persona        string             `json:"persona" bson:"persona"`
	RAGContext     string             `json:"ragContext,omitempty" bson:"ragContext,omitempty"`
	Mode           Mode               `json:"mode" bson:"mode"`
	StartedAt      time.Time          `json:"startedAt" bson:"startedAt"`
	Transcript     []TranscriptEntry  `json:"transcript" bson:"transcript"`
	SecurityEvents []SecurityEvent    `json:"securityEvents,omitempty" bson:"securityEvents,omitempty"`
	EmotionContext map[string]float64 `json:"emotionContext,omitempty" bson:"emotionContext,omitempty"`
}

// Clone returns a deep copy so stored sessions can't be mutated through
// previously returned pointers.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	out.Transcript = append([]TranscriptEntry(nil), s.Transcript...)
	out.SecurityEvents = append([]SecurityEvent(nil), s.SecurityEvents...)
	if s.EmotionContext != nil {
		out.EmotionContext = make(map[string]float64, len(s.EmotionContext))
		for k, v := range s.EmotionContext {
			out.EmotionContext[k] = v
		}
	}
	return &out
}
