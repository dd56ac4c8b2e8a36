package model

import "time"

// InterviewReport is the persisted record of a scored interview
type InterviewReport struct {
	SessionID   string      `json:"sessionId" bson:"sessionId"`
	CandidateID string      `json:"candidateId" bson:"candidateId"`
	JobTitle    string      `json:"jobTitle" bson:"jobTitle"`
	Company     string      `json:"company" bson:"company"`
	Mode        Mode        `json:"mode" bson:"mode"`
	Scores      ScoreResult `json:"scores" bson:"scores"`
	CreatedAt   time.Time   `json:"createdAt" bson:"createdAt"`
}

// Document is a retrieval-context source document
type Document struct {
	ID    string `json:"id" bson:"_id,omitempty"`
	Title string `json:"title" bson:"title"`
	Tags  string `json:"tags,omitempty" bson:"tags,omitempty"`
	Body  string `json:"body" bson:"body"`
}
