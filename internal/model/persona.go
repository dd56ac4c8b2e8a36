package model

// Difficulty controls how demanding the interviewer's questions are
type Difficulty string

const (
	DifficultyLow    Difficulty = "low"
	DifficultyMedium Difficulty = "medium"
	DifficultyHigh   Difficulty = "high"
)

// PersonaPreset is a tone/difficulty pair controlling interviewer phrasing
type PersonaPreset struct {
	Tone       string     `json:"tone"`
	Difficulty Difficulty `json:"difficulty"`
}

// Mode reports which generation path produced a question or score
type Mode string

const (
	ModeRemote  Mode = "remote"
	ModeOffline Mode = "offline"
)
