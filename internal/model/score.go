package model

// ScoreResult is the evaluator's verdict on a finished interview. JSON keys
// match the field names the remote evaluator is instructed to emit; values
// propagate as received, without range validation.
type ScoreResult struct {
	RoleFit       float64 `json:"Role Fit" bson:"roleFit"`
	CultureFit    float64 `json:"Culture Fit" bson:"cultureFit"`
	Honesty       float64 `json:"Honesty" bson:"honesty"`
	Communication float64 `json:"Communication" bson:"communication"`
	Notes         string  `json:"Notes" bson:"notes"`
}
