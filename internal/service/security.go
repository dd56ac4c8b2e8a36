package service

import "fmt"

// EventNormalizer maps a security event to an impact score in [0, inf)
type EventNormalizer func(eventType string, metadata map[string]interface{}) float64

// Per-event base weights for the default normalizer
var eventWeights = map[string]float64{
	"eye_off_screen":   0.6,
	"tab_switch":       0.8,
	"suspicious_app":   0.9,
	"microphone_muted": 0.5,
	"network_flap":     0.3,
}

// NormalizeEvent is the default impact normalizer: base weight for the event
// type plus up to 0.4 for how long it lasted, capped at 1.0.
func NormalizeEvent(eventType string, metadata map[string]interface{}) float64 {
	base, ok := eventWeights[eventType]
	if !ok {
		base = 0.2
	}
	impact := base + min(durationMS(metadata)/5000.0, 0.4)
	return min(impact, 1.0)
}

func durationMS(metadata map[string]interface{}) float64 {
	switch v := metadata["duration_ms"].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}

// SecurityClassifier buckets normalized event impact into a textual hint
type SecurityClassifier struct {
	normalize EventNormalizer
}

// NewSecurityClassifier creates a classifier around the given normalizer;
// a nil normalizer falls back to NormalizeEvent.
func NewSecurityClassifier(normalize EventNormalizer) *SecurityClassifier {
	if normalize == nil {
		normalize = NormalizeEvent
	}
	return &SecurityClassifier{normalize: normalize}
}

// Classify returns "<eventType> (high|moderate|low impact)". Boundary values
// fall into the lower bucket.
func (c *SecurityClassifier) Classify(eventType string, metadata map[string]interface{}) string {
	impact := c.normalize(eventType, metadata)
	switch {
	case impact > 0.75:
		return fmt.Sprintf("%s (high impact)", eventType)
	case impact > 0.45:
		return fmt.Sprintf("%s (moderate impact)", eventType)
	default:
		return fmt.Sprintf("%s (low impact)", eventType)
	}
}
