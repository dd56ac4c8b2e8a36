package service

import (
	"hash/fnv"
	"math"
	"math/rand"
)

// EmotionProvider supplies candidate affect signals for a session. Returned
// intensities are conventionally 0.0-1.0 but are not validated or clamped.
type EmotionProvider interface {
	GetSignals(sessionID string) map[string]float64
}

// MockEmotionProvider derives a deterministic signal set from the session id,
// so repeated lookups for the same session agree. Always returns data.
type MockEmotionProvider struct{}

func (MockEmotionProvider) GetSignals(sessionID string) map[string]float64 {
	h := fnv.New32a()
	h.Write([]byte(sessionID))
	rnd := rand.New(rand.NewSource(int64(h.Sum32())))

	nervous := 0.2 + rnd.Float64()*0.4
	confident := 1.0 - nervous - rnd.Float64()*0.2
	confident = math.Max(0.0, math.Min(1.0, confident))
	empatheticNeed := 0.1 + rnd.Float64()*0.4

	return map[string]float64{
		"nervous":         round2(nervous),
		"confident":       round2(confident),
		"empathetic_need": round2(empatheticNeed),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// HumeEmotionProvider fronts the Hume API. Without an API key it delegates
// to the mock provider; with one it currently returns a neutral signal set.
// TODO: replace the neutral set with real Hume expression-measurement calls.
type HumeEmotionProvider struct {
	apiKey string
}

func NewHumeEmotionProvider(apiKey string) *HumeEmotionProvider {
	return &HumeEmotionProvider{apiKey: apiKey}
}

func (p *HumeEmotionProvider) GetSignals(sessionID string) map[string]float64 {
	if p.apiKey == "" {
		return MockEmotionProvider{}.GetSignals(sessionID)
	}
	return map[string]float64{
		"nervous":         0.3,
		"confident":       0.5,
		"empathetic_need": 0.2,
	}
}
