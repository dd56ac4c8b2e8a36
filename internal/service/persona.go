package service

import "fortitwin/internal/model"

// DefaultPersonaName is the preset used for any unknown persona
const DefaultPersonaName = "Default Manager"

// DefaultPresets returns the built-in interviewer personas
func DefaultPresets() map[string]model.PersonaPreset {
	return map[string]model.PersonaPreset{
		"Default Manager":   {Tone: "professional", Difficulty: model.DifficultyMedium},
		"Startup CTO":       {Tone: "direct", Difficulty: model.DifficultyHigh},
		"FAANG Manager":     {Tone: "structured", Difficulty: model.DifficultyHigh},
		"Finance Recruiter": {Tone: "formal", Difficulty: model.DifficultyMedium},
	}
}

// PersonaRegistry is an immutable name -> preset lookup. Resolution never
// fails: unknown names map to the default preset.
type PersonaRegistry struct {
	presets     map[string]model.PersonaPreset
	defaultName string
}

// NewPersonaRegistry copies the given presets into a registry. If the
// default name is missing from the table, a professional/medium preset is
// registered under it so Resolve always has somewhere to land.
func NewPersonaRegistry(presets map[string]model.PersonaPreset, defaultName string) *PersonaRegistry {
	copied := make(map[string]model.PersonaPreset, len(presets))
	for name, p := range presets {
		copied[name] = p
	}
	if _, ok := copied[defaultName]; !ok {
		copied[defaultName] = model.PersonaPreset{Tone: "professional", Difficulty: model.DifficultyMedium}
	}
	return &PersonaRegistry{presets: copied, defaultName: defaultName}
}

// Resolve returns the preset for name, or the default preset
func (r *PersonaRegistry) Resolve(name string) model.PersonaPreset {
	if p, ok := r.presets[name]; ok {
		return p
	}
	return r.presets[r.defaultName]
}
