package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// DifficultyPresets lists every preset in menu order.
func DifficultyPresets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParseDifficulty converts a flag value into a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	for _, p := range DifficultyPresets() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q", s)
}

// Describe returns a short human-readable summary of the preset.
func (p DifficultyPreset) Describe() string {
	switch p {
	case DifficultyEasy:
		return "slower start, gentle speed-up"
	case DifficultyNormal:
		return "configured speed curve"
	case DifficultyHard:
		return "fast start, steep speed-up"
	case DifficultyFixed:
		return "constant speed, no progression"
	default:
		return ""
	}
}

// ApplySnakePreset modifies the speed curve based on a difficulty preset.
// Normal leaves the configured curve untouched.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	s := &cfg.Speed
	switch preset {
	case DifficultyEasy:
		s.InitialMS = s.InitialMS * 3 / 2
		s.StepMS = max(1, s.StepMS/2)
		s.FloorMS = s.FloorMS * 3 / 2
	case DifficultyHard:
		s.InitialMS = s.InitialMS * 3 / 4
		s.StepMS = s.StepMS * 2
		s.FloorMS = s.FloorMS * 3 / 4
	case DifficultyFixed:
		s.StepMS = 0
		s.FloorMS = s.InitialMS
	}
	s.FloorMS = max(1, min(s.FloorMS, s.InitialMS))
}
