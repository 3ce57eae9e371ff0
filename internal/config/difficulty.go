package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
// Difficulty is expressed through the number of token kinds: fewer kinds
// make runs and cascades more frequent.
type DifficultyPreset string

const (
	DifficultyNone   DifficultyPreset = ""
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty validates a preset name. The empty string keeps the
// configured kinds.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyNone, DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return DifficultyNone, fmt.Errorf("unknown difficulty %q (use easy, normal or hard)", s)
	}
}

// KindsForPreset returns the token kinds used by a preset, or 0 for none.
func KindsForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 5
	case DifficultyNormal:
		return 6
	case DifficultyHard:
		return 8
	default:
		return 0
	}
}

// ApplyDifficultyPreset overrides the board kinds for a preset.
// It is applied after the variant, so a preset may exceed the variant cap.
func ApplyDifficultyPreset(cfg *Match3Config, preset DifficultyPreset) {
	if k := KindsForPreset(preset); k > 0 {
		cfg.Board.Kinds = k
	}
}
