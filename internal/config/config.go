// Package config provides YAML-based configuration loading for the match-3
// host: board geometry, resolution rules and display settings.
package config

import (
	"errors"
	"fmt"
)

// Match3Config contains all configuration for a match-3 session.
type Match3Config struct {
	Board   BoardConfig   `yaml:"board"`
	Rules   RulesConfig   `yaml:"rules"`
	Display DisplayConfig `yaml:"display"`
}

// BoardConfig defines the board size and the number of token kinds in play.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Kinds  int `yaml:"kinds"` // 3..8, fewer kinds means more cascades
}

// RulesConfig controls how the engine resolves the board.
type RulesConfig struct {
	MaxCycles          int  `yaml:"max_cycles"`           // 0 = unbounded
	SettleInitial      bool `yaml:"settle_initial"`       // clear runs on the starting board
	ReshuffleWhenStuck bool `yaml:"reshuffle_when_stuck"` // re-roll when no legal swap remains
}

// DisplayConfig controls how the board is drawn and animated.
type DisplayConfig struct {
	CellWidth      int  `yaml:"cell_width"`      // screen columns per board cell
	AnimationTicks int  `yaml:"animation_ticks"` // ticks per clear/fall/spawn phase, 0 disables
	ShowHints      bool `yaml:"show_hints"`      // allow the hint key
}

// Limits for board values.
const (
	MinBoardSize = 3
	MaxBoardSize = 32
	MinKinds     = 3
	MaxKinds     = 8
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that every value is within its allowed range.
func (c Match3Config) Validate() error {
	var errs []error
	if c.Board.Width < MinBoardSize || c.Board.Width > MaxBoardSize {
		errs = append(errs, fmt.Errorf("board.width %d out of range [%d, %d]", c.Board.Width, MinBoardSize, MaxBoardSize))
	}
	if c.Board.Height < MinBoardSize || c.Board.Height > MaxBoardSize {
		errs = append(errs, fmt.Errorf("board.height %d out of range [%d, %d]", c.Board.Height, MinBoardSize, MaxBoardSize))
	}
	if c.Board.Kinds < MinKinds || c.Board.Kinds > MaxKinds {
		errs = append(errs, fmt.Errorf("board.kinds %d out of range [%d, %d]", c.Board.Kinds, MinKinds, MaxKinds))
	}
	if c.Rules.MaxCycles < 0 {
		errs = append(errs, fmt.Errorf("rules.max_cycles must not be negative, got %d", c.Rules.MaxCycles))
	}
	if c.Display.AnimationTicks < 0 {
		errs = append(errs, fmt.Errorf("display.animation_ticks must not be negative, got %d", c.Display.AnimationTicks))
	}
	if c.Display.CellWidth < 1 {
		errs = append(errs, fmt.Errorf("display.cell_width must be at least 1, got %d", c.Display.CellWidth))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// Variant is a named board preset.
type Variant struct {
	ID       string
	Title    string
	Width    int
	Height   int
	MaxKinds int
}

// Known variants.
var (
	VariantClassic = Variant{ID: "match3", Title: "Match-3", Width: 8, Height: 8, MaxKinds: 8}
	VariantMini    = Variant{ID: "match3_mini", Title: "Match-3 Mini", Width: 6, Height: 6, MaxKinds: 6}
)

// Variants returns the known variants in display order.
func Variants() []Variant {
	return []Variant{VariantClassic, VariantMini}
}

// LookupVariant finds a variant by ID.
func LookupVariant(id string) (Variant, bool) {
	for _, v := range Variants() {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// ApplyVariant sets the board size of v and caps the kinds at v.MaxKinds.
func ApplyVariant(cfg *Match3Config, v Variant) {
	cfg.Board.Width = v.Width
	cfg.Board.Height = v.Height
	if v.MaxKinds > 0 && cfg.Board.Kinds > v.MaxKinds {
		cfg.Board.Kinds = v.MaxKinds
	}
}
