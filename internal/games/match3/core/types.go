package core

import (
	"fmt"
	"strings"
)

// Token is the kind of piece sitting in a board cell.
// Only equality between tokens matters; the numeric order carries no meaning.
type Token uint8

// The closed set of token kinds.
const (
	Candy Token = iota
	Cake
	Star
	Lollipop
	BonBon
	IceCream
	Pizza
	Donut
)

// NumTokens is the number of distinct token kinds.
const NumTokens = 8

var tokenNames = [NumTokens]string{
	"candy", "cake", "star", "lollipop", "bonbon", "icecream", "pizza", "donut",
}

// Glyphs are single letters, one per token, used by the ASCII board format.
var tokenGlyphs = [NumTokens]rune{'C', 'K', 'S', 'L', 'B', 'I', 'P', 'D'}

// AllTokens returns every token kind in value order.
func AllTokens() []Token {
	out := make([]Token, NumTokens)
	for i := range out {
		out[i] = Token(i)
	}
	return out
}

// Valid reports whether t is one of the known kinds.
func (t Token) Valid() bool {
	return t < NumTokens
}

// String returns the lowercase token name.
func (t Token) String() string {
	if !t.Valid() {
		return fmt.Sprintf("token(%d)", uint8(t))
	}
	return tokenNames[t]
}

// Glyph returns the single-letter representation of the token.
func (t Token) Glyph() rune {
	if !t.Valid() {
		return '?'
	}
	return tokenGlyphs[t]
}

// ParseToken accepts either a token name ("pizza") or its glyph ("P").
func ParseToken(s string) (Token, error) {
	s = strings.TrimSpace(s)
	for i, name := range tokenNames {
		if strings.EqualFold(s, name) {
			return Token(i), nil
		}
	}
	if r := []rune(s); len(r) == 1 {
		if t, ok := TokenFromGlyph(r[0]); ok {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown token %q", s)
}

// TokenFromGlyph maps a glyph back to its token (case-insensitive).
func TokenFromGlyph(r rune) (Token, bool) {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	for i, g := range tokenGlyphs {
		if g == r {
			return Token(i), true
		}
	}
	return 0, false
}
