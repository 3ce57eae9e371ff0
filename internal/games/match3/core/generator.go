package core

import "math/rand/v2"

// TokenSource produces the tokens used to populate and refill the board.
type TokenSource interface {
	Next() Token
}

// IntNSource is the subset of *rand.Rand used for token draws.
type IntNSource interface {
	IntN(n int) int
}

// RandomTokens draws tokens uniformly from the first Kinds token types.
type RandomTokens struct {
	rng   IntNSource
	kinds int
}

// NewRandomTokens wraps rng. kinds is clamped to [1, NumTokens].
func NewRandomTokens(rng IntNSource, kinds int) *RandomTokens {
	if kinds < 1 {
		kinds = 1
	}
	if kinds > NumTokens {
		kinds = NumTokens
	}
	return &RandomTokens{rng: rng, kinds: kinds}
}

// NewSeededTokens returns a deterministic source seeded with seed.
func NewSeededTokens(seed uint64, kinds int) *RandomTokens {
	return NewRandomTokens(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), kinds)
}

// Kinds returns the number of token kinds drawn from.
func (r *RandomTokens) Kinds() int {
	return r.kinds
}

// Next returns a uniformly random token.
func (r *RandomTokens) Next() Token {
	return Token(r.rng.IntN(r.kinds))
}

// SequenceTokens replays a fixed list of tokens, wrapping around at the end.
type SequenceTokens struct {
	script []Token
	drawn  int
}

// NewSequenceTokens returns a source that yields script in order.
// An empty script always yields Candy.
func NewSequenceTokens(script ...Token) *SequenceTokens {
	return &SequenceTokens{script: script}
}

// Next returns the next scripted token.
func (s *SequenceTokens) Next() Token {
	if len(s.script) == 0 {
		s.drawn++
		return Candy
	}
	t := s.script[s.drawn%len(s.script)]
	s.drawn++
	return t
}

// Drawn returns how many tokens have been produced so far.
func (s *SequenceTokens) Drawn() int {
	return s.drawn
}
