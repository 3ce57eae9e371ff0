package core

import (
	"errors"
	"fmt"
)

// Resolver owns a board and its token source and applies swaps to it.
// A Resolver is not safe for concurrent use; callers serialize access.
type Resolver struct {
	grid      *Grid
	tokens    TokenSource
	maxCycles int
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMaxCycles caps the number of clear/collapse/refill cycles per
// resolution. Zero means unbounded.
func WithMaxCycles(n int) Option {
	return func(r *Resolver) {
		if n < 0 {
			n = 0
		}
		r.maxCycles = n
	}
}

// NewResolver takes ownership of g. Tokens for refills are drawn from src.
func NewResolver(g *Grid, src TokenSource, opts ...Option) *Resolver {
	r := &Resolver{grid: g, tokens: src}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewBoard builds a fully populated w×h board and a resolver owning it.
func NewBoard(w, h int, src TokenSource, opts ...Option) *Resolver {
	return NewResolver(NewFilledGrid(w, h, src), src, opts...)
}

// Board returns a copy of the current board.
func (r *Resolver) Board() *Grid {
	return r.grid.Clone()
}

// Get returns the token at c.
func (r *Resolver) Get(c Coord) (Token, bool) {
	return r.grid.Get(c)
}

// Width returns the board width.
func (r *Resolver) Width() int { return r.grid.Width() }

// Height returns the board height.
func (r *Resolver) Height() int { return r.grid.Height() }

// MaxCycles returns the configured cycle cap (0 = unbounded).
func (r *Resolver) MaxCycles() int { return r.maxCycles }

// ApplySwap exchanges the tokens at a and b and resolves the board until no
// run remains. A swap touching an empty cell, or one that creates no run,
// is rejected with a *SwapError and leaves the board untouched.
//
// Without a cycle cap the loop ends only when refills stop forming runs,
// which is certain in practice but not bounded.
func (r *Resolver) ApplySwap(a, b Coord) (Report, error) {
	rep := Report{Swap: Swap{A: a, B: b}}
	if err := r.grid.Swap(a, b); err != nil {
		se := &SwapError{Kind: SwapNoToken, A: a, B: b, Err: err}
		var mt *MissingTokenError
		if errors.As(err, &mt) {
			se.At = mt.At
		}
		return rep, se
	}

	matches := Detect(r.grid)
	if matches.IsEmpty() {
		// Both cells are occupied, so swapping back cannot fail.
		_ = r.grid.Swap(a, b)
		return rep, &SwapError{Kind: SwapNoMatches, A: a, B: b}
	}

	return r.resolve(rep, matches)
}

// Settle resolves any runs already on the board without a swap.
// A board with no runs yields an empty report.
func (r *Resolver) Settle() (Report, error) {
	return r.resolve(Report{}, Detect(r.grid))
}

// Reshuffle replaces every token with a fresh draw and settles the result.
func (r *Resolver) Reshuffle() (Report, error) {
	for y := 0; y < r.grid.Height(); y++ {
		for x := 0; x < r.grid.Width(); x++ {
			r.grid.Insert(C(x, y), r.tokens.Next())
		}
	}
	return r.Settle()
}

// Hint returns the first legal swap in row-major order.
func (r *Resolver) Hint() (Swap, bool) {
	swaps := LegalSwaps(r.grid)
	if len(swaps) == 0 {
		return Swap{}, false
	}
	return swaps[0], true
}

// HasLegalSwap reports whether any adjacent swap would produce a run.
func (r *Resolver) HasLegalSwap() bool {
	_, ok := r.Hint()
	return ok
}

func (r *Resolver) resolve(rep Report, matches Matches) (Report, error) {
	for !matches.IsEmpty() {
		if r.maxCycles > 0 && len(rep.Cycles) >= r.maxCycles {
			rep.Limited = true
			return rep, fmt.Errorf("resolve after %d cycles: %w", len(rep.Cycles), ErrCascadeLimit)
		}

		cycle := Cycle{Matches: matches, Removed: matches.Coords()}
		for _, c := range cycle.Removed {
			r.grid.Remove(c)
		}
		cycle.Moves = r.grid.Drop()
		cycle.Spawns = r.grid.Fill(r.tokens)
		rep.Cycles = append(rep.Cycles, cycle)

		matches = Detect(r.grid)
	}
	return rep, nil
}
