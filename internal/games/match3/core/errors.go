package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks.
var (
	// ErrNoToken is reported when a swap touches an empty cell.
	ErrNoToken = errors.New("no token at coordinate")
	// ErrNoMatches is reported when a swap would not produce a run.
	ErrNoMatches = errors.New("swap produces no matches")
	// ErrCascadeLimit is reported when resolution stops at the configured cycle cap.
	ErrCascadeLimit = errors.New("cascade cycle limit reached")
)

// MissingTokenError is returned by Grid.Swap when a coordinate is empty.
type MissingTokenError struct {
	At Coord
}

func (e *MissingTokenError) Error() string {
	return fmt.Sprintf("missing token at %s", e.At)
}

// Is makes MissingTokenError match ErrNoToken.
func (e *MissingTokenError) Is(target error) bool {
	return target == ErrNoToken
}

// SwapErrorKind classifies a rejected swap.
type SwapErrorKind uint8

const (
	// SwapNoToken means one of the two cells was empty.
	SwapNoToken SwapErrorKind = iota
	// SwapNoMatches means the exchange produced no run and was reverted.
	SwapNoMatches
)

func (k SwapErrorKind) String() string {
	switch k {
	case SwapNoToken:
		return "no_token"
	case SwapNoMatches:
		return "no_matches"
	default:
		return "unknown"
	}
}

// SwapError is returned by Resolver.ApplySwap. The board is always left in
// its pre-call state when a SwapError is returned.
type SwapError struct {
	Kind SwapErrorKind
	A, B Coord
	// At is the empty coordinate for SwapNoToken.
	At  Coord
	Err error
}

func (e *SwapError) Error() string {
	switch e.Kind {
	case SwapNoToken:
		return fmt.Sprintf("swap %s<->%s: no token at %s", e.A, e.B, e.At)
	case SwapNoMatches:
		return fmt.Sprintf("swap %s<->%s: no matches", e.A, e.B)
	default:
		return fmt.Sprintf("swap %s<->%s failed", e.A, e.B)
	}
}

// Unwrap exposes the underlying grid error, if any.
func (e *SwapError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel corresponding to the error kind.
func (e *SwapError) Is(target error) bool {
	switch e.Kind {
	case SwapNoToken:
		return target == ErrNoToken
	case SwapNoMatches:
		return target == ErrNoMatches
	}
	return false
}
