package core

// SwapOutcome is the result of one swap attempt.
type SwapOutcome string

const (
	OutcomeOK        SwapOutcome = "ok"
	OutcomeNoMatches SwapOutcome = "no_matches"
	OutcomeNoToken   SwapOutcome = "no_token"
	OutcomeLimit     SwapOutcome = "limit" // committed, stopped at the cascade cap
)

// Committed reports whether the swap changed the board.
func (o SwapOutcome) Committed() bool {
	return o == OutcomeOK || o == OutcomeLimit
}

// SwapLogEntry is one line of a session journal.
type SwapLogEntry struct {
	Seq     int
	AX, AY  int
	BX, BY  int
	Outcome SwapOutcome
	Cycles  int
	Removed int
}

// SessionSummary describes a session for persistence.
type SessionSummary struct {
	Variant        string
	Seed           int64
	Width          int
	Height         int
	Kinds          int
	Swaps          int
	Rejected       int
	Cleared        int
	LongestCascade int
	Reshuffles     int
}
