package core_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

func TestApplySwapSingleRowRefill(t *testing.T) {
	g := board(t,
		"CCK",
		"SPC",
	)
	r := core.NewResolver(g, core.NewSequenceTokens(core.Donut, core.IceCream, core.Donut))

	rep, err := r.ApplySwap(core.C(2, 0), core.C(2, 1))
	require.NoError(t, err)

	if len(rep.Cycles) != 1 {
		t.Fatalf("expected 1 cycle, got %d", len(rep.Cycles))
	}
	cycle := rep.Cycles[0]

	wantMatch := []core.Match{{
		Axis:  core.Horizontal,
		Token: core.Candy,
		Cells: []core.Coord{core.C(0, 0), core.C(1, 0), core.C(2, 0)},
	}}
	if diff := cmp.Diff(wantMatch, cycle.Matches.All()); diff != "" {
		t.Errorf("matches mismatch (-want +got):\n%s", diff)
	}
	if len(cycle.Removed) != 3 {
		t.Errorf("removed %d cells, expected 3", len(cycle.Removed))
	}
	if len(cycle.Moves) != 0 {
		t.Errorf("expected no moves on the top row, got %v", cycle.Moves)
	}

	wantSpawns := []core.Spawn{
		{At: core.C(0, 0), Token: core.Donut},
		{At: core.C(1, 0), Token: core.IceCream},
		{At: core.C(2, 0), Token: core.Donut},
	}
	if diff := cmp.Diff(wantSpawns, cycle.Spawns); diff != "" {
		t.Errorf("spawns mismatch (-want +got):\n%s", diff)
	}

	if got := core.RenderASCII(r.Board()); got != "DID\nSPK\n" {
		t.Errorf("final board = %q", got)
	}
	if rep.Removed() != 3 || rep.Spawned() != 3 {
		t.Errorf("Removed()=%d Spawned()=%d, expected 3 and 3", rep.Removed(), rep.Spawned())
	}
	if !rep.Stable() {
		t.Error("report should be stable")
	}
}

func TestApplySwapCascade(t *testing.T) {
	g := board(t,
		"SIKP",
		"KSID",
		"IKDS",
		"KPPD",
	)
	src := core.NewSequenceTokens(
		core.Donut, core.Cake, core.IceCream,
		core.Pizza, core.Donut, core.Pizza,
	)
	r := core.NewResolver(g, src)

	rep, err := r.ApplySwap(core.C(2, 2), core.C(3, 2))
	require.NoError(t, err)
	require.Len(t, rep.Cycles, 2)

	first := rep.Cycles[0]
	if diff := cmp.Diff([]core.Coord{core.C(3, 1), core.C(3, 2), core.C(3, 3)}, first.Removed); diff != "" {
		t.Errorf("cycle 1 removed mismatch (-want +got):\n%s", diff)
	}
	wantMoves := []core.Move{{From: core.C(3, 0), To: core.C(3, 3), Token: core.Pizza}}
	if diff := cmp.Diff(wantMoves, first.Moves); diff != "" {
		t.Errorf("cycle 1 moves mismatch (-want +got):\n%s", diff)
	}
	if len(first.Spawns) != 3 {
		t.Errorf("cycle 1 spawned %d, expected 3", len(first.Spawns))
	}

	second := rep.Cycles[1]
	if m := second.Matches.All(); len(m) != 1 || m[0].Token != core.Pizza || m[0].Axis != core.Horizontal {
		t.Errorf("cycle 2 should clear a horizontal pizza run, got %+v", m)
	}
	if len(second.Moves) != 9 {
		t.Errorf("cycle 2 moved %d tokens, expected 9", len(second.Moves))
	}

	want := "SPDP\nKIKD\nISIK\nKKSI\n"
	if got := core.RenderASCII(r.Board()); got != want {
		t.Errorf("final board = %q, expected %q", got, want)
	}
	if src.Drawn() != 6 {
		t.Errorf("drew %d tokens, expected 6", src.Drawn())
	}
	if !core.Detect(r.Board()).IsEmpty() {
		t.Error("final board must be stable")
	}
}

func TestApplySwapNoMatchesReverts(t *testing.T) {
	g := board(t,
		"SIKP",
		"KSID",
		"IKDS",
		"KPPD",
	)
	before := g.Clone()
	src := core.NewSequenceTokens(core.Candy)
	r := core.NewResolver(g, src)

	rep, err := r.ApplySwap(core.C(0, 0), core.C(1, 0))
	if !errors.Is(err, core.ErrNoMatches) {
		t.Fatalf("ApplySwap error = %v, expected ErrNoMatches", err)
	}
	var se *core.SwapError
	require.ErrorAs(t, err, &se)
	if se.Kind != core.SwapNoMatches {
		t.Errorf("SwapError.Kind = %v, expected no_matches", se.Kind)
	}
	if len(rep.Cycles) != 0 {
		t.Errorf("rejected swap should have no cycles, got %d", len(rep.Cycles))
	}
	if !r.Board().Equal(before) {
		t.Errorf("board should be restored:\n%s", core.RenderASCII(r.Board()))
	}
	if src.Drawn() != 0 {
		t.Errorf("rejected swap drew %d tokens", src.Drawn())
	}
}

func TestApplySwapNoToken(t *testing.T) {
	g := board(t,
		"CC.",
		"KSC",
	)
	before := g.Clone()
	r := core.NewResolver(g, core.NewSequenceTokens(core.Star))

	_, err := r.ApplySwap(core.C(2, 1), core.C(2, 0))
	if !errors.Is(err, core.ErrNoToken) {
		t.Fatalf("ApplySwap error = %v, expected ErrNoToken", err)
	}
	var se *core.SwapError
	require.ErrorAs(t, err, &se)
	if se.Kind != core.SwapNoToken || se.At != core.C(2, 0) {
		t.Errorf("SwapError = %+v, expected no_token at (2,0)", se)
	}
	var mt *core.MissingTokenError
	if !errors.As(err, &mt) {
		t.Error("SwapError should unwrap to *MissingTokenError")
	}
	if !r.Board().Equal(before) {
		t.Error("board must be unchanged")
	}
}

func TestResolverMaxCycles(t *testing.T) {
	g := board(t,
		"CCC",
		"KSI",
		"SIK",
	)
	// Refilling with candy recreates the top run forever.
	r := core.NewResolver(g, core.NewSequenceTokens(core.Candy), core.WithMaxCycles(5))

	rep, err := r.Settle()
	if !errors.Is(err, core.ErrCascadeLimit) {
		t.Fatalf("Settle error = %v, expected ErrCascadeLimit", err)
	}
	if len(rep.Cycles) != 5 {
		t.Errorf("expected 5 cycles, got %d", len(rep.Cycles))
	}
	if !rep.Limited || rep.Stable() {
		t.Error("capped report should be Limited and not Stable")
	}
	if !r.Board().IsFull() {
		t.Error("board must stay fully occupied at the cap")
	}
}

func TestSettleStableBoard(t *testing.T) {
	g := board(t,
		"CKS",
		"LBI",
		"PDC",
	)
	r := core.NewResolver(g, core.NewSequenceTokens(core.Candy))

	rep, err := r.Settle()
	require.NoError(t, err)
	if len(rep.Cycles) != 0 {
		t.Errorf("stable board should settle in 0 cycles, got %d", len(rep.Cycles))
	}
}

func TestReportReplayMatchesResolver(t *testing.T) {
	r := core.NewBoard(8, 8, core.NewSeededTokens(7, 5))
	_, err := r.Settle()
	require.NoError(t, err)

	for i := 0; i < 30; i++ {
		hint, ok := r.Hint()
		if !ok {
			_, err := r.Reshuffle()
			require.NoError(t, err)
			continue
		}

		before := r.Board()
		rep, err := r.ApplySwap(hint.A, hint.B)
		require.NoError(t, err)

		replayed := before.Clone()
		require.NoError(t, rep.Replay(replayed))
		if !replayed.Equal(r.Board()) {
			t.Fatalf("swap %d: replay differs\nreplayed:\n%s\nresolver:\n%s",
				i, core.RenderASCII(replayed), core.RenderASCII(r.Board()))
		}
		if !r.Board().IsFull() {
			t.Fatalf("swap %d: board not full", i)
		}
		if !core.Detect(r.Board()).IsEmpty() {
			t.Fatalf("swap %d: board not stable", i)
		}
	}
}

func TestResolverDeterminism(t *testing.T) {
	run := func() string {
		r := core.NewBoard(6, 6, core.NewSeededTokens(42, 6))
		_, _ = r.Settle()
		for i := 0; i < 20; i++ {
			hint, ok := r.Hint()
			if !ok {
				_, _ = r.Reshuffle()
				continue
			}
			_, _ = r.ApplySwap(hint.A, hint.B)
		}
		return core.RenderASCII(r.Board())
	}

	first := run()
	second := run()
	if first != second {
		t.Errorf("same seed produced different boards:\n%s\nvs\n%s", first, second)
	}
}

func TestReshuffleProducesStableBoard(t *testing.T) {
	g := board(t,
		"CKS",
		"LBI",
		"PDC",
	)
	r := core.NewResolver(g, core.NewSeededTokens(3, 4))

	_, err := r.Reshuffle()
	require.NoError(t, err)
	if !r.Board().IsFull() {
		t.Error("reshuffled board must be full")
	}
	if !core.Detect(r.Board()).IsEmpty() {
		t.Error("reshuffled board must be settled")
	}
}

func TestSeededTokensRange(t *testing.T) {
	src := core.NewSeededTokens(99, 3)
	for i := 0; i < 200; i++ {
		if tok := src.Next(); tok > core.Star {
			t.Fatalf("token %v outside the first 3 kinds", tok)
		}
	}
	if core.NewSeededTokens(1, 0).Kinds() != 1 {
		t.Error("kinds below 1 should clamp to 1")
	}
	if core.NewSeededTokens(1, 20).Kinds() != core.NumTokens {
		t.Error("kinds above NumTokens should clamp")
	}
}
