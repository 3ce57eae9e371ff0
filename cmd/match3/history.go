package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagHistoryPlain   bool
	flagHistoryLimit   int
	flagHistoryRecent  bool
	flagHistorySession string
	flagHistoryClear   bool
)

var historyCmd = &cobra.Command{
	Use:   "history [board]",
	Short: "Show stored sessions",
	Long: `Browse finished sessions. Without --plain an interactive table is
shown; with --plain the sessions of one board are printed.

Examples:
  match3 history
  match3 history match3 --plain --limit 5
  match3 history --plain --recent
  match3 history --session <id>
  match3 history match3_mini --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print instead of the interactive table")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of sessions to print")
	historyCmd.Flags().BoolVar(&flagHistoryRecent, "recent", false, "Order by date instead of tokens cleared")
	historyCmd.Flags().StringVar(&flagHistorySession, "session", "", "Print the swap journal of one session")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the stored sessions of the board (all boards without an argument)")
}

func runHistory(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagHistorySession != "":
		return printJournal(store, flagHistorySession)

	case flagHistoryClear:
		variant := ""
		if len(args) > 0 {
			variant = args[0]
		}
		if err := store.ClearSessions(variant); err != nil {
			return err
		}
		logger.Info("sessions cleared", "board", variant)
		return nil

	case !flagHistoryPlain:
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		_, err := tui.RunHistory(store, width, height)
		return err
	}

	v, err := resolveVariant(args)
	if err != nil {
		return err
	}
	return printSessions(store, v.ID, v.Title)
}

func printSessions(store *storage.Store, variant, title string) error {
	var (
		sessions []storage.Session
		err      error
	)
	if flagHistoryRecent {
		sessions, err = store.RecentSessions(flagHistoryLimit)
	} else {
		sessions, err = store.BestSessions(variant, flagHistoryLimit)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Sessions - %s\n\n", title)
	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-7s  %-5s  %-7s  %-6s  %-16s  %s\n",
		"#", "Board", "Cleared", "Swaps", "Cascade", "Time", "Date", "ID")
	for i, s := range sessions {
		fmt.Printf("  %-4d  %-12s  %-7d  %-5d  x%-6d  %-6s  %-16s  %s\n",
			i+1, s.Variant, s.Cleared, s.Swaps, s.LongestCascade,
			s.Duration().Round(time.Second), s.EndedAt.Local().Format("2006-01-02 15:04"), s.ID)
	}

	stats, err := store.Stats(variant)
	if err != nil {
		return err
	}
	fmt.Printf("\n%d sessions, best %d, average %.1f cleared\n",
		stats.Sessions, stats.BestCleared, stats.AvgCleared)
	return nil
}

func printJournal(store *storage.Store, id string) error {
	sess, err := store.SessionByID(id)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no session with id %q", id)
	}
	if err != nil {
		return err
	}
	swaps, err := store.SessionSwaps(id)
	if err != nil {
		return err
	}

	fmt.Printf("Session %s\n", sess.ID)
	fmt.Printf("board %s %dx%d, %d kinds, seed %d\n", sess.Variant, sess.Width, sess.Height, sess.Kinds, sess.Seed)
	fmt.Printf("swaps %d (rejected %d), cleared %d, longest cascade x%d, reshuffles %d\n\n",
		sess.Swaps, sess.Rejected, sess.Cleared, sess.LongestCascade, sess.Reshuffles)

	fmt.Printf("  %-4s  %-14s  %-10s  %-6s  %s\n", "#", "Swap", "Outcome", "Cycles", "Removed")
	for _, sw := range swaps {
		fmt.Printf("  %-4d  %-14s  %-10s  %-6d  %d\n", sw.Seq,
			fmt.Sprintf("(%d,%d)-(%d,%d)", sw.AX, sw.AY, sw.BX, sw.BY), sw.Outcome, sw.Cycles, sw.Removed)
	}
	return nil
}
