package standings_test

import (
	"context"
	"testing"

	"ttresults/internal/cohort"
	"ttresults/internal/diag"
	"ttresults/internal/progress"
	"ttresults/internal/rider"
	"ttresults/internal/standings"
)

func mustOpen(t *testing.T) *standings.Store {
	t.Helper()
	store, err := standings.Open(context.Background())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func menCohort(riders ...rider.Record) *cohort.Cohort {
	return &cohort.Cohort{
		Gender: rider.Male,
		Group:  cohort.AgeGroup{Low: 30, High: 34},
		Riders: riders,
	}
}

func TestRankKeepsSmallestDuplicate(t *testing.T) {
	store := mustOpen(t)
	c := menCohort(
		rider.Record{Name: "A", Stage1: "00:10:00"},
		rider.Record{Name: "A", Stage1: "00:09:30"},
	)
	board, diags, err := store.Rank(context.Background(), c, progress.Stage1)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(board) != 1 || board[0].Stage1 != "00:09:30" {
		t.Fatalf("board = %v, want single A at 00:09:30", board)
	}
}

func TestRankTieKeepsFirstEncountered(t *testing.T) {
	store := mustOpen(t)
	c := menCohort(
		rider.Record{Name: "A", City: "Aurora", Stage1: "00:10:00"},
		rider.Record{Name: "A", City: "Batavia", Stage1: "00:10:00"},
	)
	board, _, err := store.Rank(context.Background(), c, progress.Stage1)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	if len(board) != 1 || board[0].City != "Aurora" {
		t.Fatalf("board = %v, want first-encountered record", board)
	}
}

func TestRankFiltersSentinelsAndMissing(t *testing.T) {
	store := mustOpen(t)
	for _, stage := range []progress.Stage{progress.Stage1, progress.Stage2, progress.Stage3, progress.Stage4} {
		slow := rider.Record{Name: "Keep"}
		switch stage {
		case progress.Stage1:
			slow.Stage1 = "00:10:00"
		case progress.Stage2:
			slow.Cumulative2 = "00:10:00"
		case progress.Stage3:
			slow.Cumulative3 = "00:10:00"
		case progress.Stage4:
			slow.SeriesTotal = "00:10:00"
		}
		c := menCohort(
			rider.Record{Name: "Started not", Stage1: "DNS", Cumulative2: "DNS", Cumulative3: "DNS", SeriesTotal: "DNS"},
			rider.Record{Name: "Finished not", Stage1: "DNF", Cumulative2: "DNF", Cumulative3: "DNF", SeriesTotal: "DNF"},
			rider.Record{Name: "Missing"},
			slow,
		)
		board, diags, err := store.Rank(context.Background(), c, stage)
		if err != nil {
			t.Fatalf("stage %d: Rank failed: %v", stage, err)
		}
		if len(diags) != 0 {
			t.Fatalf("stage %d: unexpected diagnostics: %v", stage, diags)
		}
		if len(board) != 1 || board[0].Name != "Keep" {
			t.Fatalf("stage %d: board = %v, want only Keep", stage, board)
		}
	}
}

func TestRankSortsAscendingAndStable(t *testing.T) {
	store := mustOpen(t)
	c := menCohort(
		rider.Record{Name: "C", City: "first", Stage1: "00:11:00"},
		rider.Record{Name: "A", Stage1: "00:09:00"},
		rider.Record{Name: "D", City: "second", Stage1: "00:11:00"},
		rider.Record{Name: "B", Stage1: "00:10:00"},
	)
	board, _, err := store.Rank(context.Background(), c, progress.Stage1)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	var names []string
	for _, r := range board {
		names = append(names, r.Name)
	}
	want := []string{"A", "B", "C", "D"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("order = %v, want %v", names, want)
		}
	}
}

func TestRankReportsUnparseableTimes(t *testing.T) {
	store := mustOpen(t)
	c := menCohort(
		rider.Record{Name: "Bad", Stage1: "ten minutes"},
		rider.Record{Name: "Good", Stage1: "00:10:00"},
	)
	board, diags, err := store.Rank(context.Background(), c, progress.Stage1)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	if len(board) != 1 || board[0].Name != "Good" {
		t.Fatalf("board = %v, want only Good", board)
	}
	if diags.Count(diag.KindBadTime) != 1 {
		t.Fatalf("diagnostics = %v, want one bad-time", diags)
	}
	if diags[0].Rider != "Bad" || diags[0].Value != "ten minutes" {
		t.Fatalf("diagnostic = %+v", diags[0])
	}
}

func TestRankEmptyAfterFiltering(t *testing.T) {
	store := mustOpen(t)
	c := menCohort(rider.Record{Name: "A", Stage1: "DNS"})
	board, diags, err := store.Rank(context.Background(), c, progress.Stage1)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	if len(board) != 0 || len(diags) != 0 {
		t.Fatalf("board = %v, diags = %v, want both empty", board, diags)
	}
}

func TestRankUsesStageQualifyingField(t *testing.T) {
	store := mustOpen(t)
	// B leads stage one, A leads the cumulative standings.
	c := menCohort(
		rider.Record{Name: "A", Stage1: "00:10:00", Stage2: "00:09:00", Cumulative2: "00:19:00"},
		rider.Record{Name: "B", Stage1: "00:09:00", Stage2: "00:11:00", Cumulative2: "00:20:00"},
	)
	board, _, err := store.Rank(context.Background(), c, progress.Stage2)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	if len(board) != 2 || board[0].Name != "A" || board[1].Name != "B" {
		t.Fatalf("board = %v, want A then B", board)
	}
}

func TestRankRejectsUndeterminedStage(t *testing.T) {
	store := mustOpen(t)
	if _, _, err := store.Rank(context.Background(), menCohort(), progress.Undetermined); err == nil {
		t.Fatal("expected error for undetermined stage")
	}
}

func TestRankSameCohortTwice(t *testing.T) {
	store := mustOpen(t)
	c := menCohort(rider.Record{Name: "A", Stage1: "00:10:00"})
	for i := 0; i < 2; i++ {
		board, _, err := store.Rank(context.Background(), c, progress.Stage1)
		if err != nil {
			t.Fatalf("Rank run %d failed: %v", i, err)
		}
		if len(board) != 1 {
			t.Fatalf("Rank run %d: board = %v", i, board)
		}
	}
}
