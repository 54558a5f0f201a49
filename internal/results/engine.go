// Package results orchestrates one classification and ranking run:
// classify raw entries into cohorts, detect series progress, rank each
// cohort, and render its fixed-width table. Record-level anomalies come
// back as diagnostics; run-level problems come back as sentinel errors.
package results

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"ttresults/internal/cohort"
	"ttresults/internal/diag"
	"ttresults/internal/logging"
	"ttresults/internal/progress"
	"ttresults/internal/render"
	"ttresults/internal/rider"
	"ttresults/internal/standings"
)

var (
	// ErrNoEntries is returned when the input holds no entries at all.
	ErrNoEntries = errors.New("no rider entries")
	// ErrProgressUndetermined is returned when no rider has any stage
	// result, leaving no valid leaderboard shape to produce.
	ErrProgressUndetermined = errors.New("series progress undetermined")
)

// Table is one cohort's rendered leaderboard.
type Table struct {
	Gender rider.Gender
	Group  cohort.AgeGroup
	ID     string
	Label  string
	Ranked int
	Text   string
}

// Outcome is everything one run produces.
type Outcome struct {
	Stage       progress.Stage
	Tables      []Table
	Diagnostics diag.List
}

// Engine runs the classification and ranking pipeline.
type Engine struct {
	header string
	logger *slog.Logger
}

// NewEngine returns an engine that titles every table with header.
func NewEngine(header string, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Engine{header: header, logger: logger}
}

// Run processes one batch of raw entries end to end. Tables come back in
// cohort order: MEN bands ascending, then WOMEN bands ascending. Cohorts
// left empty by filtering still yield a headers-only table.
func (e *Engine) Run(ctx context.Context, entries []rider.Raw) (Outcome, error) {
	log := e.logger.With("component", "results", "run_id", uuid.NewString())

	if len(entries) == 0 {
		return Outcome{}, ErrNoEntries
	}

	cohorts, diags := cohort.Classify(entries)
	log.Debug("classified entries",
		"entries", len(entries),
		"cohorts", len(cohorts),
		"dropped", diags.Count(diag.KindUnclassifiable))

	stage := progress.Detect(cohorts)
	if !stage.Determined() {
		return Outcome{Diagnostics: diags}, ErrProgressUndetermined
	}

	store, err := standings.Open(ctx)
	if err != nil {
		return Outcome{}, err
	}
	defer store.Close()

	outcome := Outcome{Stage: stage, Diagnostics: diags}
	for _, c := range cohorts {
		board, rankDiags, err := store.Rank(ctx, c, stage)
		if err != nil {
			return Outcome{}, fmt.Errorf("rank cohort %s: %w", c.ID(), err)
		}
		outcome.Diagnostics = append(outcome.Diagnostics, rankDiags...)
		outcome.Tables = append(outcome.Tables, Table{
			Gender: c.Gender,
			Group:  c.Group,
			ID:     c.ID(),
			Label:  c.Label(),
			Ranked: len(board),
			Text:   render.Table(e.header, c.Label(), int(stage), board),
		})
	}

	log.Info("run complete",
		"stage", int(stage),
		"tables", len(outcome.Tables),
		"diagnostics", len(outcome.Diagnostics))
	return outcome, nil
}
