package standings

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"ttresults/internal/cohort"
	"ttresults/internal/diag"
	"ttresults/internal/progress"
	"ttresults/internal/rider"
)

// Store holds the in-memory ranking database for one run.
type Store struct {
	db *sql.DB
}

// Open creates the in-memory database.
func Open(ctx context.Context) (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open ranking db: %w", err)
	}
	// A :memory: database exists per connection; the pool must never open
	// a second one.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping ranking db: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

const resultColumns = "ridername, city, state, club, tt1results, tt2results, tt3results, tt4results, cumulative2, cumulative3, ttseriestotal"

// Rank produces the cohort's leaderboard for the given series stage:
// filter, dedupe by rider name, sort ascending by the qualifying cell.
// An empty leaderboard is a valid outcome; the cohort still renders with
// headers only.
func (s *Store) Rank(ctx context.Context, c *cohort.Cohort, stage progress.Stage) ([]rider.Record, diag.List, error) {
	if !stage.Determined() {
		return nil, nil, fmt.Errorf("rank %s: series progress undetermined", c.ID())
	}

	table := c.ID()
	qual, err := qualifyingColumn(stage)
	if err != nil {
		return nil, nil, err
	}

	if _, err := s.db.ExecContext(ctx, `DROP TABLE IF EXISTS `+table); err != nil {
		return nil, nil, fmt.Errorf("reset table %s: %w", table, err)
	}
	if _, err := s.db.ExecContext(ctx, `CREATE TABLE `+table+` (
        ridername TEXT, city TEXT, state TEXT, club TEXT,
        tt1results TEXT, tt2results TEXT, tt3results TEXT, tt4results TEXT,
        cumulative2 TEXT, cumulative3 TEXT, ttseriestotal TEXT
    )`); err != nil {
		return nil, nil, fmt.Errorf("create table %s: %w", table, err)
	}

	var diags diag.List
	insert := `INSERT INTO ` + table + ` (` + resultColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, r := range c.Riders {
		value := r.Qualifying(int(stage))
		if value == "" || rider.IsSentinel(value) {
			continue
		}
		if !rider.ValidTime(value) {
			diags = append(diags, diag.Diagnostic{
				Kind:   diag.KindBadTime,
				Rider:  r.Name,
				Field:  qual,
				Value:  value,
				Detail: "qualifying value is not a parseable time",
			})
			continue
		}
		if _, err := s.db.ExecContext(ctx, insert,
			r.Name, r.City, r.State, r.Club,
			r.Stage1, r.Stage2, r.Stage3, r.Stage4,
			r.Cumulative2, r.Cumulative3, r.SeriesTotal,
		); err != nil {
			return nil, diags, fmt.Errorf("insert into %s: %w", table, err)
		}
	}

	// Per rider name, keep the smallest qualifying value; exact ties keep
	// the row inserted first.
	dedupe := `DELETE FROM ` + table + ` WHERE EXISTS (
        SELECT 1 FROM ` + table + ` t2
        WHERE ` + table + `.ridername = t2.ridername
          AND (` + table + `.` + qual + ` > t2.` + qual + `
               OR (` + table + `.` + qual + ` = t2.` + qual + ` AND ` + table + `.rowid > t2.rowid)))`
	if _, err := s.db.ExecContext(ctx, dedupe); err != nil {
		return nil, diags, fmt.Errorf("dedupe %s: %w", table, err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+resultColumns+` FROM `+table+` ORDER BY `+qual+`, rowid`)
	if err != nil {
		return nil, diags, fmt.Errorf("rank %s: %w", table, err)
	}
	defer rows.Close()

	var board []rider.Record
	for rows.Next() {
		r := rider.Record{Gender: c.Gender}
		if err := rows.Scan(
			&r.Name, &r.City, &r.State, &r.Club,
			&r.Stage1, &r.Stage2, &r.Stage3, &r.Stage4,
			&r.Cumulative2, &r.Cumulative3, &r.SeriesTotal,
		); err != nil {
			return nil, diags, fmt.Errorf("scan %s: %w", table, err)
		}
		board = append(board, r)
	}
	return board, diags, rows.Err()
}

func qualifyingColumn(stage progress.Stage) (string, error) {
	switch stage {
	case progress.Stage1:
		return "tt1results", nil
	case progress.Stage2:
		return "cumulative2", nil
	case progress.Stage3:
		return "cumulative3", nil
	case progress.Stage4:
		return "ttseriestotal", nil
	}
	return "", fmt.Errorf("no qualifying column for stage %d", stage)
}
