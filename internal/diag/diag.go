// Package diag collects record-level anomalies encountered during a run.
// One bad row never aborts a run; it is skipped and reported here so the
// caller can see what was dropped and why.
package diag

import "fmt"

// Kind labels the class of anomaly.
type Kind string

const (
	// KindUnclassifiable marks entries dropped before cohort assignment:
	// unrecognized gender token, unparseable or out-of-band age.
	KindUnclassifiable Kind = "unclassifiable"
	// KindBadTime marks entries whose qualifying cell is present but not a
	// parseable time, excluded from their cohort's leaderboard.
	KindBadTime Kind = "bad-time"
)

// Diagnostic describes one dropped or excluded record.
type Diagnostic struct {
	Kind   Kind
	Rider  string
	Field  string
	Value  string
	Detail string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: rider %q: %s=%q: %s", d.Kind, d.Rider, d.Field, d.Value, d.Detail)
}

// List is an ordered collection of diagnostics for one run.
type List []Diagnostic

// Count returns how many diagnostics of the given kind were recorded.
func (l List) Count(kind Kind) int {
	n := 0
	for _, d := range l {
		if d.Kind == kind {
			n++
		}
	}
	return n
}
