// Package standings ranks each cohort for the current series stage.
//
// The engine runs the stage-dependent filter, per-name dedupe, and
// ascending sort over an in-memory SQLite database, one table per cohort.
// The relational form mirrors how the series results were always computed;
// the rowid tiebreakers make the outcome identical to an explicit
// filter+dedupe+stable-sort pipeline: the smallest qualifying time per
// rider name survives, exact ties keep the record seen first, and equal
// times keep input order.
//
// Record-level problems never fail a run. Cells holding DNS/DNF or nothing
// are filtered silently; a qualifying cell that is present but not a
// parseable time excludes the record and surfaces a diagnostic.
package standings
