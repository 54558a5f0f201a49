// Package rider defines the canonical shape of one series entry and the
// small vocabulary around it: field keys as they appear in the results
// export, the MALE/FEMALE gender tokens, the DNS/DNF sentinels recorded in
// place of times, and the zero-padded time syntax whose lexicographic order
// equals chronological order.
//
// Records are built once from external input and never mutated afterwards;
// cohorts and leaderboards are derived views recomputed on every run.
package rider
