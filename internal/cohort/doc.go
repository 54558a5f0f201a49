// Package cohort buckets validated rider entries into gender and age-group
// cohorts.
//
// The age bands are fixed five-year intervals from 10-14 through 95-99;
// every integer age in that range falls in exactly one band. Entries with
// no usable name are discarded silently, entries that fail gender or age
// classification are dropped with a diagnostic, and a (gender, band) pair
// with no matching entries produces no cohort at all. Membership order
// within a cohort always equals input order.
package cohort
