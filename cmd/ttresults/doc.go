// Command ttresults builds the indoor time trial series results page from
// a spreadsheet export: it classifies riders into gender and age-group
// cohorts, works out how many events have been run, ranks each cohort for
// that stage, and publishes the fixed-width leaderboards as HTML.
package main
