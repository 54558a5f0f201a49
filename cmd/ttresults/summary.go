package main

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"ttresults/internal/results"
)

var titleCaser = cases.Title(language.English)

// summaryRows flattens a run outcome into rows for the cohort table.
func summaryRows(outcome results.Outcome) [][]string {
	rows := make([][]string, 0, len(outcome.Tables))
	for _, t := range outcome.Tables {
		rows = append(rows, []string{
			titleCaser.String(strings.ToLower(t.Gender.Label())),
			t.Group.String(),
			strconv.Itoa(t.Ranked),
		})
	}
	return rows
}

func renderSummary(outcome results.Outcome) string {
	return renderTable([]string{"Gender", "Age Group", "Ranked"}, summaryRows(outcome))
}
