// Package render formats ranked leaderboards as fixed-width text tables.
//
// Column identity fixes column width: Place 5, Name 20, City 20, St. 3,
// Club 35, every time column 12, single-space separated and left
// justified. The column set grows with series progress, which puts the
// total table width at 100, 126, 139, or 152 characters for stages one
// through four. Rendering is pure formatting; ranks and filtering were
// settled upstream.
package render

import (
	"strconv"
	"strings"

	"ttresults/internal/rider"
)

type column struct {
	title string
	width int
}

var baseColumns = []column{
	{"Place", 5},
	{"Name", 20},
	{"City", 20},
	{"St.", 3},
	{"Club", 35},
}

const timeWidth = 12

// columns returns the stage-dependent column set: one stage-time column
// per completed event, plus a total column from stage two on.
func columns(stage int) []column {
	cols := append([]column{}, baseColumns...)
	for n := 1; n <= stage; n++ {
		cols = append(cols, column{"TT #" + strconv.Itoa(n) + " Time", timeWidth})
	}
	if stage >= 2 {
		cols = append(cols, column{"Total Time", timeWidth})
	}
	return cols
}

// Width returns the total table width for a stage, separators included.
func Width(stage int) int {
	cols := columns(stage)
	total := len(cols) - 1
	for _, col := range cols {
		total += col.width
	}
	return total
}

// Table renders one cohort's leaderboard. The title and cohort label are
// centered over the table; an empty board still renders the header block
// so sparse age bands stay visible.
func Table(title, label string, stage int, board []rider.Record) string {
	cols := columns(stage)
	width := Width(stage)

	var b strings.Builder
	b.WriteString(center(title, width))
	b.WriteByte('\n')
	b.WriteString(center(label, width))
	b.WriteString("\n\n")

	titles := make([]string, len(cols))
	borders := make([]string, len(cols))
	for i, col := range cols {
		titles[i] = col.title
		borders[i] = strings.Repeat("=", col.width)
	}
	b.WriteString(row(cols, titles))
	b.WriteByte('\n')
	b.WriteString(row(cols, borders))
	b.WriteByte('\n')

	for place, r := range board {
		cells := []string{strconv.Itoa(place + 1), r.Name, r.City, r.State, r.Club}
		for n := 1; n <= stage; n++ {
			cells = append(cells, r.StageTime(n))
		}
		if stage >= 2 {
			cells = append(cells, r.Qualifying(stage))
		}
		b.WriteString(row(cols, cells))
		b.WriteByte('\n')
	}
	return b.String()
}

func row(cols []column, cells []string) string {
	parts := make([]string, len(cols))
	for i, col := range cols {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = pad(cell, col.width)
	}
	return strings.Join(parts, " ")
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
