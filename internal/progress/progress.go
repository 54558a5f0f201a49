// Package progress infers how many events of the series have been run by
// inspecting the result cells themselves.
package progress

import "ttresults/internal/cohort"

// Stage is the number of completed series events, 1 through 4.
// Undetermined means no rider has any stage result at all.
type Stage int

const (
	Undetermined Stage = 0
	Stage1       Stage = 1
	Stage2       Stage = 2
	Stage3       Stage = 3
	Stage4       Stage = 4
)

// Determined reports whether any stage data was found.
func (s Stage) Determined() bool {
	return s >= Stage1 && s <= Stage4
}

// Detect scans every rider across all cohorts and returns the highest
// stage with a non-empty time cell. A DNS/DNF cell counts as data for the
// stage it was recorded against.
//
// One asymmetry is kept from the reference scoring rules: a stage-four
// cell ends the scan immediately, while stages one through three are
// upgraded monotonically over the full scan.
func Detect(cohorts []*cohort.Cohort) Stage {
	stage := Undetermined
	for _, c := range cohorts {
		for _, r := range c.Riders {
			if r.Stage4 != "" {
				return Stage4
			}
			switch {
			case r.Stage3 != "":
				stage = Stage3
			case r.Stage2 != "" && stage <= Stage2:
				stage = Stage2
			case r.Stage1 != "" && stage <= Stage1:
				stage = Stage1
			}
		}
	}
	return stage
}
