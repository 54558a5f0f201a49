package rider

import "strings"

// Field keys of the results export. Every raw entry carries all of them;
// absent cells are empty strings rather than missing keys.
const (
	KeyAge         = "age"
	KeyGender      = "gender"
	KeyName        = "ridername"
	KeyCity        = "city"
	KeyState       = "state"
	KeyClub        = "club"
	KeyStage1      = "tt1results"
	KeyStage2      = "tt2results"
	KeyStage3      = "tt3results"
	KeyStage4      = "tt4results"
	KeyCumulative2 = "cumulative2"
	KeyCumulative3 = "cumulative3"
	KeySeriesTotal = "ttseriestotal"
)

// Keys lists every recognized field key in export column order.
var Keys = []string{
	KeyAge, KeyGender, KeyName, KeyCity, KeyState, KeyClub,
	KeyStage1, KeyStage2, KeyStage3, KeyStage4,
	KeyCumulative2, KeyCumulative3, KeySeriesTotal,
}

// headerPlaceholder marks rows that repeat the spreadsheet column header
// instead of holding a rider.
const headerPlaceholder = "RIDER NAME"

// Raw is one unvalidated entry: field key to text value. Loaders must
// populate every key so downstream code never distinguishes missing from
// empty.
type Raw map[string]string

// Record is one rider's validated data for the series. Time cells keep
// their raw text form; empty means no result yet, DNS/DNF mean the rider
// missed the stage.
type Record struct {
	Name        string
	Age         int
	Gender      Gender
	City        string
	State       string
	Club        string
	Stage1      string
	Stage2      string
	Stage3      string
	Stage4      string
	Cumulative2 string
	Cumulative3 string
	SeriesTotal string
}

// StageTime returns the raw time cell for event n (1-4).
func (r Record) StageTime(n int) string {
	switch n {
	case 1:
		return r.Stage1
	case 2:
		return r.Stage2
	case 3:
		return r.Stage3
	case 4:
		return r.Stage4
	}
	return ""
}

// Qualifying returns the cell that ranks the rider once the series has
// reached the given stage: the stage-one time, the cumulative time after
// two or three events, or the series total.
func (r Record) Qualifying(stage int) string {
	switch stage {
	case 1:
		return r.Stage1
	case 2:
		return r.Cumulative2
	case 3:
		return r.Cumulative3
	case 4:
		return r.SeriesTotal
	}
	return ""
}

// IsHeaderPlaceholder reports whether a name cell repeats the export's
// column header rather than naming a rider.
func IsHeaderPlaceholder(name string) bool {
	return strings.Contains(name, headerPlaceholder)
}
