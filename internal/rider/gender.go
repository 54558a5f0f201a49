package rider

// Gender identifies the gender half of a cohort.
type Gender int

const (
	GenderUnknown Gender = iota
	Male
	Female
)

// ParseGender maps an export token to a Gender. Only the exact tokens
// "M" and "F" classify; anything else disqualifies the entry.
func ParseGender(token string) (Gender, bool) {
	switch token {
	case "M":
		return Male, true
	case "F":
		return Female, true
	}
	return GenderUnknown, false
}

// Label returns the output label used in table headings and cohort IDs.
func (g Gender) Label() string {
	switch g {
	case Male:
		return "MEN"
	case Female:
		return "WOMEN"
	}
	return "UNKNOWN"
}
