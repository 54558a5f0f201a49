package cohort

import "fmt"

// AgeGroup is a closed integer interval of ages.
type AgeGroup struct {
	Low  int
	High int
}

func (g AgeGroup) String() string {
	return fmt.Sprintf("%d-%d", g.Low, g.High)
}

// Contains reports whether age falls inside the band.
func (g AgeGroup) Contains(age int) bool {
	return age >= g.Low && age <= g.High
}

// ageGroups holds the fixed ascending, non-overlapping bands 10-14 .. 95-99.
var ageGroups = func() []AgeGroup {
	bands := make([]AgeGroup, 0, 18)
	for low := 10; low <= 95; low += 5 {
		bands = append(bands, AgeGroup{Low: low, High: low + 4})
	}
	return bands
}()

// Groups returns the fixed age bands in ascending order.
func Groups() []AgeGroup {
	out := make([]AgeGroup, len(ageGroups))
	copy(out, ageGroups)
	return out
}

// GroupFor returns the band containing age, scanning in ascending order.
func GroupFor(age int) (AgeGroup, bool) {
	for _, g := range ageGroups {
		if g.Contains(age) {
			return g, true
		}
	}
	return AgeGroup{}, false
}
