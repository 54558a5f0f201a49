package cohort

import (
	"fmt"
	"strconv"

	"ttresults/internal/diag"
	"ttresults/internal/rider"
)

// Key identifies one cohort.
type Key struct {
	Gender rider.Gender
	Group  AgeGroup
}

// Cohort pairs a gender and age band with the riders that match both.
type Cohort struct {
	Gender rider.Gender
	Group  AgeGroup
	Riders []rider.Record
}

// Label returns the display heading, e.g. "MEN 30-34".
func (c *Cohort) Label() string {
	return fmt.Sprintf("%s %s", c.Gender.Label(), c.Group)
}

// ID returns the machine label, e.g. "MEN_30_34".
func (c *Cohort) ID() string {
	return fmt.Sprintf("%s_%d_%d", c.Gender.Label(), c.Group.Low, c.Group.High)
}

// Classify buckets raw entries into cohorts. Entries whose name cell is
// empty or repeats the export header are not riders and are discarded
// without a diagnostic. Entries that fail gender or age classification are
// dropped with one. Cohorts come back ordered MEN bands ascending, then
// WOMEN bands ascending, and riders within a cohort keep input order.
func Classify(entries []rider.Raw) ([]*Cohort, diag.List) {
	buckets := make(map[Key]*Cohort)
	var diags diag.List

	for _, entry := range entries {
		name := entry[rider.KeyName]
		if name == "" || rider.IsHeaderPlaceholder(name) {
			continue
		}

		gender, ok := rider.ParseGender(entry[rider.KeyGender])
		if !ok {
			diags = append(diags, diag.Diagnostic{
				Kind:   diag.KindUnclassifiable,
				Rider:  name,
				Field:  rider.KeyGender,
				Value:  entry[rider.KeyGender],
				Detail: "unrecognized gender token",
			})
			continue
		}

		age, err := strconv.Atoi(entry[rider.KeyAge])
		if err != nil || age < 0 {
			diags = append(diags, diag.Diagnostic{
				Kind:   diag.KindUnclassifiable,
				Rider:  name,
				Field:  rider.KeyAge,
				Value:  entry[rider.KeyAge],
				Detail: "age is not a non-negative integer",
			})
			continue
		}

		group, ok := GroupFor(age)
		if !ok {
			diags = append(diags, diag.Diagnostic{
				Kind:   diag.KindUnclassifiable,
				Rider:  name,
				Field:  rider.KeyAge,
				Value:  entry[rider.KeyAge],
				Detail: "age outside all bands",
			})
			continue
		}

		key := Key{Gender: gender, Group: group}
		bucket := buckets[key]
		if bucket == nil {
			bucket = &Cohort{Gender: gender, Group: group}
			buckets[key] = bucket
		}
		bucket.Riders = append(bucket.Riders, rider.Record{
			Name:        name,
			Age:         age,
			Gender:      gender,
			City:        entry[rider.KeyCity],
			State:       entry[rider.KeyState],
			Club:        entry[rider.KeyClub],
			Stage1:      entry[rider.KeyStage1],
			Stage2:      entry[rider.KeyStage2],
			Stage3:      entry[rider.KeyStage3],
			Stage4:      entry[rider.KeyStage4],
			Cumulative2: entry[rider.KeyCumulative2],
			Cumulative3: entry[rider.KeyCumulative3],
			SeriesTotal: entry[rider.KeySeriesTotal],
		})
	}

	ordered := make([]*Cohort, 0, len(buckets))
	for _, gender := range []rider.Gender{rider.Male, rider.Female} {
		for _, group := range ageGroups {
			if c, ok := buckets[Key{Gender: gender, Group: group}]; ok {
				ordered = append(ordered, c)
			}
		}
	}
	return ordered, diags
}
