package cohort_test

import (
	"strconv"
	"testing"

	"ttresults/internal/cohort"
	"ttresults/internal/diag"
	"ttresults/internal/rider"
	"ttresults/internal/testsupport"
)

func TestAgeBandsExhaustiveAndNonOverlapping(t *testing.T) {
	for age := 10; age <= 99; age++ {
		matches := 0
		for _, g := range cohort.Groups() {
			if g.Contains(age) {
				matches++
			}
		}
		if matches != 1 {
			t.Errorf("age %d matched %d bands, want 1", age, matches)
		}
	}
	for _, age := range []int{0, 9, 100, 120} {
		if _, ok := cohort.GroupFor(age); ok {
			t.Errorf("age %d unexpectedly classified", age)
		}
	}
}

func TestClassifyPlacesEachRecordOnce(t *testing.T) {
	entries := []rider.Raw{
		testsupport.Entry("A", "M", "32", nil),
		testsupport.Entry("B", "F", "32", nil),
		testsupport.Entry("C", "M", "10", nil),
		testsupport.Entry("D", "M", "14", nil),
		testsupport.Entry("E", "F", "99", nil),
	}
	cohorts, diags := cohort.Classify(entries)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	total := 0
	seen := map[string]int{}
	for _, c := range cohorts {
		for _, r := range c.Riders {
			total++
			seen[r.Name]++
		}
	}
	if total != len(entries) {
		t.Fatalf("classified %d records, want %d", total, len(entries))
	}
	for name, count := range seen {
		if count != 1 {
			t.Errorf("rider %s appears in %d cohorts", name, count)
		}
	}

	// C (10) and D (14) share the 10-14 band.
	for _, c := range cohorts {
		if c.Gender == rider.Male && c.Group.Low == 10 {
			if len(c.Riders) != 2 || c.Riders[0].Name != "C" || c.Riders[1].Name != "D" {
				t.Fatalf("MEN 10-14 membership = %v", c.Riders)
			}
		}
	}
}

func TestClassifyDiscardsHeaderAndNamelessRows(t *testing.T) {
	entries := []rider.Raw{
		testsupport.Entry("", "M", "32", nil),
		testsupport.Entry("RIDER NAME", "M", "32", nil),
		testsupport.Entry("A", "M", "32", nil),
	}
	cohorts, diags := cohort.Classify(entries)
	if len(diags) != 0 {
		t.Fatalf("header rows should drop silently, got %v", diags)
	}
	if len(cohorts) != 1 || len(cohorts[0].Riders) != 1 {
		t.Fatalf("expected one cohort with one rider, got %v", cohorts)
	}
}

func TestClassifyDropsUnclassifiableWithDiagnostics(t *testing.T) {
	entries := []rider.Raw{
		testsupport.Entry("A", "male", "32", nil),
		testsupport.Entry("B", "M", "", nil),
		testsupport.Entry("C", "M", "x", nil),
		testsupport.Entry("D", "M", "-3", nil),
		testsupport.Entry("E", "F", "105", nil),
	}
	cohorts, diags := cohort.Classify(entries)
	if len(cohorts) != 0 {
		t.Fatalf("expected no cohorts, got %d", len(cohorts))
	}
	if got := diags.Count(diag.KindUnclassifiable); got != len(entries) {
		t.Fatalf("dropped count = %d, want %d", got, len(entries))
	}
}

func TestClassifyOutputOrder(t *testing.T) {
	entries := []rider.Raw{
		testsupport.Entry("W1", "F", "20", nil),
		testsupport.Entry("M1", "M", "50", nil),
		testsupport.Entry("M2", "M", "20", nil),
	}
	cohorts, _ := cohort.Classify(entries)
	var ids []string
	for _, c := range cohorts {
		ids = append(ids, c.ID())
	}
	want := []string{"MEN_20_24", "MEN_50_54", "WOMEN_20_24"}
	if len(ids) != len(want) {
		t.Fatalf("cohorts = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("cohorts = %v, want %v", ids, want)
		}
	}
}

func TestCohortLabels(t *testing.T) {
	c := &cohort.Cohort{Gender: rider.Female, Group: cohort.AgeGroup{Low: 30, High: 34}}
	if c.Label() != "WOMEN 30-34" {
		t.Fatalf("Label = %q", c.Label())
	}
	if c.ID() != "WOMEN_30_34" {
		t.Fatalf("ID = %q", c.ID())
	}
}

func TestClassifyDeterministic(t *testing.T) {
	var entries []rider.Raw
	for i := 0; i < 40; i++ {
		entries = append(entries, testsupport.Entry("R"+strconv.Itoa(i), "M", strconv.Itoa(10+i*2%90), nil))
	}
	first, _ := cohort.Classify(entries)
	second, _ := cohort.Classify(entries)
	if len(first) != len(second) {
		t.Fatalf("cohort counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID() != second[i].ID() || len(first[i].Riders) != len(second[i].Riders) {
			t.Fatalf("cohort %d differs between runs", i)
		}
		for j := range first[i].Riders {
			if first[i].Riders[j].Name != second[i].Riders[j].Name {
				t.Fatalf("membership order differs in %s", first[i].ID())
			}
		}
	}
}
