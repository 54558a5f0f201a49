package rider_test

import (
	"testing"

	"ttresults/internal/rider"
)

func TestValidTime(t *testing.T) {
	cases := []struct {
		value string
		valid bool
	}{
		{"00:10:00", true},
		{"09:30", true},
		{"09:30.25", true},
		{"00:09:30.5", true},
		{"DNS", false},
		{"DNF", false},
		{"", false},
		{"9:30", false},
		{"00:10:00:00", false},
		{"fast", false},
	}
	for _, tc := range cases {
		if got := rider.ValidTime(tc.value); got != tc.valid {
			t.Errorf("ValidTime(%q) = %v, want %v", tc.value, got, tc.valid)
		}
	}
}

func TestIsSentinel(t *testing.T) {
	if !rider.IsSentinel("DNS") || !rider.IsSentinel("DNF") {
		t.Fatal("expected DNS and DNF to be sentinels")
	}
	if rider.IsSentinel("") || rider.IsSentinel("00:10:00") {
		t.Fatal("expected empty and time values to not be sentinels")
	}
}

func TestQualifyingByStage(t *testing.T) {
	r := rider.Record{
		Stage1:      "00:10:00",
		Cumulative2: "00:20:00",
		Cumulative3: "00:30:00",
		SeriesTotal: "00:40:00",
	}
	want := map[int]string{
		1: "00:10:00",
		2: "00:20:00",
		3: "00:30:00",
		4: "00:40:00",
	}
	for stage, value := range want {
		if got := r.Qualifying(stage); got != value {
			t.Errorf("Qualifying(%d) = %q, want %q", stage, got, value)
		}
	}
}

func TestIsHeaderPlaceholder(t *testing.T) {
	if !rider.IsHeaderPlaceholder("RIDER NAME") {
		t.Fatal("expected exact header text to match")
	}
	if !rider.IsHeaderPlaceholder("RIDER NAME (LAST, FIRST)") {
		t.Fatal("expected embedded header text to match")
	}
	if rider.IsHeaderPlaceholder("Jane Doe") {
		t.Fatal("expected rider name to not match")
	}
}

func TestParseGenderExactTokens(t *testing.T) {
	if g, ok := rider.ParseGender("M"); !ok || g != rider.Male {
		t.Fatalf("ParseGender(M) = %v, %v", g, ok)
	}
	if g, ok := rider.ParseGender("F"); !ok || g != rider.Female {
		t.Fatalf("ParseGender(F) = %v, %v", g, ok)
	}
	for _, token := range []string{"", "m", "f", "male", "Female", "X"} {
		if _, ok := rider.ParseGender(token); ok {
			t.Errorf("ParseGender(%q) unexpectedly classified", token)
		}
	}
}
