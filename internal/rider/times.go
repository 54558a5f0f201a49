package rider

import "regexp"

// Sentinel values recorded in place of a time when a rider missed a stage.
const (
	DidNotStart  = "DNS"
	DidNotFinish = "DNF"
)

// timePattern accepts zero-padded MM:SS or HH:MM:SS, with an optional
// fractional part. The padding matters: ranking compares these cells as
// strings, so lexicographic order must equal chronological order.
var timePattern = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?(\.\d{1,2})?$`)

// IsSentinel reports whether a time cell holds a DNS/DNF marker.
func IsSentinel(value string) bool {
	return value == DidNotStart || value == DidNotFinish
}

// ValidTime reports whether a cell holds a well-formed time string.
func ValidTime(value string) bool {
	return timePattern.MatchString(value)
}
