package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// dayKeyLen is the length of the date prefix of an ISO-8601 timestamp.
const dayKeyLen = len(DateLayout)

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DayKey truncates a timestamp string to its date component. The prefix is
// taken as-is with no parsing, so malformed or short inputs simply yield a
// shorter key.
func DayKey(timestamp string) string {
	if len(timestamp) <= dayKeyLen {
		return timestamp
	}
	return timestamp[:dayKeyLen]
}
