package timeutil

import (
	"testing"
	"time"
)

func TestFormatAndParseDate(t *testing.T) {
	ts := time.Date(2023, 10, 15, 18, 30, 0, 0, time.UTC)
	formatted := FormatDate(ts)
	if formatted != "2023-10-15" {
		t.Fatalf("unexpected formatted date %q", formatted)
	}

	parsed, err := ParseDate(formatted)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !parsed.Equal(time.Date(2023, 10, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected parsed time %v", parsed)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	if _, err := ParseDate("15/10/2023"); err == nil {
		t.Fatal("expected error for non-canonical layout")
	}
}

func TestDayKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2023-10-15T10:00:00Z", "2023-10-15"},
		{"2023-10-15", "2023-10-15"},
		{"2023-10", "2023-10"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := DayKey(tc.in); got != tc.want {
			t.Fatalf("DayKey(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
