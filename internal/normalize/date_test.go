package normalize

import (
	"fmt"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  time.Time
		ok    bool
	}{
		{name: "iso", token: "2025-02-16", want: date(2025, time.February, 16), ok: true},
		{name: "dotted dmy", token: "16.02.2025", want: date(2025, time.February, 16), ok: true},
		{name: "dotted dmy unpadded", token: "5.1.2025", want: date(2025, time.January, 5), ok: true},
		{name: "slashed dmy", token: "16/02/2025", want: date(2025, time.February, 16), ok: true},
		{name: "dotted ymd", token: "2025.02.16", want: date(2025, time.February, 16), ok: true},
		{name: "two digit year", token: "16.02.25", want: date(2025, time.February, 16), ok: true},
		{name: "english month day year", token: "March 15, 2025", want: date(2025, time.March, 15), ok: true},
		{name: "english day month year", token: "15 September 2024", want: date(2024, time.September, 15), ok: true},
		{name: "polish full genitive", token: "15 marca 2025", want: date(2025, time.March, 15), ok: true},
		{name: "polish full with diacritic", token: "30 września 2024", want: date(2024, time.September, 30), ok: true},
		{name: "polish abbrev", token: "3 gru 2024", want: date(2024, time.December, 3), ok: true},
		{name: "polish abbrev with dot", token: "12 paź. 2025", want: date(2025, time.October, 12), ok: true},
		{name: "overflow day rejected", token: "32 stycznia 2025", ok: false},
		{name: "unknown month", token: "15 nonsense 2025", ok: false},
		{name: "garbage", token: "soon", ok: false},
		{name: "empty", token: "", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseDate(tc.token)
			if ok != tc.ok {
				t.Fatalf("ParseDate(%q) ok = %v, want %v", tc.token, ok, tc.ok)
			}
			if tc.ok && !got.Equal(tc.want) {
				t.Errorf("ParseDate(%q) = %s, want %s", tc.token, got, tc.want)
			}
		})
	}
}

// Any valid calendar date rendered as "<day> <polish-abbrev> <year>" must
// normalize back to itself.
func TestParseDatePolishAbbrevRoundTrip(t *testing.T) {
	dates := []time.Time{
		date(2024, time.January, 1),
		date(2024, time.February, 29), // leap day
		date(2024, time.October, 31),
		date(2025, time.May, 15),
		date(2025, time.December, 3),
	}
	for _, d := range dates {
		token := fmt.Sprintf("%d %s %d", d.Day(), PolishMonthAbbrev(d.Month()), d.Year())
		got, ok := ParseDate(token)
		if !ok {
			t.Fatalf("round trip of %s: parse failed on %q", d, token)
		}
		if !got.Equal(d) {
			t.Errorf("round trip of %s: got %s via %q", d, got, token)
		}
	}
}
