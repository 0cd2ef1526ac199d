package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// monthNames maps lowercase month tokens to calendar months. Polish full
// names are the genitive forms that actually appear in dates ("15 marca
// 2025"), and the three-letter abbreviations follow Polish convention
// ("paź", "gru"), not English.
var monthNames = map[string]time.Month{
	// English full names
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,

	// Polish full names (genitive)
	"stycznia": time.January, "lutego": time.February, "marca": time.March,
	"kwietnia": time.April, "maja": time.May, "czerwca": time.June,
	"lipca": time.July, "sierpnia": time.August, "września": time.September,
	"października": time.October, "listopada": time.November, "grudnia": time.December,

	// Polish abbreviations
	"sty": time.January, "lut": time.February, "mar": time.March,
	"kwi": time.April, "maj": time.May, "cze": time.June, "lip": time.July,
	"sie": time.August, "wrz": time.September, "paź": time.October,
	"lis": time.November, "gru": time.December,
}

var (
	// "15 marca 2025", "3 gru 2024", "15 September 2025"
	reDayMonthYear = regexp.MustCompile(`^(\d{1,2})\s+(\p{L}+)\.?\s+(\d{4})$`)
	// "March 15, 2025", "September 15 2025"
	reMonthDayYear = regexp.MustCompile(`^(\p{L}+)\s+(\d{1,2}),?\s+(\d{4})$`)
)

// numericLayouts are tried in order after every textual-month form has
// failed; 4-digit-year layouts come before 2-digit ones.
var numericLayouts = []string{
	"2006-01-02",
	"02.01.2006",
	"02-01-2006",
	"02/01/2006",
	"2006.01.02",
	"2006/01/02",
	"02.01.06",
	"02-01-06",
	"02/01/06",
}

// ParseDate normalizes a locale-formatted date token to a calendar date
// (UTC midnight). Textual-month forms are tried before numeric layouts so a
// trailing year inside a textual token cannot be misread as a bare numeric
// date; the first successful parse wins. Returns ok=false on total failure.
func ParseDate(token string) (time.Time, bool) {
	s := strings.TrimSpace(token)
	if s == "" {
		return time.Time{}, false
	}

	if m := reDayMonthYear.FindStringSubmatch(s); m != nil {
		if t, ok := textualDate(m[3], m[2], m[1]); ok {
			return t, true
		}
	}
	if m := reMonthDayYear.FindStringSubmatch(s); m != nil {
		if t, ok := textualDate(m[3], m[1], m[2]); ok {
			return t, true
		}
	}

	for _, layout := range numericLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

func textualDate(yearTok, monthTok, dayTok string) (time.Time, bool) {
	month, ok := monthNames[strings.ToLower(monthTok)]
	if !ok {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(dayTok)
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(yearTok)
	if err != nil {
		return time.Time{}, false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow ("32 stycznia" -> Feb 1); reject it.
	if t.Day() != day || t.Month() != month {
		return time.Time{}, false
	}
	return t, true
}

// PolishMonthAbbrev returns the Polish three-letter abbreviation for a month.
// Exposed for formatting round-trips in exports and tests.
func PolishMonthAbbrev(m time.Month) string {
	abbrevs := [...]string{"sty", "lut", "mar", "kwi", "maj", "cze", "lip", "sie", "wrz", "paź", "lis", "gru"}
	return abbrevs[m-1]
}
