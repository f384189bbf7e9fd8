package metadata

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// timestampLayouts are tried in order. The document corpus is inconsistent
// about spacing between the date and the time and about the space before the
// AM/PM marker, so several near-identical layouts are needed.
var timestampLayouts = []string{
	"January 2, 2006 3:04 PM",
	"January 2, 2006  3:04PM",
	"January 2, 2006  3:04 PM",
	"2006-01-02 15:04",
	"2006-01-02",
}

// flexibleTimestampPattern is the fallback for irregular spacing and
// punctuation: "MonthName D[,] YYYY H:MM[ AM/PM]".
var flexibleTimestampPattern = regexp.MustCompile(`^([A-Z][a-z]+)\s+(\d{1,2}),?\s+(\d{4})\s+(\d{1,2}):(\d{2})\s*([AP]M)?`)

var monthNumbers = map[string]time.Month{
	"January":   time.January,
	"February":  time.February,
	"March":     time.March,
	"April":     time.April,
	"May":       time.May,
	"June":      time.June,
	"July":      time.July,
	"August":    time.August,
	"September": time.September,
	"October":   time.October,
	"November":  time.November,
	"December":  time.December,
}

// ParseTimestamp parses a free-form document timestamp into a time.Time.
//
// It tries the fixed layout list first, then falls back to a tolerant
// pattern that normalizes 12-hour clock values manually. The error is meant
// for the caller to swallow: timestamp parse failures never fail extraction.
func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	m := flexibleTimestampPattern.FindStringSubmatch(value)
	if m == nil {
		return time.Time{}, fmt.Errorf("could not parse timestamp %q", value)
	}

	month, ok := monthNumbers[m[1]]
	if !ok {
		return time.Time{}, fmt.Errorf("invalid month %q in timestamp %q", m[1], value)
	}

	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	hour, _ := strconv.Atoi(m[4])
	minute, _ := strconv.Atoi(m[5])

	switch strings.ToUpper(m[6]) {
	case "PM":
		if hour < 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}

	if day < 1 || day > 31 || hour > 23 || minute > 59 {
		return time.Time{}, fmt.Errorf("timestamp components out of range in %q", value)
	}

	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC), nil
}
