package valueobjects

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CalendarDate is a day/month/year triple rendered as D-Month-YYYY,
// e.g. "7-March-1999". It carries no time zone.
type CalendarDate struct {
	day   int
	month time.Month
	year  int
}

func NewCalendarDate(day int, month time.Month, year int) (CalendarDate, error) {
	if month < time.January || month > time.December {
		return CalendarDate{}, fmt.Errorf("invalid month: %d", month)
	}
	if year < 1 || year > 9999 {
		return CalendarDate{}, fmt.Errorf("invalid year: %d", year)
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if day < 1 || t.Day() != day || t.Month() != month {
		return CalendarDate{}, fmt.Errorf("invalid day %d for %s %d", day, month, year)
	}
	return CalendarDate{day: day, month: month, year: year}, nil
}

// CalendarDateOf takes the calendar date of t in t's location.
func CalendarDateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{day: d, month: m, year: y}
}

// ParseCalendarDate parses D-Month-YYYY. Month names are matched
// case-insensitively and may be abbreviated to three letters.
func ParseCalendarDate(s string) (CalendarDate, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return CalendarDate{}, fmt.Errorf("invalid date %q: expected D-Month-YYYY", s)
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return CalendarDate{}, fmt.Errorf("invalid day in %q", s)
	}
	month, ok := lookupMonth(parts[1])
	if !ok {
		return CalendarDate{}, fmt.Errorf("invalid month in %q", s)
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return CalendarDate{}, fmt.Errorf("invalid year in %q", s)
	}
	return NewCalendarDate(day, month, year)
}

func lookupMonth(name string) (time.Month, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) < 3 {
		return 0, false
	}
	for m := time.January; m <= time.December; m++ {
		full := strings.ToLower(m.String())
		if name == full || name == full[:3] {
			return m, true
		}
	}
	return 0, false
}

func (d CalendarDate) Day() int {
	return d.day
}

func (d CalendarDate) Month() time.Month {
	return d.month
}

func (d CalendarDate) Year() int {
	return d.year
}

func (d CalendarDate) IsZero() bool {
	return d.year == 0
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%d-%s-%d", d.day, d.month, d.year)
}
