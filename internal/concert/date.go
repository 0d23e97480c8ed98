package concert

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrInvalidDate is returned when a date token cannot be turned into a calendar date
var ErrInvalidDate = errors.New("invalid date")

// TokenPattern matches a "day.month." token at the start of a line, e.g. "5.1." or "15.11."
var TokenPattern = regexp.MustCompile(`^(\d{1,2}\.\d{1,2}\.)`)

var tokenParts = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.$`)

// ResolveDate turns a "D.M." token into an absolute date using ref for the year.
//
// The year is taken from ref, then corrected for listings that cross the year
// boundary:
//   - ref in December, token in January: the concert is next year.
//   - ref in January to March, token in October to December: the concert is last year.
//
// The result is midnight of the resolved day in ref's location. Tokens that do not
// name a real calendar date ("31.2.", "0.5.", "12.13.") return ErrInvalidDate.
func ResolveDate(token string, ref time.Time) (time.Time, error) {
	parts := tokenParts.FindStringSubmatch(token)
	if parts == nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, token)
	}

	day, _ := strconv.Atoi(parts[1])
	month, _ := strconv.Atoi(parts[2])
	year := ref.Year()

	if !validDate(year, month, day) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, token)
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, ref.Location())

	// A December run sees early-January gigs of the coming year
	if ref.Month() == time.December && date.Month() == time.January {
		date = date.AddDate(1, 0, 0)
	}

	// A run early in the year still sees late-year gigs posted the previous December
	if ref.Month() <= time.March && date.Month() >= time.October {
		date = date.AddDate(-1, 0, 0)
	}

	return StartOfDay(date), nil
}

// validDate reports whether day and month form a real date in year.
// time.Date normalizes overflow, so a round trip detects "31.4." and friends.
func validDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

// StartOfDay returns midnight of t's day in t's location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// FormatHeader formats a date the way the gig list headers show it, e.g. "Friday, 15 Dec"
func FormatHeader(t time.Time) string {
	return t.Format("Monday, 2 Jan")
}
