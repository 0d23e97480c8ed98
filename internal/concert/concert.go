package concert

import (
	"crypto/sha1"
	"fmt"
	"sort"
	"time"
)

// Concert represents a single gig parsed from the listing page
type Concert struct {
	Date     time.Time `json:"date"`
	Artist   string    `json:"artist"`
	Venue    string    `json:"venue"`
	VenueURL string    `json:"venue_url,omitempty"`
	Time     string    `json:"time,omitempty"` // Not present on the listing page
	URL      string    `json:"url,omitempty"`
}

// New creates a Concert with its date truncated to the start of the day
func New(date time.Time, artist, venue, venueURL string) Concert {
	return Concert{
		Date:     StartOfDay(date),
		Artist:   artist,
		Venue:    venue,
		VenueURL: venueURL,
	}
}

// ID returns a deterministic identifier built from the date, venue, and artist
func (c Concert) ID() string {
	h := sha1.New()
	h.Write([]byte(c.Date.Format("2006-01-02") + "|" + c.Venue + "|" + c.Artist))
	return fmt.Sprintf("%x", h.Sum(nil))
}

// HasVenueURL reports whether the venue section carried a link
func (c Concert) HasVenueURL() bool {
	return c.VenueURL != ""
}

// SameDay reports whether two concerts fall on the same calendar day
func (c Concert) SameDay(other Concert) bool {
	y1, m1, d1 := c.Date.Date()
	y2, m2, d2 := other.Date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// SortByDate sorts concerts by date, earliest first.
// Concerts on the same date keep their relative order.
func SortByDate(concerts []Concert) {
	sort.SliceStable(concerts, func(i, j int) bool {
		return concerts[i].Date.Before(concerts[j].Date)
	})
}

// Upcoming returns the concerts dated today or later relative to now.
// The input order is preserved.
func Upcoming(concerts []Concert, now time.Time) []Concert {
	today := StartOfDay(now)
	upcoming := make([]Concert, 0, len(concerts))
	for _, c := range concerts {
		if c.Date.Before(today) {
			continue
		}
		upcoming = append(upcoming, c)
	}
	return upcoming
}
