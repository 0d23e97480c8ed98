// Package calendar exports concerts as an iCalendar feed.
package calendar

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/pfrederiksen/tampere-gigs/internal/concert"
)

const (
	ProductID = "-//Tampere Gigs//tampere-gigs//EN"
	uidDomain = "tampere-gigs"
)

// GenerateICS builds an iCalendar document with one all-day event per concert.
// stamp is used as DTSTAMP for every event.
func GenerateICS(concerts []concert.Concert, stamp time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(ProductID)

	for _, c := range concerts {
		evt := cal.AddEvent(fmt.Sprintf("%s@%s", c.ID(), uidDomain))
		evt.SetDtStampTime(stamp.UTC())
		evt.SetAllDayStartAt(c.Date)
		evt.SetAllDayEndAt(c.Date.AddDate(0, 0, 1))
		evt.SetSummary(summary(c))
		evt.SetLocation(c.Venue)
		if c.HasVenueURL() {
			evt.SetURL(c.VenueURL)
		}
	}

	return cal.Serialize()
}

func summary(c concert.Concert) string {
	if c.Artist == "" {
		return c.Venue
	}
	return fmt.Sprintf("%s @ %s", c.Artist, c.Venue)
}
