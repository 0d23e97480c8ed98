package cli

import (
	"sort"
	"strings"

	"github.com/pfrederiksen/tampere-gigs/internal/concert"
)

// SortOrder represents the available sorting options
type SortOrder string

const (
	SortByDate   SortOrder = "date"
	SortByVenue  SortOrder = "venue"
	SortByArtist SortOrder = "artist"
)

// sortConcerts sorts concerts in place. Ties fall back to date, then to the
// original order.
func sortConcerts(concerts []concert.Concert, order SortOrder) {
	switch order {
	case SortByDate:
		concert.SortByDate(concerts)
	case SortByVenue:
		sort.SliceStable(concerts, func(i, j int) bool {
			vi, vj := strings.ToLower(concerts[i].Venue), strings.ToLower(concerts[j].Venue)
			if vi != vj {
				return vi < vj
			}
			return concerts[i].Date.Before(concerts[j].Date)
		})
	case SortByArtist:
		sort.SliceStable(concerts, func(i, j int) bool {
			ai, aj := strings.ToLower(concerts[i].Artist), strings.ToLower(concerts[j].Artist)
			if ai != aj {
				return ai < aj
			}
			return concerts[i].Date.Before(concerts[j].Date)
		})
	}
}
