package render

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/pfrederiksen/tampere-gigs/internal/concert"
)

// NoGigsHTML is emitted instead of the list when nothing is upcoming
const NoGigsHTML = `<div style="text-align:center; padding: 20px; color: #b3b3b3;">No upcoming gigs found.</div>`

// Gigs renders the gig list for concerts dated today or later relative to now.
// Concerts must already be sorted by date; consecutive concerts on the same day
// share one date header.
func Gigs(concerts []concert.Concert, now time.Time, icons Icons) string {
	upcoming := concert.Upcoming(concerts, now)
	if len(upcoming) == 0 {
		return NoGigsHTML
	}

	var out strings.Builder
	for i, gig := range upcoming {
		if i == 0 || !gig.SameDay(upcoming[i-1]) {
			fmt.Fprintf(&out, `<div class="date-header">%s</div>`, concert.FormatHeader(gig.Date))
		}

		card := formatCard(gig, icons)
		if gig.HasVenueURL() {
			fmt.Fprintf(&out, `<a href="%s" target="_blank" rel="noopener noreferrer" style="display: block; text-decoration: none; color: inherit;">%s</a>`,
				html.EscapeString(gig.VenueURL), card)
		} else {
			out.WriteString(card)
		}
	}

	return out.String()
}

func formatCard(gig concert.Concert, icons Icons) string {
	var card strings.Builder

	card.WriteString("\n<div class=\"gig-card\">\n")
	fmt.Fprintf(&card, "    <div class=\"time\">%s</div>\n", html.EscapeString(gig.Time))
	fmt.Fprintf(&card, "    %s\n", icons.HTML(gig.Venue))
	card.WriteString("    <div class=\"details\">\n")
	fmt.Fprintf(&card, "        <div class=\"artist\">%s</div>\n", html.EscapeString(gig.Artist))
	fmt.Fprintf(&card, "        <div class=\"venue\">%s</div>\n", html.EscapeString(gig.Venue))
	card.WriteString("    </div>\n")
	card.WriteString("</div>\n")

	return card.String()
}
