package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pfrederiksen/tampere-gigs/internal/concert"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains data to be output
type OutputResult struct {
	CheckedAt    time.Time         `json:"checked_at"`
	Source       string            `json:"source"`
	Concerts     []concert.Concert `json:"concerts"`
	ConcertCount int               `json:"concert_count"`
	ShowAll      bool              `json:"show_all,omitempty"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText prints one line per concert with the date, artist, and venue
func writeText(w io.Writer, result *OutputResult) error {
	if result.ConcertCount == 0 {
		if result.ShowAll {
			fmt.Fprintln(w, "No concerts found.")
		} else {
			fmt.Fprintln(w, "No upcoming gigs found.")
		}
		return nil
	}

	for _, c := range result.Concerts {
		artist := c.Artist
		if artist == "" {
			artist = "(unnamed)"
		}
		fmt.Fprintf(w, "%-10s %s @ %s\n", c.Date.Format("Mon 2.1."), artist, c.Venue)
		if c.VenueURL != "" {
			fmt.Fprintf(w, "           %s\n", c.VenueURL)
		}
	}

	label := "upcoming gigs"
	if result.ShowAll {
		label = "concerts"
	}
	fmt.Fprintf(w, "\nTotal: %d %s\n", result.ConcertCount, label)

	return nil
}
