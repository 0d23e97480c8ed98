package scraper

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/pfrederiksen/tampere-gigs/internal/concert"
	"github.com/pfrederiksen/tampere-gigs/internal/logger"
)

// AnchorTitle is the heading text that marks a page as the Tampere listing
const AnchorTitle = "Konsertit | Tampere"

// venueLevel is the heading rank used for venue names
const venueLevel = 3

// block is one heading or paragraph of the page, in document order
type block struct {
	sel   *goquery.Selection
	level int // 1-6 for h1-h6, 0 for a paragraph
}

// section is a venue heading and the paragraphs below it
type section struct {
	venue      string
	paragraphs []*goquery.Selection
}

// ParseConcerts extracts concerts from the listing page markup, sorted by date.
// Dates are resolved relative to now. A page without the anchor heading yields
// no concerts and no error.
func ParseConcerts(r io.Reader, now time.Time) ([]concert.Concert, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	concerts := make([]concert.Concert, 0)

	blocks := flatten(doc)
	anchor := findAnchor(blocks)
	if anchor < 0 {
		logger.Warn("Could not find main header", logger.Fields{"anchor": AnchorTitle})
		return concerts, nil
	}

	sections := groupSections(blocks[anchor+1:])
	logger.Debug("Found venue sections", logger.Fields{"count": len(sections)})

	for _, sec := range sections {
		logger.IncrCounter("sections.parsed")
		concerts = append(concerts, sec.concerts(now)...)
	}

	concert.SortByDate(concerts)
	logger.AddCounter("concerts.extracted", int64(len(concerts)))

	return concerts, nil
}

// flatten lists headings and paragraphs in document order
func flatten(doc *goquery.Document) []block {
	blocks := make([]block, 0)
	doc.Find("h1, h2, h3, h4, h5, h6, p").Each(func(_ int, sel *goquery.Selection) {
		blocks = append(blocks, block{sel: sel, level: headingLevel(sel.Get(0))})
	})
	return blocks
}

func headingLevel(n *html.Node) int {
	switch n.DataAtom {
	case atom.H1:
		return 1
	case atom.H2:
		return 2
	case atom.H3:
		return 3
	case atom.H4:
		return 4
	case atom.H5:
		return 5
	case atom.H6:
		return 6
	}
	return 0
}

// findAnchor returns the index of the first heading containing AnchorTitle, or -1
func findAnchor(blocks []block) int {
	for i, b := range blocks {
		if b.level == 0 {
			continue
		}
		if strings.Contains(normalizeSpace(b.sel.Text()), AnchorTitle) {
			return i
		}
	}
	return -1
}

// groupSections opens a section at every venue heading. A heading of venue rank
// or higher closes the current section; lower-ranked headings are ignored.
func groupSections(blocks []block) []section {
	sections := make([]section, 0)
	var current *section

	for _, b := range blocks {
		switch {
		case b.level == 0:
			if current != nil {
				current.paragraphs = append(current.paragraphs, b.sel)
			}
		case b.level <= venueLevel:
			if current != nil {
				sections = append(sections, *current)
				current = nil
			}
			if b.level == venueLevel {
				current = &section{venue: strings.TrimSpace(b.sel.Text())}
			}
		}
	}
	if current != nil {
		sections = append(sections, *current)
	}

	return sections
}

// venueURL returns the first link in the section's paragraphs, or ""
func (s section) venueURL() string {
	for _, p := range s.paragraphs {
		var href string
		p.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
			href = strings.TrimSpace(a.AttrOr("href", ""))
			return href == ""
		})
		if href != "" {
			return href
		}
	}
	return ""
}

// concerts parses every dated line of the section
func (s section) concerts(now time.Time) []concert.Concert {
	venueURL := s.venueURL()
	concerts := make([]concert.Concert, 0)

	for _, p := range s.paragraphs {
		for _, line := range splitLines(p.Get(0)) {
			token := concert.TokenPattern.FindString(line)
			if token == "" {
				logger.IncrCounter("lines.skipped")
				continue
			}

			date, err := concert.ResolveDate(token, now)
			if err != nil {
				logger.IncrCounter("lines.invalid_date")
				logger.Debug("Skipping line with invalid date", logger.Fields{
					"venue": s.venue,
					"line":  line,
					"error": err.Error(),
				})
				continue
			}

			artist := strings.TrimSpace(line[len(token):])
			concerts = append(concerts, concert.New(date, artist, s.venue, venueURL))
		}
	}

	return concerts
}

// splitLines returns the trimmed, non-empty text lines of a paragraph.
// Lines are separated by <br> elements; all other markup contributes its text.
func splitLines(p *html.Node) []string {
	lines := make([]string, 0)
	var current strings.Builder

	flush := func() {
		if line := strings.TrimSpace(current.String()); line != "" {
			lines = append(lines, line)
		}
		current.Reset()
	}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				current.WriteString(c.Data)
			case html.ElementNode:
				switch c.DataAtom {
				case atom.Br:
					flush()
				case atom.Script, atom.Style:
					// no visible text
				default:
					walk(c)
				}
			}
		}
	}

	walk(p)
	flush()

	return lines
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
