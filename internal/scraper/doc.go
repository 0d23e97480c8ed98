// Package scraper provides HTTP fetching and HTML parsing for the Tampere concert listing.
//
// The listing page is a single article: an h1 title, then one h3 per venue followed by
// paragraphs. Paragraph lines separated by <br> start with a "day.month." token and the
// artist name, e.g. "15.11. Artist One". Other lines (addresses, ticket notes) are skipped.
// The first link found in a venue's paragraphs is used as that venue's URL.
package scraper
