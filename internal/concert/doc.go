// Package concert provides the Concert type and the date handling for gig listings.
//
// Listings on the source page carry only a day and a month ("15.11."). ResolveDate
// turns such a token into an absolute date relative to a reference instant, correcting
// the year around the December/January boundary. Concerts are sorted by that date.
package concert
