// Package render turns extracted concerts into the HTML fragment of the gig list.
//
// Past concerts are dropped, the rest are grouped under one header per day, and each
// card gets a venue icon from a YAML lookup table (or a letter placeholder) and a link
// to the venue when one was found on the listing page.
package render
