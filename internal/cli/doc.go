// Package cli implements the command-line interface for tampere-gigs.
//
// The default command fetches the Tampere concert listing, renders the upcoming gigs,
// and writes the static page. The list and ics subcommands run the same fetch and parse
// steps but print to stdout instead of writing the page.
package cli
