// Package site assembles and writes the published gig page.
//
// The page template contains two markers: {{CONTENT}} for the rendered gig list and
// {{UPDATED_AT}} for the generation time. Only the first occurrence of each is replaced.
// The output file is overwritten on every build and its directory is created if needed.
package site
