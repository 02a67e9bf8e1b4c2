// Package musicbrainz looks up release metadata for catalog enrichment.
//
// The client makes exactly one attempt per lookup against the MusicBrainz
// XML web service, spaced by the service's published rate limit of one
// request per second. The returned document is optional at every level:
// any missing node yields a partial or empty Metadata, never an error.
// Callers are expected to treat lookup failures as "no metadata" and
// proceed.
package musicbrainz
