// Package catalog owns the record inventory: creation with uniqueness
// enforcement on (artist, album, format), lookups, filtered and paginated
// listing, updates, and deletion. Record creation and external-id changes
// trigger a best-effort tracklist lookup against MusicBrainz; a failed
// lookup never blocks the catalog operation.
package catalog
