package catalog

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"groove/internal/logging"
	"groove/internal/musicbrainz"
)

// Enricher fetches release metadata for a record's external identifier.
type Enricher interface {
	Lookup(ctx context.Context, mbid string) (musicbrainz.Metadata, error)
}

// Service implements catalog business rules on top of the record store.
type Service struct {
	store    *Store
	enricher Enricher
	logger   *slog.Logger
}

// NewService constructs a catalog service. The enricher may be nil, in
// which case records are created without tracklists.
func NewService(store *Store, enricher Enricher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Service{
		store:    store,
		enricher: enricher,
		logger:   logger.With(logging.String("component", "catalog")),
	}
}

// Create validates uniqueness, optionally enriches the tracklist, and
// persists a new record. Enrichment failure never blocks creation.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Record, error) {
	exists, err := s.store.TripleExists(ctx, input.Artist, input.Album, input.Format, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicate
	}

	now := time.Now().UTC()
	record := &Record{
		ID:         uuid.NewString(),
		Artist:     input.Artist,
		Album:      input.Album,
		PriceCents: input.PriceCents,
		Quantity:   input.Quantity,
		Format:     input.Format,
		Category:   input.Category,
		MBID:       strings.TrimSpace(input.MBID),
		Tracklist:  []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if record.MBID != "" {
		if tracks, ok := s.enrich(ctx, record.MBID); ok {
			record.Tracklist = tracks
		}
	}

	if err := s.store.Insert(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Update applies a partial update to an existing record, re-checking the
// uniqueness invariant when any triple field changes and re-enriching when
// the external identifier changes. On enrichment failure the previous
// tracklist is kept.
func (s *Service) Update(ctx context.Context, id string, input UpdateInput) (*Record, error) {
	record, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNotFound
	}

	if input.Artist != nil || input.Album != nil || input.Format != nil {
		artist := record.Artist
		album := record.Album
		format := record.Format
		if input.Artist != nil {
			artist = *input.Artist
		}
		if input.Album != nil {
			album = *input.Album
		}
		if input.Format != nil {
			format = *input.Format
		}
		exists, err := s.store.TripleExists(ctx, artist, album, format, record.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrDuplicate
		}
		record.Artist = artist
		record.Album = album
		record.Format = format
	}

	if input.PriceCents != nil {
		record.PriceCents = *input.PriceCents
	}
	if input.Quantity != nil {
		record.Quantity = *input.Quantity
	}
	if input.Category != nil {
		record.Category = *input.Category
	}
	if input.MBID != nil {
		mbid := strings.TrimSpace(*input.MBID)
		if mbid != record.MBID {
			record.MBID = mbid
			if mbid != "" {
				if tracks, ok := s.enrich(ctx, mbid); ok {
					record.Tracklist = tracks
				}
			}
		}
	}

	record.UpdatedAt = time.Now().UTC()
	if err := s.store.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// GetByID fetches a record, failing with ErrNotFound when absent.
func (s *Service) GetByID(ctx context.Context, id string) (*Record, error) {
	record, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNotFound
	}
	return record, nil
}

// List returns a page of records matching the query.
func (s *Service) List(ctx context.Context, query ListQuery) (ListResult, error) {
	return s.store.List(ctx, query)
}

// Delete removes a record, failing with ErrNotFound when absent.
func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// enrich looks up the tracklist for mbid. Failures are logged and reported
// as not-ok; they are never surfaced to the caller.
func (s *Service) enrich(ctx context.Context, mbid string) ([]string, bool) {
	if s.enricher == nil {
		return nil, false
	}
	meta, err := s.enricher.Lookup(ctx, mbid)
	if err != nil {
		s.logger.Warn("enrichment failed",
			logging.String("mbid", mbid),
			logging.Error(err))
		return nil, false
	}
	return meta.Tracks, true
}
