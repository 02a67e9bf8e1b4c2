package catalog_test

import (
	"context"
	"errors"
	"testing"

	"groove/internal/catalog"
	"groove/internal/musicbrainz"
	"groove/internal/testsupport"
)

type stubEnricher struct {
	meta  musicbrainz.Metadata
	err   error
	calls int
}

func (s *stubEnricher) Lookup(ctx context.Context, mbid string) (musicbrainz.Metadata, error) {
	s.calls++
	if s.err != nil {
		return musicbrainz.Metadata{}, s.err
	}
	return s.meta, nil
}

func newService(t *testing.T, enricher catalog.Enricher) *catalog.Service {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	return catalog.NewService(catalog.NewStore(st.DB()), enricher, nil)
}

func createInput(artist, album string) catalog.CreateInput {
	return catalog.CreateInput{
		Artist:     artist,
		Album:      album,
		PriceCents: 2999,
		Quantity:   5,
		Format:     catalog.FormatVinyl,
		Category:   catalog.CategoryRock,
	}
}

func TestServiceCreateAssignsIdentityAndTimestamps(t *testing.T) {
	svc := newService(t, nil)
	ctx := context.Background()

	record, err := svc.Create(ctx, createInput("The Beatles", "Abbey Road"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if record.ID == "" {
		t.Fatal("expected generated ID")
	}
	if record.CreatedAt.IsZero() || record.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps to be set")
	}
	if record.Tracklist == nil {
		t.Fatal("expected empty tracklist, got nil")
	}

	fetched, err := svc.GetByID(ctx, record.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if fetched.Album != "Abbey Road" {
		t.Fatalf("unexpected record: %#v", fetched)
	}
}

func TestServiceCreateRejectsDuplicateTriple(t *testing.T) {
	svc := newService(t, nil)
	ctx := context.Background()

	if _, err := svc.Create(ctx, createInput("The Beatles", "Abbey Road")); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	if _, err := svc.Create(ctx, createInput("The Beatles", "Abbey Road")); !errors.Is(err, catalog.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	input := createInput("The Beatles", "Abbey Road")
	input.Format = catalog.FormatCassette
	if _, err := svc.Create(ctx, input); err != nil {
		t.Fatalf("Create on different format failed: %v", err)
	}
}

func TestServiceCreateEnrichesTracklist(t *testing.T) {
	enricher := &stubEnricher{meta: musicbrainz.Metadata{
		Title:  "Abbey Road",
		Artist: "The Beatles",
		Tracks: []string{"Come Together", "Something"},
	}}
	svc := newService(t, enricher)

	input := createInput("The Beatles", "Abbey Road")
	input.MBID = "9162580e-5df4-32de-80cc-f45a8d8a9b1d"
	record, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if enricher.calls != 1 {
		t.Fatalf("expected a single lookup, got %d", enricher.calls)
	}
	if len(record.Tracklist) != 2 || record.Tracklist[0] != "Come Together" {
		t.Fatalf("unexpected tracklist: %v", record.Tracklist)
	}
}

func TestServiceCreateSkipsEnrichmentWithoutMBID(t *testing.T) {
	enricher := &stubEnricher{}
	svc := newService(t, enricher)

	if _, err := svc.Create(context.Background(), createInput("Miles Davis", "Kind of Blue")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if enricher.calls != 0 {
		t.Fatalf("expected no lookups, got %d", enricher.calls)
	}
}

func TestServiceCreateSurvivesEnrichmentFailure(t *testing.T) {
	enricher := &stubEnricher{err: errors.New("service unavailable")}
	svc := newService(t, enricher)

	input := createInput("The Beatles", "Abbey Road")
	input.MBID = "9162580e-5df4-32de-80cc-f45a8d8a9b1d"
	record, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("Create should not fail on enrichment errors: %v", err)
	}
	if len(record.Tracklist) != 0 {
		t.Fatalf("expected empty tracklist on enrichment failure, got %v", record.Tracklist)
	}
	if record.MBID != input.MBID {
		t.Fatalf("expected MBID to be kept, got %q", record.MBID)
	}
}

func TestServiceUpdatePartial(t *testing.T) {
	svc := newService(t, nil)
	ctx := context.Background()

	record, err := svc.Create(ctx, createInput("Miles Davis", "Kind of Blue"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	price := int64(3499)
	updated, err := svc.Update(ctx, record.ID, catalog.UpdateInput{PriceCents: &price})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.PriceCents != 3499 {
		t.Fatalf("expected price 3499, got %d", updated.PriceCents)
	}
	if updated.Artist != "Miles Davis" || updated.Album != "Kind of Blue" {
		t.Fatalf("untouched fields changed: %#v", updated)
	}
}

func TestServiceUpdateRejectsTripleCollision(t *testing.T) {
	svc := newService(t, nil)
	ctx := context.Background()

	if _, err := svc.Create(ctx, createInput("The Beatles", "Abbey Road")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	victim, err := svc.Create(ctx, createInput("The Beatles", "Revolver"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	album := "Abbey Road"
	_, err = svc.Update(ctx, victim.ID, catalog.UpdateInput{Album: &album})
	if !errors.Is(err, catalog.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	// The failed update must leave the original row untouched.
	fetched, err := svc.GetByID(ctx, victim.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if fetched.Album != "Revolver" {
		t.Fatalf("expected original album preserved, got %q", fetched.Album)
	}
}

func TestServiceUpdateReEnrichesOnMBIDChange(t *testing.T) {
	enricher := &stubEnricher{meta: musicbrainz.Metadata{Tracks: []string{"So What"}}}
	svc := newService(t, enricher)
	ctx := context.Background()

	record, err := svc.Create(ctx, createInput("Miles Davis", "Kind of Blue"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	mbid := "fd088d72-54f4-4b0a-843e-ec5b18b5ae33"
	updated, err := svc.Update(ctx, record.ID, catalog.UpdateInput{MBID: &mbid})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if enricher.calls != 1 {
		t.Fatalf("expected one lookup, got %d", enricher.calls)
	}
	if len(updated.Tracklist) != 1 || updated.Tracklist[0] != "So What" {
		t.Fatalf("unexpected tracklist: %v", updated.Tracklist)
	}

	// Setting the same MBID again must not trigger another lookup.
	if _, err := svc.Update(ctx, record.ID, catalog.UpdateInput{MBID: &mbid}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if enricher.calls != 1 {
		t.Fatalf("expected no extra lookup, got %d", enricher.calls)
	}
}

func TestServiceUpdateKeepsTracklistOnEnrichmentFailure(t *testing.T) {
	enricher := &stubEnricher{meta: musicbrainz.Metadata{Tracks: []string{"So What", "Freddie Freeloader"}}}
	svc := newService(t, enricher)
	ctx := context.Background()

	input := createInput("Miles Davis", "Kind of Blue")
	input.MBID = "fd088d72-54f4-4b0a-843e-ec5b18b5ae33"
	record, err := svc.Create(ctx, input)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	enricher.err = errors.New("service unavailable")
	mbid := "changed-release-id"
	updated, err := svc.Update(ctx, record.ID, catalog.UpdateInput{MBID: &mbid})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if len(updated.Tracklist) != 2 {
		t.Fatalf("expected previous tracklist kept, got %v", updated.Tracklist)
	}
	if updated.MBID != mbid {
		t.Fatalf("expected new MBID stored, got %q", updated.MBID)
	}
}

func TestServiceUpdateMissingRecord(t *testing.T) {
	svc := newService(t, nil)

	price := int64(999)
	_, err := svc.Update(context.Background(), "no-such-id", catalog.UpdateInput{PriceCents: &price})
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestServiceDelete(t *testing.T) {
	svc := newService(t, nil)
	ctx := context.Background()

	record, err := svc.Create(ctx, createInput("The Beatles", "Abbey Road"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Delete(ctx, record.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := svc.Delete(ctx, record.ID); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
	if _, err := svc.GetByID(ctx, record.ID); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestParseFormatAndCategory(t *testing.T) {
	format, err := catalog.ParseFormat("  Vinyl ")
	if err != nil || format != catalog.FormatVinyl {
		t.Fatalf("ParseFormat: got %q, %v", format, err)
	}
	if _, err := catalog.ParseFormat("8-track"); err == nil {
		t.Fatal("expected error for unknown format")
	}

	category, err := catalog.ParseCategory("Hip-Hop")
	if err != nil || category != catalog.CategoryHipHop {
		t.Fatalf("ParseCategory: got %q, %v", category, err)
	}
	if _, err := catalog.ParseCategory("polka"); err == nil {
		t.Fatal("expected error for unknown category")
	}
}
