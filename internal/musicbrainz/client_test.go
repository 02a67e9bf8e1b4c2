package musicbrainz_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"groove/internal/config"
	"groove/internal/musicbrainz"
)

const fullRelease = `<?xml version="1.0" encoding="UTF-8"?>
<metadata xmlns="http://musicbrainz.org/ns/mmd-2.0#">
  <release id="9162580e-5df4-32de-80cc-f45a8d8a9b1d">
    <title>Abbey Road</title>
    <date>1969-09-26</date>
    <artist-credit>
      <name-credit>
        <name>The Beatles</name>
        <artist id="b10bbbfc-cf9e-42e0-be17-e2c3e1d2600d">
          <name>The Beatles</name>
        </artist>
      </name-credit>
    </artist-credit>
    <medium-list count="2">
      <medium>
        <track-list count="2">
          <track>
            <title>Come Together</title>
            <recording><title>Come Together</title></recording>
          </track>
          <track>
            <title>Something</title>
            <recording><title>Something</title></recording>
          </track>
        </track-list>
      </medium>
      <medium>
        <track-list count="1">
          <track>
            <title>Here Comes the Sun</title>
            <recording><title>Here Comes the Sun</title></recording>
          </track>
        </track-list>
      </medium>
    </medium-list>
  </release>
</metadata>`

func newTestClient(t *testing.T, handler http.Handler) *musicbrainz.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.Default().MusicBrainz
	cfg.BaseURL = server.URL
	cfg.RequestIntervalMS = 1

	client, err := musicbrainz.New(cfg)
	if err != nil {
		t.Fatalf("musicbrainz.New: %v", err)
	}
	return client
}

func serveXML(t *testing.T, body string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		if _, err := w.Write([]byte(body)); err != nil {
			t.Errorf("write response: %v", err)
		}
	})
}

func TestLookupParsesFullDocument(t *testing.T) {
	client := newTestClient(t, serveXML(t, fullRelease))

	meta, err := client.Lookup(context.Background(), "9162580e-5df4-32de-80cc-f45a8d8a9b1d")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if meta.Title != "Abbey Road" {
		t.Errorf("expected title Abbey Road, got %q", meta.Title)
	}
	if meta.Artist != "The Beatles" {
		t.Errorf("expected artist The Beatles, got %q", meta.Artist)
	}
	if meta.Date != "1969-09-26" {
		t.Errorf("expected date 1969-09-26, got %q", meta.Date)
	}
	want := []string{"Come Together", "Something", "Here Comes the Sun"}
	if len(meta.Tracks) != len(want) {
		t.Fatalf("expected %d tracks, got %v", len(want), meta.Tracks)
	}
	for i, title := range want {
		if meta.Tracks[i] != title {
			t.Errorf("track %d: expected %q, got %q", i, title, meta.Tracks[i])
		}
	}
}

func TestLookupRequestShape(t *testing.T) {
	var gotPath, gotInc, gotAgent string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotInc = r.URL.Query().Get("inc")
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte(`<metadata/>`))
	}))

	if _, err := client.Lookup(context.Background(), "some-release-id"); err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if gotPath != "/release/some-release-id" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotInc != "recordings artist-credits" {
		t.Errorf("unexpected inc parameter %q", gotInc)
	}
	if gotAgent == "" {
		t.Error("expected User-Agent header to be set")
	}
}

func TestLookupFallsBackToNestedArtistName(t *testing.T) {
	body := `<metadata>
  <release>
    <title>Kind of Blue</title>
    <artist-credit>
      <name-credit>
        <artist><name>Miles Davis</name></artist>
      </name-credit>
    </artist-credit>
  </release>
</metadata>`
	client := newTestClient(t, serveXML(t, body))

	meta, err := client.Lookup(context.Background(), "mbid")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if meta.Artist != "Miles Davis" {
		t.Errorf("expected nested artist name, got %q", meta.Artist)
	}
	if len(meta.Tracks) != 0 {
		t.Errorf("expected no tracks, got %v", meta.Tracks)
	}
}

func TestLookupUnknownTrackPlaceholder(t *testing.T) {
	body := `<metadata>
  <release>
    <title>Mystery Tape</title>
    <medium-list>
      <medium>
        <track-list>
          <track><recording><title>Named Song</title></recording></track>
          <track><title>Track-Level Title</title></track>
          <track></track>
        </track-list>
      </medium>
    </medium-list>
  </release>
</metadata>`
	client := newTestClient(t, serveXML(t, body))

	meta, err := client.Lookup(context.Background(), "mbid")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	want := []string{"Named Song", "Track-Level Title", "Unknown Track"}
	if len(meta.Tracks) != len(want) {
		t.Fatalf("expected %d tracks, got %v", len(want), meta.Tracks)
	}
	for i, title := range want {
		if meta.Tracks[i] != title {
			t.Errorf("track %d: expected %q, got %q", i, title, meta.Tracks[i])
		}
	}
}

func TestLookupEmptyDocumentDegrades(t *testing.T) {
	client := newTestClient(t, serveXML(t, `<metadata/>`))

	meta, err := client.Lookup(context.Background(), "mbid")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if meta.Title != "" || meta.Artist != "" || len(meta.Tracks) != 0 {
		t.Fatalf("expected empty metadata, got %#v", meta)
	}
	if meta.Tracks == nil {
		t.Fatal("expected empty track slice, got nil")
	}
}

func TestLookupMalformedXML(t *testing.T) {
	client := newTestClient(t, serveXML(t, `<metadata><release><title>Broken`))

	if _, err := client.Lookup(context.Background(), "mbid"); err == nil {
		t.Fatal("expected error for malformed document")
	}
}

func TestLookupNonOKStatus(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusServiceUnavailable} {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))
		if _, err := client.Lookup(context.Background(), "mbid"); err == nil {
			t.Errorf("expected error for status %d", status)
		}
	}
}

func TestLookupRejectsEmptyID(t *testing.T) {
	client := newTestClient(t, serveXML(t, `<metadata/>`))

	if _, err := client.Lookup(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty release id")
	}
}

func TestLookupSpacesRequests(t *testing.T) {
	server := httptest.NewServer(serveXML(t, `<metadata/>`))
	t.Cleanup(server.Close)

	cfg := config.Default().MusicBrainz
	cfg.BaseURL = server.URL
	cfg.RequestIntervalMS = 50

	client, err := musicbrainz.New(cfg)
	if err != nil {
		t.Fatalf("musicbrainz.New: %v", err)
	}

	start := time.Now()
	for i := 0; i < 2; i++ {
		if _, err := client.Lookup(context.Background(), "mbid"); err != nil {
			t.Fatalf("Lookup failed: %v", err)
		}
	}
	// The first lookup waits out the initial interval too.
	if elapsed := time.Since(start); elapsed < 90*time.Millisecond {
		t.Fatalf("expected two full intervals, lookups finished in %v", elapsed)
	}
}

func TestLookupHonorsContextCancellation(t *testing.T) {
	server := httptest.NewServer(serveXML(t, `<metadata/>`))
	t.Cleanup(server.Close)

	cfg := config.Default().MusicBrainz
	cfg.BaseURL = server.URL
	cfg.RequestIntervalMS = 60000

	client, err := musicbrainz.New(cfg)
	if err != nil {
		t.Fatalf("musicbrainz.New: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := client.Lookup(ctx, "mbid"); err == nil {
		t.Fatal("expected error when context expires during the rate wait")
	}
}
