package musicbrainz

import (
	"encoding/xml"
	"io"
	"strings"
)

// The wire document is optional at every level, so each nested node is a
// pointer and extraction walks get-or-default through the chain.
type document struct {
	XMLName xml.Name     `xml:"metadata"`
	Release *releaseNode `xml:"release"`
}

type releaseNode struct {
	Title        string            `xml:"title"`
	Date         string            `xml:"date"`
	ArtistCredit *artistCreditNode `xml:"artist-credit"`
	MediumList   *mediumListNode   `xml:"medium-list"`
}

type artistCreditNode struct {
	NameCredits []nameCreditNode `xml:"name-credit"`
}

type nameCreditNode struct {
	// Name is the credit-level name; Artist carries the canonical one.
	// Either may be absent.
	Name   string      `xml:"name"`
	Artist *artistNode `xml:"artist"`
}

type artistNode struct {
	Name string `xml:"name"`
}

type mediumListNode struct {
	Mediums []mediumNode `xml:"medium"`
}

type mediumNode struct {
	TrackList *trackListNode `xml:"track-list"`
}

type trackListNode struct {
	Tracks []trackNode `xml:"track"`
}

type trackNode struct {
	Title     string         `xml:"title"`
	Recording *recordingNode `xml:"recording"`
}

type recordingNode struct {
	Title string `xml:"title"`
}

// parseRelease extracts best-effort metadata from a release document.
// Only a document the decoder cannot parse at all is an error; anything
// structurally missing degrades to the zero value for that field.
func parseRelease(r io.Reader) (Metadata, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return Metadata{}, err
	}

	meta := Metadata{Tracks: []string{}}
	release := doc.Release
	if release == nil {
		return meta, nil
	}

	meta.Title = strings.TrimSpace(release.Title)
	meta.Date = strings.TrimSpace(release.Date)
	meta.Artist = extractArtist(release.ArtistCredit)
	meta.Tracks = extractTracks(release.MediumList)
	return meta, nil
}

// extractArtist tries the direct credit name first, then the nested artist
// name.
func extractArtist(credit *artistCreditNode) string {
	if credit == nil {
		return ""
	}
	for _, nameCredit := range credit.NameCredits {
		if name := strings.TrimSpace(nameCredit.Name); name != "" {
			return name
		}
		if nameCredit.Artist != nil {
			if name := strings.TrimSpace(nameCredit.Artist.Name); name != "" {
				return name
			}
		}
	}
	return ""
}

func extractTracks(mediums *mediumListNode) []string {
	tracks := []string{}
	if mediums == nil {
		return tracks
	}
	for _, medium := range mediums.Mediums {
		if medium.TrackList == nil {
			continue
		}
		for _, track := range medium.TrackList.Tracks {
			tracks = append(tracks, trackTitle(track))
		}
	}
	return tracks
}

func trackTitle(track trackNode) string {
	if track.Recording != nil {
		if title := strings.TrimSpace(track.Recording.Title); title != "" {
			return title
		}
	}
	if title := strings.TrimSpace(track.Title); title != "" {
		return title
	}
	return unknownTrackTitle
}
