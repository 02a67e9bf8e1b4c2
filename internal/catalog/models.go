package catalog

import (
	"fmt"
	"strings"
	"time"
)

// Format enumerates the physical or digital media a record ships on.
type Format string

const (
	FormatVinyl    Format = "vinyl"
	FormatCD       Format = "cd"
	FormatCassette Format = "cassette"
	FormatDigital  Format = "digital"
)

var allFormats = []Format{FormatVinyl, FormatCD, FormatCassette, FormatDigital}

// ParseFormat normalizes and validates a format name.
func ParseFormat(value string) (Format, error) {
	normalized := Format(strings.ToLower(strings.TrimSpace(value)))
	for _, format := range allFormats {
		if normalized == format {
			return format, nil
		}
	}
	return "", fmt.Errorf("unknown format %q", value)
}

// Formats returns the supported media formats.
func Formats() []Format {
	return append([]Format{}, allFormats...)
}

// Category enumerates the genres a record can be filed under.
type Category string

const (
	CategoryRock       Category = "rock"
	CategoryPop        Category = "pop"
	CategoryJazz       Category = "jazz"
	CategoryClassical  Category = "classical"
	CategoryBlues      Category = "blues"
	CategoryCountry    Category = "country"
	CategoryElectronic Category = "electronic"
	CategoryFolk       Category = "folk"
	CategoryHipHop     Category = "hip-hop"
	CategoryMetal      Category = "metal"
	CategoryReggae     Category = "reggae"
	CategorySoul       Category = "soul"
	CategorySoundtrack Category = "soundtrack"
	CategoryOther      Category = "other"
)

var allCategories = []Category{
	CategoryRock,
	CategoryPop,
	CategoryJazz,
	CategoryClassical,
	CategoryBlues,
	CategoryCountry,
	CategoryElectronic,
	CategoryFolk,
	CategoryHipHop,
	CategoryMetal,
	CategoryReggae,
	CategorySoul,
	CategorySoundtrack,
	CategoryOther,
}

// ParseCategory normalizes and validates a category name.
func ParseCategory(value string) (Category, error) {
	normalized := Category(strings.ToLower(strings.TrimSpace(value)))
	for _, category := range allCategories {
		if normalized == category {
			return category, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", value)
}

// Categories returns the supported genres.
func Categories() []Category {
	return append([]Category{}, allCategories...)
}

// Record is a catalog entry for one sellable media item.
type Record struct {
	ID         string
	Artist     string
	Album      string
	PriceCents int64
	Quantity   int64
	Format     Format
	Category   Category
	MBID       string
	Tracklist  []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Price returns the unit price in currency units.
func (r *Record) Price() float64 {
	return float64(r.PriceCents) / 100
}

// CreateInput carries the fields accepted when creating a record. The
// boundary layer validates shapes before the service sees them; the service
// enforces business rules only.
type CreateInput struct {
	Artist string
	Album  string
	// PriceCents is the unit price in cents; non-negative.
	PriceCents int64
	Quantity   int64
	Format     Format
	Category   Category
	// MBID optionally references a MusicBrainz release for enrichment.
	MBID string
}

// UpdateInput carries a partial record update. Nil fields are left unchanged.
type UpdateInput struct {
	Artist     *string
	Album      *string
	PriceCents *int64
	Quantity   *int64
	Format     *Format
	Category   *Category
	MBID       *string
}
