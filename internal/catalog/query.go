package catalog

import (
	"strings"
)

// Pagination and sorting defaults for catalog and order listings.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	SortAscending  = "asc"
	SortDescending = "desc"
)

// ListQuery describes a filtered, paginated, sorted catalog listing. Zero
// values mean "no filter"; Normalize applies the documented defaults so a
// zero ListQuery is always valid.
type ListQuery struct {
	// Artist and Album are case-insensitive substring filters.
	Artist string
	Album  string
	// Format and Category are exact-match filters when non-empty.
	Format   Format
	Category Category
	// MinPriceCents and MaxPriceCents bound the price range inclusively.
	MinPriceCents *int64
	MaxPriceCents *int64
	// InStock keeps only records with quantity > 0.
	InStock bool

	Page  int
	Limit int
	// SortBy names a record field; unrecognized names fall back to the
	// default sort rather than erroring.
	SortBy    string
	SortOrder string
}

// sortColumns maps exposed field names to their backing columns.
var sortColumns = map[string]string{
	"artist":     "artist",
	"album":      "album",
	"price":      "price_cents",
	"quantity":   "quantity",
	"format":     "format",
	"category":   "category",
	"createdat":  "created_at",
	"created_at": "created_at",
	"updatedat":  "updated_at",
	"updated_at": "updated_at",
}

const defaultSortColumn = "updated_at"

// Normalize coerces pagination and sorting into their documented bounds.
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	q.SortOrder = strings.ToLower(strings.TrimSpace(q.SortOrder))
	if q.SortOrder != SortAscending && q.SortOrder != SortDescending {
		q.SortOrder = SortDescending
	}
}

// sortColumn resolves the SQL column for the requested sort field, falling
// back to the default when the field is unknown.
func (q *ListQuery) sortColumn() string {
	key := strings.ToLower(strings.TrimSpace(q.SortBy))
	if column, ok := sortColumns[key]; ok {
		return column
	}
	return defaultSortColumn
}

func (q *ListQuery) offset() int {
	return (q.Page - 1) * q.Limit
}

// where compiles the filter clauses and their arguments.
func (q *ListQuery) where() (string, []any) {
	var clauses []string
	var args []any

	if artist := strings.TrimSpace(q.Artist); artist != "" {
		clauses = append(clauses, "instr(lower(artist), lower(?)) > 0")
		args = append(args, artist)
	}
	if album := strings.TrimSpace(q.Album); album != "" {
		clauses = append(clauses, "instr(lower(album), lower(?)) > 0")
		args = append(args, album)
	}
	if q.Format != "" {
		clauses = append(clauses, "format = ?")
		args = append(args, string(q.Format))
	}
	if q.Category != "" {
		clauses = append(clauses, "category = ?")
		args = append(args, string(q.Category))
	}
	if q.MinPriceCents != nil {
		clauses = append(clauses, "price_cents >= ?")
		args = append(args, *q.MinPriceCents)
	}
	if q.MaxPriceCents != nil {
		clauses = append(clauses, "price_cents <= ?")
		args = append(args, *q.MaxPriceCents)
	}
	if q.InStock {
		clauses = append(clauses, "quantity > 0")
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// ListResult is one page of a catalog listing.
type ListResult struct {
	Records    []*Record
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// TotalPagesFor computes ceil(total / limit) with limit already coerced to at least 1.
func TotalPagesFor(total, limit int) int {
	if total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
