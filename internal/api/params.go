package api

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"groove/internal/catalog"
	"groove/internal/orders"
)

// ParseRecordListQuery coerces flat query parameters into a catalog listing
// query. All values arrive as text; malformed or unknown values fall back to
// their defaults rather than erroring, and unrecognized keys are ignored.
func ParseRecordListQuery(values url.Values) catalog.ListQuery {
	query := catalog.ListQuery{
		Artist:    strings.TrimSpace(values.Get("artist")),
		Album:     strings.TrimSpace(values.Get("album")),
		Page:      parseInt(values.Get("page")),
		Limit:     parseInt(values.Get("limit")),
		SortBy:    strings.TrimSpace(values.Get("sortBy")),
		SortOrder: strings.TrimSpace(values.Get("sortOrder")),
	}
	if format, err := catalog.ParseFormat(values.Get("format")); err == nil {
		query.Format = format
	}
	if category, err := catalog.ParseCategory(values.Get("category")); err == nil {
		query.Category = category
	}
	if cents, ok := parsePriceCents(values.Get("minPrice")); ok {
		query.MinPriceCents = &cents
	}
	if cents, ok := parsePriceCents(values.Get("maxPrice")); ok {
		query.MaxPriceCents = &cents
	}
	query.InStock = parseBool(values.Get("inStock"))
	query.Normalize()
	return query
}

// ParseOrderListQuery coerces flat query parameters into an order listing
// query with the same permissive defaults.
func ParseOrderListQuery(values url.Values) orders.ListQuery {
	return orders.ListQuery{
		Page:      parseInt(values.Get("page")),
		Limit:     parseInt(values.Get("limit")),
		SortBy:    strings.TrimSpace(values.Get("sortBy")),
		SortOrder: strings.TrimSpace(values.Get("sortOrder")),
	}
}

// PriceToCents converts a currency-unit price to integer cents.
func PriceToCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

func parseInt(value string) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return parsed
}

func parsePriceCents(value string) (int64, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, false
	}
	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || parsed < 0 {
		return 0, false
	}
	return PriceToCents(parsed), true
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
