package api

import (
	"time"

	"groove/internal/catalog"
	"groove/internal/orders"
)

// Record is the wire projection of a catalog record. Prices travel in
// currency units; storage keeps cents.
type Record struct {
	ID        string    `json:"id"`
	Artist    string    `json:"artist"`
	Album     string    `json:"album"`
	Price     float64   `json:"price"`
	Quantity  int64     `json:"quantity"`
	Format    string    `json:"format"`
	Category  string    `json:"category"`
	MBID      string    `json:"mbid,omitempty"`
	Tracklist []string  `json:"tracklist"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Order is the wire projection of a purchase.
type Order struct {
	ID              string    `json:"id"`
	RecordID        string    `json:"recordId"`
	Quantity        int64     `json:"quantity"`
	TotalPrice      float64   `json:"totalPrice"`
	CustomerName    string    `json:"customerName"`
	CustomerEmail   string    `json:"customerEmail"`
	ShippingAddress string    `json:"shippingAddress"`
	CreatedAt       time.Time `json:"createdAt"`
}

// RecordPage is a paginated record listing response.
type RecordPage struct {
	Records    []Record `json:"records"`
	Total      int      `json:"total"`
	Page       int      `json:"page"`
	Limit      int      `json:"limit"`
	TotalPages int      `json:"totalPages"`
}

// OrderPage is a paginated order listing response.
type OrderPage struct {
	Orders     []Order `json:"orders"`
	Total      int     `json:"total"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	TotalPages int     `json:"totalPages"`
}

// CreateRecordRequest is the payload for record creation.
type CreateRecordRequest struct {
	Artist   string  `json:"artist"`
	Album    string  `json:"album"`
	Price    float64 `json:"price"`
	Quantity int64   `json:"quantity"`
	Format   string  `json:"format"`
	Category string  `json:"category"`
	MBID     string  `json:"mbid"`
}

// UpdateRecordRequest is the payload for a partial record update. Nil
// fields are left unchanged.
type UpdateRecordRequest struct {
	Artist   *string  `json:"artist"`
	Album    *string  `json:"album"`
	Price    *float64 `json:"price"`
	Quantity *int64   `json:"quantity"`
	Format   *string  `json:"format"`
	Category *string  `json:"category"`
	MBID     *string  `json:"mbid"`
}

// CreateOrderRequest is the payload for order creation.
type CreateOrderRequest struct {
	RecordID        string `json:"recordId"`
	Quantity        int64  `json:"quantity"`
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	ShippingAddress string `json:"shippingAddress"`
}

// HealthStatus reports daemon and database health.
type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// FromRecord converts a domain record to its wire projection.
func FromRecord(record *catalog.Record) Record {
	tracklist := record.Tracklist
	if tracklist == nil {
		tracklist = []string{}
	}
	return Record{
		ID:        record.ID,
		Artist:    record.Artist,
		Album:     record.Album,
		Price:     record.Price(),
		Quantity:  record.Quantity,
		Format:    string(record.Format),
		Category:  string(record.Category),
		MBID:      record.MBID,
		Tracklist: tracklist,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

// FromRecordPage converts a listing result to its wire projection.
func FromRecordPage(result catalog.ListResult) RecordPage {
	records := make([]Record, 0, len(result.Records))
	for _, record := range result.Records {
		records = append(records, FromRecord(record))
	}
	return RecordPage{
		Records:    records,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	}
}

// FromOrder converts a domain order to its wire projection.
func FromOrder(order *orders.Order) Order {
	return Order{
		ID:              order.ID,
		RecordID:        order.RecordID,
		Quantity:        order.Quantity,
		TotalPrice:      order.TotalPrice(),
		CustomerName:    order.CustomerName,
		CustomerEmail:   order.CustomerEmail,
		ShippingAddress: order.ShippingAddress,
		CreatedAt:       order.CreatedAt,
	}
}

// FromOrderPage converts a listing result to its wire projection.
func FromOrderPage(result orders.ListResult) OrderPage {
	items := make([]Order, 0, len(result.Orders))
	for _, order := range result.Orders {
		items = append(items, FromOrder(order))
	}
	return OrderPage{
		Orders:     items,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	}
}
