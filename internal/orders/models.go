package orders

import "time"

// Order is a customer purchase of one record.
type Order struct {
	ID              string
	RecordID        string
	Quantity        int64
	TotalCents      int64
	CustomerName    string
	CustomerEmail   string
	ShippingAddress string
	CreatedAt       time.Time
}

// TotalPrice returns the order total in currency units.
func (o *Order) TotalPrice() float64 {
	return float64(o.TotalCents) / 100
}

// CreateInput carries the fields accepted when creating an order. The
// boundary layer validates shapes (positive quantity, well-formed email,
// non-empty customer fields) before the service sees them.
type CreateInput struct {
	RecordID        string
	Quantity        int64
	CustomerName    string
	CustomerEmail   string
	ShippingAddress string
}

// ListQuery describes a paginated, sorted order listing.
type ListQuery struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// ListResult is one page of an order listing.
type ListResult struct {
	Orders     []*Order
	Total      int
	Page       int
	Limit      int
	TotalPages int
}
