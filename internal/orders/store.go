package orders

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"groove/internal/catalog"
)

// Store persists orders in SQLite, sharing the catalog's database so order
// creation and the stock decrement commit atomically.
type Store struct {
	db      *sql.DB
	records *catalog.Store
}

// NewStore wraps the shared database connection.
func NewStore(db *sql.DB, records *catalog.Store) *Store {
	return &Store{db: db, records: records}
}

const orderColumns = "id, record_id, quantity, total_cents, customer_name, customer_email, shipping_address, created_at"

// Create inserts the order and applies the stock decrement in one
// transaction. When the conditional decrement matches no row (stock raced
// below the requested quantity, or the record vanished), nothing is
// persisted and ErrInsufficientStock is returned.
func (s *Store) Create(ctx context.Context, order *Order) error {
	if order == nil {
		return errors.New("order is nil")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin order tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	decremented, err := s.records.DecrementQuantityTx(ctx, tx, order.RecordID, order.Quantity)
	if err != nil {
		return err
	}
	if !decremented {
		return ErrInsufficientStock
	}

	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO orders (`+orderColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		order.ID,
		order.RecordID,
		order.Quantity,
		order.TotalCents,
		order.CustomerName,
		order.CustomerEmail,
		order.ShippingAddress,
		order.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit order: %w", err)
	}
	return nil
}

// GetByID fetches an order by identifier, returning nil when absent.
func (s *Store) GetByID(ctx context.Context, id string) (*Order, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = ?`, id)
	order, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

// sortColumns maps exposed order field names to their backing columns.
var sortColumns = map[string]string{
	"createdat":      "created_at",
	"created_at":     "created_at",
	"quantity":       "quantity",
	"totalprice":     "total_cents",
	"total_price":    "total_cents",
	"customername":   "customer_name",
	"customer_name":  "customer_name",
	"customeremail":  "customer_email",
	"customer_email": "customer_email",
	"recordid":       "record_id",
	"record_id":      "record_id",
}

// List returns one page of orders with the total count for pagination.
func (s *Store) List(ctx context.Context, query ListQuery) (ListResult, error) {
	query.normalize()

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM orders`).Scan(&total); err != nil {
		return ListResult{}, fmt.Errorf("count orders: %w", err)
	}

	column := "created_at"
	if mapped, ok := sortColumns[strings.ToLower(strings.TrimSpace(query.SortBy))]; ok {
		column = mapped
	}
	direction := strings.ToUpper(query.SortOrder)

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+orderColumns+` FROM orders ORDER BY `+column+` `+direction+`, id `+direction+` LIMIT ? OFFSET ?`,
		query.Limit,
		(query.Page-1)*query.Limit,
	)
	if err != nil {
		return ListResult{}, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var items []*Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return ListResult{}, err
		}
		items = append(items, order)
	}
	if err := rows.Err(); err != nil {
		return ListResult{}, err
	}

	return ListResult{
		Orders:     items,
		Total:      total,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: catalog.TotalPagesFor(total, query.Limit),
	}, nil
}

func (q *ListQuery) normalize() {
	if q.Page < 1 {
		q.Page = catalog.DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = catalog.DefaultLimit
	}
	if q.Limit > catalog.MaxLimit {
		q.Limit = catalog.MaxLimit
	}
	q.SortOrder = strings.ToLower(strings.TrimSpace(q.SortOrder))
	if q.SortOrder != catalog.SortAscending && q.SortOrder != catalog.SortDescending {
		q.SortOrder = catalog.SortDescending
	}
}

func scanOrder(scanner interface{ Scan(dest ...any) error }) (*Order, error) {
	var (
		order      Order
		createdRaw string
	)
	if err := scanner.Scan(
		&order.ID,
		&order.RecordID,
		&order.Quantity,
		&order.TotalCents,
		&order.CustomerName,
		&order.CustomerEmail,
		&order.ShippingAddress,
		&createdRaw,
	); err != nil {
		return nil, err
	}
	if created, err := time.Parse(time.RFC3339Nano, createdRaw); err == nil {
		order.CreatedAt = created
	}
	return &order, nil
}
