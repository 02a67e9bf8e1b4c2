package orders

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates no order exists at the given identifier.
	ErrNotFound = errors.New("order not found")
	// ErrInsufficientStock indicates the requested quantity exceeds the
	// record's current stock.
	ErrInsufficientStock = errors.New("insufficient stock for the requested quantity")
	// ErrRecordNotFound is the errors.Is target for RecordNotFoundError.
	ErrRecordNotFound = errors.New("record not found")
)

// RecordNotFoundError reports an order referencing a nonexistent record,
// carrying the identifier the caller asked for.
type RecordNotFoundError struct {
	RecordID string
}

func (e *RecordNotFoundError) Error() string {
	return fmt.Sprintf("no record found with id %q", e.RecordID)
}

// Is makes errors.Is(err, ErrRecordNotFound) match.
func (e *RecordNotFoundError) Is(target error) bool {
	return target == ErrRecordNotFound
}
