package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Store persists catalog records in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore wraps the shared database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

const recordColumns = "id, artist, album, price_cents, quantity, format, category, mbid, tracklist, created_at, updated_at"

// Insert persists a new record. A unique-index violation on
// (artist, album, format) surfaces as ErrDuplicate.
func (s *Store) Insert(ctx context.Context, record *Record) error {
	if record == nil {
		return errors.New("record is nil")
	}
	tracklist, err := marshalTracklist(record.Tracklist)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO records (`+recordColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Artist,
		record.Album,
		record.PriceCents,
		record.Quantity,
		string(record.Format),
		string(record.Category),
		nullableString(record.MBID),
		tracklist,
		record.CreatedAt.UTC().Format(time.RFC3339Nano),
		record.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

// GetByID fetches a record by identifier, returning nil when absent.
func (s *Store) GetByID(ctx context.Context, id string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM records WHERE id = ?`, id)
	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}
	return record, nil
}

// TripleExists reports whether a live record other than excludeID already
// holds the (artist, album, format) triple.
func (s *Store) TripleExists(ctx context.Context, artist, album string, format Format, excludeID string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(
		ctx,
		`SELECT COUNT(1) FROM records WHERE artist = ? AND album = ? AND format = ? AND id != ?`,
		artist, album, string(format), excludeID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check uniqueness: %w", err)
	}
	return count > 0, nil
}

// Update persists changes to an existing record. A unique-index violation
// surfaces as ErrDuplicate.
func (s *Store) Update(ctx context.Context, record *Record) error {
	if record == nil {
		return errors.New("record is nil")
	}
	tracklist, err := marshalTracklist(record.Tracklist)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(
		ctx,
		`UPDATE records
         SET artist = ?, album = ?, price_cents = ?, quantity = ?, format = ?,
             category = ?, mbid = ?, tracklist = ?, updated_at = ?
         WHERE id = ?`,
		record.Artist,
		record.Album,
		record.PriceCents,
		record.Quantity,
		string(record.Format),
		string(record.Category),
		nullableString(record.MBID),
		tracklist,
		record.UpdatedAt.UTC().Format(time.RFC3339Nano),
		record.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("update record: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a record by identifier, reporting whether a row existed.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete record: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// List returns one page of records matching the query, with the total match
// count for pagination.
func (s *Store) List(ctx context.Context, query ListQuery) (ListResult, error) {
	query.Normalize()
	where, args := query.where()

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM records`+where, args...).Scan(&total); err != nil {
		return ListResult{}, fmt.Errorf("count records: %w", err)
	}

	order := fmt.Sprintf(" ORDER BY %s %s, id %s", query.sortColumn(), strings.ToUpper(query.SortOrder), strings.ToUpper(query.SortOrder))
	pageArgs := append(append([]any{}, args...), query.Limit, query.offset())
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+recordColumns+` FROM records`+where+order+` LIMIT ? OFFSET ?`,
		pageArgs...,
	)
	if err != nil {
		return ListResult{}, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return ListResult{}, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return ListResult{}, err
	}

	return ListResult{
		Records:    records,
		Total:      total,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: TotalPagesFor(total, query.Limit),
	}, nil
}

// DecrementQuantityTx applies an atomic conditional stock decrement inside
// the caller's transaction. It reports false when the record is missing or
// its quantity is below the requested amount; the caller decides which by
// re-reading the row. The delta form avoids lost updates under concurrent
// orders against the same record.
func (s *Store) DecrementQuantityTx(ctx context.Context, tx *sql.Tx, id string, quantity int64) (bool, error) {
	res, err := tx.ExecContext(
		ctx,
		`UPDATE records
         SET quantity = quantity - ?, updated_at = ?
         WHERE id = ? AND quantity >= ?`,
		quantity,
		time.Now().UTC().Format(time.RFC3339Nano),
		id,
		quantity,
	)
	if err != nil {
		return false, fmt.Errorf("decrement stock: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

func scanRecord(scanner interface{ Scan(dest ...any) error }) (*Record, error) {
	var (
		id         string
		artist     string
		album      string
		priceCents int64
		quantity   int64
		formatStr  string
		category   string
		mbid       sql.NullString
		tracklist  string
		createdRaw string
		updatedRaw string
	)

	if err := scanner.Scan(
		&id,
		&artist,
		&album,
		&priceCents,
		&quantity,
		&formatStr,
		&category,
		&mbid,
		&tracklist,
		&createdRaw,
		&updatedRaw,
	); err != nil {
		return nil, err
	}

	record := &Record{
		ID:         id,
		Artist:     artist,
		Album:      album,
		PriceCents: priceCents,
		Quantity:   quantity,
		Format:     Format(formatStr),
		Category:   Category(category),
		MBID:       mbid.String,
	}
	if err := json.Unmarshal([]byte(tracklist), &record.Tracklist); err != nil {
		return nil, fmt.Errorf("decode tracklist: %w", err)
	}
	if record.Tracklist == nil {
		record.Tracklist = []string{}
	}
	if created, err := parseTimeString(createdRaw); err == nil {
		record.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw); err == nil {
		record.UpdatedAt = updated
	}
	return record, nil
}

func marshalTracklist(tracks []string) (string, error) {
	if tracks == nil {
		tracks = []string{}
	}
	data, err := json.Marshal(tracks)
	if err != nil {
		return "", fmt.Errorf("encode tracklist: %w", err)
	}
	return string(data), nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	return time.Parse(time.RFC3339Nano, value)
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
