// Package sqlite implements the listing store contract over an in-memory
// SQLite database. The database lives in process memory only (":memory:"
// DSN), so state is lost on restart exactly like the default memory store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ecoshare/ecoshare-backend/internal/model"
	"github.com/ecoshare/ecoshare-backend/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS listing (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    category TEXT NOT NULL,
    is_donation INTEGER NOT NULL DEFAULT 0,
    price INTEGER,
    posted_by TEXT NOT NULL,
    img TEXT,
    status TEXT NOT NULL DEFAULT '' CHECK (status IN ('', 'Purchased', 'Requested')),
    created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_listing_posted_by ON listing(posted_by);
CREATE INDEX IF NOT EXISTS idx_listing_is_donation ON listing(is_donation);
`

type Store struct {
	db *sql.DB
}

// Open creates a fresh in-memory database with the listing schema applied.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// A second connection would see its own empty :memory: database.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) List(ctx context.Context, filter store.ListingFilter, viewer string) ([]model.Listing, error) {
	query := `SELECT id, title, description, category, is_donation, price, posted_by, img, status, created_at FROM listing`
	var args []any
	switch filter {
	case store.FilterSale:
		query += ` WHERE is_donation = 0`
	case store.FilterDonation:
		query += ` WHERE is_donation = 1`
	case store.FilterMine:
		if viewer == "" {
			return []model.Listing{}, nil
		}
		query += ` WHERE posted_by = ?`
		args = append(args, viewer)
	}
	query += ` ORDER BY id DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Listing, 0)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (s *Store) FindByID(ctx context.Context, id uint64) (*model.Listing, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, description, category, is_donation, price, posted_by, img, status, created_at FROM listing WHERE id = ?`, id)
	l, err := scanListing(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrListingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *Store) Append(ctx context.Context, listing model.Listing) (*model.Listing, error) {
	if listing.PostedBy == "" {
		listing.PostedBy = "Anonymous"
	}
	if listing.CreatedAt.IsZero() {
		listing.CreatedAt = time.Now()
	}
	var price sql.NullInt64
	if listing.Price != nil {
		price = sql.NullInt64{Int64: int64(*listing.Price), Valid: true}
	}
	var img sql.NullString
	if listing.Img != nil {
		img = sql.NullString{String: *listing.Img, Valid: true}
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO listing (title, description, category, is_donation, price, posted_by, img, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		listing.Title, listing.Description, listing.Category, listing.IsDonation,
		price, listing.PostedBy, img, string(listing.Status), listing.CreatedAt.Unix())
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	listing.ID = uint64(id)
	return &listing, nil
}

func (s *Store) SetStatus(ctx context.Context, id uint64, status model.ListingStatus) (*model.Listing, error) {
	if !status.Terminal() {
		return nil, store.ErrInvalidStatus
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE listing SET status = ? WHERE id = ? AND status = ''`, string(status), id)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		// Either absent or already closed; one more read tells which.
		existing, err := s.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing.Status.Terminal() {
			return nil, store.ErrListingClosed
		}
		return nil, store.ErrInvalidStatus
	}
	return s.FindByID(ctx, id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(row rowScanner) (model.Listing, error) {
	var (
		l         model.Listing
		price     sql.NullInt64
		img       sql.NullString
		status    string
		createdAt int64
	)
	err := row.Scan(&l.ID, &l.Title, &l.Description, &l.Category, &l.IsDonation,
		&price, &l.PostedBy, &img, &status, &createdAt)
	if err != nil {
		return model.Listing{}, err
	}
	if price.Valid {
		v := uint(price.Int64)
		l.Price = &v
	}
	if img.Valid {
		v := img.String
		l.Img = &v
	}
	l.Status = model.ListingStatus(status)
	l.CreatedAt = time.Unix(createdAt, 0)
	return l, nil
}
