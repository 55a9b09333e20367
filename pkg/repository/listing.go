package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/kateryna-ts/NiceFrogbeta/pkg/domain"
)

// ListingRepository stores marketplace listings
type ListingRepository struct {
	db *sqlx.DB
}

// CreateListing inserts a new listing
func (r *ListingRepository) CreateListing(ctx context.Context, l *domain.Listing) error {
	return withRetry(ctx, func() error {
		query := `
			INSERT INTO listings (id, title, price, description, distance, type, ble_active, ble_device_id, user_name, created_at)
			VALUES (:id, :title, :price, :description, :distance, :type, :ble_active, :ble_device_id, :user_name, :created_at)
		`
		if _, err := r.db.NamedExecContext(ctx, query, l); err != nil {
			return fmt.Errorf("create listing: %w", err)
		}
		return nil
	})
}

// GetListing returns one listing by id
func (r *ListingRepository) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	var l domain.Listing
	err := r.db.GetContext(ctx, &l, "SELECT * FROM listings WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	return &l, nil
}

// GetListings returns listings newest first, optionally filtered by type
func (r *ListingRepository) GetListings(ctx context.Context, listingType domain.ListingType, limit int) ([]domain.Listing, error) {
	if limit <= 0 {
		limit = 50
	}

	var listings []domain.Listing
	var err error
	if listingType == "" {
		err = r.db.SelectContext(ctx, &listings,
			"SELECT * FROM listings ORDER BY created_at DESC, id DESC LIMIT ?", limit)
	} else {
		err = r.db.SelectContext(ctx, &listings,
			"SELECT * FROM listings WHERE type = ? ORDER BY created_at DESC, id DESC LIMIT ?", listingType, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("get listings: %w", err)
	}
	return listings, nil
}

// SeedListings inserts the given listings unless the table already has rows,
// so a fresh profile starts with the demo marketplace populated
func (r *ListingRepository) SeedListings(ctx context.Context, listings []domain.Listing) error {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM listings"); err != nil {
		return fmt.Errorf("count listings: %w", err)
	}
	if count > 0 {
		return nil
	}
	for i := range listings {
		if err := r.CreateListing(ctx, &listings[i]); err != nil {
			return err
		}
	}
	return nil
}
