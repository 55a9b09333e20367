package server

import (
	"context"

	"github.com/kateryna-ts/NiceFrogbeta/pkg/domain"
	"github.com/kateryna-ts/NiceFrogbeta/pkg/repository"
)

// RepositoryAdapter presents the repository set as the flat Store interface
// the handlers consume
type RepositoryAdapter struct {
	repos *repository.Repositories
}

// NewRepositoryAdapter creates an adapter over the repository set
func NewRepositoryAdapter(repos *repository.Repositories) *RepositoryAdapter {
	return &RepositoryAdapter{repos: repos}
}

// CreateUser inserts a new user record
func (a *RepositoryAdapter) CreateUser(ctx context.Context, u *domain.User) error {
	return a.repos.User.CreateUser(ctx, u)
}

// GetUser returns a user by id
func (a *RepositoryAdapter) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return a.repos.User.GetUser(ctx, id)
}

// GetUserByEmail returns a user by email
func (a *RepositoryAdapter) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return a.repos.User.GetUserByEmail(ctx, email)
}

// UpdateUser overwrites the mutable profile fields
func (a *RepositoryAdapter) UpdateUser(ctx context.Context, u *domain.User) error {
	return a.repos.User.UpdateUser(ctx, u)
}

// GetPhoneConfig returns the stored relay configuration
func (a *RepositoryAdapter) GetPhoneConfig(ctx context.Context, userID string) (*domain.PhoneConfig, error) {
	return a.repos.Phone.GetPhoneConfig(ctx, userID)
}

// SavePhoneConfig upserts the relay configuration
func (a *RepositoryAdapter) SavePhoneConfig(ctx context.Context, userID string, cfg *domain.PhoneConfig) error {
	return a.repos.Phone.SavePhoneConfig(ctx, userID, cfg)
}

// CreateListing inserts a new listing
func (a *RepositoryAdapter) CreateListing(ctx context.Context, l *domain.Listing) error {
	return a.repos.Listing.CreateListing(ctx, l)
}

// GetListing returns one listing by id
func (a *RepositoryAdapter) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	return a.repos.Listing.GetListing(ctx, id)
}

// GetListings returns listings newest first, optionally filtered by type
func (a *RepositoryAdapter) GetListings(ctx context.Context, listingType domain.ListingType, limit int) ([]domain.Listing, error) {
	return a.repos.Listing.GetListings(ctx, listingType, limit)
}

// GetWallet returns the token balance
func (a *RepositoryAdapter) GetWallet(ctx context.Context, userID string) (*domain.Wallet, error) {
	return a.repos.Wallet.GetWallet(ctx, userID)
}

// AddTokens credits the wallet
func (a *RepositoryAdapter) AddTokens(ctx context.Context, userID string, tokens int) (*domain.Wallet, error) {
	return a.repos.Wallet.AddTokens(ctx, userID, tokens)
}
