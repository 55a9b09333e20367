package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/kateryna-ts/NiceFrogbeta/pkg/domain"
)

// WalletRepository stores the token balance for the local profile
type WalletRepository struct {
	db *sqlx.DB
}

// GetWallet returns the wallet, zero-balance when none exists yet
func (r *WalletRepository) GetWallet(ctx context.Context, userID string) (*domain.Wallet, error) {
	var w domain.Wallet
	err := r.db.GetContext(ctx, &w, "SELECT user_id, balance FROM wallets WHERE user_id = ?", userID)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.Wallet{UserID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get wallet: %w", err)
	}
	return &w, nil
}

// AddTokens increments the balance, creating the wallet on first purchase
func (r *WalletRepository) AddTokens(ctx context.Context, userID string, tokens int) (*domain.Wallet, error) {
	if tokens <= 0 {
		return nil, fmt.Errorf("token amount must be positive, got %d", tokens)
	}
	err := withRetry(ctx, func() error {
		query := `
			INSERT INTO wallets (user_id, balance) VALUES (?, ?)
			ON CONFLICT(user_id) DO UPDATE SET balance = balance + excluded.balance
		`
		if _, err := r.db.ExecContext(ctx, query, userID, tokens); err != nil {
			return fmt.Errorf("add tokens: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetWallet(ctx, userID)
}
