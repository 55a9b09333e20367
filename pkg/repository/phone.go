package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/kateryna-ts/NiceFrogbeta/pkg/domain"
)

// PhoneRepository stores the per-user SMS relay configuration
type PhoneRepository struct {
	db *sqlx.DB
}

// GetPhoneConfig returns the stored config, or the opted-in defaults when
// none was saved yet (matching first-run behavior)
func (r *PhoneRepository) GetPhoneConfig(ctx context.Context, userID string) (*domain.PhoneConfig, error) {
	var cfg domain.PhoneConfig
	query := `
		SELECT phone_number, verified, webhook_url, notify_on_alert, notify_on_message
		FROM phone_configs WHERE user_id = ?
	`
	err := r.db.GetContext(ctx, &cfg, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.PhoneConfig{NotifyOnAlert: true, NotifyOnMessage: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get phone config: %w", err)
	}
	return &cfg, nil
}

// GetPrimaryPhoneConfig returns the config of the single local profile, nil
// when nothing was saved yet. Used to rehydrate the engine side channel at
// startup.
func (r *PhoneRepository) GetPrimaryPhoneConfig(ctx context.Context) (*domain.PhoneConfig, error) {
	var cfg domain.PhoneConfig
	query := `
		SELECT phone_number, verified, webhook_url, notify_on_alert, notify_on_message
		FROM phone_configs ORDER BY user_id LIMIT 1
	`
	err := r.db.GetContext(ctx, &cfg, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get primary phone config: %w", err)
	}
	return &cfg, nil
}

// SavePhoneConfig upserts the whole config record
func (r *PhoneRepository) SavePhoneConfig(ctx context.Context, userID string, cfg *domain.PhoneConfig) error {
	return withRetry(ctx, func() error {
		query := `
			INSERT INTO phone_configs (user_id, phone_number, verified, webhook_url, notify_on_alert, notify_on_message)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(user_id) DO UPDATE SET
				phone_number = excluded.phone_number,
				verified = excluded.verified,
				webhook_url = excluded.webhook_url,
				notify_on_alert = excluded.notify_on_alert,
				notify_on_message = excluded.notify_on_message
		`
		_, err := r.db.ExecContext(ctx, query,
			userID, cfg.PhoneNumber, cfg.Verified, cfg.WebhookURL, cfg.NotifyOnAlert, cfg.NotifyOnMessage)
		if err != nil {
			return fmt.Errorf("save phone config: %w", err)
		}
		return nil
	})
}
