package repository

import (
	"context"

	"mentalbank/internal/balance"
)

// Repository persists per-user balance settings.
type Repository interface {
	// GetSettings returns the user's settings, or zero-value Settings
	// (UserID == "") when none have been stored yet.
	GetSettings(ctx context.Context, userID string) (balance.Settings, error)
	// UpsertSettings writes the settings row, creating it on first use.
	UpsertSettings(ctx context.Context, opt UpsertSettingsOptions) (balance.Settings, error)
}

// UpsertSettingsOptions holds parameters for writing the settings row.
type UpsertSettingsOptions struct {
	UserID        string
	TargetBalance float64
}
