package contract

import (
	"context"
	"errors"

	"neurolearn-be/internal/entity"
)

// ErrVersionConflict is returned by Upsert when the stored version no longer
// matches the caller's expected version.
var ErrVersionConflict = errors.New("preference version conflict")

type UserPreferenceRepository interface {
	// FindByUserId returns (nil, nil) when the user has no row yet.
	FindByUserId(ctx context.Context, userId string) (*entity.UserPreference, error)
	// Upsert writes the complete row keyed by UserId and refreshes pref with
	// the stored values. With a nil expectedVersion the write is
	// last-write-wins; otherwise it only applies on a matching version.
	Upsert(ctx context.Context, pref *entity.UserPreference, expectedVersion *int64) error
}
