package contract

import (
	"context"

	"neurolearn-be/internal/entity"
)

type ProfileRepository interface {
	Upsert(ctx context.Context, profile *entity.Profile) error
	FindById(ctx context.Context, id string) (*entity.Profile, error)
}
