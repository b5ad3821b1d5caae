package unitofwork

import (
	"context"

	"neurolearn-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserPreferenceRepository() contract.UserPreferenceRepository
	EnergyLogRepository() contract.EnergyLogRepository
	PomodoroSessionRepository() contract.PomodoroSessionRepository
	UserProgressRepository() contract.UserProgressRepository
	ProfileRepository() contract.ProfileRepository
	TaskRepository() contract.TaskRepository
}
