package unitofwork

import (
	"context"
	"fmt"

	"neurolearn-be/internal/repository/contract"
	"neurolearn-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserPreferenceRepository() contract.UserPreferenceRepository {
	return implementation.NewUserPreferenceRepository(u.getDB())
}

func (u *UnitOfWorkImpl) EnergyLogRepository() contract.EnergyLogRepository {
	return implementation.NewEnergyLogRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PomodoroSessionRepository() contract.PomodoroSessionRepository {
	return implementation.NewPomodoroSessionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) UserProgressRepository() contract.UserProgressRepository {
	return implementation.NewUserProgressRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ProfileRepository() contract.ProfileRepository {
	return implementation.NewProfileRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TaskRepository() contract.TaskRepository {
	return implementation.NewTaskRepository(u.getDB())
}
