package implementation

import (
	"context"
	"errors"
	"time"

	"neurolearn-be/internal/entity"
	"neurolearn-be/internal/mapper"
	"neurolearn-be/internal/model"
	"neurolearn-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var preferenceColumns = []string{
	"font_family",
	"text_scale",
	"letter_spacing",
	"line_height",
	"theme",
	"sensory_reduced",
	"focus_mode",
	"updated_at",
}

type UserPreferenceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserPreferenceMapper
}

func NewUserPreferenceRepository(db *gorm.DB) contract.UserPreferenceRepository {
	return &UserPreferenceRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserPreferenceMapper(),
	}
}

func (r *UserPreferenceRepositoryImpl) FindByUserId(ctx context.Context, userId string) (*entity.UserPreference, error) {
	var m model.UserPreference
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *UserPreferenceRepositoryImpl) Upsert(ctx context.Context, pref *entity.UserPreference, expectedVersion *int64) error {
	m := r.mapper.ToModel(pref)
	m.UpdatedAt = time.Now()
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}

	var err error
	if expectedVersion == nil {
		err = r.upsertLastWriteWins(ctx, m)
	} else {
		err = r.upsertVersioned(ctx, m, *expectedVersion)
	}
	if err != nil {
		return err
	}

	stored, err := r.FindByUserId(ctx, m.UserId)
	if err != nil {
		return err
	}
	if stored == nil {
		return gorm.ErrRecordNotFound
	}
	*pref = *stored
	return nil
}

func (r *UserPreferenceRepositoryImpl) upsertLastWriteWins(ctx context.Context, m *model.UserPreference) error {
	m.Version = 1
	updates := clause.AssignmentColumns(preferenceColumns)
	updates = append(updates, clause.Assignment{
		Column: clause.Column{Name: "version"},
		Value:  gorm.Expr("user_preferences.version + 1"),
	})

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: updates,
	}).Create(m).Error
}

// upsertVersioned applies the write only when the stored version matches.
// Version 0 means the caller believes no row exists yet.
func (r *UserPreferenceRepositoryImpl) upsertVersioned(ctx context.Context, m *model.UserPreference, expected int64) error {
	if expected == 0 {
		m.Version = 1
		res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).Create(m)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return contract.ErrVersionConflict
		}
		return nil
	}

	res := r.db.WithContext(ctx).
		Model(&model.UserPreference{}).
		Where("user_id = ? AND version = ?", m.UserId, expected).
		Updates(map[string]interface{}{
			"font_family":     m.FontFamily,
			"text_scale":      m.TextScale,
			"letter_spacing":  m.LetterSpacing,
			"line_height":     m.LineHeight,
			"theme":           m.Theme,
			"sensory_reduced": m.SensoryReduced,
			"focus_mode":      m.FocusMode,
			"version":         gorm.Expr("version + 1"),
			"updated_at":      m.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return contract.ErrVersionConflict
	}
	return nil
}
