package mapper

import (
	"time"

	"neurolearn-be/internal/entity"
	"neurolearn-be/internal/model"
	"neurolearn-be/pkg/preference"
)

type UserPreferenceMapper struct{}

func NewUserPreferenceMapper() *UserPreferenceMapper {
	return &UserPreferenceMapper{}
}

func (m *UserPreferenceMapper) ToEntity(p *model.UserPreference) *entity.UserPreference {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.UserPreference{
		Id:             p.Id,
		UserId:         p.UserId,
		FontFamily:     p.FontFamily,
		TextScale:      p.TextScale,
		LetterSpacing:  p.LetterSpacing,
		LineHeight:     p.LineHeight,
		Theme:          p.Theme,
		SensoryReduced: p.SensoryReduced,
		FocusMode:      p.FocusMode,
		Version:        p.Version,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *UserPreferenceMapper) ToModel(p *entity.UserPreference) *model.UserPreference {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.UserPreference{
		Id:             p.Id,
		UserId:         p.UserId,
		FontFamily:     p.FontFamily,
		TextScale:      p.TextScale,
		LetterSpacing:  p.LetterSpacing,
		LineHeight:     p.LineHeight,
		Theme:          p.Theme,
		SensoryReduced: p.SensoryReduced,
		FocusMode:      p.FocusMode,
		Version:        p.Version,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

// ToProfile converts the row into the in-memory shape, clamping anything the
// store let through.
func (m *UserPreferenceMapper) ToProfile(p *entity.UserPreference) preference.Profile {
	return preference.Profile{
		UserID:         p.UserId,
		FontFamily:     preference.FontFamily(p.FontFamily),
		TextScale:      p.TextScale,
		LetterSpacing:  p.LetterSpacing,
		LineHeight:     p.LineHeight,
		Theme:          preference.Theme(p.Theme),
		SensoryReduced: p.SensoryReduced,
		FocusMode:      p.FocusMode,
		Version:        p.Version,
	}.Clamp()
}

func (m *UserPreferenceMapper) FromProfile(p preference.Profile) *entity.UserPreference {
	p = p.Clamp()
	return &entity.UserPreference{
		UserId:         p.UserID,
		FontFamily:     string(p.FontFamily),
		TextScale:      p.TextScale,
		LetterSpacing:  p.LetterSpacing,
		LineHeight:     p.LineHeight,
		Theme:          string(p.Theme),
		SensoryReduced: p.SensoryReduced,
		FocusMode:      p.FocusMode,
		Version:        p.Version,
	}
}
