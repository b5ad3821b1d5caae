package service

import (
	"context"
	"errors"
	"testing"

	"neurolearn-be/internal/pkg/logger"
	"neurolearn-be/pkg/preference"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryCache is a map-backed PreferenceCache.
type memoryCache struct {
	items map[string]preference.Profile
}

func (c *memoryCache) Get(ctx context.Context, userId string) (*preference.Profile, error) {
	p, ok := c.items[userId]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (c *memoryCache) Set(ctx context.Context, p preference.Profile) error {
	c.items[p.UserID] = p
	return nil
}

func (c *memoryCache) Invalidate(ctx context.Context, userId string) error {
	delete(c.items, userId)
	return nil
}

func TestPreferenceService_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("absent row yields defaults", func(t *testing.T) {
		db := newFakeDB()
		svc := NewPreferenceService(fakeFactory{db}, nil, logger.NewNopLogger())

		got, err := svc.Load(ctx, "u1")

		require.NoError(t, err)
		assert.Equal(t, preference.Defaults("u1"), got)
		assert.Zero(t, db.writes)
	})

	t.Run("stored row is returned clamped", func(t *testing.T) {
		db := newFakeDB()
		h := &harness{db: db}
		stored := preference.Defaults("u1")
		stored.TextScale = 4
		stored.Theme = preference.ThemeDark
		stored.Version = 3
		h.seed(stored)
		svc := NewPreferenceService(fakeFactory{db}, nil, logger.NewNopLogger())

		got, err := svc.Load(ctx, "u1")

		require.NoError(t, err)
		assert.Equal(t, 1.6, got.TextScale)
		assert.Equal(t, preference.ThemeDark, got.Theme)
		assert.Equal(t, int64(3), got.Version)
	})

	t.Run("read failure is reported with defaults", func(t *testing.T) {
		db := newFakeDB()
		db.failReads = &pgconn.PgError{Code: "08006"}
		svc := NewPreferenceService(fakeFactory{db}, nil, logger.NewNopLogger())

		got, err := svc.Load(ctx, "u1")

		assert.ErrorIs(t, err, ErrTransientPersistence)
		assert.Equal(t, preference.Defaults("u1"), got)
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		db := newFakeDB()
		db.failReads = errors.New("store should not be read")
		cached := preference.Defaults("u1")
		cached.Theme = preference.ThemeContrast
		c := &memoryCache{items: map[string]preference.Profile{"u1": cached}}
		svc := NewPreferenceService(fakeFactory{db}, c, logger.NewNopLogger())

		got, err := svc.Load(ctx, "u1")

		require.NoError(t, err)
		assert.Equal(t, preference.ThemeContrast, got.Theme)
	})
}

func TestPreferenceService_Save(t *testing.T) {
	ctx := context.Background()
	db := newFakeDB()
	c := &memoryCache{items: map[string]preference.Profile{}}
	svc := NewPreferenceService(fakeFactory{db}, c, logger.NewNopLogger())

	profile := preference.Defaults("u1")
	profile.LetterSpacing = -2

	stored, err := svc.Save(ctx, profile, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.Version)
	assert.Equal(t, 0.0, stored.LetterSpacing)
	assert.Equal(t, stored, c.items["u1"])

	stored.Theme = preference.ThemeDark
	again, err := svc.Save(ctx, stored, &stored.Version)
	require.NoError(t, err)
	assert.Equal(t, int64(2), again.Version)

	_, err = svc.Save(ctx, stored, &stored.Version)
	assert.ErrorIs(t, err, ErrVersionConflict)
	_, cachedAfterConflict := c.items["u1"]
	assert.False(t, cachedAfterConflict)
}
