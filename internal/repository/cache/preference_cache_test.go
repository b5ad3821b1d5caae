package cache

import (
	"context"
	"testing"

	"neurolearn-be/pkg/preference"

	"github.com/stretchr/testify/assert"
)

func TestPreferenceKey(t *testing.T) {
	assert.Equal(t, "neurolearn:preferences:user-1", preferenceKey("user-1"))
}

func TestNopPreferenceCache(t *testing.T) {
	var c PreferenceCache = NopPreferenceCache{}
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, preference.Defaults("u1")))

	got, err := c.Get(ctx, "u1")
	assert.NoError(t, err)
	assert.Nil(t, got)

	assert.NoError(t, c.Invalidate(ctx, "u1"))
}
