package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"neurolearn-be/internal/metrics"
	"neurolearn-be/internal/pkg/logger"
	"neurolearn-be/pkg/preference"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(t *testing.T, db *fakeDB) *PersistenceWorker {
	t.Helper()
	pubSub := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 16}, watermill.NopLogger{})
	t.Cleanup(func() { _ = pubSub.Close() })

	prefs := NewPreferenceService(fakeFactory{db}, nil, logger.NewNopLogger())
	w := NewPersistenceWorker(pubSub, "preferences.persist", prefs, logger.NewNopLogger(), metrics.NewNop())
	require.NoError(t, w.Consume(t.Context()))
	return w
}

func TestPersistenceWorker_StoresProfile(t *testing.T) {
	db := newFakeDB()
	w := newTestWorker(t, db)

	var (
		mu       sync.Mutex
		notified []preference.Profile
	)
	w.OnPersisted(func(p preference.Profile, conflict bool) {
		mu.Lock()
		defer mu.Unlock()
		assert.False(t, conflict)
		notified = append(notified, p)
	})

	profile := preference.Defaults("u1")
	profile.Theme = preference.ThemeDark

	err := waitResult(w.Enqueue(context.Background(), profile, nil))
	require.NoError(t, err)

	row := db.preferences["u1"]
	require.NotNil(t, row)
	assert.Equal(t, "dark", row.Theme)
	assert.Equal(t, int64(1), row.Version)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, notified, 1)
	assert.Equal(t, int64(1), notified[0].Version)
}

func TestPersistenceWorker_DeliversFailure(t *testing.T) {
	db := newFakeDB()
	db.failWrites = errors.New("disk full")
	w := newTestWorker(t, db)

	ch := w.Enqueue(context.Background(), preference.Defaults("u1"), nil)

	err := waitResult(ch)
	assert.ErrorContains(t, err, "disk full")

	_, open := <-ch
	assert.False(t, open, "result channel is closed after one result")
}

func TestPersistenceWorker_ConflictNotifies(t *testing.T) {
	db := newFakeDB()
	w := newTestWorker(t, db)

	conflicts := make(chan string, 1)
	w.OnPersisted(func(p preference.Profile, conflict bool) {
		if conflict {
			conflicts <- p.UserID
		}
	})

	stale := int64(7)
	err := waitResult(w.Enqueue(context.Background(), preference.Defaults("u1"), &stale))
	assert.ErrorIs(t, err, ErrVersionConflict)

	select {
	case userId := <-conflicts:
		assert.Equal(t, "u1", userId)
	case <-time.After(time.Second):
		t.Fatal("conflict callback not called")
	}
}

func TestPersistenceWorker_SkipsSupersededJob(t *testing.T) {
	db := newFakeDB()
	w := newTestWorker(t, db)

	newer := preference.Defaults("u1")
	newer.Theme = preference.ThemeContrast
	require.NoError(t, waitResult(w.Enqueue(context.Background(), newer, nil)))

	// A job carrying an older sequence number arrives late.
	result := make(chan error, 1)
	w.mu.Lock()
	w.pending["late"] = result
	w.mu.Unlock()

	payload := []byte(`{"seq":0,"profile":{"user_id":"u1","theme":"calm"}}`)
	w.processMessage(context.Background(), message.NewMessage("late", payload))

	require.NoError(t, waitResult(result))
	assert.Equal(t, "contrast", db.preferences["u1"].Theme)
	assert.Equal(t, 1, db.writes)
}
