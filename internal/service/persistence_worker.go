package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"neurolearn-be/internal/metrics"
	"neurolearn-be/internal/pkg/logger"
	"neurolearn-be/pkg/preference"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IPersistenceQueue interface {
	// Enqueue schedules a write of the complete profile. The returned channel
	// receives exactly one result and is then closed.
	Enqueue(ctx context.Context, profile preference.Profile, expectedVersion *int64) <-chan error
}

type persistJob struct {
	Seq             uint64             `json:"seq"`
	Profile         preference.Profile `json:"profile"`
	ExpectedVersion *int64             `json:"expected_version,omitempty"`
}

// PersistedFunc is told about every stored profile. conflict is set when a
// versioned write lost against a newer row.
type PersistedFunc func(stored preference.Profile, conflict bool)

// PersistenceWorker is the single consumer of the preference write topic.
// Jobs carry a per-process sequence number; a job older than one already
// handled for the same user is skipped, so a stale profile never lands on
// top of a newer one.
type PersistenceWorker struct {
	pubSub      *gochannel.GoChannel
	topicName   string
	preferences IPreferenceService
	logger      logger.ILogger
	metrics     *metrics.Metrics
	timeout     time.Duration

	mu          sync.Mutex
	seq         uint64
	pending     map[string]chan error
	lastHandled map[string]uint64
	onPersisted PersistedFunc
}

func NewPersistenceWorker(
	pubSub *gochannel.GoChannel,
	topicName string,
	preferences IPreferenceService,
	log logger.ILogger,
	m *metrics.Metrics,
) *PersistenceWorker {
	return &PersistenceWorker{
		pubSub:      pubSub,
		topicName:   topicName,
		preferences: preferences,
		logger:      log,
		metrics:     m,
		timeout:     10 * time.Second,
		pending:     make(map[string]chan error),
		lastHandled: make(map[string]uint64),
	}
}

func (w *PersistenceWorker) OnPersisted(fn PersistedFunc) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onPersisted = fn
}

func (w *PersistenceWorker) Enqueue(ctx context.Context, profile preference.Profile, expectedVersion *int64) <-chan error {
	result := make(chan error, 1)

	w.mu.Lock()
	w.seq++
	job := persistJob{Seq: w.seq, Profile: profile, ExpectedVersion: expectedVersion}
	id := uuid.NewString()
	w.pending[id] = result
	w.mu.Unlock()

	payload, err := json.Marshal(job)
	if err == nil {
		msg := message.NewMessage(id, payload)
		err = w.pubSub.Publish(w.topicName, msg)
	}
	if err != nil {
		w.logger.Error("PersistenceWorker", "Failed to enqueue preference write", map[string]interface{}{"user_id": profile.UserID, "error": err})
		w.metrics.PersistFailed("enqueue")
		w.deliver(id, err)
	}
	return result
}

// Consume subscribes to the topic and processes jobs one at a time until ctx
// is cancelled.
func (w *PersistenceWorker) Consume(ctx context.Context) error {
	messages, err := w.pubSub.Subscribe(ctx, w.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			w.processMessage(ctx, msg)
		}
	}()

	w.logger.Info("PersistenceWorker", "Preference persistence worker started", map[string]interface{}{"topic": w.topicName})
	return nil
}

func (w *PersistenceWorker) processMessage(ctx context.Context, msg *message.Message) {
	// Every job is acked: there is no retry, the caller owns that decision.
	defer msg.Ack()

	var job persistJob
	if err := json.Unmarshal(msg.Payload, &job); err != nil {
		w.logger.Error("PersistenceWorker", "Failed to unmarshal preference job", map[string]interface{}{"message_id": msg.UUID, "error": err})
		w.metrics.PersistFailed("decode")
		w.deliver(msg.UUID, err)
		return
	}

	userId := job.Profile.UserID
	if w.superseded(userId, job.Seq) {
		w.logger.Debug("PersistenceWorker", "Skipping superseded preference job", map[string]interface{}{"user_id": userId, "seq": job.Seq})
		w.deliver(msg.UUID, nil)
		return
	}

	writeCtx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	started := time.Now()
	stored, err := w.preferences.Save(writeCtx, job.Profile, job.ExpectedVersion)
	if err != nil {
		reason := "error"
		switch {
		case errors.Is(err, ErrVersionConflict):
			reason = "conflict"
		case errors.Is(err, ErrTransientPersistence):
			reason = "transient"
		}
		w.logger.Error("PersistenceWorker", "Preference write failed", map[string]interface{}{
			"user_id": userId,
			"seq":     job.Seq,
			"reason":  reason,
			"error":   err,
		})
		w.metrics.PersistFailed(reason)
		if reason == "conflict" {
			w.notify(job.Profile, true)
		}
		w.deliver(msg.UUID, err)
		return
	}

	w.metrics.PersistSucceeded(time.Since(started).Seconds())
	w.logger.Debug("PersistenceWorker", "Preference write stored", map[string]interface{}{"user_id": userId, "version": stored.Version})
	w.notify(stored, false)
	w.deliver(msg.UUID, nil)
}

func (w *PersistenceWorker) superseded(userId string, seq uint64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if seq <= w.lastHandled[userId] {
		return true
	}
	w.lastHandled[userId] = seq
	return false
}

func (w *PersistenceWorker) notify(profile preference.Profile, conflict bool) {
	w.mu.Lock()
	fn := w.onPersisted
	w.mu.Unlock()
	if fn != nil {
		fn(profile, conflict)
	}
}

func (w *PersistenceWorker) deliver(id string, err error) {
	w.mu.Lock()
	ch, ok := w.pending[id]
	delete(w.pending, id)
	w.mu.Unlock()
	if !ok {
		return
	}
	ch <- err
	close(ch)
}
