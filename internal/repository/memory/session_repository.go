package memory

import (
	"time"

	"neurolearn-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps live learner sessions keyed by user id. Entries
// expire after the configured idle TTL and are rebuilt from storage on the
// next request. Evicted sessions have their timer stopped.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(idleTTL time.Duration) *SessionRepository {
	if idleTTL <= 0 {
		idleTTL = time.Hour
	}
	c := cache.New(idleTTL, 10*time.Minute)
	c.OnEvicted(func(_ string, v interface{}) {
		if s, ok := v.(*store.LearnerSession); ok {
			s.Timer.Stop()
		}
	})
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *store.LearnerSession) {
	r.cache.Set(session.UserID, session, cache.DefaultExpiration)
}

// Get returns the session and refreshes its idle deadline.
func (r *SessionRepository) Get(userId string) (*store.LearnerSession, bool) {
	if x, found := r.cache.Get(userId); found {
		s := x.(*store.LearnerSession)
		r.cache.Set(userId, s, cache.DefaultExpiration)
		return s, true
	}
	return nil, false
}

// GetOrCreate returns the stored session, or stores the one built by create.
// When two callers race the first stored session wins.
func (r *SessionRepository) GetOrCreate(userId string, create func() *store.LearnerSession) *store.LearnerSession {
	if s, ok := r.Get(userId); ok {
		return s
	}
	s := create()
	if err := r.cache.Add(userId, s, cache.DefaultExpiration); err != nil {
		if existing, ok := r.Get(userId); ok {
			return existing
		}
		r.Save(s)
	}
	return s
}

func (r *SessionRepository) Delete(userId string) {
	r.cache.Delete(userId)
}

// Range calls fn for every live session.
func (r *SessionRepository) Range(fn func(*store.LearnerSession)) {
	for _, item := range r.cache.Items() {
		if s, ok := item.Object.(*store.LearnerSession); ok {
			fn(s)
		}
	}
}

func (r *SessionRepository) Count() int {
	return r.cache.ItemCount()
}
