package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"neurolearn-be/internal/entity"
	"neurolearn-be/internal/metrics"
	"neurolearn-be/internal/pkg/logger"
	"neurolearn-be/internal/repository/contract"
	"neurolearn-be/internal/repository/memory"
	"neurolearn-be/internal/repository/specification"
	"neurolearn-be/internal/repository/unitofwork"
	"neurolearn-be/pkg/events"
	"neurolearn-be/pkg/pomodoro"
	"neurolearn-be/pkg/preference"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// fakeDB is an in-memory stand-in for every repository contract. Known
// specifications are interpreted; anything else is ignored.
type fakeDB struct {
	mu sync.Mutex

	preferences map[string]*entity.UserPreference
	energyLogs  []*entity.EnergyLog
	pomodoros   []*entity.PomodoroSession
	progress    []*entity.UserProgress
	profiles    map[string]*entity.Profile
	tasks       []*entity.Task

	failWrites error
	failReads  error
	writes     int
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		preferences: make(map[string]*entity.UserPreference),
		profiles:    make(map[string]*entity.Profile),
	}
}

type fakeFactory struct{ db *fakeDB }

func (f fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUoW{db: f.db}
}

type fakeUoW struct {
	db *fakeDB
	tx bool
}

func (u *fakeUoW) Begin(ctx context.Context) error {
	if u.tx {
		return errors.New("transaction already started")
	}
	u.tx = true
	return nil
}

func (u *fakeUoW) Commit() error {
	if !u.tx {
		return errors.New("no transaction to commit")
	}
	u.tx = false
	return nil
}

func (u *fakeUoW) Rollback() error {
	if !u.tx {
		return errors.New("no transaction to rollback")
	}
	u.tx = false
	return nil
}

func (u *fakeUoW) UserPreferenceRepository() contract.UserPreferenceRepository {
	return fakePreferenceRepo{u.db}
}
func (u *fakeUoW) EnergyLogRepository() contract.EnergyLogRepository { return fakeEnergyRepo{u.db} }
func (u *fakeUoW) PomodoroSessionRepository() contract.PomodoroSessionRepository {
	return fakePomodoroRepo{u.db}
}
func (u *fakeUoW) UserProgressRepository() contract.UserProgressRepository {
	return fakeProgressRepo{u.db}
}
func (u *fakeUoW) ProfileRepository() contract.ProfileRepository { return fakeProfileRepo{u.db} }
func (u *fakeUoW) TaskRepository() contract.TaskRepository       { return fakeTaskRepo{u.db} }

type specFilter struct {
	id     *uuid.UUID
	userId *string
	since  *time.Time
	desc   bool
}

func readSpecs(specs []specification.Specification) specFilter {
	var f specFilter
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			id := s.ID
			f.id = &id
		case specification.UserOwnedBy:
			userId := s.UserID
			f.userId = &userId
		case specification.CreatedSince:
			since := s.Since
			f.since = &since
		case specification.NewestFirst:
			f.desc = true
		}
	}
	return f
}

func (f specFilter) match(id uuid.UUID, userId string, createdAt time.Time) bool {
	if f.id != nil && *f.id != id {
		return false
	}
	if f.userId != nil && *f.userId != userId {
		return false
	}
	if f.since != nil && createdAt.Before(*f.since) {
		return false
	}
	return true
}

func sortByCreated[T any](rows []T, created func(T) time.Time, desc bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		if desc {
			return created(rows[i]).After(created(rows[j]))
		}
		return created(rows[i]).Before(created(rows[j]))
	})
}

type fakePreferenceRepo struct{ db *fakeDB }

func (r fakePreferenceRepo) FindByUserId(ctx context.Context, userId string) (*entity.UserPreference, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.failReads != nil {
		return nil, r.db.failReads
	}
	row, ok := r.db.preferences[userId]
	if !ok {
		return nil, nil
	}
	cp := *row
	return &cp, nil
}

func (r fakePreferenceRepo) Upsert(ctx context.Context, pref *entity.UserPreference, expectedVersion *int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.failWrites != nil {
		return r.db.failWrites
	}

	existing, ok := r.db.preferences[pref.UserId]
	if expectedVersion != nil {
		current := int64(0)
		if ok {
			current = existing.Version
		}
		if current != *expectedVersion {
			return contract.ErrVersionConflict
		}
	}

	row := *pref
	now := time.Now()
	row.UpdatedAt = &now
	if ok {
		row.Id = existing.Id
		row.CreatedAt = existing.CreatedAt
		row.Version = existing.Version + 1
	} else {
		row.Id = uuid.New()
		row.CreatedAt = now
		row.Version = 1
	}
	r.db.preferences[pref.UserId] = &row
	r.db.writes++
	*pref = row
	return nil
}

type fakeEnergyRepo struct{ db *fakeDB }

func (r fakeEnergyRepo) Create(ctx context.Context, log *entity.EnergyLog) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.failWrites != nil {
		return r.db.failWrites
	}
	cp := *log
	r.db.energyLogs = append(r.db.energyLogs, &cp)
	return nil
}

func (r fakeEnergyRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EnergyLog, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	f := readSpecs(specs)
	out := make([]*entity.EnergyLog, 0)
	for _, row := range r.db.energyLogs {
		if f.match(row.Id, row.UserId, row.CreatedAt) {
			cp := *row
			out = append(out, &cp)
		}
	}
	sortByCreated(out, func(e *entity.EnergyLog) time.Time { return e.CreatedAt }, f.desc)
	return out, nil
}

type fakePomodoroRepo struct{ db *fakeDB }

func (r fakePomodoroRepo) Create(ctx context.Context, s *entity.PomodoroSession) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.failWrites != nil {
		return r.db.failWrites
	}
	cp := *s
	r.db.pomodoros = append(r.db.pomodoros, &cp)
	return nil
}

func (r fakePomodoroRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PomodoroSession, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	f := readSpecs(specs)
	out := make([]*entity.PomodoroSession, 0)
	for _, row := range r.db.pomodoros {
		if f.match(row.Id, row.UserId, row.CreatedAt) {
			cp := *row
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r fakePomodoroRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	rows, err := r.FindAll(ctx, specs...)
	return int64(len(rows)), err
}

type fakeProgressRepo struct{ db *fakeDB }

func (r fakeProgressRepo) Create(ctx context.Context, p *entity.UserProgress) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.failWrites != nil {
		return r.db.failWrites
	}
	cp := *p
	r.db.progress = append(r.db.progress, &cp)
	return nil
}

func (r fakeProgressRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserProgress, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	f := readSpecs(specs)
	out := make([]*entity.UserProgress, 0)
	for _, row := range r.db.progress {
		if f.match(row.Id, row.UserId, row.CreatedAt) {
			cp := *row
			out = append(out, &cp)
		}
	}
	sortByCreated(out, func(p *entity.UserProgress) time.Time { return p.CreatedAt }, f.desc)
	return out, nil
}

type fakeProfileRepo struct{ db *fakeDB }

func (r fakeProfileRepo) Upsert(ctx context.Context, p *entity.Profile) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.failWrites != nil {
		return r.db.failWrites
	}
	cp := *p
	if existing, ok := r.db.profiles[p.Id]; ok {
		cp.CreatedAt = existing.CreatedAt
	}
	r.db.profiles[p.Id] = &cp
	*p = cp
	return nil
}

func (r fakeProfileRepo) FindById(ctx context.Context, id string) (*entity.Profile, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	p, ok := r.db.profiles[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

type fakeTaskRepo struct{ db *fakeDB }

func (r fakeTaskRepo) Create(ctx context.Context, t *entity.Task) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.failWrites != nil {
		return r.db.failWrites
	}
	cp := *t
	r.db.tasks = append(r.db.tasks, &cp)
	return nil
}

func (r fakeTaskRepo) Update(ctx context.Context, t *entity.Task) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for i, row := range r.db.tasks {
		if row.Id == t.Id {
			cp := *t
			r.db.tasks[i] = &cp
			return nil
		}
	}
	return errors.New("task not found")
}

func (r fakeTaskRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Task, error) {
	rows, err := r.FindAll(ctx, specs...)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}

func (r fakeTaskRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Task, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	f := readSpecs(specs)
	out := make([]*entity.Task, 0)
	for _, row := range r.db.tasks {
		if f.match(row.Id, row.UserId, row.CreatedAt) {
			cp := *row
			out = append(out, &cp)
		}
	}
	sortByCreated(out, func(t *entity.Task) time.Time { return t.CreatedAt }, f.desc)
	return out, nil
}

// fakePublisher records published events.
type fakePublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *fakePublisher) Publish(ctx context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *fakePublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventType())
	}
	return out
}

// harness wires the session stack the way bootstrap does, on fakes.
type harness struct {
	db        *fakeDB
	factory   fakeFactory
	store     *memory.SessionRepository
	prefs     IPreferenceService
	worker    *PersistenceWorker
	sessions  ISessionService
	publisher *fakePublisher
	metrics   *metrics.Metrics
	log       logger.ILogger
}

func newHarness(ctx context.Context) *harness {
	db := newFakeDB()
	factory := fakeFactory{db: db}
	log := logger.NewNopLogger()
	m := metrics.NewNop()
	publisher := &fakePublisher{}

	pubSub := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, watermill.NopLogger{})
	prefs := NewPreferenceService(factory, nil, log)
	worker := NewPersistenceWorker(pubSub, "preferences.persist", prefs, log, m)
	if err := worker.Consume(ctx); err != nil {
		panic(err)
	}

	sessionStore := memory.NewSessionRepository(time.Hour)
	sessions := NewSessionService(sessionStore, prefs, worker, publisher, "test-instance", pomodoro.DefaultPresets, log, m)
	worker.OnPersisted(sessions.HandlePersisted)

	return &harness{
		db:        db,
		factory:   factory,
		store:     sessionStore,
		prefs:     prefs,
		worker:    worker,
		sessions:  sessions,
		publisher: publisher,
		metrics:   m,
		log:       log,
	}
}

func (h *harness) storedProfile(userId string) *entity.UserPreference {
	h.db.mu.Lock()
	defer h.db.mu.Unlock()
	row, ok := h.db.preferences[userId]
	if !ok {
		return nil
	}
	cp := *row
	return &cp
}

func (h *harness) seed(profile preference.Profile) {
	h.db.mu.Lock()
	defer h.db.mu.Unlock()
	now := time.Now()
	h.db.preferences[profile.UserID] = &entity.UserPreference{
		Id:             uuid.New(),
		UserId:         profile.UserID,
		FontFamily:     string(profile.FontFamily),
		TextScale:      profile.TextScale,
		LetterSpacing:  profile.LetterSpacing,
		LineHeight:     profile.LineHeight,
		Theme:          string(profile.Theme),
		SensoryReduced: profile.SensoryReduced,
		FocusMode:      profile.FocusMode,
		Version:        profile.Version,
		CreatedAt:      now,
		UpdatedAt:      &now,
	}
}

func waitResult(ch <-chan error) error {
	select {
	case err := <-ch:
		return err
	case <-time.After(2 * time.Second):
		return errors.New("timed out waiting for persistence result")
	}
}
