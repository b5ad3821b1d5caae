package bootstrap

import (
	"context"
	"log"
	"time"

	"neurolearn-be/internal/config"
	"neurolearn-be/internal/controller"
	"neurolearn-be/internal/handler"
	"neurolearn-be/internal/metrics"
	"neurolearn-be/internal/pkg/logger"
	"neurolearn-be/internal/repository/cache"
	"neurolearn-be/internal/repository/memory"
	"neurolearn-be/internal/repository/unitofwork"
	"neurolearn-be/internal/service"
	"neurolearn-be/pkg/events"
	pktNats "neurolearn-be/pkg/nats"
	"neurolearn-be/pkg/pomodoro"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	LearnerController  controller.ILearnerController
	QuizController     controller.IQuizController
	PomodoroController controller.IPomodoroController
	EnergyController   controller.IEnergyController
	ProgressController controller.IProgressController
	ProfileController  controller.IProfileController
	TaskController     controller.ITaskController
	RoutineController  controller.IRoutineController
	TutorController    controller.ITutorController

	// WebSockets
	PomodoroWsHandler *handler.PomodoroWsHandler

	// Background Services (Exposed for main.go to run)
	PersistenceWorker *service.PersistenceWorker
	RoutineService    service.IRoutineService
	SessionSync       *service.SessionSyncService

	Logger  logger.ILogger
	Metrics *metrics.Metrics

	pubSub  *gochannel.GoChannel
	natsPub *pktNats.Publisher
	natsSub *pktNats.Subscriber
	redis   *redis.Client
}

func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	timerLogger := logger.NewIsolatedLogger(cfg.App.TimerLogFilePath)
	appMetrics := metrics.New(prometheus.DefaultRegisterer)

	// 2. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 256},
		watermill.NewStdLogger(false, false),
	)

	var publisher events.Publisher
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	} else {
		publisher = natsPub
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// 3. Redis preference cache
	var prefCache cache.PreferenceCache = cache.NopPreferenceCache{}
	rdb := newRedisClient(ctx, cfg.App.RedisURL)
	if rdb != nil {
		prefCache = cache.NewRedisPreferenceCache(rdb, cfg.Cache.PreferenceTTL)
	}

	// 4. Services
	presets := pomodoro.Presets{Focus: cfg.Pomodoro.FocusMinutes, Break: cfg.Pomodoro.BreakMinutes}

	preferenceService := service.NewPreferenceService(uowFactory, prefCache, sysLogger)
	persistenceWorker := service.NewPersistenceWorker(pubSub, cfg.Session.PersistTopic, preferenceService, sysLogger, appMetrics)

	sessionStore := memory.NewSessionRepository(cfg.Session.IdleTTL)
	sessionService := service.NewSessionService(
		sessionStore,
		preferenceService,
		persistenceWorker,
		publisher,
		cfg.App.InstanceID,
		presets,
		sysLogger,
		appMetrics,
	)
	persistenceWorker.OnPersisted(sessionService.HandlePersisted)

	learnerService := service.NewLearnerService(sessionService)
	quizService := service.NewQuizService(sessionService, publisher, sysLogger, appMetrics)
	pomodoroService := service.NewPomodoroService(ctx, uowFactory, sessionService, publisher, sysLogger, appMetrics)
	energyService := service.NewEnergyService(uowFactory, publisher, sysLogger, appMetrics)
	routineService := service.NewRoutineService(sessionService, sessionStore, sysLogger)

	var sessionSync *service.SessionSyncService
	if natsSub != nil {
		sessionSync = service.NewSessionSyncService(natsSub, sessionService, cfg.App.InstanceID, sysLogger)
	}

	// 5. Controllers
	return &Container{
		LearnerController:  controller.NewLearnerController(learnerService),
		QuizController:     controller.NewQuizController(quizService),
		PomodoroController: controller.NewPomodoroController(pomodoroService),
		EnergyController:   controller.NewEnergyController(energyService),
		ProgressController: controller.NewProgressController(service.NewProgressService(uowFactory)),
		ProfileController:  controller.NewProfileController(service.NewProfileService(uowFactory)),
		TaskController:     controller.NewTaskController(service.NewTaskService(uowFactory)),
		RoutineController:  controller.NewRoutineController(routineService),
		TutorController:    controller.NewTutorController(service.NewTutorService()),

		PomodoroWsHandler: handler.NewPomodoroWsHandler(pomodoroService, timerLogger, appMetrics),

		PersistenceWorker: persistenceWorker,
		RoutineService:    routineService,
		SessionSync:       sessionSync,

		Logger:  sysLogger,
		Metrics: appMetrics,

		pubSub:  pubSub,
		natsPub: natsPub,
		natsSub: natsSub,
		redis:   rdb,
	}
}

// newRedisClient returns nil when Redis is unreachable; preferences are then
// read straight from the database.
func newRedisClient(ctx context.Context, url string) *redis.Client {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{Addr: url}
	}
	rdb := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis, preference cache disabled: %v", err)
		rdb.Close()
		return nil
	}
	return rdb
}

// Close releases the bus, broker and cache connections. Call it after the
// HTTP server and background workers have stopped.
func (c *Container) Close() {
	if c.SessionSync != nil {
		c.SessionSync.Stop()
	}
	if err := c.pubSub.Close(); err != nil {
		log.Printf("[WARN] Failed to close pubsub: %v", err)
	}
	if c.natsSub != nil {
		c.natsSub.Close()
	}
	if c.natsPub != nil {
		c.natsPub.Close()
	}
	if c.redis != nil {
		c.redis.Close()
	}
	c.Logger.Sync()
}
