package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"neurolearn-be/internal/bootstrap"
	"neurolearn-be/internal/config"
	"neurolearn-be/internal/server"
	"neurolearn-be/internal/tracer"
	"neurolearn-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	if cfg.App.JwtSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	shutdownTracer := tracer.InitTracer(cfg.App.InstanceID)

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(ctx, gormDB, cfg)

	// 4. Start Background Services
	if err := container.PersistenceWorker.Consume(ctx); err != nil {
		log.Fatalf("Unable to start preference persistence worker: %v", err)
	}

	if err := container.RoutineService.Start(cfg.Routine.ResetSchedule); err != nil {
		log.Fatalf("Invalid ROUTINE_RESET_CRON %q: %v", cfg.Routine.ResetSchedule, err)
	}

	if container.SessionSync != nil {
		if err := container.SessionSync.Start(ctx); err != nil {
			log.Printf("[WARN] Cross-instance session sync disabled: %v", err)
		}
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		if err := srv.Run(); err != nil {
			log.Printf("Server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	if err := srv.Shutdown(); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	<-container.RoutineService.Stop().Done()

	container.Close()

	tracerCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracer(tracerCtx); err != nil {
		log.Printf("Tracer shutdown error: %v", err)
	}
}
