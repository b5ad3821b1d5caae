package main

import (
	"log"
	"os"

	"neurolearn-be/internal/model"
	"neurolearn-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Starting GORM Migration...")

	// 3. Extensions (gen_random_uuid)
	color.Yellow("Step 1: Setting up extensions...")
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		color.Yellow("Warn: Failed to create pgcrypto extension: %v. Continuing...", err)
	}

	// 4. AutoMigrate All Models
	models := []interface{}{
		&model.Profile{},
		&model.UserPreference{},
		&model.EnergyLog{},
		&model.PomodoroSession{},
		&model.UserProgress{},
		&model.Task{},
	}
	color.Yellow("Step 2: Running AutoMigrate for %d tables...", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		color.Red("Error: AutoMigrate failed: %v", err)
		os.Exit(1)
	}

	// 5. Post-Migration indexes for the newest-first listings
	color.Yellow("Step 3: Creating listing indexes...")
	postMigrationSQL := []string{
		`CREATE INDEX IF NOT EXISTS idx_energy_logs_user_created ON energy_logs (user_id, created_at DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_pomodoro_sessions_user_created ON pomodoro_sessions (user_id, created_at DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_user_progress_user_created ON user_progress (user_id, created_at DESC);`,
	}
	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			color.Yellow("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	color.Green("✅ Success: Database migration completed successfully via GORM.")
}
