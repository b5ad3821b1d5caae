package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Cache    CacheConfig
	Session  SessionConfig
	Pomodoro PomodoroConfig
	Routine  RoutineConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	InstanceID         string
	LogFilePath        string
	TimerLogFilePath   string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	JwtSecret          string
}

type DatabaseConfig struct {
	Connection string
}

type CacheConfig struct {
	PreferenceTTL time.Duration
}

type SessionConfig struct {
	IdleTTL      time.Duration
	PersistTopic string
}

type PomodoroConfig struct {
	FocusMinutes int
	BreakMinutes int
}

type RoutineConfig struct {
	ResetSchedule string // cron spec, local time
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	hostname, _ := os.Hostname()

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			InstanceID:         getEnv("INSTANCE_ID", hostname),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			TimerLogFilePath:   getEnv("TIMER_LOG_FILE_PATH", "logs/pomodoro.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			JwtSecret:          getEnv("JWT_SECRET", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Cache: CacheConfig{
			PreferenceTTL: getEnvAsDuration("PREFERENCE_CACHE_TTL", 15*time.Minute),
		},
		Session: SessionConfig{
			IdleTTL:      getEnvAsDuration("SESSION_IDLE_TTL", 12*time.Hour),
			PersistTopic: getEnv("PERSIST_TOPIC", "preferences.persist"),
		},
		Pomodoro: PomodoroConfig{
			FocusMinutes: getEnvAsInt("POMODORO_FOCUS_MINUTES", 25),
			BreakMinutes: getEnvAsInt("POMODORO_BREAK_MINUTES", 5),
		},
		Routine: RoutineConfig{
			ResetSchedule: getEnv("ROUTINE_RESET_CRON", "0 0 * * *"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil && value > 0 {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil && value > 0 {
		return value
	}
	return fallback
}
