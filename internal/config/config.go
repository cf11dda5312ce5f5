package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Environment
	Environment string

	// Server
	Port        string
	FrontendURL string

	// Simulation
	TickRate int

	// Sessions
	MaxSessions            int
	SessionIdleMinutes     int
	IdleWorkerPollInterval int

	// WebSocket
	WSSendBuffer int
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		// Environment
		Environment: getEnv("APP_ENV", "development"),

		// Server
		Port:        getEnv("APP_PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),

		// Simulation
		TickRate: getEnvInt("TICK_RATE", 60),

		// Sessions
		MaxSessions:            getEnvInt("MAX_SESSIONS", 100),
		SessionIdleMinutes:     getEnvInt("SESSION_IDLE_MINUTES", 30),
		IdleWorkerPollInterval: getEnvInt("IDLE_WORKER_POLL_SECONDS", 30),

		// WebSocket
		WSSendBuffer: getEnvInt("WS_SEND_BUFFER", 64),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
