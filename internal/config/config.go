package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Thecodingpm/calories-counterr/internal/logger"
)

// Storage backend names accepted in STORAGE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type Config struct {
	HTTPPort     string
	JWTSecret    string
	GeminiAPIKey string
	Storage      StorageConfig
	DB           DBConfig
	Redis        RedisConfig
	Logger       LoggerConfig
}

type StorageConfig struct {
	Backend string
	// Artificial per-operation delay for the memory backend, in
	// milliseconds. The original client mock simulated network latency
	// this way; defaults to 0.
	SimulatedLatencyMS int
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type RedisConfig struct {
	Host string
	Port string
}

type LoggerConfig struct {
	Level      logger.LogLevel
	OutputPath string
	Format     string
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.LevelDebug
	case "info":
		return logger.LevelInfo
	case "warn", "warning":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}

func Load() (*Config, error) {
	backend := strings.ToLower(getEnvOrDefault("STORAGE_BACKEND", BackendMemory))
	switch backend {
	case BackendMemory, BackendRedis, BackendPostgres:
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}

	latency, err := strconv.Atoi(getEnvOrDefault("SIMULATED_LATENCY_MS", "0"))
	if err != nil || latency < 0 {
		return nil, fmt.Errorf("invalid SIMULATED_LATENCY_MS: %q", os.Getenv("SIMULATED_LATENCY_MS"))
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return &Config{
		HTTPPort:     getEnvOrDefault("HTTP_PORT", "8080"),
		JWTSecret:    jwtSecret,
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		Storage: StorageConfig{
			Backend:            backend,
			SimulatedLatencyMS: latency,
		},
		DB: DBConfig{
			Host:     getEnvOrDefault("DB_HOST", "localhost"),
			Port:     getEnvOrDefault("DB_PORT", "5432"),
			User:     getEnvOrDefault("DB_USER", "postgres"),
			Password: getEnvOrDefault("DB_PASSWORD", "postgres"),
			DBName:   getEnvOrDefault("DB_NAME", "calories_counter"),
		},
		Redis: RedisConfig{
			Host: getEnvOrDefault("REDIS_HOST", "localhost"),
			Port: getEnvOrDefault("REDIS_PORT", "6379"),
		},
		Logger: LoggerConfig{
			Level:      parseLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
			OutputPath: getEnvOrDefault("LOG_OUTPUT", "stdout"),
			Format:     getEnvOrDefault("LOG_FORMAT", "json"),
		},
	}, nil
}
