package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the application's configuration values.
type Config struct {
	GoalBound int    // Key and exit are drawn from [-GoalBound, GoalBound] on both axes
	Seed      int64  // Seed of the random source; 0 seeds from the clock
	LogLevel  string // Logrus level name (e.g., debug, info, warn)
	LogFile   string // File to append logs to; empty logs to stderr
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("[APP] .env file not found or could not be loaded: %v", err)
	}

	goalBound, err := getEnvAsIntWithDefault("MAZE_GOAL_BOUND", 5)
	if err != nil {
		logrus.Fatalf("[APP] %v", err)
	}

	seed, err := getEnvAsInt64WithDefault("MAZE_SEED", 0)
	if err != nil {
		logrus.Fatalf("[APP] %v", err)
	}

	return Config{
		GoalBound: goalBound,
		Seed:      seed,
		LogLevel:  getEnvWithDefault("LOG_LEVEL", "warn"),
		LogFile:   getEnvWithDefault("LOG_FILE", ""),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an environment variable as an integer, falling back to a default if not set.
func getEnvAsIntWithDefault(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}

// getEnvAsInt64WithDefault is getEnvAsIntWithDefault for 64 bit values.
func getEnvAsInt64WithDefault(key string, defaultValue int64) (int64, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}
