package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultWidth    = 10
	defaultHeight   = 10
	defaultLogLevel = "info"
)

// Config holds the application's configuration values.
type Config struct {
	Width    int    // Number of maze columns
	Height   int    // Number of maze rows
	Seed     int64  // Seed for the shared random source; 0 picks one from the clock
	LogLevel string // Minimum log level (debug, info, warn, error)
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	cfg, err := fromEnv()
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}
	return cfg
}

// fromEnv reads the configuration from the process environment.
func fromEnv() (Config, error) {
	width, err := getEnvAsIntWithDefault("MAZE_WIDTH", defaultWidth)
	if err != nil {
		return Config{}, err
	}
	height, err := getEnvAsIntWithDefault("MAZE_HEIGHT", defaultHeight)
	if err != nil {
		return Config{}, err
	}
	seed, err := getEnvAsIntWithDefault("MAZE_SEED", 0)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Width:    width,
		Height:   height,
		Seed:     int64(seed),
		LogLevel: getEnvWithDefault("LOG_LEVEL", defaultLogLevel),
	}, nil
}

// getEnvAsIntWithDefault retrieves an environment variable as an integer, or the default if not set.
func getEnvAsIntWithDefault(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
