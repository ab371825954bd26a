// Package config loads the maze daemon's settings from the environment,
// optionally seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Storage backends accepted in STORE.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreMongo  = "mongo"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP           string // Host IP for the server
	RESTPort         int    // Port for the REST API
	GinMode          string // Mode for the Gin framework (release, debug, test)
	LogLevel         string // logrus level name
	Store            string // memory, redis or mongo
	RedisAddr        string // host:port of the Redis server
	RedisPassword    string // Redis AUTH password, empty for none
	RedisDB          int    // Redis logical database
	RedisTTLSeconds  int    // expiry of stored mazes; 0 keeps them forever
	DBHost           string // Hostname or IP address for MongoDB
	DBPort           int    // Port number for MongoDB
	DBUser           string // Username for MongoDB
	DBPassword       string // Password for MongoDB
	DBName           string // Name of the MongoDB database
	MaxDimension     int    // largest width or height accepted by the API
	DefaultAlgorithm string // generator used when a request names none
}

// Defaults used when a variable is unset.
var defaults = map[string]string{
	"HOST_IP":           "0.0.0.0",
	"REST_PORT":         "8080",
	"GIN_MODE":          "release",
	"LOG_LEVEL":         "info",
	"STORE":             StoreMemory,
	"REDIS_ADDR":        "localhost:6379",
	"REDIS_PASSWORD":    "",
	"REDIS_DB":          "0",
	"REDIS_TTL_SECONDS": "86400",
	"DB_HOST":           "localhost",
	"DB_PORT":           "27017",
	"DB_USER":           "",
	"DB_PASS":           "",
	"DB_NAME":           "labyrinth",
	"MAX_DIMENSION":     "200",
	"DEFAULT_ALGORITHM": "dfs",
}

// Load reads the given .env files (".env" when none are named; a missing
// file is not an error) and then the process environment, which wins.
// Unset variables take their defaults. Non-integer values for integer keys,
// an unknown STORE and a non-positive MAX_DIMENSION are errors.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		// godotenv.Load never overrides variables already set.
		if err := godotenv.Load(f); err != nil {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	var (
		cfg  Config
		errs []error
	)
	asInt := func(key string) int {
		v, err := getEnvAsInt(key)
		if err != nil {
			errs = append(errs, err)
		}
		return v
	}

	cfg.HostIP = getEnvWithDefault("HOST_IP")
	cfg.RESTPort = asInt("REST_PORT")
	cfg.GinMode = getEnvWithDefault("GIN_MODE")
	cfg.LogLevel = getEnvWithDefault("LOG_LEVEL")
	cfg.Store = getEnvWithDefault("STORE")
	cfg.RedisAddr = getEnvWithDefault("REDIS_ADDR")
	cfg.RedisPassword = getEnvWithDefault("REDIS_PASSWORD")
	cfg.RedisDB = asInt("REDIS_DB")
	cfg.RedisTTLSeconds = asInt("REDIS_TTL_SECONDS")
	cfg.DBHost = getEnvWithDefault("DB_HOST")
	cfg.DBPort = asInt("DB_PORT")
	cfg.DBUser = getEnvWithDefault("DB_USER")
	cfg.DBPassword = getEnvWithDefault("DB_PASS")
	cfg.DBName = getEnvWithDefault("DB_NAME")
	cfg.MaxDimension = asInt("MAX_DIMENSION")
	cfg.DefaultAlgorithm = getEnvWithDefault("DEFAULT_ALGORITHM")

	if len(errs) > 0 {
		return Config{}, errs[0]
	}
	switch cfg.Store {
	case StoreMemory, StoreRedis, StoreMongo:
	default:
		return Config{}, fmt.Errorf("config: STORE=%q: want %s, %s or %s", cfg.Store, StoreMemory, StoreRedis, StoreMongo)
	}
	if cfg.MaxDimension <= 0 {
		return Config{}, fmt.Errorf("config: MAX_DIMENSION=%d must be positive", cfg.MaxDimension)
	}
	return cfg, nil
}

// Addr returns HOST_IP:REST_PORT.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HostIP, c.RESTPort)
}

// MongoURI builds the connection string from the DB_* values; credentials
// are omitted when DB_USER is empty.
func (c Config) MongoURI() string {
	if c.DBUser == "" {
		return fmt.Sprintf("mongodb://%s:%d", c.DBHost, c.DBPort)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s:%d", c.DBUser, c.DBPassword, c.DBHost, c.DBPort)
}

// getEnvWithDefault retrieves the value of an environment variable or its default.
func getEnvWithDefault(key string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaults[key]
}

// getEnvAsInt retrieves the value of an environment variable (or its default) as an integer.
func getEnvAsInt(key string) (int, error) {
	valueStr := getEnvWithDefault(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer: %w", key, err)
	}
	return value, nil
}
