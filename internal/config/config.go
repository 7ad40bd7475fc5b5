package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries every tunable the server reads from the environment.
type Config struct {
	Port     string
	MongoURI string
	MongoDB  string
	RedisURI string
	LogLevel string

	RackSize         int
	HintAllowance    int
	Cooldown         time.Duration
	CompletionReward int

	ContentDir string
}

// Load reads configuration from the environment, falling back to an optional
// .env file for local development.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:     getEnv("PORT", "8080"),
		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "linked"),
		RedisURI: getEnv("REDIS_URI", "localhost:6379"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		RackSize:         getEnvInt("RACK_SIZE", 5),
		HintAllowance:    getEnvInt("HINT_ALLOWANCE", 2),
		Cooldown:         time.Duration(getEnvInt("COOLDOWN_MINUTES", 30)) * time.Minute,
		CompletionReward: getEnvInt("COMPLETION_REWARD", 100),

		ContentDir: getEnv("CONTENT_DIR", "./content"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}
