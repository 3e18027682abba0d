package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port    string
	AppEnv  string
	LogMode string

	DBDriver   string // postgres or sqlite
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	SQLitePath string

	JWTKey    string
	JWTTTL    time.Duration
	SaltRound int

	CorsOrigins string

	AIApiURL     string // hosted model endpoint used for summaries and Q&A
	AIApiKey     string
	AIModel      string
	SearchApiURL string // fallback when the model endpoint fails
	SearchApiKey string

	SummaryTTL         time.Duration // completed summaries expire this long after completion
	SummaryCleanupSpec string        // cron spec for the expired summary purge
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:    getEnv("PORT", "5000"),
		AppEnv:  getEnv("APP_ENV", "development"),
		LogMode: getEnv("LOG_MODE", "development"),

		DBDriver:   strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "gyaandeepika"),
		SQLitePath: getEnv("SQLITE_PATH", "gyaandeepika.db"),

		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		JWTTTL:    getEnvDuration("JWT_TTL", 24*time.Hour),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		CorsOrigins: getEnv("CORS_ORIGINS", "*"),

		AIApiURL:     getEnv("AI_API_URL", ""),
		AIApiKey:     getEnv("AI_API_KEY", ""),
		AIModel:      getEnv("AI_MODEL", "anthropic.claude-3-haiku"),
		SearchApiURL: getEnv("SEARCH_API_URL", ""),
		SearchApiKey: getEnv("SEARCH_API_KEY", ""),

		SummaryTTL:         getEnvDuration("SUMMARY_TTL", 48*time.Hour),
		SummaryCleanupSpec: getEnv("SUMMARY_CLEANUP_SPEC", "@every 1h"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.AIApiURL == "" && AppConfig.SearchApiURL == "" {
		log.Println("Warning: AI_API_URL and SEARCH_API_URL are empty. AI features will fail.")
	}
}

// IsProduction reports whether the app runs with APP_ENV=production
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvDuration parses values like "48h" or "90m"
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("Error converting environment variable %s to duration: %v", key, err)
		return defaultValue
	}
	return d
}
