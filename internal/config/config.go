package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/tair/storefront/pkg/database"
	"github.com/tair/storefront/pkg/logger"
)

// DefaultFeaturedIDs is the curated featured subset of the seed catalog
var DefaultFeaturedIDs = []uint{1, 2, 4}

// ServerConfig holds the storefront API configuration
type ServerConfig struct {
	HTTPPort       string
	Environment    string
	LogLevel       string
	Database       database.Config
	JWTSecret      string
	JWTTTL         time.Duration
	FeaturedIDs    []uint
	ImagesDir      string
	SeedCatalog    bool
	RedisAddr      string
	RedisPassword  string
	CacheTTL       time.Duration
	AuthRateLimit  int
	KafkaBrokers   []string
	KafkaGroupID   string
	JaegerEndpoint string
	TracingEnabled bool
}

// IsDevelopment reports whether console logging should be used
func (c *ServerConfig) IsDevelopment() bool {
	return c.Environment == "development"
}

// ClientConfig holds the storefront CLI configuration
type ClientConfig struct {
	APIURL         string
	StateFile      string
	RedisAddr      string
	RedisPrefix    string
	SearchDebounce time.Duration
	FallbackIDs    []uint
	Timeout        time.Duration
	LogLevel       string
}

// LoadDotEnv seeds the environment from .env when present; existing variables win
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			logger.Logger.Warn().Err(err).Str("file", f).Msg("Failed to load env file")
		}
	}
}

// LoadServerConfig reads the server configuration from the environment
func LoadServerConfig() *ServerConfig {
	return &ServerConfig{
		HTTPPort:    getEnv("HTTP_PORT", "3000"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Database: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "storefront"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWTSecret:      getEnv("JWT_SECRET", "your-secret-key"),
		JWTTTL:         getDuration("JWT_TTL", 24*time.Hour),
		FeaturedIDs:    getIDs("FEATURED_PRODUCT_IDS", DefaultFeaturedIDs),
		ImagesDir:      getEnv("IMAGES_DIR", "./public/images"),
		SeedCatalog:    getBool("SEED_CATALOG", true),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		CacheTTL:       getDuration("CACHE_TTL", time.Minute),
		AuthRateLimit:  getInt("AUTH_RATE_LIMIT", 20),
		KafkaBrokers:   getList("KAFKA_BROKERS"),
		KafkaGroupID:   getEnv("KAFKA_GROUP_ID", "storefront-stock"),
		JaegerEndpoint: getEnv("JAEGER_ENDPOINT", ""),
		TracingEnabled: getBool("TRACING_ENABLED", false),
	}
}

// LoadClientConfig reads the CLI configuration from the environment
func LoadClientConfig() *ClientConfig {
	return &ClientConfig{
		APIURL:         strings.TrimRight(getEnv("STOREFRONT_API_URL", "http://localhost:3000"), "/"),
		StateFile:      getEnv("STOREFRONT_STATE_FILE", defaultStateFile()),
		RedisAddr:      getEnv("STOREFRONT_REDIS_ADDR", ""),
		RedisPrefix:    getEnv("STOREFRONT_REDIS_PREFIX", "storefront:"),
		SearchDebounce: getDuration("STOREFRONT_SEARCH_DEBOUNCE", 300*time.Millisecond),
		FallbackIDs:    getIDs("STOREFRONT_FALLBACK_FEATURED_IDS", DefaultFeaturedIDs),
		Timeout:        getDuration("STOREFRONT_TIMEOUT", 10*time.Second),
		LogLevel:       getEnv("LOG_LEVEL", "warn"),
	}
}

func defaultStateFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".storefront-state.json"
	}
	return filepath.Join(home, ".storefront", "state.json")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return n
}

func getBool(key string, defaultValue bool) bool {
	b, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return b
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return d
}

func getList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getIDs parses a comma separated id list; any malformed entry yields the default
func getIDs(key string, defaultValue []uint) []uint {
	parts := getList(key)
	if len(parts) == 0 {
		return append([]uint(nil), defaultValue...)
	}

	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil || n == 0 {
			logger.Logger.Warn().Str("key", key).Str("value", p).Msg("Invalid id, using defaults")
			return append([]uint(nil), defaultValue...)
		}
		ids = append(ids, uint(n))
	}
	return ids
}
