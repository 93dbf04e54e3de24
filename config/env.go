package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Redis   RedisConfig
	DB      DBConfig
	Auth    AuthConfig
	Server  ServerConfig
	Gateway GatewayConfig
	Reports ReportsConfig
}

type DBConfig struct {
	DSN          string
	LogLevel     string
	MaxOpenConns int
}

type AuthConfig struct {
	JWTSecret     string
	SessionTTL    time.Duration
	LoginTokenTTL time.Duration
	AdminUsername string
	AdminPassword string
}

type ServerConfig struct {
	GRPCAddr string
}

type GatewayConfig struct {
	Addr          string
	POSServiceURL string
	CORSOrigins   []string
	RateLimit     string
}

type ReportsConfig struct {
	CacheTTL time.Duration
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	maxOpen, _ := strconv.Atoi(getEnv("DB_MAX_OPEN_CONNS", "25"))

	return Config{
		Redis: RedisConfig{
			Enabled:      getBool("REDIS_ENABLED", false),
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           redisDB,
			ClusterAddrs: getList("REDIS_CLUSTER_ADDRS"),
		},
		DB: DBConfig{
			DSN:          getEnv("POS_DSN", ""),
			LogLevel:     getEnv("DB_LOG_LEVEL", "warn"),
			MaxOpenConns: maxOpen,
		},
		Auth: AuthConfig{
			JWTSecret:     getEnv("JWT_SECRET", ""),
			SessionTTL:    getDuration("SESSION_TTL", 24*time.Hour),
			LoginTokenTTL: getDuration("LOGIN_TOKEN_TTL", 5*365*24*time.Hour),
			AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
			AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":50053"),
		},
		Gateway: GatewayConfig{
			Addr:          getEnv("GATEWAY_ADDR", ":8080"),
			POSServiceURL: getEnv("POS_SERVICE_URL", "localhost:50053"),
			CORSOrigins:   getList("CORS_ORIGINS"),
			RateLimit:     getEnv("RATE_LIMIT", "100-M"),
		},
		Reports: ReportsConfig{
			CacheTTL: getDuration("REPORT_CACHE_TTL", 5*time.Minute),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(defaultValue)))
	if err != nil {
		log.Printf("Invalid %s, using %v", key, defaultValue)
		return defaultValue
	}
	return v
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Invalid %s %q, using %s", key, raw, defaultValue)
		return defaultValue
	}
	return d
}

// getList splits a comma separated variable, dropping empty items.
func getList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
