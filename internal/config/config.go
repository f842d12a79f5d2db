package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort        string
	Environment       string
	MySQLDSN          string
	RedisAddr         string
	RedisDB           int
	RedisPass         string
	JWTSecret         string
	JWTRefreshSecret  string
	AccessTokenDays   int
	RefreshTokenDays  int
	AllowedOrigins    []string
	SwaggerHost       string
	OwnerEmail        string
	OwnerPassword     string
	OwnerName         string
	OwnerPhone        string
	OwnerBio          string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:       getEnv("SERVER_PORT", "5000"),
		Environment:      getEnv("APP_ENV", "development"),
		MySQLDSN:         getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/portfolio?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		RedisPass:        os.Getenv("REDIS_PASSWORD"),
		JWTSecret:        getEnv("JWT_SECRET", "change-me"),
		JWTRefreshSecret: getEnv("JWT_REFRESH_SECRET", "change-me-too"),
		AccessTokenDays:  getEnvInt("JWT_EXPIRES_DAYS", 7),
		RefreshTokenDays: getEnvInt("JWT_REFRESH_EXPIRES_DAYS", 30),
		AllowedOrigins:   getEnvList("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:3001"}),
		SwaggerHost:      os.Getenv("SWAGGER_HOST"),
		OwnerEmail:       getEnv("OWNER_EMAIL", "owner@example.com"),
		OwnerPassword:    getEnv("OWNER_PASSWORD", "Admin@123"),
		OwnerName:        getEnv("OWNER_NAME", "Portfolio Owner"),
		OwnerPhone:       os.Getenv("OWNER_PHONE"),
		OwnerBio:         os.Getenv("OWNER_BIO"),
	}
}

// IsProduction reports whether the app runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return def
}
