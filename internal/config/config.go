package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Storage driver names accepted in STORAGE_DRIVER.
const (
	DriverMemory = "memory"
	DriverMySQL  = "mysql"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort    string
	StorageDriver string
	MySQLDSN      string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	JWTSecret     string
	SwaggerHost   string
}

// Load builds Config from environment with sensible defaults. A .env file
// is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		StorageDriver: getEnv("STORAGE_DRIVER", DriverMemory),
		MySQLDSN:      getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/aifolio?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		RedisPass:     os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     getEnv("JWT_SECRET", "change-me"),
		SwaggerHost:   os.Getenv("SWAGGER_HOST"),
	}
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
