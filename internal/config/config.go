package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	DatabaseURL     string
	RedisURL        string
	FrontendURL     string        // Frontend base URL (for product QR codes)
	CORSOrigin      string        // Origin allowed to call the API from a browser
	JWTSecret       string        // Secret key for JWT token signing
	JWTTTL          int           // JWT token expiration time in hours
	BcryptCost      int           // bcrypt log-rounds for password hashing
	ProductCacheTTL time.Duration // How long product reads stay in Redis
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		Port:            getEnv("PORT", "3001"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		RedisURL:        getEnv("REDIS_URL", ""),
		FrontendURL:     getEnv("FRONTEND_URL", "http://localhost:5173"),
		CORSOrigin:      getEnv("CORS_ORIGIN", "http://localhost:5173"),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		JWTTTL:          getEnvInt("JWT_TTL_HOURS", 168), // 7 days
		BcryptCost:      getEnvInt("BCRYPT_COST", 10),
		ProductCacheTTL: time.Duration(getEnvInt("PRODUCT_CACHE_TTL_SECONDS", 300)) * time.Second,
	}
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.JWTTTL <= 0 {
		return errors.New("JWT_TTL_HOURS must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
