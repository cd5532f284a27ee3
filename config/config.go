package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	// Database Configuration
	MongoURI string
	DBName   string

	// Security Configuration
	JWTSecret  string
	TokenTTL   time.Duration // zero disables token expiry
	AdminEmail string        // registrations with this email get the admin flag

	// Server Configuration
	Port string
	Env  string

	// Catalog seeding
	SeedFile string
}

// LoadConfig loads the configuration from environment variables. The signing
// secret and the storage connection string are required; startup must fail
// without them rather than issuing unverifiable tokens later.
func LoadConfig() (*Config, error) {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	var tokenTTL time.Duration
	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL %q: %v", raw, err)
		}
		tokenTTL = ttl
	}

	return &Config{
		MongoURI:   mongoURI,
		DBName:     getEnvOrDefault("DB_NAME", "movieAppDB"),
		JWTSecret:  jwtSecret,
		TokenTTL:   tokenTTL,
		AdminEmail: getEnvOrDefault("ADMIN_EMAIL", ""),
		Port:       getEnvOrDefault("PORT", "8080"),
		Env:        getEnvOrDefault("GO_ENV", "development"),
		SeedFile:   getEnvOrDefault("MOVIE_SEED_FILE", ""),
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
