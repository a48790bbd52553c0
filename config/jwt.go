package config

import (
	"os"
	"strconv"
	"time"
)

// JWTConfig is loaded once in main and injected into the token service.
// No package-level mutable state.
type JWTConfig struct {
	Secret     []byte
	Expiration time.Duration
	Issuer     string
	Audience   string
}

func LoadJWT() JWTConfig {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "your-secret-key-change-this-in-production"
	}

	expiration := time.Hour
	if raw := os.Getenv("JWT_EXPIRATION_HOURS"); raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			expiration = time.Duration(hours) * time.Hour
		}
	}

	issuer := os.Getenv("JWT_ISSUER")
	if issuer == "" {
		issuer = "blogapi"
	}

	audience := os.Getenv("JWT_AUDIENCE")
	if audience == "" {
		audience = "blogapi-clients"
	}

	return JWTConfig{
		Secret:     []byte(secret),
		Expiration: expiration,
		Issuer:     issuer,
		Audience:   audience,
	}
}
