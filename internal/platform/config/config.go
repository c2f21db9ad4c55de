package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Server captures process-wide configuration, read once at startup.
type Server struct {
	Addr           string
	FrontendOrigin string
	BodyLimit      int64
	LogLevel       string

	JWTSigningKey string
	JWTIssuer     string
	JWTAudience   string

	// StoreBackend selects the document store: memory, redis or postgres.
	StoreBackend string
	RedisURL     string
	DatabaseURL  string

	// RevocationStrict enables the token revocation check during
	// authentication. Requires Redis.
	RevocationStrict bool
}

// DefaultBodyLimit caps request bodies at 16 KB.
const DefaultBodyLimit = 16 * 1024

// FromEnv builds a Server config from environment variables so main stays
// lean. A .env file is loaded first when present (ok if missing in prod).
func FromEnv() Server {
	_ = godotenv.Load()

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	return Server{
		Addr:             ":" + envOr("PORT", "8080"),
		FrontendOrigin:   envOr("FRONTEND_ORIGIN", "http://localhost:5173"),
		BodyLimit:        envInt64("BODY_LIMIT", DefaultBodyLimit),
		LogLevel:         envOr("LOG_LEVEL", "INFO"),
		JWTSigningKey:    jwtSigningKey,
		JWTIssuer:        os.Getenv("JWT_ISSUER"),
		JWTAudience:      os.Getenv("JWT_AUDIENCE"),
		StoreBackend:     envOr("STORE_BACKEND", "memory"),
		RedisURL:         os.Getenv("REDIS_URL"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RevocationStrict: os.Getenv("REVOCATION_STRICT") == "true",
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
